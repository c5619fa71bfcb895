package ledger

import "time"

// DateFormat is the calendar-day form used throughout the logs.
const DateFormat = "2006-01-02"

// streakWindow caps the backward scan; nobody is owed more than a year.
const streakWindow = 365

// Streak counts consecutive calendar days with at least one completed
// mission, scanning backward from today. Today without activity does not
// break an existing streak; any earlier gap does. Days strictly before the
// last protocol reset are never counted.
//
// This is a derived value recomputed on every read, never stored, so it
// cannot drift from the logs.
func Streak(logs []DailyLog, today time.Time, lastResetDate *string) int {
	completed := map[string]bool{}
	for i := range logs {
		if logs[i].Status == StatusCompleted {
			completed[logs[i].Date] = true
		}
	}

	resetDay := ""
	if lastResetDate != nil {
		if len(*lastResetDate) >= len(DateFormat) {
			resetDay = (*lastResetDate)[:len(DateFormat)]
		} else {
			resetDay = *lastResetDate
		}
	}

	streak := 0
	for i := 0; i < streakWindow; i++ {
		day := today.AddDate(0, 0, -i).Format(DateFormat)
		if resetDay != "" && day < resetDay {
			break
		}
		switch {
		case completed[day]:
			streak++
		case i == 0:
			// Today not acted on yet; keep scanning.
		default:
			return streak
		}
	}
	return streak
}
