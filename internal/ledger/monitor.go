package ledger

import "time"

// PunishmentMessage is surfaced when the inactivity sweep confiscates points.
const PunishmentMessage = "INATIVIDADE DETECTADA.\n\nVocê ignorou o protocolo por 24 horas.\nSeus pontos foram confiscados."

// CheckInactivity runs the startup gate-then-sweep: if no mission was
// completed yesterday, points are zeroed and the punishment day stamped.
// It is gated to fire at most once per calendar day, and skips entirely
// when there is nothing to punish or no history yet. Returns true when the
// punishment fired.
func CheckInactivity(l *Ledger, now time.Time) bool {
	today := now.Format(DateFormat)
	yesterday := now.AddDate(0, 0, -1).Format(DateFormat)

	if l.LastPunishmentDate != nil && *l.LastPunishmentDate == today {
		return false
	}
	if l.Points == 0 && l.XP == 0 {
		return false
	}
	if len(l.Logs) == 0 {
		return false
	}
	if l.CompletedOn(yesterday) {
		return false
	}

	l.Points = 0
	l.LastPunishmentDate = &today
	return true
}
