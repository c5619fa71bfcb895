package ledger

import (
	"math/rand"
	"time"
)

// CompleteResult reports the outcome of completing a mission. Toast carries
// the transient "points earned" notification for the UI; it is never persisted.
type CompleteResult struct {
	Mission     Mission
	Toast       PointsToast
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Applied     bool
}

// PointsToast is a transient notification value (label + amount).
type PointsToast struct {
	Label  string
	Points int
}

// FailResult reports the outcome of failing a mission.
type FailResult struct {
	Mission       Mission
	Penalty       int
	Strikes       int
	ProtocolReset bool
	RealityCheck  string
	Applied       bool
}

// Complete resolves a mission as done for the given day.
// If the mission was already resolved that day the call is a no-op
// (Applied=false), not an error.
func Complete(l *Ledger, m Mission, date string) CompleteResult {
	if l.ResolvedOn(date)[m.ID] {
		return CompleteResult{Mission: m}
	}

	levelBefore := LevelForXP(l.XP)
	l.Points += m.Points
	l.XP += MissionXP
	l.Logs = append(l.Logs, DailyLog{
		Date:         date,
		MissionID:    m.ID,
		Status:       StatusCompleted,
		PointsChange: m.Points,
	})
	levelAfter := LevelForXP(l.XP)

	return CompleteResult{
		Mission:     m,
		Toast:       PointsToast{Label: m.Label, Points: m.Points},
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LevelUp:     levelAfter > levelBefore,
		Applied:     true,
	}
}

// Fail resolves a mission as failed for the given day. In hardcore mode the
// penalty is deducted (clamped at zero) and a strike is added; the third
// strike fires a full protocol reset: points, XP and strikes zeroed, logs
// cleared, and the failing entry itself is not appended. The rng picks the
// reality-check message; pass a seeded source for reproducible output.
func Fail(l *Ledger, m Mission, date string, now time.Time, rng *rand.Rand) FailResult {
	if l.ResolvedOn(date)[m.ID] {
		return FailResult{Mission: m}
	}

	penalty := 0
	strikes := l.Strikes
	if l.HardcoreMode {
		penalty = HardcorePenalty
		strikes++
	}

	check := RealityChecks[rng.Intn(len(RealityChecks))]

	if l.HardcoreMode && strikes >= StrikeLimit {
		reset := now.Format(time.RFC3339)
		l.Points = 0
		l.XP = 0
		l.Strikes = 0
		l.Logs = []DailyLog{}
		l.LastResetDate = &reset
		return FailResult{
			Mission:       m,
			Penalty:       penalty,
			ProtocolReset: true,
			RealityCheck:  check,
			Applied:       true,
		}
	}

	l.Points -= penalty
	if l.Points < 0 {
		l.Points = 0
	}
	l.Strikes = strikes
	l.Logs = append(l.Logs, DailyLog{
		Date:         date,
		MissionID:    m.ID,
		Status:       StatusFailed,
		PointsChange: -penalty,
	})

	return FailResult{
		Mission:      m,
		Penalty:      penalty,
		Strikes:      strikes,
		RealityCheck: check,
		Applied:      true,
	}
}
