package ledger

import (
	"fmt"
	"time"
)

// InsufficientPointsError is returned when a redemption costs more than the
// current balance.
type InsufficientPointsError struct {
	Reward  Reward
	Balance int
}

func (e InsufficientPointsError) Error() string {
	return fmt.Sprintf("reward %q costs %d points (balance %d)", e.Reward.Label, e.Reward.Cost, e.Balance)
}

// Redeem buys a catalog reward, deducting its cost and appending a ledger
// entry with the negative points change.
func Redeem(l *Ledger, r Reward, now time.Time) error {
	if l.Points < r.Cost {
		return InsufficientPointsError{Reward: r, Balance: l.Points}
	}

	l.Points -= r.Cost
	l.Logs = append(l.Logs, DailyLog{
		Date:         now.Format(DateFormat),
		MissionID:    fmt.Sprintf("reward_%s_%d", r.ID, now.UnixMilli()),
		Status:       StatusCompleted,
		PointsChange: -r.Cost,
	})
	return nil
}
