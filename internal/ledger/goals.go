package ledger

// GoalResult reports a completed goal's payout.
type GoalResult struct {
	Goal    Goal
	Toast   PointsToast
	Applied bool
}

// AddGoal appends a new goal carrying the standard reward.
func AddGoal(l *Ledger, id, label string) Goal {
	g := Goal{ID: id, Label: label, RewardPoints: DefaultGoalReward}
	l.Goals = append(l.Goals, g)
	return g
}

// CompleteGoal pays out a goal exactly once. Completing an already-completed
// or unknown goal is a no-op.
func CompleteGoal(l *Ledger, id string) GoalResult {
	g := l.GoalByID(id)
	if g == nil || g.Completed {
		return GoalResult{}
	}

	g.Completed = true
	l.Points += g.RewardPoints
	l.XP += GoalXP

	return GoalResult{
		Goal:    *g,
		Toast:   PointsToast{Label: "META: " + g.Label, Points: g.RewardPoints},
		Applied: true,
	}
}

// DeleteGoal removes a goal by id. Unknown ids are ignored.
func DeleteGoal(l *Ledger, id string) bool {
	for i := range l.Goals {
		if l.Goals[i].ID == id {
			l.Goals = append(l.Goals[:i], l.Goals[i+1:]...)
			return true
		}
	}
	return false
}
