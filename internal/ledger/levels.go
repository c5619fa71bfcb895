package ledger

const (
	// XPPerLevel is the flat level size: level = floor(xp/XPPerLevel) + 1.
	XPPerLevel = 100

	// MissionXP is awarded once per completed mission.
	MissionXP = 25

	// GoalXP is awarded when a goal is completed.
	GoalXP = 100

	// DefaultGoalReward is the point reward attached to a new goal.
	DefaultGoalReward = 300

	// HardcorePenalty is the point cost of a failed mission in hardcore mode.
	HardcorePenalty = 50

	// StrikeLimit is the hardcore failure count that triggers a protocol reset.
	StrikeLimit = 3

	// FocusXP and FocusPoints are credited when a focus pomodoro runs to zero.
	FocusXP     = 50
	FocusPoints = 10
)

// LevelForXP returns the level for a total XP value. Level starts at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPProgress returns the XP accumulated inside the current level,
// always in [0, XPPerLevel).
func XPProgress(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp % XPPerLevel
}

// XPToNext returns the XP still missing for the next level.
func XPToNext(xp int) int {
	return XPPerLevel - XPProgress(xp)
}
