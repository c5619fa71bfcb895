package ledger

// LogStatus is the resolution recorded for a mission on a given day.
type LogStatus string

const (
	StatusCompleted LogStatus = "completed"
	StatusFailed    LogStatus = "failed"
)

func (s LogStatus) IsValid() bool {
	switch s {
	case StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// Mission is a daily task worth a fixed number of points.
// Seeded missions carry IsCustom=false; user- and AI-created ones are custom.
type Mission struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Points   int    `json:"points"`
	IsCustom bool   `json:"isCustom,omitempty"`
}

// DailyLog is one append-only record of a mission resolution.
// Dates are calendar days in YYYY-MM-DD form; PointsChange is signed.
type DailyLog struct {
	Date         string    `json:"date"`
	MissionID    string    `json:"missionId"`
	Status       LogStatus `json:"status"`
	PointsChange int       `json:"pointsChange"`
}

// Goal is a longer-term objective completed at most once.
type Goal struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	Completed    bool   `json:"completed"`
	RewardPoints int    `json:"rewardPoints"`
}

// Alarm is a wall-clock alarm entry (time in HH:MM, local).
type Alarm struct {
	ID     string `json:"id"`
	Time   string `json:"time"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Profile holds the user data fed into coach prompts.
type Profile struct {
	Name   string `json:"name"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
	Tone   string `json:"tone"`
}

// Ledger is the aggregate root: the authoritative record of points, XP,
// strikes, missions, logs, goals and alarms. It is persisted wholesale after
// every mutation and rehydrated wholesale at startup.
type Ledger struct {
	Points   int        `json:"points"`
	XP       int        `json:"xp"`
	Strikes  int        `json:"strikes"`
	Missions []Mission  `json:"missions"`
	Logs     []DailyLog `json:"logs"`
	Goals    []Goal     `json:"goals"`
	Alarms   []Alarm    `json:"alarms"`
	Profile  Profile    `json:"profile"`

	HardcoreMode bool `json:"hardcoreMode"`

	// LastResetDate is the ISO timestamp of the last hardcore protocol reset.
	// LastPunishmentDate is the YYYY-MM-DD day the inactivity sweep last fired.
	// Both are nil until the corresponding event happens.
	LastResetDate      *string `json:"lastResetDate"`
	LastPunishmentDate *string `json:"lastPunishmentDate"`
}

// New returns a first-run ledger: zero counters, seeded missions,
// hardcore mode on.
func New() *Ledger {
	return &Ledger{
		Missions:     BaseMissions(),
		Logs:         []DailyLog{},
		Goals:        []Goal{},
		Alarms:       []Alarm{},
		HardcoreMode: true,
		Profile:      Profile{Tone: DefaultTone},
	}
}

// MissionByID returns the mission with the given id, or nil.
func (l *Ledger) MissionByID(id string) *Mission {
	for i := range l.Missions {
		if l.Missions[i].ID == id {
			return &l.Missions[i]
		}
	}
	return nil
}

// GoalByID returns the goal with the given id, or nil.
func (l *Ledger) GoalByID(id string) *Goal {
	for i := range l.Goals {
		if l.Goals[i].ID == id {
			return &l.Goals[i]
		}
	}
	return nil
}

// ResolvedOn returns the set of mission IDs already resolved (completed or
// failed) on the given day. The Evaluator uses it as its idempotency guard.
func (l *Ledger) ResolvedOn(date string) map[string]bool {
	resolved := map[string]bool{}
	for i := range l.Logs {
		if l.Logs[i].Date == date {
			resolved[l.Logs[i].MissionID] = true
		}
	}
	return resolved
}

// CompletedOn reports whether at least one mission was completed on the day.
func (l *Ledger) CompletedOn(date string) bool {
	for i := range l.Logs {
		if l.Logs[i].Date == date && l.Logs[i].Status == StatusCompleted {
			return true
		}
	}
	return false
}
