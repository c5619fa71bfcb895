package timer

import (
	"fmt"
	"time"
)

// PomodoroMode selects which countdown preset is loaded.
type PomodoroMode string

const (
	ModeFocus      PomodoroMode = "focus"
	ModeShortBreak PomodoroMode = "short"
	ModeLongBreak  PomodoroMode = "long"
)

func (m PomodoroMode) IsValid() bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Durations holds the per-mode countdown lengths.
type Durations struct {
	Focus time.Duration
	Short time.Duration
	Long  time.Duration
}

// DefaultDurations is the classic 25/5/15 split.
func DefaultDurations() Durations {
	return Durations{
		Focus: 25 * time.Minute,
		Short: 5 * time.Minute,
		Long:  15 * time.Minute,
	}
}

// Pomodoro is a whole-second countdown advanced by an external 1-second
// tick source. It never owns a goroutine: the caller drives Tick.
type Pomodoro struct {
	mode      PomodoroMode
	remaining int // seconds
	active    bool
	durations Durations
}

func NewPomodoro(d Durations) *Pomodoro {
	if d.Focus <= 0 || d.Short <= 0 || d.Long <= 0 {
		d = DefaultDurations()
	}
	p := &Pomodoro{durations: d}
	p.SetMode(ModeFocus)
	return p
}

func (p *Pomodoro) Mode() PomodoroMode { return p.mode }
func (p *Pomodoro) Active() bool       { return p.active }

// Remaining returns the seconds left on the countdown.
func (p *Pomodoro) Remaining() int { return p.remaining }

// SetMode loads the preset for the mode and stops the countdown.
func (p *Pomodoro) SetMode(mode PomodoroMode) {
	if !mode.IsValid() {
		mode = ModeFocus
	}
	p.mode = mode
	p.active = false
	p.remaining = p.presetSeconds()
}

func (p *Pomodoro) presetSeconds() int {
	switch p.mode {
	case ModeShortBreak:
		return int(p.durations.Short / time.Second)
	case ModeLongBreak:
		return int(p.durations.Long / time.Second)
	default:
		return int(p.durations.Focus / time.Second)
	}
}

// Toggle flips the countdown between running and paused.
func (p *Pomodoro) Toggle() { p.active = !p.active }

// Reset stops the countdown and reloads the current mode's preset.
func (p *Pomodoro) Reset() {
	p.active = false
	p.remaining = p.presetSeconds()
}

// Tick advances the countdown by one second. When the countdown reaches
// zero it stops and Tick reports done; focusDone is additionally true when
// the finished countdown was a focus session (the only one that credits
// the ledger bonus).
func (p *Pomodoro) Tick() (done bool, focusDone bool) {
	if !p.active {
		return false, false
	}
	if p.remaining > 0 {
		p.remaining--
	}
	if p.remaining > 0 {
		return false, false
	}
	p.active = false
	return true, p.mode == ModeFocus
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
