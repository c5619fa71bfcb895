package timer

import (
	"fmt"
	"time"
)

// Stopwatch is a free-running count-up timer. It keeps no goroutine and no
// persisted state; callers poll Elapsed on whatever cadence they render at
// (the CLI uses ~10ms).
type Stopwatch struct {
	running bool
	started time.Time
	acc     time.Duration
	clock   func() time.Time
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{clock: time.Now}
}

func (s *Stopwatch) Running() bool { return s.running }

// Start begins (or resumes) counting. Starting a running stopwatch is a no-op.
func (s *Stopwatch) Start() {
	if s.running {
		return
	}
	s.running = true
	s.started = s.clock()
}

// Stop pauses counting, keeping the accumulated time.
func (s *Stopwatch) Stop() {
	if !s.running {
		return
	}
	s.acc += s.clock().Sub(s.started)
	s.running = false
}

// Reset stops the stopwatch and zeroes it.
func (s *Stopwatch) Reset() {
	s.running = false
	s.acc = 0
}

// Elapsed returns the total accumulated running time.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.acc + s.clock().Sub(s.started)
	}
	return s.acc
}

// FormatElapsed renders a duration as MM:SS.cc with centisecond precision.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := d / (10 * time.Millisecond)
	cs := total % 100
	secs := (total / 100) % 60
	mins := total / 6000
	return fmt.Sprintf("%02d:%02d.%02d", mins, secs, cs)
}
