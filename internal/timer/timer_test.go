package timer

import (
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
)

func TestPomodoroCountsDownAndCompletes(t *testing.T) {
	p := NewPomodoro(Durations{Focus: 3 * time.Second, Short: 2 * time.Second, Long: 4 * time.Second})

	if p.Remaining() != 3 {
		t.Fatalf("remaining=%d, want 3", p.Remaining())
	}

	// Not active: ticks do nothing.
	if done, _ := p.Tick(); done {
		t.Fatalf("inactive pomodoro must not tick")
	}
	if p.Remaining() != 3 {
		t.Fatalf("remaining=%d, want 3", p.Remaining())
	}

	p.Toggle()
	for i := 0; i < 2; i++ {
		if done, _ := p.Tick(); done {
			t.Fatalf("completed too early at tick %d", i)
		}
	}
	done, focus := p.Tick()
	if !done || !focus {
		t.Fatalf("done=%v focus=%v, want true/true", done, focus)
	}
	if p.Active() {
		t.Fatalf("completion must stop the countdown")
	}
}

func TestPomodoroBreakCompletionIsNotFocus(t *testing.T) {
	p := NewPomodoro(Durations{Focus: 3 * time.Second, Short: 1 * time.Second, Long: 4 * time.Second})
	p.SetMode(ModeShortBreak)
	p.Toggle()

	done, focus := p.Tick()
	if !done {
		t.Fatalf("expected break completion")
	}
	if focus {
		t.Fatalf("break completion must not credit the focus bonus")
	}
}

func TestPomodoroSetModeResets(t *testing.T) {
	p := NewPomodoro(Durations{Focus: 10 * time.Second, Short: 5 * time.Second, Long: 15 * time.Second})
	p.Toggle()
	p.Tick()
	p.Tick()

	p.SetMode(ModeLongBreak)
	if p.Active() {
		t.Fatalf("mode switch must stop the countdown")
	}
	if p.Remaining() != 15 {
		t.Fatalf("remaining=%d, want 15", p.Remaining())
	}

	p.SetMode(ModeFocus)
	if p.Remaining() != 10 {
		t.Fatalf("remaining=%d, want 10", p.Remaining())
	}
}

func TestStopwatchAccumulates(t *testing.T) {
	sw := NewStopwatch()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	sw.clock = func() time.Time { return now }

	sw.Start()
	now = now.Add(1500 * time.Millisecond)
	if got := sw.Elapsed(); got != 1500*time.Millisecond {
		t.Fatalf("elapsed=%v, want 1.5s", got)
	}

	sw.Stop()
	now = now.Add(10 * time.Second)
	if got := sw.Elapsed(); got != 1500*time.Millisecond {
		t.Fatalf("elapsed=%v, want 1.5s while stopped", got)
	}

	sw.Start()
	now = now.Add(500 * time.Millisecond)
	if got := sw.Elapsed(); got != 2*time.Second {
		t.Fatalf("elapsed=%v, want 2s after resume", got)
	}

	sw.Reset()
	if got := sw.Elapsed(); got != 0 {
		t.Fatalf("elapsed=%v, want 0 after reset", got)
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatClock(25 * 60); got != "25:00" {
		t.Fatalf("FormatClock=%q, want 25:00", got)
	}
	if got := FormatClock(59); got != "00:59" {
		t.Fatalf("FormatClock=%q, want 00:59", got)
	}
	if got := FormatElapsed(83*time.Second + 450*time.Millisecond); got != "01:23.45" {
		t.Fatalf("FormatElapsed=%q, want 01:23.45", got)
	}
	if got := FormatCountdown(2*time.Hour + 3*time.Minute + 4*time.Second); got != "02:03:04" {
		t.Fatalf("FormatCountdown=%q, want 02:03:04", got)
	}
}

func TestUntilMidnight(t *testing.T) {
	now := time.Date(2026, 9, 1, 23, 59, 30, 0, time.UTC)
	if got := UntilMidnight(now); got != 30*time.Second {
		t.Fatalf("until midnight=%v, want 30s", got)
	}

	noon := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	if got := UntilMidnight(noon); got != 12*time.Hour {
		t.Fatalf("until midnight=%v, want 12h", got)
	}
}

func TestAlarmCheckFiresActiveMatches(t *testing.T) {
	alarms := []ledger.Alarm{
		{ID: "a1", Time: "06:00", Label: "Acordar", Active: true},
		{ID: "a2", Time: "06:00", Label: "Desligado", Active: false},
		{ID: "a3", Time: "07:30", Label: "Treino", Active: true},
	}
	var fired []string

	s := NewAlarmScheduler(
		func() []ledger.Alarm { return alarms },
		func(a ledger.Alarm) { fired = append(fired, a.ID) },
		zap.NewNop(),
	)
	s.clock = func() time.Time {
		return time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	}

	s.check()
	if len(fired) != 1 || fired[0] != "a1" {
		t.Fatalf("fired=%v, want [a1]", fired)
	}
}

func TestAlarmSchedulerStartStopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewAlarmScheduler(
		func() []ledger.Alarm { return nil },
		func(ledger.Alarm) {},
		zap.NewNop(),
	)
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Stop()
}
