package ledger

import (
	"math/rand"
	"testing"
	"time"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestCompleteAwardsPointsAndXP(t *testing.T) {
	l := New()
	m := l.Missions[0]

	res := Complete(l, m, "2026-09-01")
	if !res.Applied {
		t.Fatalf("expected completion to apply")
	}
	if l.Points != m.Points {
		t.Fatalf("points=%d, want %d", l.Points, m.Points)
	}
	if l.XP != MissionXP {
		t.Fatalf("xp=%d, want %d", l.XP, MissionXP)
	}
	if len(l.Logs) != 1 {
		t.Fatalf("logs=%d, want 1", len(l.Logs))
	}
	log := l.Logs[0]
	if log.Status != StatusCompleted || log.MissionID != m.ID || log.PointsChange != m.Points {
		t.Fatalf("unexpected log entry: %+v", log)
	}
	if res.Toast.Points != m.Points || res.Toast.Label != m.Label {
		t.Fatalf("unexpected toast: %+v", res.Toast)
	}
}

func TestCompleteIsIdempotentPerDay(t *testing.T) {
	l := New()
	m := l.Missions[0]

	Complete(l, m, "2026-09-01")
	snapshot := *l
	snapLogs := len(l.Logs)

	res := Complete(l, m, "2026-09-01")
	if res.Applied {
		t.Fatalf("second completion should be a no-op")
	}
	if l.Points != snapshot.Points || l.XP != snapshot.XP || len(l.Logs) != snapLogs {
		t.Fatalf("ledger changed on repeated completion")
	}

	// A new day allows the mission again.
	res = Complete(l, m, "2026-09-02")
	if !res.Applied {
		t.Fatalf("expected completion to apply on a new day")
	}
}

func TestFailAfterCompleteSameDayIsNoOp(t *testing.T) {
	l := New()
	m := l.Missions[0]
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	Complete(l, m, "2026-09-01")
	res := Fail(l, m, "2026-09-01", now, testRand())
	if res.Applied {
		t.Fatalf("fail after complete on the same day should be a no-op")
	}
	if l.Strikes != 0 {
		t.Fatalf("strikes=%d, want 0", l.Strikes)
	}
}

func TestFailHardcoreDeductsAndStrikes(t *testing.T) {
	l := New()
	l.Points = 60
	m := l.Missions[0]
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	res := Fail(l, m, "2026-09-01", now, testRand())
	if !res.Applied {
		t.Fatalf("expected fail to apply")
	}
	if res.Penalty != HardcorePenalty {
		t.Fatalf("penalty=%d, want %d", res.Penalty, HardcorePenalty)
	}
	if l.Points != 10 {
		t.Fatalf("points=%d, want 10", l.Points)
	}
	if l.Strikes != 1 {
		t.Fatalf("strikes=%d, want 1", l.Strikes)
	}
	if res.RealityCheck == "" {
		t.Fatalf("expected a reality check message")
	}
	if l.Logs[0].PointsChange != -HardcorePenalty {
		t.Fatalf("log pointsChange=%d, want %d", l.Logs[0].PointsChange, -HardcorePenalty)
	}
}

func TestFailNormalModeHasNoPenalty(t *testing.T) {
	l := New()
	l.HardcoreMode = false
	l.Points = 40
	m := l.Missions[0]
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	res := Fail(l, m, "2026-09-01", now, testRand())
	if res.Penalty != 0 {
		t.Fatalf("penalty=%d, want 0", res.Penalty)
	}
	if l.Points != 40 {
		t.Fatalf("points=%d, want 40", l.Points)
	}
	if l.Strikes != 0 {
		t.Fatalf("strikes=%d, want 0", l.Strikes)
	}
}

func TestFailClampsPointsAtZeroIncrementally(t *testing.T) {
	l := New()
	l.Points = 30
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// First fail drops 30 -> 0 (clamped from -20), second stays at 0.
	// If clamping only applied to the final sum, completing a mission in
	// between would expose the difference.
	Fail(l, l.Missions[0], "2026-09-01", now, testRand())
	if l.Points != 0 {
		t.Fatalf("points=%d, want 0 after clamped fail", l.Points)
	}

	Complete(l, l.Missions[1], "2026-09-01")
	wantPoints := l.Missions[1].Points
	if l.Points != wantPoints {
		t.Fatalf("points=%d, want %d (clamp must not carry debt)", l.Points, wantPoints)
	}
}

func TestThirdStrikeFiresProtocolReset(t *testing.T) {
	l := New()
	l.Points = 500
	l.XP = 250
	l.Strikes = 2
	Complete(l, l.Missions[3], "2026-08-31")
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	res := Fail(l, l.Missions[0], "2026-09-01", now, testRand())
	if !res.ProtocolReset {
		t.Fatalf("expected protocol reset on third strike")
	}
	if l.Points != 0 || l.XP != 0 || l.Strikes != 0 {
		t.Fatalf("reset left points=%d xp=%d strikes=%d", l.Points, l.XP, l.Strikes)
	}
	if len(l.Logs) != 0 {
		t.Fatalf("reset should clear all logs, got %d", len(l.Logs))
	}
	if l.LastResetDate == nil {
		t.Fatalf("expected lastResetDate to be set")
	}
	if got := *l.LastResetDate; got != now.Format(time.RFC3339) {
		t.Fatalf("lastResetDate=%q, want %q", got, now.Format(time.RFC3339))
	}
}

func TestPointsEqualSumOfLogChanges(t *testing.T) {
	l := New()
	l.HardcoreMode = false
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	days := []string{"2026-08-30", "2026-08-31", "2026-09-01"}
	for _, d := range days {
		Complete(l, l.Missions[0], d)
		Complete(l, l.Missions[1], d)
		Fail(l, l.Missions[2], d, now, testRand())
	}

	sum := 0
	for _, log := range l.Logs {
		sum += log.PointsChange
	}
	if l.Points != sum {
		t.Fatalf("points=%d, want sum of log changes %d", l.Points, sum)
	}
}

func TestRealityCheckIsUniformOverPool(t *testing.T) {
	seen := map[string]bool{}
	rng := testRand()
	for i := 0; i < 1000; i++ {
		seen[RealityChecks[rng.Intn(len(RealityChecks))]] = true
	}
	if len(seen) != len(RealityChecks) {
		t.Fatalf("saw %d of %d messages", len(seen), len(RealityChecks))
	}
}
