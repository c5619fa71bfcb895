package ledger

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"
)

// memStore keeps the snapshot in memory and counts writes, standing in for
// the SQLite-backed store.
type memStore struct {
	ledger *Ledger
	saves  int
}

func (m *memStore) Load(ctx context.Context) (*Ledger, error) {
	if m.ledger == nil {
		return New(), nil
	}
	return m.ledger, nil
}

func (m *memStore) Save(ctx context.Context, l *Ledger) error {
	m.ledger = l
	m.saves++
	return nil
}

func newTestService(t *testing.T, store *memStore) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), store, zap.NewNop())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	svc.rng = rand.New(rand.NewSource(1))
	svc.now = func() time.Time {
		return time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestServicePersistsAfterEveryMutation(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.CompleteMission(ctx, "wakeup"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if store.saves != 1 {
		t.Fatalf("saves=%d, want 1", store.saves)
	}
	if store.ledger.Points != 50 {
		t.Fatalf("persisted points=%d, want 50", store.ledger.Points)
	}

	if _, err := svc.FailMission(ctx, "water"); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if store.saves != 2 {
		t.Fatalf("saves=%d, want 2", store.saves)
	}
}

func TestServiceRepeatedResolutionDoesNotSave(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.CompleteMission(ctx, "wakeup"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	res, err := svc.CompleteMission(ctx, "wakeup")
	if err != nil {
		t.Fatalf("repeat complete: %v", err)
	}
	if res.Applied {
		t.Fatalf("repeat completion should not apply")
	}
	if store.saves != 1 {
		t.Fatalf("saves=%d, want 1 (no-op must not persist)", store.saves)
	}
}

func TestServiceFindMissionByLabelPrefix(t *testing.T) {
	svc := newTestService(t, &memStore{})

	m, err := svc.FindMission("treino")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if m.ID != "workout" {
		t.Fatalf("found %q, want workout", m.ID)
	}

	if _, err := svc.FindMission("nope"); err != ErrMissionNotFound {
		t.Fatalf("err=%v, want ErrMissionNotFound", err)
	}
}

func TestServiceStartupInactivitySweep(t *testing.T) {
	l := New()
	l.Points = 100
	l.Logs = []DailyLog{completedLog("2026-08-29")}
	store := &memStore{ledger: l}
	svc := newTestService(t, store)
	ctx := context.Background()

	fired, err := svc.RunInactivityCheck(ctx)
	if err != nil {
		t.Fatalf("inactivity check: %v", err)
	}
	if !fired {
		t.Fatalf("expected sweep to fire")
	}
	if svc.Ledger().Points != 0 {
		t.Fatalf("points=%d, want 0", svc.Ledger().Points)
	}
	if !svc.Punished() {
		t.Fatalf("expected punished flag")
	}
	if store.saves != 1 {
		t.Fatalf("saves=%d, want 1", store.saves)
	}

	// Same session, second run is a no-op.
	fired, err = svc.RunInactivityCheck(ctx)
	if err != nil {
		t.Fatalf("inactivity check: %v", err)
	}
	if fired {
		t.Fatalf("sweep must not fire twice in a session")
	}
}

func TestServiceGoalLifecycle(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	ctx := context.Background()

	g, err := svc.AddGoal(ctx, "Correr 10km")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if g.RewardPoints != DefaultGoalReward {
		t.Fatalf("reward=%d, want %d", g.RewardPoints, DefaultGoalReward)
	}

	res, err := svc.CompleteGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("complete goal: %v", err)
	}
	if !res.Applied {
		t.Fatalf("expected goal payout")
	}
	if svc.Ledger().Points != DefaultGoalReward {
		t.Fatalf("points=%d, want %d", svc.Ledger().Points, DefaultGoalReward)
	}
	if svc.Ledger().XP != GoalXP {
		t.Fatalf("xp=%d, want %d", svc.Ledger().XP, GoalXP)
	}

	// A goal pays out exactly once.
	res, err = svc.CompleteGoal(ctx, g.ID)
	if err != nil {
		t.Fatalf("repeat complete goal: %v", err)
	}
	if res.Applied {
		t.Fatalf("goal must not pay out twice")
	}

	if err := svc.DeleteGoal(ctx, g.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if len(svc.Ledger().Goals) != 0 {
		t.Fatalf("goals=%d, want 0", len(svc.Ledger().Goals))
	}
}

func TestServiceRedeemReward(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.RedeemReward(ctx, "movie_night"); err == nil {
		t.Fatalf("expected insufficient points error")
	} else if _, ok := err.(InsufficientPointsError); !ok {
		t.Fatalf("err=%T, want InsufficientPointsError", err)
	}

	svc.Ledger().Points = 400
	r, err := svc.RedeemReward(ctx, "movie_night")
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if svc.Ledger().Points != 400-r.Cost {
		t.Fatalf("points=%d, want %d", svc.Ledger().Points, 400-r.Cost)
	}
	last := svc.Ledger().Logs[len(svc.Ledger().Logs)-1]
	if last.PointsChange != -r.Cost {
		t.Fatalf("log pointsChange=%d, want %d", last.PointsChange, -r.Cost)
	}
}

func TestServiceFocusBonus(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)

	toast, err := svc.CreditFocusBonus(context.Background())
	if err != nil {
		t.Fatalf("focus bonus: %v", err)
	}
	if svc.Ledger().XP != FocusXP || svc.Ledger().Points != FocusPoints {
		t.Fatalf("xp=%d points=%d, want %d/%d", svc.Ledger().XP, svc.Ledger().Points, FocusXP, FocusPoints)
	}
	if toast.Points != FocusPoints {
		t.Fatalf("toast points=%d, want %d", toast.Points, FocusPoints)
	}
}

func TestServiceAlarms(t *testing.T) {
	store := &memStore{}
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.AddAlarm(ctx, "25:99", "bad"); err == nil {
		t.Fatalf("expected invalid time error")
	}

	a, err := svc.AddAlarm(ctx, "06:00", "Acordar")
	if err != nil {
		t.Fatalf("add alarm: %v", err)
	}
	if !a.Active {
		t.Fatalf("new alarms start active")
	}
	if err := svc.RemoveAlarm(ctx, a.ID); err != nil {
		t.Fatalf("remove alarm: %v", err)
	}
	if len(svc.Ledger().Alarms) != 0 {
		t.Fatalf("alarms=%d, want 0", len(svc.Ledger().Alarms))
	}
}
