package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store persists the whole ledger aggregate. Load falls back to a fresh
// default ledger when the snapshot is absent or unreadable; it only errors
// on infrastructure failures.
type Store interface {
	Load(ctx context.Context) (*Ledger, error)
	Save(ctx context.Context, l *Ledger) error
}

// Service owns the in-memory ledger and persists it synchronously after
// every mutation. All mutation goes through Service methods; presentation
// code never touches fields directly.
type Service struct {
	store Store
	log   *zap.Logger

	ledger *Ledger
	rng    *rand.Rand
	now    func() time.Time

	// punished is set when the startup inactivity sweep fired this session.
	punished bool
}

// NewService loads the snapshot into memory.
func NewService(ctx context.Context, store Store, log *zap.Logger) (*Service, error) {
	s := &Service{
		store: store,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}

	l, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	s.ledger = l
	return s, nil
}

// RunInactivityCheck performs the once-per-day startup sweep and persists
// the punishment if it fired. Callers run it exactly once per session,
// right after the service is constructed.
func (s *Service) RunInactivityCheck(ctx context.Context) (bool, error) {
	if s.punished || !CheckInactivity(s.ledger, s.now()) {
		return false, nil
	}
	s.punished = true
	s.log.Info("inactivity punishment applied")
	if err := s.save(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Punished reports whether the inactivity sweep confiscated points this
// session.
func (s *Service) Punished() bool { return s.punished }

// Ledger returns the current aggregate for read-only use.
func (s *Service) Ledger() *Ledger { return s.ledger }

// Today returns the current calendar day string.
func (s *Service) Today() string { return s.now().Format(DateFormat) }

// Streak returns the current consecutive-day streak.
func (s *Service) Streak() int {
	return Streak(s.ledger.Logs, s.now(), s.ledger.LastResetDate)
}

// ErrMissionNotFound is returned when no mission matches an id or label.
var ErrMissionNotFound = errors.New("mission not found")

// FindMission resolves a mission by exact id or case-insensitive label prefix.
func (s *Service) FindMission(ref string) (*Mission, error) {
	if m := s.ledger.MissionByID(ref); m != nil {
		return m, nil
	}
	ref = strings.ToLower(strings.TrimSpace(ref))
	for i := range s.ledger.Missions {
		if strings.HasPrefix(strings.ToLower(s.ledger.Missions[i].Label), ref) {
			return &s.ledger.Missions[i], nil
		}
	}
	return nil, ErrMissionNotFound
}

func (s *Service) save(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ledger); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	return nil
}

// CompleteMission resolves a mission as done for today.
func (s *Service) CompleteMission(ctx context.Context, ref string) (*CompleteResult, error) {
	m, err := s.FindMission(ref)
	if err != nil {
		return nil, err
	}

	res := Complete(s.ledger, *m, s.Today())
	if !res.Applied {
		s.log.Debug("mission already resolved today", zap.String("mission", m.ID))
		return &res, nil
	}

	s.log.Info("mission completed",
		zap.String("mission", m.ID),
		zap.Int("points", m.Points),
		zap.Int("balance", s.ledger.Points))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

// FailMission resolves a mission as failed for today.
func (s *Service) FailMission(ctx context.Context, ref string) (*FailResult, error) {
	m, err := s.FindMission(ref)
	if err != nil {
		return nil, err
	}

	res := Fail(s.ledger, *m, s.Today(), s.now(), s.rng)
	if !res.Applied {
		s.log.Debug("mission already resolved today", zap.String("mission", m.ID))
		return &res, nil
	}

	if res.ProtocolReset {
		s.log.Warn("hardcore protocol reset fired", zap.String("mission", m.ID))
	} else {
		s.log.Info("mission failed",
			zap.String("mission", m.ID),
			zap.Int("penalty", res.Penalty),
			zap.Int("strikes", res.Strikes))
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

// AddMission creates a custom mission.
func (s *Service) AddMission(ctx context.Context, label string, points int) (*Mission, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.New("label is required")
	}
	if points < 0 {
		return nil, errors.New("points must be >= 0")
	}

	m := Mission{
		ID:       "custom_" + uuid.NewString(),
		Label:    label,
		Points:   points,
		IsCustom: true,
	}
	s.ledger.Missions = append(s.ledger.Missions, m)

	s.log.Info("mission added", zap.String("mission", m.ID), zap.Int("points", points))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &m, nil
}

// EnsureMissions merges extra seed missions (from the config overlay) into
// the ledger, matching by label so repeated startups stay idempotent.
func (s *Service) EnsureMissions(ctx context.Context, seeds []Mission) error {
	have := map[string]bool{}
	for i := range s.ledger.Missions {
		have[strings.ToLower(s.ledger.Missions[i].Label)] = true
	}

	added := 0
	for _, seed := range seeds {
		label := strings.TrimSpace(seed.Label)
		if label == "" || have[strings.ToLower(label)] {
			continue
		}
		s.ledger.Missions = append(s.ledger.Missions, Mission{
			ID:     "seed_" + uuid.NewString(),
			Label:  label,
			Points: seed.Points,
		})
		have[strings.ToLower(label)] = true
		added++
	}
	if added == 0 {
		return nil
	}
	s.log.Info("seed missions merged", zap.Int("added", added))
	return s.save(ctx)
}

// SuggestMission pulls a uniform-random entry from the suggestion pool.
func (s *Service) SuggestMission() Suggestion {
	return SuggestedMissions[s.rng.Intn(len(SuggestedMissions))]
}

// RemoveMission deletes a mission. Its log history stays untouched.
func (s *Service) RemoveMission(ctx context.Context, ref string) error {
	m, err := s.FindMission(ref)
	if err != nil {
		return err
	}
	id := m.ID
	for i := range s.ledger.Missions {
		if s.ledger.Missions[i].ID == id {
			s.ledger.Missions = append(s.ledger.Missions[:i], s.ledger.Missions[i+1:]...)
			break
		}
	}
	s.log.Info("mission removed", zap.String("mission", id))
	return s.save(ctx)
}

// AddGoal creates a goal with the standard reward.
func (s *Service) AddGoal(ctx context.Context, label string) (*Goal, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, errors.New("label is required")
	}
	g := AddGoal(s.ledger, "goal_"+uuid.NewString(), label)
	s.log.Info("goal added", zap.String("goal", g.ID))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &g, nil
}

// CompleteGoal pays out a goal once.
func (s *Service) CompleteGoal(ctx context.Context, id string) (*GoalResult, error) {
	res := CompleteGoal(s.ledger, id)
	if !res.Applied {
		return &res, nil
	}
	s.log.Info("goal completed", zap.String("goal", id), zap.Int("reward", res.Goal.RewardPoints))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteGoal removes a goal.
func (s *Service) DeleteGoal(ctx context.Context, id string) error {
	if !DeleteGoal(s.ledger, id) {
		return fmt.Errorf("goal %s not found", id)
	}
	return s.save(ctx)
}

// RedeemReward buys a shop catalog item.
func (s *Service) RedeemReward(ctx context.Context, id string) (*Reward, error) {
	r := RewardByID(id)
	if r == nil {
		return nil, fmt.Errorf("reward %s not found", id)
	}
	if err := Redeem(s.ledger, *r, s.now()); err != nil {
		return nil, err
	}
	s.log.Info("reward redeemed", zap.String("reward", r.ID), zap.Int("cost", r.Cost))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// ToggleHardcore flips hardcore mode and returns the new state.
func (s *Service) ToggleHardcore(ctx context.Context) (bool, error) {
	s.ledger.HardcoreMode = !s.ledger.HardcoreMode
	s.log.Info("hardcore mode toggled", zap.Bool("hardcore", s.ledger.HardcoreMode))
	if err := s.save(ctx); err != nil {
		return false, err
	}
	return s.ledger.HardcoreMode, nil
}

// UpdateProfile replaces the coach profile.
func (s *Service) UpdateProfile(ctx context.Context, p Profile) error {
	if p.Tone == "" {
		p.Tone = DefaultTone
	}
	s.ledger.Profile = p
	return s.save(ctx)
}

// CreditFocusBonus applies the pomodoro focus-completion bonus.
func (s *Service) CreditFocusBonus(ctx context.Context) (*PointsToast, error) {
	s.ledger.XP += FocusXP
	s.ledger.Points += FocusPoints
	s.log.Info("focus bonus credited", zap.Int("xp", FocusXP), zap.Int("points", FocusPoints))
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &PointsToast{Label: "POMODORO CONCLUÍDO", Points: FocusPoints}, nil
}

// AddAlarm registers a HH:MM wall-clock alarm.
func (s *Service) AddAlarm(ctx context.Context, at, label string) (*Alarm, error) {
	if _, err := time.Parse("15:04", at); err != nil {
		return nil, fmt.Errorf("invalid alarm time %q: want HH:MM", at)
	}
	a := Alarm{ID: "alarm_" + uuid.NewString(), Time: at, Label: label, Active: true}
	s.ledger.Alarms = append(s.ledger.Alarms, a)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &a, nil
}

// RemoveAlarm deletes an alarm by id.
func (s *Service) RemoveAlarm(ctx context.Context, id string) error {
	for i := range s.ledger.Alarms {
		if s.ledger.Alarms[i].ID == id {
			s.ledger.Alarms = append(s.ledger.Alarms[:i], s.ledger.Alarms[i+1:]...)
			return s.save(ctx)
		}
	}
	return fmt.Errorf("alarm %s not found", id)
}
