package timer

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/LuizDelio/Projeto-Disciplina/internal/ledger"
)

// AlarmScheduler checks the alarm list against the wall clock once per
// minute, at second zero, and invokes the fire callback for every active
// match. Alarms are read through the provider on every check so the
// scheduler never holds a stale copy of the ledger.
type AlarmScheduler struct {
	cron   *cron.Cron
	alarms func() []ledger.Alarm
	fire   func(ledger.Alarm)
	clock  func() time.Time
	log    *zap.Logger
}

func NewAlarmScheduler(alarms func() []ledger.Alarm, fire func(ledger.Alarm), log *zap.Logger) *AlarmScheduler {
	return &AlarmScheduler{
		cron:   cron.New(),
		alarms: alarms,
		fire:   fire,
		clock:  time.Now,
		log:    log,
	}
}

// Start begins the per-minute check, firing at second zero of every minute.
func (s *AlarmScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.check); err != nil {
		return fmt.Errorf("schedule alarm check: %w", err)
	}
	s.cron.Start()
	s.log.Debug("alarm scheduler started")
	return nil
}

// Stop tears down the tick source and waits for a running check to finish.
func (s *AlarmScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Debug("alarm scheduler stopped")
}

func (s *AlarmScheduler) check() {
	hm := s.clock().Format("15:04")
	for _, a := range s.alarms() {
		if a.Active && a.Time == hm {
			s.log.Info("alarm fired", zap.String("alarm", a.ID), zap.String("time", a.Time))
			s.fire(a)
		}
	}
}
