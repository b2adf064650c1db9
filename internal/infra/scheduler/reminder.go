package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const reminderRunTimeout = 5 * time.Minute

// ReminderScheduler runs the daily visit reminders on a cron spec in the salon's zone.
type ReminderScheduler struct {
	cron      *cron.Cron
	reminders commands.ReminderCommands
	spec      string
	logger    *slog.Logger
}

func NewReminderScheduler(reminders commands.ReminderCommands, spec string, loc *time.Location, logger *slog.Logger) *ReminderScheduler {
	return &ReminderScheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		reminders: reminders,
		spec:      spec,
		logger:    logger,
	}
}

func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", "spec", s.spec)
	return nil
}

// Stop waits for a running job to finish or for ctx to end.
func (s *ReminderScheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.logger.Info("reminder scheduler stopped")
}

func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), reminderRunTimeout)
	defer cancel()

	sent, err := s.reminders.SendDailyReminders(ctx)
	if err != nil {
		s.logger.Error("daily reminders failed", "error", err.Error())
		return
	}
	s.logger.Info("daily reminders sent", "count", sent)
}
