package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/scheduler"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewReminderScheduler,
	),
	fx.Invoke(func(*scheduler.ReminderScheduler) {}),
)

func NewReminderScheduler(lc fx.Lifecycle, cfg config.Config, reminders commands.ReminderCommands, loc *time.Location, logger *slog.Logger) *scheduler.ReminderScheduler {
	s := scheduler.NewReminderScheduler(reminders, cfg.Salon.ReminderCron, loc, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})

	return s
}
