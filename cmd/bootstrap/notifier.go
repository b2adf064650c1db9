package bootstrap

import (
	"log/slog"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra/notify"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config, logger *slog.Logger) commands.Notifier {
	if !cfg.Twilio.Enabled {
		logger.Info("twilio disabled, notifications go to the log")
		return notify.NewLogNotifier()
	}
	return notify.NewTwilioNotifier(cfg.Twilio)
}
