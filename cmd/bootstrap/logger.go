package bootstrap

import (
	"log/slog"

	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default used by the lower layers.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewSlogLogger(cfg.Log)
}
