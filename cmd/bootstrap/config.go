package bootstrap

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewSalonLocation,
	),
)

// NewSalonLocation is the zone booking labels and calendar days are read in.
func NewSalonLocation(cfg config.Config) *time.Location {
	return cfg.Salon.Location()
}
