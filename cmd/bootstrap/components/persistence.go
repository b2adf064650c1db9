package components

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/cache"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/db"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/readstore"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Booking
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.ReminderSource)),
		),
		// Master
		fx.Annotate(
			readstore.NewMasterReadStore,
			fx.As(new(queries.MasterReadStore)),
		),
		// Admin tables
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
		// Promotion
		fx.Annotate(
			readstore.NewPromotionReadStore,
			fx.As(new(commands.PromotionFinder)),
		),
		// Blacklist
		fx.Annotate(
			readstore.NewBlacklistReadStore,
			fx.As(new(commands.BlacklistChecker)),
		),
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewCatalogStores,
		NewWizardStore,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

type CatalogStores struct {
	fx.Out

	Store queries.CatalogReadStore
	Cache commands.CatalogCache
}

// NewCatalogStores puts the redis cache in front of the catalog when redis is enabled.
func NewCatalogStores(dbtx db.DBTX, client *redis.Client, cfg config.Config) CatalogStores {
	store := readstore.NewCatalogReadStore(dbtx)
	if client == nil {
		return CatalogStores{Store: store, Cache: cache.NoopCatalogCache{}}
	}
	cached := cache.NewCachedCatalogReadStore(store, client, cfg.Redis.CatalogTTL)
	return CatalogStores{Store: cached, Cache: cached}
}

func NewWizardStore(client *redis.Client, cfg config.Config, clk clock.Clock) commands.WizardStore {
	if client == nil {
		return cache.NewMemoryWizardStore(cfg.Redis.WizardTTL, clk)
	}
	return cache.NewRedisWizardStore(client, cfg.Redis.WizardTTL)
}
