package components

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/jwt"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		NewWizardCommands,
		NewBookingCommands,
		NewReminderCommands,
		commands.NewReviewCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewClientPanelQueries,
		queries.NewMasterPanelQueries,
		queries.NewAdminQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, notifier commands.Notifier, clk clock.Clock, cfg config.Config) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, notifier, clk, cfg.Salon.ResetTokenTTL)
}

func NewWizardCommands(
	store commands.WizardStore,
	catalog queries.CatalogQueries,
	promos commands.PromotionFinder,
	blacklist commands.BlacklistChecker,
	bookings commands.BookingWriter,
	clients commands.ClientWriter,
	notifier commands.Notifier,
	clk clock.Clock,
	loc *time.Location,
	cfg config.Config,
) commands.WizardCommands {
	return commands.NewWizardCommands(store, catalog, promos, blacklist, bookings, clients, notifier, clk, loc, cfg.Salon.Name)
}

// NewBookingCommands resolves masters through the master panel, so a status change
// accepts the same accounts the panel shows bookings to.
func NewBookingCommands(uow shared.UnitOfWork, masters queries.MasterPanelQueries, notifier commands.Notifier, loc *time.Location) commands.BookingCommands {
	return commands.NewBookingCommands(uow, masters, notifier, loc)
}

func NewReminderCommands(source commands.ReminderSource, notifier commands.Notifier, clk clock.Clock, loc *time.Location, cfg config.Config) commands.ReminderCommands {
	return commands.NewReminderCommands(source, notifier, clk, loc, cfg.Salon.Name)
}
