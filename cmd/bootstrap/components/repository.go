package components

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/repository"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra/uow"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"go.uber.org/fx"
)

// RepositoryModule provides the write side: the unit of work and the writers
// used outside of a transaction.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingWriter)),
		),
		fx.Annotate(
			repository.NewClientRepository,
			fx.As(new(commands.ClientWriter)),
		),
	),
)
