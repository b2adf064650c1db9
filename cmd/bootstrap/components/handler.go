package components

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/handler"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/api"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewPanelHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(
		middleware.RegisterValidators,
		handler.NewRouter,
	),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	booking *api.BookingHandler,
	panel *api.PanelHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Catalog: catalog,
		Booking: booking,
		Panel:   panel,
		Admin:   admin,
	}
}
