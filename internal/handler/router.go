package handler

import (
	"log/slog"
	"net/http"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/api"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups every API handler mounted by the router.
type Handlers struct {
	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Booking *api.BookingHandler
	Panel   *api.PanelHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// request logging sits outside recovery so a panic is still logged with its 500
	engine.Use(middleware.RequestLogging(logger))
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/config", Handler: h.Catalog.Config},
			{Method: http.MethodGet, Path: "/services", Handler: h.Catalog.Services},
			{Method: http.MethodGet, Path: "/services/:id", Handler: h.Catalog.Service},
			{Method: http.MethodGet, Path: "/masters", Handler: h.Catalog.Masters},
			{Method: http.MethodGet, Path: "/categories", Handler: h.Catalog.Categories},
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Catalog.Reviews},
			{Method: http.MethodGet, Path: "/promotions", Handler: h.Catalog.Promotions},
			{Method: http.MethodGet, Path: "/gallery", Handler: h.Catalog.Gallery},
			{Method: http.MethodGet, Path: "/slots", Handler: h.Catalog.Slots},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/password-reset", Handler: h.Auth.RequestPasswordReset},
				{Method: http.MethodPost, Path: "/password-reset/confirm", Handler: h.Auth.ConfirmPasswordReset},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// only the submit links the booking to a signed-in account
		sessions := apiGroup.Group("/booking/sessions")
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Start},
				{Method: http.MethodGet, Path: "/:session_id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:session_id/service", Handler: h.Booking.SelectService},
				{Method: http.MethodPut, Path: "/:session_id/master", Handler: h.Booking.SelectMaster},
				{Method: http.MethodPut, Path: "/:session_id/date", Handler: h.Booking.SelectDate},
				{Method: http.MethodPut, Path: "/:session_id/time", Handler: h.Booking.SelectTime},
				{Method: http.MethodPut, Path: "/:session_id/contact", Handler: h.Booking.SetContact},
				{Method: http.MethodPost, Path: "/:session_id/next", Handler: h.Booking.Next},
				{Method: http.MethodPost, Path: "/:session_id/back", Handler: h.Booking.Back},
				{Method: http.MethodPost, Path: "/:session_id/promo", Handler: h.Booking.ApplyPromo},
				{Method: http.MethodDelete, Path: "/:session_id/promo", Handler: h.Booking.RemovePromo},
				{Method: http.MethodPost, Path: "/:session_id/submit", Handler: h.Booking.Submit, Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodPost, Path: "/:session_id/reset", Handler: h.Booking.Reset},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Panel.ClientDashboard},
				{Method: http.MethodPost, Path: "/bookings/:id/status", Handler: h.Panel.ClientChangeStatus},
				{Method: http.MethodPost, Path: "/reviews", Handler: h.Panel.LeaveReview},
			})
		}

		master := apiGroup.Group("/master")
		master.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleMaster))
		{
			addRoutes(master, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Panel.MasterDashboard},
				{Method: http.MethodPost, Path: "/bookings/:id/status", Handler: h.Panel.MasterChangeStatus},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: h.Admin.Summary},

				{Method: http.MethodGet, Path: "/bookings", Handler: h.Admin.Bookings},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Admin.Booking},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Admin.UpdateBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/status", Handler: h.Admin.ChangeBookingStatus},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Admin.DeleteBooking},

				{Method: http.MethodGet, Path: "/services", Handler: h.Admin.Services},
				{Method: http.MethodPost, Path: "/services", Handler: h.Admin.CreateService},
				{Method: http.MethodPut, Path: "/services/:id", Handler: h.Admin.UpdateService},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: h.Admin.DeleteService},

				{Method: http.MethodGet, Path: "/masters", Handler: h.Admin.Masters},
				{Method: http.MethodPost, Path: "/masters", Handler: h.Admin.CreateMaster},
				{Method: http.MethodPut, Path: "/masters/:id", Handler: h.Admin.UpdateMaster},
				{Method: http.MethodDelete, Path: "/masters/:id", Handler: h.Admin.DeleteMaster},
				{Method: http.MethodPut, Path: "/masters/:id/user", Handler: h.Admin.LinkMasterUser},

				{Method: http.MethodGet, Path: "/categories", Handler: h.Admin.Categories},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Admin.CreateCategory},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Admin.UpdateCategory},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Admin.DeleteCategory},

				{Method: http.MethodGet, Path: "/gallery", Handler: h.Admin.Gallery},
				{Method: http.MethodPost, Path: "/gallery", Handler: h.Admin.CreateGalleryItem},
				{Method: http.MethodPut, Path: "/gallery/:id", Handler: h.Admin.UpdateGalleryItem},
				{Method: http.MethodDelete, Path: "/gallery/:id", Handler: h.Admin.DeleteGalleryItem},

				{Method: http.MethodGet, Path: "/promotions", Handler: h.Admin.Promotions},
				{Method: http.MethodPost, Path: "/promotions", Handler: h.Admin.CreatePromotion},
				{Method: http.MethodPut, Path: "/promotions/:id", Handler: h.Admin.UpdatePromotion},
				{Method: http.MethodDelete, Path: "/promotions/:id", Handler: h.Admin.DeletePromotion},

				{Method: http.MethodGet, Path: "/clients", Handler: h.Admin.Clients},
				{Method: http.MethodPost, Path: "/clients", Handler: h.Admin.CreateClient},
				{Method: http.MethodPut, Path: "/clients/:id", Handler: h.Admin.UpdateClient},
				{Method: http.MethodDelete, Path: "/clients/:id", Handler: h.Admin.DeleteClient},

				{Method: http.MethodGet, Path: "/blacklist", Handler: h.Admin.Blacklist},
				{Method: http.MethodPost, Path: "/blacklist", Handler: h.Admin.AddToBlacklist},
				{Method: http.MethodDelete, Path: "/blacklist/:id", Handler: h.Admin.RemoveFromBlacklist},

				{Method: http.MethodGet, Path: "/reviews", Handler: h.Admin.Reviews},
				{Method: http.MethodPost, Path: "/reviews", Handler: h.Admin.CreateReview},
				{Method: http.MethodPut, Path: "/reviews/:id/publish", Handler: h.Admin.PublishReview},
				{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Admin.DeleteReview},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
