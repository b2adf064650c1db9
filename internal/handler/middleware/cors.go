package middleware

import (
	"log/slog"
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the site and the admin front end call the API with the access cookie.
// "*" among the origins opens the API to any site; browsers drop credentials for a wildcard,
// so the cookie is then not allowed either.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append([]string{requestIDHeader}, cfg.AllowHeaders...),
		ExposeHeaders:    append([]string{requestIDHeader}, cfg.ExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	for _, origin := range cfg.AllowOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		switch origin {
		case "":
		case "*":
			corsCfg.AllowAllOrigins = true
		default:
			corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, origin)
		}
	}
	if corsCfg.AllowAllOrigins {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
	}

	slog.Info("CORS configured",
		"origins", corsCfg.AllowOrigins,
		"any_origin", corsCfg.AllowAllOrigins,
		"credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
