//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/httperr"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/jwt"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogging(t *testing.T) {
	svc := jwt.NewService("salon-test-secret-key-32-bytes-long", time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	newRouter := func(buf *bytes.Buffer) *gin.Engine {
		r := gin.New()
		r.Use(middleware.RequestLogging(slog.New(slog.NewJSONHandler(buf, nil))))
		r.GET("/api/booking/sessions/:session_id", auth.OptionalAuth(), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		r.GET("/broken", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad label"), "Invalid date", nil)
		})
		return r
	}

	t.Run("caller request id is echoed and the signed-in user logged", func(t *testing.T) {
		var buf bytes.Buffer
		userID := uuid.New()
		token, err := svc.GenerateToken(userID, user.RoleClient, "anna@example.com")
		require.NoError(t, err)

		req := nethttptest.NewRequest(http.MethodGet, "/api/booking/sessions/abc", nil)
		req.Header.Set("X-Request-ID", "front-42")
		req.Header.Set("Authorization", "Bearer "+token)
		w := nethttptest.NewRecorder()
		newRouter(&buf).ServeHTTP(w, req)

		httptest.AssertHeaders(t, w, map[string]string{"X-Request-ID": "front-42"})
		entry := lastLogLine(t, &buf)
		assert.Equal(t, "front-42", entry["request_id"])
		assert.Equal(t, "/api/booking/sessions/:session_id", entry["route"])
		assert.Equal(t, "abc", entry["booking_session"])
		assert.Equal(t, userID.String(), entry["user_id"])
		assert.Equal(t, string(user.RoleClient), entry["role"])
		assert.EqualValues(t, http.StatusNoContent, entry["status"])
	})

	t.Run("unsafe request id is replaced", func(t *testing.T) {
		var buf bytes.Buffer
		req := nethttptest.NewRequest(http.MethodGet, "/api/booking/sessions/abc", nil)
		req.Header.Set("X-Request-ID", "evil\nline")
		w := nethttptest.NewRecorder()
		newRouter(&buf).ServeHTTP(w, req)

		id := w.Header().Get("X-Request-ID")
		assert.NotEmpty(t, id)
		assert.NotContains(t, id, "evil")
		assert.NotContains(t, lastLogLine(t, &buf), "user_id")
	})

	t.Run("client errors are warnings with the recorded error", func(t *testing.T) {
		var buf bytes.Buffer
		w := httptest.PerformRequest(t, newRouter(&buf), http.MethodGet, "/broken", nil, "")

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid date")
		entry := lastLogLine(t, &buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Contains(t, entry["errors"], "bad label")
	})
}

func TestCustomRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.GET("/panic", func(*gin.Context) { panic("slot table missing") })

	w := httptest.PerformRequest(t, r, http.MethodGet, "/panic", nil, "")

	httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/recorded", func(c *gin.Context) {
		_ = c.Error(&gin.Error{
			Err:  errors.New("slot taken"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.New(http.StatusConflict, "record already exists", nil),
		})
	})
	r.GET("/silent", func(*gin.Context) {})

	t.Run("recorded public error is answered", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/recorded", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "record already exists")
	})

	t.Run("handler without a response", func(t *testing.T) {
		w := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequireAuthErrorShape(t *testing.T) {
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService("salon-test-secret-key-32-bytes-long", time.Hour)))
	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

	w = httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "forged")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
}

func TestCORS(t *testing.T) {
	base := config.CORSConfig{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}

	preflight := func(cfg config.CORSConfig, origin string) *nethttptest.ResponseRecorder {
		r := gin.New()
		r.Use(middleware.NewCORSMiddleware(cfg))
		r.GET("/api/services", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := nethttptest.NewRequest(http.MethodOptions, "/api/services", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := nethttptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("listed origin gets the cookie", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{" https://salon.example/ ", ""}

		w := preflight(cfg, "https://salon.example")

		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "https://salon.example",
			"Access-Control-Allow-Credentials": "true",
		})
	})

	t.Run("wildcard drops credentials", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"*", "https://salon.example"}

		w := preflight(cfg, "https://elsewhere.example")

		httptest.AssertHeaders(t, w, map[string]string{
			"Access-Control-Allow-Origin":      "*",
			"Access-Control-Allow-Credentials": "",
		})
	})

	t.Run("unknown origin is refused", func(t *testing.T) {
		cfg := base
		cfg.AllowOrigins = []string{"https://salon.example"}

		w := preflight(cfg, "https://elsewhere.example")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
