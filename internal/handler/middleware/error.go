package middleware

import (
	"log/slog"
	"net/http"

	"github.com/whiteedeesign/khansart1-sub000/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler answers for handlers that recorded an error but wrote nothing.
// The newest public error wins; a bare non-200 status is sent without a body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if resp, ok := lastPublicError(c); ok {
			c.JSON(resp.Status, resp)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		slog.ErrorContext(c.Request.Context(), "handler finished without a response",
			"request_id", GetRequestID(c), "route", c.FullPath(), "errors", c.Errors.String())
		c.JSON(http.StatusInternalServerError, httperr.New(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func lastPublicError(c *gin.Context) (httperr.Response, bool) {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		e := c.Errors[i]
		if !e.IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := e.Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into the usual 500 body; it must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			slog.ErrorContext(c.Request.Context(), "recovered from panic",
				"panic", rec, "request_id", GetRequestID(c), "method", c.Request.Method, "path", c.Request.URL.Path)
			httperr.Abort(c, http.StatusInternalServerError, "Internal server error")
		}()
		c.Next()
	}
}
