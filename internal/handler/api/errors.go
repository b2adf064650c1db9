package api

import (
	"net/http"

	"github.com/whiteedeesign/khansart1-sub000/internal/handler/httperr"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// errAborted is returned by a step that has already written its response.
var errAborted = errs.New("request aborted")

// respondError picks the status from the error category. Categorized errors carry a message
// written for the end user; anything else is reported as an internal error.
func respondError(c *gin.Context, err error, detail any) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", detail)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, publicMessage(err), detail)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, publicMessage(err), detail)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, publicMessage(err), detail)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, publicMessage(err), detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", detail)
	}
}

// publicMessage drops wrapping context so only the sentinel text reaches the client.
func publicMessage(err error) string {
	return errs.UnwrapAll(err).Error()
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

func unauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user in context"), "Unauthorized", nil)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		unauthorized(c)
		return uuid.Nil, false
	}
	return userID, true
}
