package api

import (
	"net/http"

	reqdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/request"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler drives the booking form. Every endpoint answers with the whole form so the
// front end can render the current step without keeping state of its own.
type BookingHandler struct {
	wizard commands.WizardCommands
}

func NewBookingHandler(wizard commands.WizardCommands) *BookingHandler {
	return &BookingHandler{wizard: wizard}
}

type wizardStep func(c *gin.Context, sessionID uuid.UUID) (*commands.WizardView, error)

// step binds the session id and renders the result of fn.
func (h *BookingHandler) step(fn wizardStep) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := pathID(c, "session_id")
		if !ok {
			return
		}
		view, err := fn(c, sessionID)
		if err != nil {
			if !c.IsAborted() {
				respondError(c, err, gin.H{"session_id": sessionID.String()})
			}
			return
		}
		c.JSON(http.StatusOK, resdto.FromWizardView(view))
	}
}

// bind aborts with 400 and returns false when the body does not match req.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		badRequest(c, err, "Invalid request format")
		return false
	}
	return true
}

// @Summary Start booking
// @Description Open a new booking form session on the service step
// @Tags booking
// @Produce json
// @Success 201 {object} resdto.WizardResponse
// @Failure 500 {object} httperr.Response
// @Router /booking/sessions [post]
func (h *BookingHandler) Start(c *gin.Context) {
	view, err := h.wizard.Start(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromWizardView(view))
}

// @Summary Get booking session
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 404 {object} httperr.Response
// @Router /booking/sessions/{session_id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		return h.wizard.Get(c.Request.Context(), id)
	})(c)
}

// @Summary Choose service
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.SelectServiceRequest true "Service"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking/sessions/{session_id}/service [put]
func (h *BookingHandler) SelectService(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.SelectServiceRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		return h.wizard.SelectService(c.Request.Context(), id, req.ServiceID)
	})(c)
}

// @Summary Choose master
// @Description master_id is a master id or "any"
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.SelectMasterRequest true "Master"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/sessions/{session_id}/master [put]
func (h *BookingHandler) SelectMaster(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.SelectMasterRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		masterID, err := req.ToMasterID()
		if err != nil {
			return nil, err
		}
		return h.wizard.SelectMaster(c.Request.Context(), id, masterID)
	})(c)
}

// @Summary Choose date
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.SelectDateRequest true "Date label"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/sessions/{session_id}/date [put]
func (h *BookingHandler) SelectDate(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.SelectDateRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		return h.wizard.SelectDate(c.Request.Context(), id, req.Date)
	})(c)
}

// @Summary Choose time
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.SelectTimeRequest true "Time label"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/sessions/{session_id}/time [put]
func (h *BookingHandler) SelectTime(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.SelectTimeRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		return h.wizard.SelectTime(c.Request.Context(), id, req.Time)
	})(c)
}

// @Summary Fill contact details
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.ContactRequest true "Contact details"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/sessions/{session_id}/contact [put]
func (h *BookingHandler) SetContact(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.ContactRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		return h.wizard.SetContact(c.Request.Context(), id, req.ToDomain())
	})(c)
}

// @Summary Next step
// @Description Advance when the current step is complete
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/sessions/{session_id}/next [post]
func (h *BookingHandler) Next(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		return h.wizard.Next(c.Request.Context(), id)
	})(c)
}

// @Summary Previous step
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Router /booking/sessions/{session_id}/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		return h.wizard.Back(c.Request.Context(), id)
	})(c)
}

// @Summary Apply promo code
// @Tags booking
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param request body reqdto.PromoRequest true "Promo code"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/sessions/{session_id}/promo [post]
func (h *BookingHandler) ApplyPromo(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var req reqdto.PromoRequest
		if !bind(c, &req) {
			return nil, errAborted
		}
		return h.wizard.ApplyPromo(c.Request.Context(), id, req.Code)
	})(c)
}

// @Summary Remove promo code
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Router /booking/sessions/{session_id}/promo [delete]
func (h *BookingHandler) RemovePromo(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		return h.wizard.RemovePromo(c.Request.Context(), id)
	})(c)
}

// @Summary Submit booking
// @Description Create the booking. On failure the session keeps the error and stays on the confirmation step.
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /booking/sessions/{session_id}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		var userID *uuid.UUID
		if uid, ok := middleware.GetUserID(c); ok {
			userID = &uid
		}
		return h.wizard.Submit(c.Request.Context(), id, userID)
	})(c)
}

// @Summary Start over
// @Description Clear the form and return to the service step, keeping the session id
// @Tags booking
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} resdto.WizardResponse
// @Router /booking/sessions/{session_id}/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	h.step(func(c *gin.Context, id uuid.UUID) (*commands.WizardView, error) {
		return h.wizard.Reset(c.Request.Context(), id)
	})(c)
}
