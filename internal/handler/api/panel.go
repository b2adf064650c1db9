package api

import (
	"net/http"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	reqdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/request"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PanelHandler serves the signed-in client and master panels.
type PanelHandler struct {
	bookings commands.BookingCommands
	reviews  commands.ReviewCommands
	clients  queries.ClientPanelQueries
	masters  queries.MasterPanelQueries
}

func NewPanelHandler(
	bookings commands.BookingCommands,
	reviews commands.ReviewCommands,
	clients queries.ClientPanelQueries,
	masters queries.MasterPanelQueries,
) *PanelHandler {
	return &PanelHandler{
		bookings: bookings,
		reviews:  reviews,
		clients:  clients,
		masters:  masters,
	}
}

// @Summary Client dashboard
// @Description Upcoming and past bookings of the signed-in client with the loyalty card
// @Tags client
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.ClientDashboard
// @Failure 401 {object} httperr.Response
// @Router /me/dashboard [get]
func (h *PanelHandler) ClientDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	dashboard, err := h.clients.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Change own booking status
// @Description Clients may confirm or cancel their own bookings
// @Tags client
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /me/bookings/{id}/status [post]
func (h *PanelHandler) ClientChangeStatus(c *gin.Context) {
	changeStatus(c, h.bookings, booking.ActorClient)
}

// @Summary Review a visit
// @Description Leave a review for a completed booking of the signed-in client
// @Tags client
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.LeaveReviewRequest true "Review"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /me/reviews [post]
func (h *PanelHandler) LeaveReview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.LeaveReviewRequest
	if !bind(c, &req) {
		return
	}
	id, err := h.reviews.LeaveReview(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

// @Summary Master dashboard
// @Description Today's and this week's bookings of the master linked to the account
// @Tags master
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.MasterDashboard
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /master/dashboard [get]
func (h *PanelHandler) MasterDashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	dashboard, err := h.masters.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// @Summary Change booking status
// @Description Masters manage their own and unassigned bookings
// @Tags master
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /master/bookings/{id}/status [post]
func (h *PanelHandler) MasterChangeStatus(c *gin.Context) {
	changeStatus(c, h.bookings, booking.ActorMaster)
}

// changeStatus is shared by every panel; the use case checks what actor may do.
func changeStatus(c *gin.Context, cmds commands.BookingCommands, actor booking.Actor) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if !bind(c, &req) {
		return
	}
	status, err := req.ToDomain()
	if err != nil {
		badRequest(c, err, "Invalid status")
		return
	}

	err = cmds.ChangeStatus(c.Request.Context(), commands.ChangeStatusRequest{
		BookingID: bookingID,
		Status:    status,
		Actor:     actor,
		ActorID:   userID,
	})
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}
