package api

import (
	"context"
	"net/http"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	reqdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/request"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

type AdminHandler struct {
	admin    commands.AdminCommands
	reviews  commands.ReviewCommands
	bookings commands.BookingCommands
	q        queries.AdminQueries
	loc      *time.Location
}

func NewAdminHandler(
	admin commands.AdminCommands,
	reviews commands.ReviewCommands,
	bookings commands.BookingCommands,
	q queries.AdminQueries,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		reviews:  reviews,
		bookings: bookings,
		q:        q,
		loc:      cfg.Salon.Location(),
	}
}

// listParams reads ?q=&status=&flag=&page=&per_page=. Unparsable numbers fall back to defaults.
func listParams(c *gin.Context) (queries.ListParams, error) {
	p := queries.ListParams{
		Query:   c.Query("q"),
		Status:  c.Query("status"),
		Page:    cast.ToInt(c.Query("page")),
		PerPage: cast.ToInt(c.Query("per_page")),
	}
	if raw := c.Query("flag"); raw != "" {
		flag, err := cast.ToBoolE(raw)
		if err != nil {
			return p, err
		}
		p.Flag = &flag
	}
	return p.Normalize(), nil
}

func listWith[T any](c *gin.Context, load func(ctx context.Context, p queries.ListParams) (*queries.Page[T], error)) {
	p, err := listParams(c)
	if err != nil {
		badRequest(c, err, "Invalid flag")
		return
	}
	page, err := load(c.Request.Context(), p)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

func createWith[R any, I any](c *gin.Context, toInput func(*R) (I, error), create func(ctx context.Context, in I) (uuid.UUID, error)) {
	var req R
	if !bind(c, &req) {
		return
	}
	in, err := toInput(&req)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	id, err := create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromID(id))
}

func updateWith[R any, I any](c *gin.Context, toInput func(*R) (I, error), update func(ctx context.Context, id uuid.UUID, in I) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req R
	if !bind(c, &req) {
		return
	}
	in, err := toInput(&req)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	if err = update(c.Request.Context(), id, in); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

func deleteWith(c *gin.Context, del func(ctx context.Context, id uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := del(c.Request.Context(), id); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Admin summary
// @Description Pending and today's bookings, client count and revenue of the current month
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AdminSummary
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary List bookings
// @Description Search by client, phone, service or master; filter by status
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param status query string false "Status"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.BookingView]
// @Failure 400 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *AdminHandler) Bookings(c *gin.Context) {
	listWith(c, h.q.Bookings)
}

// @Summary Get booking
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} queries.BookingView
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [get]
func (h *AdminHandler) Booking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.Booking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Edit booking
// @Description Move a booking to another master, date or time, or edit the comment
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.BookingPatchRequest true "Changed fields"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id} [patch]
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.BookingPatchRequest
	if !bind(c, &req) {
		return
	}
	existing, err := h.q.Booking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	if err = h.admin.UpdateBooking(c.Request.Context(), id, req.ToInput(existing)); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Change booking status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/status [post]
func (h *AdminHandler) ChangeBookingStatus(c *gin.Context) {
	changeStatus(c, h.bookings, booking.ActorAdmin)
}

// @Summary Delete booking
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	deleteWith(c, h.admin.DeleteBooking)
}

// @Summary List services
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param flag query bool false "Active only / inactive only"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.ServiceView]
// @Router /admin/services [get]
func (h *AdminHandler) Services(c *gin.Context) {
	listWith(c, h.q.Services)
}

// @Summary Create service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/services [post]
func (h *AdminHandler) CreateService(c *gin.Context) {
	createWith(c, (*reqdto.ServiceRequest).ToInput, h.admin.CreateService)
}

// @Summary Update service
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/services/{id} [put]
func (h *AdminHandler) UpdateService(c *gin.Context) {
	updateWith(c, (*reqdto.ServiceRequest).ToInput, h.admin.UpdateService)
}

// @Summary Delete service
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/services/{id} [delete]
func (h *AdminHandler) DeleteService(c *gin.Context) {
	deleteWith(c, h.admin.DeleteService)
}

// @Summary List masters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param flag query bool false "Active only / inactive only"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.MasterView]
// @Router /admin/masters [get]
func (h *AdminHandler) Masters(c *gin.Context) {
	listWith(c, h.q.Masters)
}

// @Summary Create master
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.MasterRequest true "Master"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/masters [post]
func (h *AdminHandler) CreateMaster(c *gin.Context) {
	createWith(c, (*reqdto.MasterRequest).ToInput, h.admin.CreateMaster)
}

// @Summary Update master
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Master ID"
// @Param request body reqdto.MasterRequest true "Master"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/masters/{id} [put]
func (h *AdminHandler) UpdateMaster(c *gin.Context) {
	updateWith(c, (*reqdto.MasterRequest).ToInput, h.admin.UpdateMaster)
}

// @Summary Delete master
// @Description Masters with bookings cannot be deleted; deactivate them instead
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Master ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/masters/{id} [delete]
func (h *AdminHandler) DeleteMaster(c *gin.Context) {
	deleteWith(c, h.admin.DeleteMaster)
}

// @Summary Link master account
// @Description Give a user account access to the master panel of this master
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Master ID"
// @Param request body reqdto.LinkMasterUserRequest true "User"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/masters/{id}/user [put]
func (h *AdminHandler) LinkMasterUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.LinkMasterUserRequest
	if !bind(c, &req) {
		return
	}
	if err := h.admin.LinkMasterUser(c.Request.Context(), id, req.UserID); err != nil {
		respondError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List categories
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.CategoryView]
// @Router /admin/categories [get]
func (h *AdminHandler) Categories(c *gin.Context) {
	listWith(c, h.q.Categories)
}

// @Summary Create category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	createWith(c, (*reqdto.CategoryRequest).ToInput, h.admin.CreateCategory)
}

// @Summary Update category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Category ID"
// @Param request body reqdto.CategoryRequest true "Category"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	updateWith(c, (*reqdto.CategoryRequest).ToInput, h.admin.UpdateCategory)
}

// @Summary Delete category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	deleteWith(c, h.admin.DeleteCategory)
}

// @Summary List gallery items
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param flag query bool false "Visible only / hidden only"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.GalleryView]
// @Router /admin/gallery [get]
func (h *AdminHandler) Gallery(c *gin.Context) {
	listWith(c, h.q.Gallery)
}

// @Summary Create gallery item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.GalleryRequest true "Gallery item"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/gallery [post]
func (h *AdminHandler) CreateGalleryItem(c *gin.Context) {
	createWith(c, (*reqdto.GalleryRequest).ToInput, h.admin.CreateGalleryItem)
}

// @Summary Update gallery item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Gallery item ID"
// @Param request body reqdto.GalleryRequest true "Gallery item"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [put]
func (h *AdminHandler) UpdateGalleryItem(c *gin.Context) {
	updateWith(c, (*reqdto.GalleryRequest).ToInput, h.admin.UpdateGalleryItem)
}

// @Summary Delete gallery item
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Gallery item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/gallery/{id} [delete]
func (h *AdminHandler) DeleteGalleryItem(c *gin.Context) {
	deleteWith(c, h.admin.DeleteGalleryItem)
}

// @Summary List promotions
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param flag query bool false "Active only / inactive only"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.PromotionView]
// @Router /admin/promotions [get]
func (h *AdminHandler) Promotions(c *gin.Context) {
	listWith(c, h.q.Promotions)
}

// @Summary Create promotion
// @Description Dates use YYYY-MM-DD; a percentage discount takes precedence over a fixed one
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/promotions [post]
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	createWith(c, h.promotionInput, h.admin.CreatePromotion)
}

// @Summary Update promotion
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Promotion ID"
// @Param request body reqdto.PromotionRequest true "Promotion"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/promotions/{id} [put]
func (h *AdminHandler) UpdatePromotion(c *gin.Context) {
	updateWith(c, h.promotionInput, h.admin.UpdatePromotion)
}

func (h *AdminHandler) promotionInput(req *reqdto.PromotionRequest) (commands.PromotionInput, error) {
	return req.ToInput(h.loc)
}

// @Summary Delete promotion
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Promotion ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/promotions/{id} [delete]
func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	deleteWith(c, h.admin.DeletePromotion)
}

// @Summary List clients
// @Description Client cards with the number of completed visits
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.ClientView]
// @Router /admin/clients [get]
func (h *AdminHandler) Clients(c *gin.Context) {
	listWith(c, h.q.Clients)
}

// @Summary Create client
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ClientRequest true "Client"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/clients [post]
func (h *AdminHandler) CreateClient(c *gin.Context) {
	createWith(c, (*reqdto.ClientRequest).ToInput, h.admin.CreateClient)
}

// @Summary Update client
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Client ID"
// @Param request body reqdto.ClientRequest true "Client"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/clients/{id} [put]
func (h *AdminHandler) UpdateClient(c *gin.Context) {
	updateWith(c, (*reqdto.ClientRequest).ToInput, h.admin.UpdateClient)
}

// @Summary Delete client
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/clients/{id} [delete]
func (h *AdminHandler) DeleteClient(c *gin.Context) {
	deleteWith(c, h.admin.DeleteClient)
}

// @Summary List blacklist
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.BlacklistView]
// @Router /admin/blacklist [get]
func (h *AdminHandler) Blacklist(c *gin.Context) {
	listWith(c, h.q.Blacklist)
}

// @Summary Block phone number
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.BlacklistRequest true "Phone and reason"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/blacklist [post]
func (h *AdminHandler) AddToBlacklist(c *gin.Context) {
	createWith(c, (*reqdto.BlacklistRequest).ToInput, h.admin.AddToBlacklist)
}

// @Summary Unblock phone number
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Blacklist entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/blacklist/{id} [delete]
func (h *AdminHandler) RemoveFromBlacklist(c *gin.Context) {
	deleteWith(c, h.admin.RemoveFromBlacklist)
}

// @Summary List reviews
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search text"
// @Param flag query bool false "Published only / hidden only"
// @Param page query int false "Page, from 1"
// @Param per_page query int false "Page size, at most 500"
// @Success 200 {object} queries.Page[queries.ReviewView]
// @Router /admin/reviews [get]
func (h *AdminHandler) Reviews(c *gin.Context) {
	listWith(c, h.q.Reviews)
}

// @Summary Add review
// @Description Record a review received outside the site
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminReviewRequest true "Review"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/reviews [post]
func (h *AdminHandler) CreateReview(c *gin.Context) {
	createWith(c, adminReviewInput, h.reviews.CreateReview)
}

func adminReviewInput(req *reqdto.AdminReviewRequest) (commands.AdminReviewRequest, error) {
	return commands.AdminReviewRequest{
		MasterID:   req.MasterID,
		ServiceID:  req.ServiceID,
		ClientName: req.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Published:  req.Published,
	}, nil
}

// @Summary Publish or hide review
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Review ID"
// @Param request body reqdto.PublishReviewRequest true "Visibility"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reviews/{id}/publish [put]
func (h *AdminHandler) PublishReview(c *gin.Context) {
	updateWith(c, func(req *reqdto.PublishReviewRequest) (bool, error) {
		return *req.Published, nil
	}, h.reviews.SetPublished)
}

// @Summary Delete review
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/reviews/{id} [delete]
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	deleteWith(c, h.reviews.DeleteReview)
}
