package api

import (
	"net/http"

	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler serves the public listings. Every listing answers 200: when the database
// is unreachable the bundled dataset is returned with source "fallback".
type CatalogHandler struct {
	catalog queries.CatalogQueries
	backend config.BackendConfig
	salon   config.SalonConfig
}

func NewCatalogHandler(catalog queries.CatalogQueries, cfg config.Config) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		backend: cfg.Backend,
		salon:   cfg.Salon,
	}
}

// @Summary List services
// @Description Active services ordered for display, optionally narrowed to one category
// @Tags catalog
// @Produce json
// @Param category_id query string false "Category ID"
// @Success 200 {object} queries.Listing[queries.ServiceView]
// @Failure 400 {object} httperr.Response
// @Router /services [get]
func (h *CatalogHandler) Services(c *gin.Context) {
	listing := h.catalog.Services(c.Request.Context())

	if raw := c.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, err, "Invalid category_id")
			return
		}
		filtered := make([]queries.ServiceView, 0, len(listing.Items))
		for _, s := range listing.Items {
			if s.CategoryID != nil && *s.CategoryID == categoryID {
				filtered = append(filtered, s)
			}
		}
		listing.Items = filtered
	}

	c.JSON(http.StatusOK, listing)
}

// @Summary Get service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} queries.ServiceView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *CatalogHandler) Service(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	svc, _, err := h.catalog.ServiceByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// @Summary List masters
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.Listing[queries.PublicMasterView]
// @Router /masters [get]
func (h *CatalogHandler) Masters(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Masters(c.Request.Context()))
}

// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.Listing[queries.CategoryView]
// @Router /categories [get]
func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Categories(c.Request.Context()))
}

// @Summary List published reviews
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.Listing[queries.ReviewView]
// @Router /reviews [get]
func (h *CatalogHandler) Reviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Reviews(c.Request.Context()))
}

// @Summary List current promotions
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.Listing[queries.PromotionView]
// @Router /promotions [get]
func (h *CatalogHandler) Promotions(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Promotions(c.Request.Context()))
}

// @Summary List gallery
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.Listing[queries.GalleryView]
// @Router /gallery [get]
func (h *CatalogHandler) Gallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Gallery(c.Request.Context()))
}

// @Summary Bookable dates and times
// @Description Date labels for the coming days and the fixed daily time slots
// @Tags catalog
// @Produce json
// @Success 200 {object} queries.SlotsView
// @Router /slots [get]
func (h *CatalogHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Slots(c.Request.Context()))
}

// @Summary Front-end configuration
// @Description Public backend URL and key, with built-in defaults when unset
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.ConfigResponse
// @Router /config [get]
func (h *CatalogHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromConfig(h.backend, h.salon))
}
