//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/api"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/httptest"
	queriesmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockCatalog *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	h := api.NewCatalogHandler(s.mockCatalog, config.NewTestConfig())

	s.router.GET("/config", h.Config)
	s.router.GET("/services", h.Services)
	s.router.GET("/services/:id", h.Service)
	s.router.GET("/masters", h.Masters)
	s.router.GET("/slots", h.Slots)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestServices() {
	lashes, brows := uuid.New(), uuid.New()
	listing := queries.Listing[queries.ServiceView]{
		Items: []queries.ServiceView{
			{ID: uuid.New(), Name: "Ламинирование ресниц", Price: 2000, CategoryID: &lashes},
			{ID: uuid.New(), Name: "Коррекция бровей", Price: 800, CategoryID: &brows},
			{ID: uuid.New(), Name: "Консультация", Price: 0},
		},
		Source: queries.SourceFallback,
	}

	s.Run("fallback listing still answers 200", func() {
		s.mockCatalog.EXPECT().Services(gomock.Any()).Return(listing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services", nil, "")

		var response queries.Listing[queries.ServiceView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 3)
		s.Equal(queries.SourceFallback, response.Source)
	})

	s.Run("category filter", func() {
		s.mockCatalog.EXPECT().Services(gomock.Any()).Return(listing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services?category_id="+lashes.String(), nil, "")

		var response queries.Listing[queries.ServiceView]
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal("Ламинирование ресниц", response.Items[0].Name)
	})

	s.Run("bad category id", func() {
		s.mockCatalog.EXPECT().Services(gomock.Any()).Return(listing)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services?category_id=lashes", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid category_id")
	})
}

func (s *CatalogHandlerTestSuite) TestService() {
	s.Run("found", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().ServiceByID(gomock.Any(), id).
			Return(&queries.ServiceView{ID: id, Name: "Ламинирование ресниц", Price: 2000}, queries.SourceLive, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+id.String(), nil, "")

		var response queries.ServiceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2000), response.Price)
	})

	s.Run("missing", func() {
		id := uuid.New()
		s.mockCatalog.EXPECT().ServiceByID(gomock.Any(), id).Return(nil, queries.SourceLive, queries.ErrServiceNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "service not found")
	})
}

func (s *CatalogHandlerTestSuite) TestMasters() {
	s.mockCatalog.EXPECT().Masters(gomock.Any()).Return(queries.Listing[queries.PublicMasterView]{
		Items:  []queries.PublicMasterView{{ID: uuid.New(), Name: "Анна", Specialization: "Лэшмейкер", Active: true}},
		Source: queries.SourceLive,
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/masters", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	items, ok := body["items"].([]any)
	s.Require().True(ok, rec.Body.String())
	s.Require().Len(items, 1)
	master := items[0].(map[string]any)
	s.Equal("Анна", master["name"])
	s.NotContains(master, "phone")
	s.NotContains(master, "email")
}

func (s *CatalogHandlerTestSuite) TestSlots() {
	s.mockCatalog.EXPECT().Slots(gomock.Any()).Return(queries.SlotsView{
		Dates: []booking.DateOption{{Label: "12 мая", Weekday: "Вт", Date: "2026-05-12"}},
		Times: []string{"10:00", "11:00"},
	})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")

	var response queries.SlotsView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response.Dates, 1)
	s.Equal("12 мая", response.Dates[0].Label)
	s.Equal([]string{"10:00", "11:00"}, response.Times)
}

func (s *CatalogHandlerTestSuite) TestConfig() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/config", nil, "")

	var response resdto.ConfigResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(config.FallbackServiceURL, response.ServiceURL)
	s.Equal(config.FallbackPublicKey, response.PublicKey)
	s.Equal("Test Studio", response.SalonName)
	s.Equal("Europe/Moscow", response.TimeZone)
}
