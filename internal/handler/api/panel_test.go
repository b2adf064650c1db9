//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/api"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/httptest"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/testutil"
	commandsmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/commands"
	queriesmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PanelHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *commandsmock.MockBookingCommands
	mockReviews  *commandsmock.MockReviewCommands
	mockClients  *queriesmock.MockClientPanelQueries
	mockMasters  *queriesmock.MockMasterPanelQueries
	userID       uuid.UUID
}

func (s *PanelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockReviews = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockClients = queriesmock.NewMockClientPanelQueries(s.mockCtrl)
	s.mockMasters = queriesmock.NewMockMasterPanelQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewPanelHandler(s.mockBookings, s.mockReviews, s.mockClients, s.mockMasters)

	me := s.router.Group("/me", fakeAuthAs(s.userID, user.RoleClient))
	me.GET("/dashboard", h.ClientDashboard)
	me.POST("/bookings/:id/status", h.ClientChangeStatus)
	me.POST("/reviews", h.LeaveReview)

	master := s.router.Group("/master", fakeAuthAs(s.userID, user.RoleMaster))
	master.GET("/dashboard", h.MasterDashboard)
	master.POST("/bookings/:id/status", h.MasterChangeStatus)
}

func (s *PanelHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPanelHandlerSuite(t *testing.T) {
	suite.Run(t, new(PanelHandlerTestSuite))
}

func (s *PanelHandlerTestSuite) TestClientDashboard() {
	s.Run("success", func() {
		s.mockClients.EXPECT().Dashboard(gomock.Any(), s.userID).Return(&queries.ClientDashboard{
			Upcoming: []queries.ClientBookingView{},
			Past:     []queries.ClientBookingView{},
			Loyalty:  client.NewLoyaltyCard(7),
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/dashboard", nil, "bearer-token")

		var response queries.ClientDashboard
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(7, response.Loyalty.CompletedVisits)
		s.Equal(1, response.Loyalty.RewardsEarned)
	})

	s.Run("anonymous", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/dashboard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *PanelHandlerTestSuite) TestClientChangeStatus() {
	bookingID := uuid.New()
	url := "/me/bookings/" + bookingID.String() + "/status"

	s.Run("cancel", func() {
		s.mockBookings.EXPECT().ChangeStatus(gomock.Any(), commands.ChangeStatusRequest{
			BookingID: bookingID, Status: booking.StatusCancelled, Actor: booking.ActorClient, ActorID: s.userID,
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "cancelled"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "not owned", err: commands.ErrBookingNotOwned, expectedStatus: http.StatusForbidden, expectedMsg: "does not belong"},
			{name: "missing", err: commands.ErrBookingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "booking not found"},
			{name: "illegal", err: errs.Mark(booking.ErrIllegalTransition, errs.ErrConflict), expectedStatus: http.StatusConflict, expectedMsg: "status transition is not allowed"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockBookings.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "completed"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "done"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("bad booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/bookings/42/status", map[string]any{"status": "cancelled"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *PanelHandlerTestSuite) TestLeaveReview() {
	bookingID := uuid.New()
	reqBody := builder.NewReviewBuilder().WithBookingID(bookingID).BuildLeaveRequestDTO()

	s.Run("success", func() {
		reviewID := uuid.New()
		s.mockReviews.EXPECT().LeaveReview(gomock.Any(), s.userID, reqBody.ToCommand()).Return(reviewID, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/reviews", reqBody, "bearer-token")

		var response resdto.IDResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reviewID.String(), response.ID)
	})

	s.Run("rating out of range", func() {
		for _, rating := range []int{0, 6} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/reviews",
				testutil.DtoMap(s.T(), reqBody, testutil.Field("rating", rating)), "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("already reviewed", func() {
		s.mockReviews.EXPECT().LeaveReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, commands.ErrBookingAlreadyReviewed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/me/reviews", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been reviewed")
	})
}

func (s *PanelHandlerTestSuite) TestMasterPanel() {
	s.Run("dashboard without a linked profile", func() {
		s.mockMasters.EXPECT().Dashboard(gomock.Any(), s.userID).Return(nil, queries.ErrMasterProfileNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/master/dashboard", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no master profile")
	})

	s.Run("complete a visit", func() {
		bookingID := uuid.New()
		s.mockBookings.EXPECT().ChangeStatus(gomock.Any(), commands.ChangeStatusRequest{
			BookingID: bookingID, Status: booking.StatusCompleted, Actor: booking.ActorMaster, ActorID: s.userID,
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/master/bookings/"+bookingID.String()+"/status",
			map[string]any{"status": "completed"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
