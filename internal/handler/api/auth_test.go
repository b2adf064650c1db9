//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/api"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/handler/middleware"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/cookie"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupSuite() {
	s.Require().NoError(middleware.RegisterValidators())
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	s.router.POST("/auth/signup", s.handler.SignUp)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.POST("/auth/password-reset", s.handler.RequestPasswordReset)
	s.router.POST("/auth/password-reset/confirm", s.handler.ConfirmPasswordReset)
	s.router.GET("/auth/me", fakeAuth(user.RoleClient), s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func signInResult(role user.Role) *commands.SignInResult {
	return &commands.SignInResult{
		UserID:      uuid.New(),
		Role:        role,
		AccessToken: "test-jwt-token",
		ExpiresIn:   time.Hour,
	}
}

func (s *AuthHandlerTestSuite) TestSignUp() {
	url := "/auth/signup"
	reqBody := builder.NewAuthBuilder().BuildSignUpDTO()

	s.Run("success: returns 201 with a session cookie", func() {
		result := signInResult(user.RoleClient)
		s.mockCommands.EXPECT().SignUp(gomock.Any(), reqBody.ToCommand()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(result.UserID.String(), response.UserID)
		s.Equal("client", response.Role)
		s.Equal(int64(3600), response.ExpiresIn)
		s.Require().NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing name", mutate: testutil.Field("name", nil), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("а", 101)), expectCode: http.StatusBadRequest},
			{name: "invalid phone", mutate: testutil.Field("phone", "12345"), expectCode: http.StatusBadRequest},
			{name: "short password", mutate: testutil.Field("password", "1234567"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().SignUp(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "email is already registered")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	credentials, err := user.NewCredentials(reqBody.Email, reqBody.Password)
	s.Require().NoError(err)

	s.Run("success: returns 200 OK for valid credentials", func() {
		result := signInResult(user.RoleMaster)
		s.mockCommands.EXPECT().SignIn(gomock.Any(), credentials).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("master", response.Role)
		s.Equal("test-jwt-token", response.AccessToken)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal("test-jwt-token", accessCookie.Value)
		s.True(accessCookie.HttpOnly)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						expected, err := user.NewCredentials(email, password)
						s.Require().NoError(err)
						s.mockCommands.EXPECT().SignIn(gomock.Any(), expected).Return(signInResult(user.RoleClient), nil)
					}

					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "user inactive",
				commandsError:  commands.ErrUserInactive,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "user inactive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SignIn(gomock.Any(), credentials).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Empty(accessCookie.Value)
		s.Negative(accessCookie.MaxAge)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns current user info", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(returnUser, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response["email"])
		s.Equal(returnUser.Name, response["name"])
	})

	s.Run("error: returns 401 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "user not found", queriesError: queries.ErrUserNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "user not found"},
			{name: "user inactive", queriesError: queries.ErrUserInactive, expectedStatus: http.StatusForbidden, expectedMsg: "user inactive"},
			{name: "internal server error", queriesError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).Return(nil, tc.queriesError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestPasswordReset() {
	s.Run("request: always 202", func() {
		s.mockCommands.EXPECT().RequestPasswordReset(gomock.Any(), "anna@example.com").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset",
			map[string]any{"email": "anna@example.com"}, "")

		var response resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.NotEmpty(response.Message)
	})

	s.Run("request: invalid email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset",
			map[string]any{"email": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("confirm: success", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), "token", "new-password").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/confirm",
			map[string]any{"token": "token", "password": "new-password"}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("confirm: expired token", func() {
		s.mockCommands.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(commands.ErrInvalidResetToken)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/password-reset/confirm",
			map[string]any{"token": "token", "password": "new-password"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "reset token is invalid or expired")
	})
}
