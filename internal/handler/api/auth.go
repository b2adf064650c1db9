package api

import (
	"net/http"

	reqdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/request"
	resdto "github.com/whiteedeesign/khansart1-sub000/internal/handler/dto/response"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/cookie"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Register a client account and sign it in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignUpRequest true "Sign up request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req reqdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.authCommands.SignUp(c.Request.Context(), req.ToCommand())
	if err != nil {
		respondError(c, err, nil)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.FromSignIn(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		badRequest(c, err, "Invalid request data")
		return
	}

	result, err := h.authCommands.SignIn(c.Request.Context(), credentials)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromSignIn(result))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; dropping the cookie is all the server can do
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Request password reset
// @Description Text a reset code to the phone on the account. Unknown emails get the same answer.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.PasswordResetRequest true "Password reset request"
// @Success 202 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	if err := h.authCommands.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, nil)
		return
	}

	c.JSON(http.StatusAccepted, resdto.MessageResponse{
		Message: "If the account exists, a reset code has been sent",
	})
}

// @Summary Confirm password reset
// @Description Set a new password using the reset code
// @Tags auth
// @Accept json
// @Param request body reqdto.PasswordResetConfirmRequest true "Password reset confirmation"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Router /auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req reqdto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	if err := h.authCommands.ResetPassword(c.Request.Context(), req.Token, req.Password); err != nil {
		respondError(c, err, nil)
		return
	}

	c.Status(http.StatusNoContent)
}
