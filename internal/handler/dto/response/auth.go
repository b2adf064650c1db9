package response

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
)

type LoginResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func FromSignIn(r *commands.SignInResult) *LoginResponse {
	return &LoginResponse{
		UserID:      r.UserID.String(),
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
