package usecase

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token to the account and role it was issued for.
// The auth middleware depends on this rather than on the JWT service itself.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return jwtTokenValidator{jwt: jwtService}
}

// ValidateToken also refuses a token without an account id, one whose subject names
// another account, and one carrying a role the salon does not have.
func (v jwtTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}
	if claims.Subject != "" && claims.Subject != claims.UserID.String() {
		return uuid.Nil, "", jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
