package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/user"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/jwt"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/password"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.NewForbidden("user inactive")
	ErrEmailTaken         = errs.NewConflict("email is already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrInvalidResetToken  = errs.NewValidation("reset token is invalid or expired")
)

type SignUpRequest struct {
	Email    string
	Password string
	Name     string
	Phone    string
}

type SignInResult struct {
	UserID      uuid.UUID
	Role        user.Role
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	SignUp(ctx context.Context, req SignUpRequest) (*SignInResult, error)
	SignIn(ctx context.Context, credentials user.Credentials) (*SignInResult, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	notifier   Notifier
	clock      clock.Clock
	resetTTL   time.Duration
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, notifier Notifier, clk clock.Clock, resetTTL time.Duration) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		notifier:   notifier,
		clock:      clk,
		resetTTL:   resetTTL,
	}
}

// SignUp registers a client account and signs it in.
func (a *authCommandsImpl) SignUp(ctx context.Context, req SignUpRequest) (*SignInResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, validation(err)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	u, err := user.NewClientUser(credentials.Email(), hash, req.Name, req.Phone, a.clock.Now())
	if err != nil {
		return nil, validation(err)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if cerr := tx.Users().Create(ctx, u); cerr != nil {
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return cerr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(u.ID(), u.Role(), u.Email().Value())
}

func (a *authCommandsImpl) SignIn(ctx context.Context, credentials user.Credentials) (*SignInResult, error) {
	var snap *shared.UserSnapshot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Reads().UserByEmail(ctx, credentials.Email().Value())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				// Same error as a wrong password to prevent user enumeration
				return ErrInvalidCredentials
			}
			return derr
		}

		if !snap.IsActive {
			return ErrUserInactive
		}

		if derr = password.ComparePassword(snap.PasswordHash, credentials.Password().Value()); derr != nil {
			return ErrInvalidCredentials
		}

		if uerr := tx.Users().UpdateLastLogin(ctx, snap.ID, a.clock.Now()); uerr != nil {
			slog.WarnContext(ctx, "failed to update last login", "user_id", snap.ID, "error", uerr.Error())
			// Continue without failing - this is not critical
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.issue(snap.ID, snap.Role, snap.Email)
}

// RequestPasswordReset answers the same way for unknown emails. The token is texted to the
// phone on the account; accounts without a phone have to ask the salon.
func (a *authCommandsImpl) RequestPasswordReset(ctx context.Context, email string) error {
	normalized, err := user.NewEmail(email)
	if err != nil {
		return validation(err)
	}

	plain, digest, err := password.NewResetToken()
	if err != nil {
		return err
	}

	var snap *shared.UserSnapshot
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Reads().UserByEmail(ctx, normalized.Value())
		if derr != nil {
			return derr
		}
		return tx.PasswordResets().Create(ctx, snap.ID, digest, a.clock.Now().Add(a.resetTTL))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	if snap.Phone == "" {
		slog.InfoContext(ctx, "password reset requested for account without phone", "user_id", snap.ID)
		return nil
	}
	if err := a.notifier.Send(ctx, snap.Phone, "Код для сброса пароля: "+plain); err != nil {
		slog.WarnContext(ctx, "failed to send password reset token", "user_id", snap.ID, "error", err.Error())
	}
	return nil
}

func (a *authCommandsImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	pw, err := user.NewPassword(newPassword)
	if err != nil {
		return validation(err)
	}
	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return err
	}

	digest := password.HashResetToken(token)
	now := a.clock.Now()

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reset, derr := tx.Reads().PasswordResetForUpdate(ctx, digest)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrInvalidResetToken
			}
			return derr
		}
		if reset.UsedAt != nil || !now.Before(reset.ExpiresAt) {
			return ErrInvalidResetToken
		}

		if derr = tx.Users().UpdatePassword(ctx, reset.UserID, hash); derr != nil {
			return derr
		}
		return tx.PasswordResets().MarkUsed(ctx, digest, now)
	})
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role, email string) (*SignInResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role, email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &SignInResult{
		UserID:      userID,
		Role:        role,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
