package commands

import (
	"context"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	domreview "github.com/whiteedeesign/khansart1-sub000/internal/domain/review"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeaveReviewRequest struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

// AdminReviewRequest is a review typed in by staff, e.g. one received by phone.
type AdminReviewRequest struct {
	MasterID   *uuid.UUID
	ServiceID  *uuid.UUID
	ClientName string
	Rating     int
	Comment    string
	Published  bool
}

type ReviewCommands interface {
	LeaveReview(ctx context.Context, userID uuid.UUID, req LeaveReviewRequest) (uuid.UUID, error)
	CreateReview(ctx context.Context, req AdminReviewRequest) (uuid.UUID, error)
	SetPublished(ctx context.Context, reviewID uuid.UUID, published bool) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk}
}

// LeaveReview stores the review and flags the booking as reviewed in one transaction,
// so a visit can never end up with two reviews or a review without the flag.
func (uc *reviewCommandsImpl) LeaveReview(ctx context.Context, userID uuid.UUID, req LeaveReviewRequest) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingForUpdate(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		u, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		if !OwnsBooking(snap, u) {
			return ErrBookingNotOwned
		}
		if snap.Status != booking.StatusCompleted {
			return ErrBookingNotReviewable
		}
		if snap.Reviewed {
			return ErrBookingAlreadyReviewed
		}

		rev, derr := domreview.NewReview(uuid.Nil, domreview.Params{
			BookingID:  &snap.ID,
			MasterID:   snap.MasterID,
			ServiceID:  &snap.ServiceID,
			ClientName: snap.ClientName,
			Rating:     req.Rating,
			Comment:    req.Comment,
		}, uc.clock.Now())
		if derr != nil {
			return validation(derr)
		}

		if derr = tx.Reviews().Create(ctx, rev); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrBookingAlreadyReviewed
			}
			return derr
		}
		createdID = rev.ID()
		return tx.Bookings().MarkReviewed(ctx, snap.ID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req AdminReviewRequest) (uuid.UUID, error) {
	rev, err := domreview.NewReview(uuid.Nil, domreview.Params{
		MasterID:   req.MasterID,
		ServiceID:  req.ServiceID,
		ClientName: req.ClientName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		Published:  req.Published,
	}, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validation(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Reviews().Create(ctx, rev))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rev.ID(), nil
}

func (uc *reviewCommandsImpl) SetPublished(ctx context.Context, reviewID uuid.UUID, published bool) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Reviews().SetPublished(ctx, reviewID, published))
	})
}

func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Reviews().Delete(ctx, reviewID))
	})
}

// mapWriteErr turns repository error kinds into use case sentinels.
func mapWriteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrEntityNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateEntity
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrUnknownReference
	default:
		return err
	}
}

func mapDeleteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrEntityNotFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrEntityInUse
	default:
		return err
	}
}
