package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// MasterResolver finds the master profile behind a signed-in account.
type MasterResolver interface {
	ResolveMaster(ctx context.Context, userID uuid.UUID) (*queries.MasterView, error)
}

type ChangeStatusRequest struct {
	BookingID uuid.UUID
	Status    booking.Status
	Actor     booking.Actor
	ActorID   uuid.UUID
}

type BookingCommands interface {
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) error
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	masters  MasterResolver
	notifier Notifier
	loc      *time.Location
}

func NewBookingCommands(uow shared.UnitOfWork, masters MasterResolver, notifier Notifier, loc *time.Location) BookingCommands {
	return &bookingCommandsImpl{uow: uow, masters: masters, notifier: notifier, loc: loc}
}

func (uc *bookingCommandsImpl) ChangeStatus(ctx context.Context, req ChangeStatusRequest) error {
	var masterID *uuid.UUID
	if req.Actor == booking.ActorMaster {
		m, err := uc.masters.ResolveMaster(ctx, req.ActorID)
		if err != nil {
			return err
		}
		masterID = &m.ID
	}

	var snap *shared.BookingSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		snap, derr = tx.Reads().BookingForUpdate(ctx, req.BookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}

		if derr = uc.authorize(ctx, tx, snap, req, masterID); derr != nil {
			return derr
		}

		if derr = booking.ChangeStatus(snap.Status, req.Status, req.Actor); derr != nil {
			return classifyStatusErr(derr)
		}

		return tx.Bookings().UpdateStatus(ctx, snap.ID, req.Status)
	})
	if err != nil {
		return err
	}

	uc.notifyStatus(ctx, snap, req.Status)
	return nil
}

func (uc *bookingCommandsImpl) authorize(ctx context.Context, tx shared.Tx, snap *shared.BookingSnapshot, req ChangeStatusRequest, masterID *uuid.UUID) error {
	switch req.Actor {
	case booking.ActorAdmin:
		return nil
	case booking.ActorMaster:
		// unassigned bookings are open to every master
		if snap.MasterID == nil || (masterID != nil && *snap.MasterID == *masterID) {
			return nil
		}
		return ErrBookingNotOwned
	case booking.ActorClient:
		u, err := tx.Reads().UserByID(ctx, req.ActorID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if OwnsBooking(snap, u) {
			return nil
		}
		return ErrBookingNotOwned
	default:
		return ErrBookingNotOwned
	}
}

// OwnsBooking mirrors the client panel listing: the account id, email or phone must match.
func OwnsBooking(snap *shared.BookingSnapshot, u *shared.UserSnapshot) bool {
	if snap.UserID != nil && *snap.UserID == u.ID {
		return true
	}
	if u.Email != "" && strings.EqualFold(snap.ClientEmail, u.Email) {
		return true
	}
	return u.Phone != "" && contact.NormalizePhone(snap.ClientPhone) == contact.NormalizePhone(u.Phone)
}

func (uc *bookingCommandsImpl) notifyStatus(ctx context.Context, snap *shared.BookingSnapshot, status booking.Status) {
	local := snap.StartsAt.In(uc.loc)
	var msg string
	switch status {
	case booking.StatusConfirmed:
		msg = fmt.Sprintf("Ваша запись %s на %s в %s подтверждена", booking.ShortID(snap.ID), booking.DateLabel(local), booking.TimeLabel(local))
	case booking.StatusCancelled:
		msg = fmt.Sprintf("Ваша запись %s на %s в %s отменена", booking.ShortID(snap.ID), booking.DateLabel(local), booking.TimeLabel(local))
	default:
		return
	}
	if err := uc.notifier.Send(ctx, snap.ClientPhone, msg); err != nil {
		slog.WarnContext(ctx, "failed to send status notification", "booking_id", snap.ID, "error", err.Error())
	}
}

func classifyStatusErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrInvalidStatus):
		return validation(err)
	case errs.Is(err, booking.ErrTerminalStatus), errs.Is(err, booking.ErrIllegalTransition):
		return conflict(err)
	default:
		return err
	}
}
