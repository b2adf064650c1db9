package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

// WizardView is a session together with the catalog data the confirmation step shows.
type WizardView struct {
	State      *wizard.State
	CanAdvance bool
	Service    *queries.ServiceView
	Master     *queries.PublicMasterView
	BasePrice  int64
	Total      int64
	ShortID    string
	Source     queries.Source
}

type WizardCommands interface {
	Start(ctx context.Context) (*WizardView, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	SelectService(ctx context.Context, sessionID, serviceID uuid.UUID) (*WizardView, error)
	SelectMaster(ctx context.Context, sessionID uuid.UUID, masterID *uuid.UUID) (*WizardView, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, label string) (*WizardView, error)
	SelectTime(ctx context.Context, sessionID uuid.UUID, label string) (*WizardView, error)
	SetContact(ctx context.Context, sessionID uuid.UUID, contact wizard.Contact) (*WizardView, error)
	Next(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	Back(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*WizardView, error)
	RemovePromo(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
	Submit(ctx context.Context, sessionID uuid.UUID, userID *uuid.UUID) (*WizardView, error)
	Reset(ctx context.Context, sessionID uuid.UUID) (*WizardView, error)
}

type wizardCommandsImpl struct {
	store     WizardStore
	catalog   queries.CatalogQueries
	promos    PromotionFinder
	blacklist BlacklistChecker
	bookings  BookingWriter
	clients   ClientWriter
	notifier  Notifier
	clock     clock.Clock
	loc       *time.Location
	salonName string
}

func NewWizardCommands(
	store WizardStore,
	catalogQueries queries.CatalogQueries,
	promos PromotionFinder,
	blacklist BlacklistChecker,
	bookings BookingWriter,
	clients ClientWriter,
	notifier Notifier,
	clk clock.Clock,
	loc *time.Location,
	salonName string,
) WizardCommands {
	return &wizardCommandsImpl{
		store:     store,
		catalog:   catalogQueries,
		promos:    promos,
		blacklist: blacklist,
		bookings:  bookings,
		clients:   clients,
		notifier:  notifier,
		clock:     clk,
		loc:       loc,
		salonName: salonName,
	}
}

func (uc *wizardCommandsImpl) Start(ctx context.Context) (*WizardView, error) {
	st := wizard.New(uc.clock.Now())
	if err := uc.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return uc.view(ctx, st), nil
}

func (uc *wizardCommandsImpl) Get(ctx context.Context, sessionID uuid.UUID) (*WizardView, error) {
	st, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return uc.view(ctx, st), nil
}

func (uc *wizardCommandsImpl) SelectService(ctx context.Context, sessionID, serviceID uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		svc, _, err := uc.catalog.ServiceByID(ctx, serviceID)
		if err != nil {
			return err
		}
		return st.SelectService(svc.ID, svc.CategoryID)
	})
}

func (uc *wizardCommandsImpl) SelectMaster(ctx context.Context, sessionID uuid.UUID, masterID *uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		if masterID != nil {
			m, _, err := uc.catalog.MasterByID(ctx, *masterID)
			if err != nil {
				return err
			}
			if !m.Active {
				return validation(catalog.ErrMasterNotBookable)
			}
		}
		return st.SelectMaster(masterID)
	})
}

func (uc *wizardCommandsImpl) SelectDate(ctx context.Context, sessionID uuid.UUID, label string) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		if _, err := booking.ParseUpcomingSlot(label, booking.TimeSlots[0], uc.clock.Now(), uc.loc); err != nil {
			return validation(err)
		}
		return st.SelectDate(label)
	})
}

func (uc *wizardCommandsImpl) SelectTime(ctx context.Context, sessionID uuid.UUID, label string) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		if err := booking.ValidateTimeLabel(label); err != nil {
			return validation(err)
		}
		return st.SelectTime(label)
	})
}

func (uc *wizardCommandsImpl) SetContact(ctx context.Context, sessionID uuid.UUID, contact wizard.Contact) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		return st.SetContact(contact)
	})
}

func (uc *wizardCommandsImpl) Next(ctx context.Context, sessionID uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		return st.Next()
	})
}

func (uc *wizardCommandsImpl) Back(ctx context.Context, sessionID uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		return st.Back()
	})
}

func (uc *wizardCommandsImpl) ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		normalized, err := promotion.NewCode(code)
		if err != nil {
			return validation(promotion.ErrPromotionNotFound)
		}

		p, err := uc.promos.FindActiveByCode(ctx, normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return validation(promotion.ErrPromotionNotFound)
			}
			return errs.Mark(err, ErrPromotionLookupFailed)
		}

		return st.ApplyPromo(p, uc.clock.Now())
	})
}

func (uc *wizardCommandsImpl) RemovePromo(ctx context.Context, sessionID uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		return st.RemovePromo()
	})
}

func (uc *wizardCommandsImpl) Reset(ctx context.Context, sessionID uuid.UUID) (*WizardView, error) {
	return uc.mutate(ctx, sessionID, func(st *wizard.State) error {
		st.Reset(uc.clock.Now())
		return nil
	})
}

// Submit inserts the booking. Any failure after the form is complete is recorded on the
// session and the visitor stays on the confirmation step, so the submit can be retried.
func (uc *wizardCommandsImpl) Submit(ctx context.Context, sessionID uuid.UUID, userID *uuid.UUID) (*WizardView, error) {
	st, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err = st.ReadyToSubmit(); err != nil {
		return nil, classifyWizardErr(err)
	}

	svc, _, err := uc.catalog.ServiceByID(ctx, *st.ServiceID)
	if err != nil {
		return nil, uc.fail(ctx, st, err)
	}

	b, err := uc.compose(st, svc, userID)
	if err != nil {
		return nil, uc.fail(ctx, st, validation(err))
	}

	blocked, err := uc.blacklist.IsBlacklisted(ctx, b.ClientPhone().String())
	if err != nil {
		slog.WarnContext(ctx, "blacklist check failed, accepting booking", "error", err.Error())
	}
	if blocked {
		return nil, uc.fail(ctx, st, ErrClientBlacklisted)
	}

	if err = uc.bookings.Create(ctx, b); err != nil {
		return nil, uc.fail(ctx, st, errs.Mark(err, ErrBookingSubmitFailed))
	}

	st.Complete(b.ID())
	st.UpdatedAt = uc.clock.Now()
	if err = uc.store.Save(ctx, st); err != nil {
		// the booking exists; losing the session only costs the confirmation screen
		slog.WarnContext(ctx, "failed to save completed booking session", "session_id", st.ID, "error", err.Error())
	}

	uc.afterSubmit(ctx, st, b, svc)
	return uc.view(ctx, st), nil
}

func (uc *wizardCommandsImpl) compose(st *wizard.State, svc *queries.ServiceView, userID *uuid.UUID) (*booking.Booking, error) {
	startsAt, err := booking.ParseUpcomingSlot(st.DateLabel, st.TimeLabel, uc.clock.Now(), uc.loc)
	if err != nil {
		return nil, err
	}

	return booking.NewBooking(booking.Params{
		UserID:      userID,
		ServiceID:   svc.ID,
		MasterID:    st.MasterID(),
		ClientName:  st.Contact.Name,
		ClientPhone: st.Contact.Phone,
		ClientEmail: st.Contact.Email,
		Comment:     st.Contact.Comment,
		StartsAt:    startsAt,
		DurationMin: svc.DurationMin,
		Price:       svc.Price,
		TotalPrice:  st.Total(svc.Price),
		PromoCode:   st.PromoCode(),
	}, uc.clock.Now())
}

func (uc *wizardCommandsImpl) afterSubmit(ctx context.Context, st *wizard.State, b *booking.Booking, svc *queries.ServiceView) {
	if st.Contact.CreateAccount {
		c, err := client.NewClient(uuid.Nil, b.ClientName().String(), b.ClientPhone().String(), b.ClientEmail().String(), uc.clock.Now())
		if err == nil {
			err = uc.clients.UpsertByPhone(ctx, c)
		}
		if err != nil {
			slog.WarnContext(ctx, "failed to save client card", "booking_id", b.ID(), "error", err.Error())
		}
	}

	local := b.StartsAt().In(uc.loc)
	msg := fmt.Sprintf("%s: вы записаны на «%s» %s в %s. Номер записи: %s",
		uc.salonName, svc.Name, booking.DateLabel(local), booking.TimeLabel(local), booking.ShortID(b.ID()))
	if err := uc.notifier.Send(ctx, b.ClientPhone().String(), msg); err != nil {
		slog.WarnContext(ctx, "failed to send booking confirmation", "booking_id", b.ID(), "error", err.Error())
	}
}

func (uc *wizardCommandsImpl) fail(ctx context.Context, st *wizard.State, cause error) error {
	st.Fail(cause)
	st.UpdatedAt = uc.clock.Now()
	if err := uc.store.Save(ctx, st); err != nil {
		slog.WarnContext(ctx, "failed to save booking session error", "session_id", st.ID, "error", err.Error())
	}
	return cause
}

// mutate applies fn to a loaded session and saves it. A rejected change is not saved.
func (uc *wizardCommandsImpl) mutate(ctx context.Context, sessionID uuid.UUID, fn func(st *wizard.State) error) (*WizardView, error) {
	st, err := uc.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err = fn(st); err != nil {
		return nil, classifyWizardErr(err)
	}
	st.UpdatedAt = uc.clock.Now()
	if err = uc.store.Save(ctx, st); err != nil {
		return nil, err
	}
	return uc.view(ctx, st), nil
}

func (uc *wizardCommandsImpl) view(ctx context.Context, st *wizard.State) *WizardView {
	v := &WizardView{
		State:      st,
		CanAdvance: st.CanAdvance(),
		ShortID:    st.ShortID(),
		Source:     queries.SourceLive,
	}
	if st.ServiceID != nil {
		if svc, src, err := uc.catalog.ServiceByID(ctx, *st.ServiceID); err == nil {
			v.Service = svc
			v.Source = src
			v.BasePrice = svc.Price
			v.Total = st.Total(svc.Price)
		}
	}
	if id := st.MasterID(); id != nil {
		if m, _, err := uc.catalog.MasterByID(ctx, *id); err == nil {
			v.Master = m
		}
	}
	return v
}

func classifyWizardErr(err error) error {
	switch {
	case errs.Is(err, wizard.ErrCompleted):
		return conflict(err)
	case errs.Is(err, wizard.ErrStepIncomplete),
		errs.Is(err, wizard.ErrNotReady),
		errs.Is(err, promotion.ErrPromotionNotFound),
		errs.Is(err, promotion.ErrPromotionNotYetActive),
		errs.Is(err, promotion.ErrPromotionExpired):
		return validation(err)
	default:
		return err
	}
}
