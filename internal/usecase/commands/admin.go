package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/blacklist"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/catalog"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceInput struct {
	Name        string
	Description string
	Price       int64
	DurationMin int
	CategoryID  *uuid.UUID
	Active      bool
	SortOrder   int
}

type MasterInput struct {
	Name           string
	Specialization string
	Bio            string
	PhotoURL       string
	Phone          string
	Email          string
	Active         bool
	SortOrder      int
}

type CategoryInput struct {
	Name      string
	SortOrder int
}

type GalleryInput struct {
	ImageURL    string
	Description string
	Visible     bool
	SortOrder   int
}

type PromotionInput struct {
	Name            string
	Description     string
	Code            string
	DiscountPercent *float64
	DiscountAmount  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Active          bool
}

type ClientInput struct {
	Name  string
	Phone string
	Email string
}

type BlacklistInput struct {
	Phone  string
	Reason string
}

// BookingUpdateInput reschedules a booking; the date and time use the booking form labels.
// BookingUpdateInput rewrites a booking. A zero Year keeps the year the booking already has.
type BookingUpdateInput struct {
	MasterID  *uuid.UUID
	DateLabel string
	TimeLabel string
	Year      int
	Comment   string
}

type AdminCommands interface {
	CreateService(ctx context.Context, in ServiceInput) (uuid.UUID, error)
	UpdateService(ctx context.Context, id uuid.UUID, in ServiceInput) error
	DeleteService(ctx context.Context, id uuid.UUID) error

	CreateMaster(ctx context.Context, in MasterInput) (uuid.UUID, error)
	UpdateMaster(ctx context.Context, id uuid.UUID, in MasterInput) error
	DeleteMaster(ctx context.Context, id uuid.UUID) error
	LinkMasterUser(ctx context.Context, masterID, userID uuid.UUID) error

	CreateCategory(ctx context.Context, in CategoryInput) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateGalleryItem(ctx context.Context, in GalleryInput) (uuid.UUID, error)
	UpdateGalleryItem(ctx context.Context, id uuid.UUID, in GalleryInput) error
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error

	CreatePromotion(ctx context.Context, in PromotionInput) (uuid.UUID, error)
	UpdatePromotion(ctx context.Context, id uuid.UUID, in PromotionInput) error
	DeletePromotion(ctx context.Context, id uuid.UUID) error

	CreateClient(ctx context.Context, in ClientInput) (uuid.UUID, error)
	UpdateClient(ctx context.Context, id uuid.UUID, in ClientInput) error
	DeleteClient(ctx context.Context, id uuid.UUID) error

	AddToBlacklist(ctx context.Context, in BlacklistInput) (uuid.UUID, error)
	RemoveFromBlacklist(ctx context.Context, id uuid.UUID) error

	UpdateBooking(ctx context.Context, id uuid.UUID, in BookingUpdateInput) error
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	cache CatalogCache
	clock clock.Clock
	loc   *time.Location
}

func NewAdminCommands(uow shared.UnitOfWork, cache CatalogCache, clk clock.Clock, loc *time.Location) AdminCommands {
	return &adminCommandsImpl{uow: uow, cache: cache, clock: clk, loc: loc}
}

// ---- services ----

func (uc *adminCommandsImpl) CreateService(ctx context.Context, in ServiceInput) (uuid.UUID, error) {
	svc, err := catalog.NewService(catalog.ServiceParams(in))
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return svc.ID(), uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Services().Create(ctx, svc))
	})
}

func (uc *adminCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, in ServiceInput) error {
	svc, err := catalog.UpdateService(id, catalog.ServiceParams(in))
	if err != nil {
		return validation(err)
	}
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Services().Update(ctx, svc))
	})
}

func (uc *adminCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Services().Delete(ctx, id))
	})
}

// ---- masters ----

func (uc *adminCommandsImpl) CreateMaster(ctx context.Context, in MasterInput) (uuid.UUID, error) {
	m, err := catalog.NewMaster(catalog.MasterParams(in))
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return m.ID(), uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Masters().Create(ctx, m))
	})
}

func (uc *adminCommandsImpl) UpdateMaster(ctx context.Context, id uuid.UUID, in MasterInput) error {
	m, err := catalog.UpdateMaster(id, catalog.MasterParams(in))
	if err != nil {
		return validation(err)
	}
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Masters().Update(ctx, m))
	})
}

func (uc *adminCommandsImpl) DeleteMaster(ctx context.Context, id uuid.UUID) error {
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Masters().Delete(ctx, id))
	})
}

func (uc *adminCommandsImpl) LinkMasterUser(ctx context.Context, masterID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Masters().LinkUser(ctx, masterID, userID))
	})
}

// ---- categories ----

func (uc *adminCommandsImpl) CreateCategory(ctx context.Context, in CategoryInput) (uuid.UUID, error) {
	c, err := catalog.NewCategory(uuid.Nil, in.Name, in.SortOrder)
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return c.ID(), uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Categories().Create(ctx, c))
	})
}

func (uc *adminCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) error {
	c, err := catalog.NewCategory(id, in.Name, in.SortOrder)
	if err != nil {
		return validation(err)
	}
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Categories().Update(ctx, c))
	})
}

func (uc *adminCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Categories().Delete(ctx, id))
	})
}

// ---- gallery ----

func (uc *adminCommandsImpl) CreateGalleryItem(ctx context.Context, in GalleryInput) (uuid.UUID, error) {
	g, err := catalog.NewGalleryItem(uuid.Nil, in.ImageURL, in.Description, in.Visible, in.SortOrder)
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return g.ID(), uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Gallery().Create(ctx, g))
	})
}

func (uc *adminCommandsImpl) UpdateGalleryItem(ctx context.Context, id uuid.UUID, in GalleryInput) error {
	g, err := catalog.NewGalleryItem(id, in.ImageURL, in.Description, in.Visible, in.SortOrder)
	if err != nil {
		return validation(err)
	}
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Gallery().Update(ctx, g))
	})
}

func (uc *adminCommandsImpl) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Gallery().Delete(ctx, id))
	})
}

// ---- promotions ----

func (uc *adminCommandsImpl) CreatePromotion(ctx context.Context, in PromotionInput) (uuid.UUID, error) {
	p, err := promotion.NewPromotion(promotion.Params(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return p.ID(), uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Promotions().Create(ctx, p))
	})
}

func (uc *adminCommandsImpl) UpdatePromotion(ctx context.Context, id uuid.UUID, in PromotionInput) error {
	p, err := promotion.UpdatePromotion(id, promotion.Params(in))
	if err != nil {
		return validation(err)
	}
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Promotions().Update(ctx, p))
	})
}

func (uc *adminCommandsImpl) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	return uc.catalogWrite(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Promotions().Delete(ctx, id))
	})
}

// ---- clients ----

func (uc *adminCommandsImpl) CreateClient(ctx context.Context, in ClientInput) (uuid.UUID, error) {
	c, err := client.NewClient(uuid.Nil, in.Name, in.Phone, in.Email, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return c.ID(), uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Clients().Create(ctx, c))
	})
}

func (uc *adminCommandsImpl) UpdateClient(ctx context.Context, id uuid.UUID, in ClientInput) error {
	c, err := client.NewClient(id, in.Name, in.Phone, in.Email, uc.clock.Now())
	if err != nil {
		return validation(err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Clients().Update(ctx, c))
	})
}

func (uc *adminCommandsImpl) DeleteClient(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Clients().Delete(ctx, id))
	})
}

// ---- blacklist ----

func (uc *adminCommandsImpl) AddToBlacklist(ctx context.Context, in BlacklistInput) (uuid.UUID, error) {
	e, err := blacklist.NewEntry(in.Phone, in.Reason, uc.clock.Now())
	if err != nil {
		return uuid.Nil, validation(err)
	}
	return e.ID(), uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapWriteErr(tx.Blacklist().Create(ctx, e))
	})
}

func (uc *adminCommandsImpl) RemoveFromBlacklist(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Blacklist().Delete(ctx, id))
	})
}

// ---- bookings ----

func (uc *adminCommandsImpl) UpdateBooking(ctx context.Context, id uuid.UUID, in BookingUpdateInput) error {
	if err := booking.ValidateTimeLabel(in.TimeLabel); err != nil {
		return validation(err)
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().BookingForUpdate(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return derr
		}
		if snap.Status.IsTerminal() {
			return conflict(booking.ErrTerminalStatus)
		}
		year := in.Year
		if year == 0 {
			year = snap.StartsAt.In(uc.loc).Year()
		}
		startsAt, err := booking.ParseSlot(in.DateLabel, in.TimeLabel, year, uc.loc)
		if err != nil {
			return validation(err)
		}
		return mapWriteErr(tx.Bookings().Reschedule(ctx, id, in.MasterID, startsAt, in.Comment))
	})
}

func (uc *adminCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return mapDeleteErr(tx.Bookings().Delete(ctx, id))
	})
}

// catalogWrite runs fn and drops the cached public listings once it commits.
func (uc *adminCommandsImpl) catalogWrite(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := uc.uow.Within(ctx, fn); err != nil {
		return err
	}
	if err := uc.cache.Invalidate(ctx); err != nil {
		slog.WarnContext(ctx, "failed to invalidate catalog cache", "error", err.Error())
	}
	return nil
}
