package queries

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"

	"github.com/google/uuid"
)

// ServiceView represents read-optimized service data
type ServiceView struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         int64      `json:"price"`
	PriceLabel    string     `json:"price_label"`
	DurationMin   int        `json:"duration_min"`
	DurationLabel string     `json:"duration_label"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CategoryName  string     `json:"category_name,omitempty"`
	Active        bool       `json:"active"`
	SortOrder     int        `json:"sort_order"`
}

// PublicMasterView is a master as anonymous visitors see it: no contact details.
type PublicMasterView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Bio            string    `json:"bio"`
	PhotoURL       string    `json:"photo_url"`
	Active         bool      `json:"active"`
	SortOrder      int       `json:"sort_order"`
}

type MasterView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization"`
	Bio            string    `json:"bio"`
	PhotoURL       string    `json:"photo_url"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Active         bool      `json:"active"`
	SortOrder      int       `json:"sort_order"`
}

type CategoryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type ReviewView struct {
	ID          uuid.UUID  `json:"id"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	MasterID    *uuid.UUID `json:"master_id,omitempty"`
	MasterName  string     `json:"master_name,omitempty"`
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	ServiceName string     `json:"service_name,omitempty"`
	ClientName  string     `json:"client_name"`
	Rating      int        `json:"rating"`
	Comment     string     `json:"comment"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PromotionView struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Code            string     `json:"code"`
	DiscountPercent *float64   `json:"discount_percent,omitempty"`
	DiscountAmount  *int64     `json:"discount_amount,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
}

type GalleryView struct {
	ID          uuid.UUID `json:"id"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	Visible     bool      `json:"visible"`
	SortOrder   int       `json:"sort_order"`
}

// BookingView is a booking joined with its service and master names.
type BookingView struct {
	ID          uuid.UUID      `json:"id"`
	ShortID     string         `json:"short_id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	ServiceID   uuid.UUID      `json:"service_id"`
	ServiceName string         `json:"service_name"`
	MasterID    *uuid.UUID     `json:"master_id,omitempty"`
	MasterName  string         `json:"master_name,omitempty"`
	ClientName  string         `json:"client_name"`
	ClientPhone string         `json:"client_phone"`
	ClientEmail string         `json:"client_email,omitempty"`
	Comment     string         `json:"comment,omitempty"`
	StartsAt    time.Time      `json:"starts_at"`
	DateLabel   string         `json:"date_label"`
	TimeLabel   string         `json:"time_label"`
	DurationMin int            `json:"duration_min"`
	Price       int64          `json:"price"`
	TotalPrice  int64          `json:"total_price"`
	Status      booking.Status `json:"status"`
	PromoCode   string         `json:"promo_code,omitempty"`
	Reviewed    bool           `json:"reviewed"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ClientView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	VisitCount int       `json:"visit_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type BlacklistView struct {
	ID        uuid.UUID `json:"id"`
	Phone     string    `json:"phone"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone,omitempty"`
	IsActive bool      `json:"is_active"`
}

// withLabels fills the display fields derived from StartsAt in loc.
func (b BookingView) withLabels(loc *time.Location) BookingView {
	local := b.StartsAt.In(loc)
	b.ShortID = booking.ShortID(b.ID)
	b.DateLabel = booking.DateLabel(local)
	b.TimeLabel = booking.TimeLabel(local)
	return b
}
