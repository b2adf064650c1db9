package promotion

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound     = errors.New("promo code not found")
	ErrPromotionNotYetActive = errors.New("promo code is not yet active")
	ErrPromotionExpired      = errors.New("promo code has expired")
	ErrEmptyName             = errors.New("promotion name cannot be empty")
	ErrInvalidPeriod         = errors.New("promotion end date is before its start date")
)

type Promotion struct {
	id          uuid.UUID
	name        string
	description string
	code        Code
	discount    Discount
	startDate   *time.Time
	endDate     *time.Time
	active      bool
	createdAt   time.Time
}

type Params struct {
	Name            string
	Description     string
	Code            string
	DiscountPercent *float64
	DiscountAmount  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Active          bool
}

func NewPromotion(p Params, now time.Time) (*Promotion, error) {
	promo, err := build(uuid.New(), p)
	if err != nil {
		return nil, err
	}
	promo.createdAt = now
	return promo, nil
}

// UpdatePromotion validates a full replacement of an existing promotion.
func UpdatePromotion(id uuid.UUID, p Params) (*Promotion, error) {
	return build(id, p)
}

// Reconstruct rebuilds a stored promotion; rows written before validation existed are tolerated.
func Reconstruct(id uuid.UUID, p Params, createdAt time.Time) *Promotion {
	discount, err := NewDiscount(p.DiscountPercent, p.DiscountAmount)
	if err != nil {
		discount = NoDiscount()
	}
	return &Promotion{
		id:          id,
		name:        p.Name,
		description: p.Description,
		code:        Code(NormalizeCode(p.Code)),
		discount:    discount,
		startDate:   p.StartDate,
		endDate:     p.EndDate,
		active:      p.Active,
		createdAt:   createdAt,
	}
}

func build(id uuid.UUID, p Params) (*Promotion, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	code, err := NewCode(p.Code)
	if err != nil {
		return nil, err
	}
	discount, err := NewDiscount(p.DiscountPercent, p.DiscountAmount)
	if err != nil {
		return nil, err
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return nil, ErrInvalidPeriod
	}
	return &Promotion{
		id:          id,
		name:        name,
		description: strings.TrimSpace(p.Description),
		code:        code,
		discount:    discount,
		startDate:   p.StartDate,
		endDate:     p.EndDate,
		active:      p.Active,
	}, nil
}

// CheckUsable reports why the promotion cannot be applied at now.
// The end date is inclusive: a promotion ending today is still usable today.
func (p *Promotion) CheckUsable(now time.Time) error {
	if !p.active {
		return ErrPromotionNotFound
	}
	if p.startDate != nil && now.Before(*p.startDate) {
		return ErrPromotionNotYetActive
	}
	if p.endDate != nil && !now.Before(p.endDate.AddDate(0, 0, 1)) {
		return ErrPromotionExpired
	}
	return nil
}

func (p *Promotion) ApplyTo(price int64) int64 {
	return p.discount.Apply(price)
}

func (p *Promotion) ID() uuid.UUID         { return p.id }
func (p *Promotion) Name() string          { return p.name }
func (p *Promotion) Description() string   { return p.description }
func (p *Promotion) Code() Code            { return p.code }
func (p *Promotion) Discount() Discount    { return p.discount }
func (p *Promotion) StartDate() *time.Time { return p.startDate }
func (p *Promotion) EndDate() *time.Time   { return p.endDate }
func (p *Promotion) IsActive() bool        { return p.active }
func (p *Promotion) CreatedAt() time.Time  { return p.createdAt }
