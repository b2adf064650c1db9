//go:build unit || e2e

package builder

import (
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"

	"github.com/google/uuid"
)

type PromotionBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Code            string
	DiscountPercent *float64
	DiscountAmount  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Active          bool
	CreatedAt       time.Time
}

// NewPromotionBuilder starts from the seeded summer campaign: 15% off.
func NewPromotionBuilder() *PromotionBuilder {
	percent := 15.0
	return &PromotionBuilder{
		ID:              uuid.New(),
		Name:            "Летняя акция",
		Description:     "Скидка 15% на все услуги",
		Code:            "SUMMER2024",
		DiscountPercent: &percent,
		Active:          true,
		CreatedAt:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) Params() promotion.Params {
	return promotion.Params{
		Name:            p.Name,
		Description:     p.Description,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  p.DiscountAmount,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Active:          p.Active,
	}
}

// Build methods
func (p *PromotionBuilder) BuildDomain() (*promotion.Promotion, error) {
	return promotion.NewPromotion(p.Params(), p.CreatedAt)
}

func (p *PromotionBuilder) BuildStored() *promotion.Promotion {
	return promotion.Reconstruct(p.ID, p.Params(), p.CreatedAt)
}

func (p *PromotionBuilder) BuildView() queries.PromotionView {
	return queries.PromotionView{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Code:            p.Code,
		DiscountPercent: p.DiscountPercent,
		DiscountAmount:  p.DiscountAmount,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PromotionBuilder) WithCode(code string) *PromotionBuilder {
	p.Code = code
	return p
}

func (p *PromotionBuilder) WithName(name string) *PromotionBuilder {
	p.Name = name
	return p
}

func (p *PromotionBuilder) WithPercent(percent float64) *PromotionBuilder {
	p.DiscountPercent = &percent
	return p
}

func (p *PromotionBuilder) WithAmount(amount int64) *PromotionBuilder {
	p.DiscountAmount = &amount
	return p
}

func (p *PromotionBuilder) AsFixed(amount int64) *PromotionBuilder {
	p.DiscountPercent = nil
	p.DiscountAmount = &amount
	return p
}

func (p *PromotionBuilder) WithPeriod(start, end *time.Time) *PromotionBuilder {
	p.StartDate = start
	p.EndDate = end
	return p
}

func (p *PromotionBuilder) AsInactive() *PromotionBuilder {
	p.Active = false
	return p
}
