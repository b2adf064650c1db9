//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestDiscountApply(t *testing.T) {
	tests := []struct {
		name     string
		percent  *float64
		amount   *int64
		price    int64
		expected int64
	}{
		{name: "percent off", percent: ptr(15.0), price: 2000, expected: 1700},
		{name: "percent rounds half away from zero", percent: ptr(10.0), price: 1505, expected: 1355},
		{name: "fractional percent", percent: ptr(12.5), price: 1000, expected: 875},
		{name: "full percent is free", percent: ptr(100.0), price: 2000, expected: 0},
		{name: "fixed amount", amount: ptr(int64(300)), price: 2000, expected: 1700},
		{name: "fixed amount floors at zero", amount: ptr(int64(5000)), price: 2000, expected: 0},
		{name: "percent wins over amount", percent: ptr(50.0), amount: ptr(int64(100)), price: 2000, expected: 1000},
		{name: "no discount", price: 2000, expected: 2000},
		{name: "zero price", percent: ptr(15.0), price: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := promotion.NewDiscount(tt.percent, tt.amount)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, d.Apply(tt.price))
		})
	}
}

func TestNewDiscountValidation(t *testing.T) {
	_, err := promotion.NewPercentDiscount(101)
	require.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)

	_, err = promotion.NewPercentDiscount(-1)
	require.ErrorIs(t, err, promotion.ErrInvalidDiscountPercent)

	_, err = promotion.NewFixedDiscount(-10)
	require.ErrorIs(t, err, promotion.ErrInvalidDiscountAmount)

	d, err := promotion.NewFixedDiscount(250)
	require.NoError(t, err)
	assert.True(t, d.IsFixed())
	assert.False(t, d.IsPercent())
	assert.True(t, promotion.NoDiscount().IsZero())
}

func TestNewCode(t *testing.T) {
	code, err := promotion.NewCode("  summer2024 ")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER2024", code.String())

	for _, bad := range []string{"", "AB", "BAD CODE", "ЛЕТО"} {
		_, err := promotion.NewCode(bad)
		assert.ErrorIs(t, err, promotion.ErrInvalidCode, bad)
	}
}

func TestPromotion(t *testing.T) {
	t.Run("seeded summer promotion gives 1700 on 2000", func(t *testing.T) {
		p, err := builder.NewPromotionBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, int64(1700), p.ApplyTo(2000))
		assert.Equal(t, "SUMMER2024", p.Code().String())
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*builder.PromotionBuilder)
			errIs  error
		}{
			{
				name:   "blank name",
				mutate: func(b *builder.PromotionBuilder) { b.WithName("  ") },
				errIs:  promotion.ErrEmptyName,
			},
			{
				name:   "bad code",
				mutate: func(b *builder.PromotionBuilder) { b.WithCode("x") },
				errIs:  promotion.ErrInvalidCode,
			},
			{
				name:   "percent out of range",
				mutate: func(b *builder.PromotionBuilder) { b.WithPercent(120) },
				errIs:  promotion.ErrInvalidDiscountPercent,
			},
			{
				name: "end before start",
				mutate: func(b *builder.PromotionBuilder) {
					start := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
					end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
					b.WithPeriod(&start, &end)
				},
				errIs: promotion.ErrInvalidPeriod,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := builder.NewPromotionBuilder().With(tt.mutate).BuildDomain()
				require.Nil(t, p)
				require.ErrorIs(t, err, tt.errIs)
			})
		}
	})

	t.Run("usable window", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC)
		p := builder.NewPromotionBuilder().WithPeriod(&start, &end).BuildStored()

		assert.ErrorIs(t, p.CheckUsable(start.Add(-time.Hour)), promotion.ErrPromotionNotYetActive)
		assert.NoError(t, p.CheckUsable(start))
		assert.NoError(t, p.CheckUsable(end.Add(23*time.Hour)), "end date is inclusive")
		assert.ErrorIs(t, p.CheckUsable(end.AddDate(0, 0, 1)), promotion.ErrPromotionExpired)
	})

	t.Run("inactive promotion is reported as not found", func(t *testing.T) {
		p := builder.NewPromotionBuilder().AsInactive().BuildStored()

		assert.ErrorIs(t, p.CheckUsable(time.Now()), promotion.ErrPromotionNotFound)
	})

	t.Run("stored rows with invalid discount apply nothing", func(t *testing.T) {
		p := builder.NewPromotionBuilder().WithPercent(250).BuildStored()

		assert.True(t, p.Discount().IsZero())
		assert.Equal(t, int64(2000), p.ApplyTo(2000))
	})
}
