//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Nil(t, actual.MasterID(), "nil master means any master")
		assert.Equal(t, int64(2000), actual.TotalPrice())
		assert.False(t, actual.Reviewed())
		assert.Equal(t, b.StartsAt.Add(90*time.Minute), actual.EndsAt())
	})

	t.Run("short id is the first 8 characters", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		short := booking.ShortID(actual.ID())
		assert.Len(t, short, 8)
		assert.True(t, strings.HasPrefix(actual.ID().String(), short))
	})

	t.Run("contact normalization", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			WithPhone("8 (916) 123-45-67").
			WithEmail(" Anna@Example.COM ").
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "+79161234567", actual.ClientPhone().String())
		assert.Equal(t, "anna@example.com", actual.ClientEmail().String())
	})

	t.Run("promo code is uppercased", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().
			With(func(b *builder.BookingBuilder) { b.PromoCode = " summer2024" }).
			WithPrices(2000, 1700).
			BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "SUMMER2024", actual.PromoCode())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing service",
				mutate: func(b *builder.BookingBuilder) { b.ServiceID = uuid.Nil },
				errIs:  booking.ErrServiceRequired,
			},
			{
				name:   "blank client name",
				mutate: func(b *builder.BookingBuilder) { b.ClientName = "" },
				errIs:  contact.ErrEmptyName,
			},
			{
				name:   "missing phone",
				mutate: func(b *builder.BookingBuilder) { b.WithPhone("") },
				errIs:  contact.ErrEmptyPhone,
			},
			{
				name:   "invalid phone",
				mutate: func(b *builder.BookingBuilder) { b.WithPhone("phone") },
				errIs:  contact.ErrInvalidPhone,
			},
			{
				name:   "email is optional",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("") },
			},
			{
				name:   "invalid email",
				mutate: func(b *builder.BookingBuilder) { b.WithEmail("anna@") },
				errIs:  contact.ErrInvalidEmail,
			},
			{
				name:   "too long comment",
				mutate: func(b *builder.BookingBuilder) { b.Comment = strings.Repeat("я", booking.MaxCommentLength+1) },
				errIs:  booking.ErrCommentTooLong,
			},
			{
				name:   "missing start",
				mutate: func(b *builder.BookingBuilder) { b.WithStartsAt(time.Time{}) },
				errIs:  booking.ErrStartRequired,
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.BookingBuilder) { b.DurationMin = 0 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.BookingBuilder) { b.WithPrices(-1, 0) },
				errIs:  booking.ErrInvalidPrice,
			},
			{
				name:   "total above price",
				mutate: func(b *builder.BookingBuilder) { b.WithPrices(2000, 2100) },
				errIs:  booking.ErrInvalidTotal,
			},
			{
				name:   "free visit",
				mutate: func(b *builder.BookingBuilder) { b.WithPrices(2000, 0) },
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
