//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/contact"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/review"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReviewBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, b.CreatedAt, actual.CreatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Отличная работа!", actual.Comment().String())
		assert.Equal(t, "Анна Смирнова", actual.ClientName().String())
		assert.Equal(t, b.BookingID, actual.BookingID())
		assert.False(t, actual.IsPublished(), "client reviews start unpublished")
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "negative rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(-1) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty comment is allowed",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("") },
			},
			{
				name:   "maximum length counted in runes",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("я", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("client name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.ReviewBuilder) { b.WithClientName("  ") },
				errIs:  contact.ErrEmptyName,
			},
			{
				name:   "too long name",
				mutate: func(b *builder.ReviewBuilder) { b.WithClientName(strings.Repeat("a", contact.MaxNameLength+1)) },
				errIs:  contact.ErrNameTooLong,
			},
		})
	})

	t.Run("admin review without booking", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().WithoutBooking().AsPublished().BuildDomain()
		require.NoError(t, err)

		assert.Nil(t, actual.BookingID())
		assert.True(t, actual.IsPublished())
	})

	t.Run("comment trimming", func(t *testing.T) {
		actual, err := review.NewReview(uuid.Nil, review.Params{
			ClientName: "Мария",
			Rating:     4,
			Comment:    "  Trimmed comment  ",
		}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, "Trimmed comment", actual.Comment().String())
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		id := uuid.New()
		actual, err := review.NewReview(id, review.Params{ClientName: "Мария", Rating: 5}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, id, actual.ID())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		review1, err1 := builder.NewReviewBuilder().BuildDomain()
		review2, err2 := builder.NewReviewBuilder().BuildDomain()

		require.NoError(t, err1)
		require.NoError(t, err2)

		assert.NotEqual(t, review1.ID(), review2.ID())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
