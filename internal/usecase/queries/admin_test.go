//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"
	queriesmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       queries.ListParams
		expected queries.ListParams
	}{
		{
			name:     "defaults",
			in:       queries.ListParams{},
			expected: queries.ListParams{Page: 1, PerPage: queries.DefaultPerPage},
		},
		{
			name:     "per page is capped",
			in:       queries.ListParams{Page: 3, PerPage: 10000},
			expected: queries.ListParams{Page: 3, PerPage: queries.MaxPerPage},
		},
		{
			name:     "search is trimmed",
			in:       queries.ListParams{Query: "  Анна ", Status: " pending ", Page: -2, PerPage: 20},
			expected: queries.ListParams{Query: "Анна", Status: "pending", Page: 1, PerPage: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

func TestAdminQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockAdminReadStore(ctrl)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	loc := time.UTC
	now := time.Date(2024, 6, 15, 13, 0, 0, 0, loc)
	q := queries.NewAdminQueries(store, bookings, clock.NewMockClock(now), loc)

	t.Run("bookings page translates to limit and offset", func(t *testing.T) {
		flag := true
		view := builder.NewBookingBuilder().BuildView()
		view.ShortID, view.DateLabel = "", ""
		store.EXPECT().Bookings(gomock.Any(), queries.ListFilter{Search: "анна", Status: "pending", Flag: &flag, Limit: 20, Offset: 40}).
			Return([]queries.BookingView{view}, 41, nil)

		page, err := q.Bookings(context.Background(), queries.ListParams{Query: "анна", Status: "pending", Flag: &flag, Page: 3, PerPage: 20})
		require.NoError(t, err)

		assert.Equal(t, 41, page.Total)
		assert.Equal(t, 3, page.Page)
		require.Len(t, page.Items, 1)
		assert.Len(t, page.Items[0].ShortID, 8)
		assert.Equal(t, "12 июня", page.Items[0].DateLabel)
	})

	t.Run("unknown status filter is rejected before reading", func(t *testing.T) {
		_, err := q.Bookings(context.Background(), queries.ListParams{Status: "archived"})
		assert.ErrorIs(t, err, queries.ErrInvalidStatusFilter)
	})

	t.Run("oversized page is capped at 500", func(t *testing.T) {
		store.EXPECT().Clients(gomock.Any(), queries.ListFilter{Limit: queries.MaxPerPage}).Return(nil, 0, nil)

		page, err := q.Clients(context.Background(), queries.ListParams{PerPage: 5000})
		require.NoError(t, err)
		assert.Equal(t, queries.MaxPerPage, page.PerPage)
		assert.NotNil(t, page.Items)
	})

	t.Run("services get labels", func(t *testing.T) {
		store.EXPECT().Services(gomock.Any(), gomock.Any()).
			Return([]queries.ServiceView{{Name: "Коррекция бровей", Price: 800, DurationMin: 30}}, 1, nil)

		page, err := q.Services(context.Background(), queries.ListParams{})
		require.NoError(t, err)
		assert.Equal(t, "800 ₽", page.Items[0].PriceLabel)
		assert.Equal(t, "30 мин.", page.Items[0].DurationLabel)
	})

	t.Run("missing booking", func(t *testing.T) {
		id := uuid.New()
		bookings.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := q.Booking(context.Background(), id)
		assert.ErrorIs(t, err, queries.ErrBookingNotFound)
	})

	t.Run("summary uses day and month starts", func(t *testing.T) {
		store.EXPECT().Summary(gomock.Any(),
			time.Date(2024, 6, 15, 0, 0, 0, 0, loc),
			time.Date(2024, 6, 1, 0, 0, 0, 0, loc)).
			Return(&queries.AdminSummary{PendingBookings: 2}, nil)

		s, err := q.Summary(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, s.PendingBookings)
	})
}
