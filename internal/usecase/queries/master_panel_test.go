//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
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

var notFound = infra.RepositoryError{Kind: infra.KindNotFound}

func TestResolveMaster(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := queriesmock.NewMockUserQueries(ctrl)
	masters := queriesmock.NewMockMasterReadStore(ctrl)
	q := queries.NewMasterPanelQueries(users, masters, queriesmock.NewMockBookingReadStore(ctrl), clock.NewMockClock(time.Now()), time.UTC)

	userID := uuid.New()
	master := &queries.MasterView{ID: uuid.New(), Name: "Екатерина", Email: "kate@salon.ru"}

	t.Run("account link wins", func(t *testing.T) {
		masters.EXPECT().FindByUserLink(gomock.Any(), userID).Return(master, nil)

		m, err := q.ResolveMaster(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, master.ID, m.ID)
	})

	t.Run("falls back to email", func(t *testing.T) {
		masters.EXPECT().FindByUserLink(gomock.Any(), userID).Return(nil, notFound)
		users.EXPECT().GetCurrentUser(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Email: "kate@salon.ru", IsActive: true}, nil)
		masters.EXPECT().FindByEmail(gomock.Any(), "kate@salon.ru").Return(master, nil)

		m, err := q.ResolveMaster(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, master.ID, m.ID)
	})

	t.Run("no profile", func(t *testing.T) {
		masters.EXPECT().FindByUserLink(gomock.Any(), userID).Return(nil, notFound)
		users.EXPECT().GetCurrentUser(gomock.Any(), userID).
			Return(&queries.AuthorizedUserView{ID: userID, Email: "other@salon.ru", IsActive: true}, nil)
		masters.EXPECT().FindByEmail(gomock.Any(), "other@salon.ru").Return(nil, notFound)

		_, err := q.ResolveMaster(context.Background(), userID)
		assert.ErrorIs(t, err, queries.ErrMasterProfileNotFound)
	})

	t.Run("link lookup failure is not masked", func(t *testing.T) {
		boom := errors.New("boom")
		masters.EXPECT().FindByUserLink(gomock.Any(), userID).Return(nil, boom)

		_, err := q.ResolveMaster(context.Background(), userID)
		assert.ErrorIs(t, err, boom)
	})
}

func TestMasterDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := queriesmock.NewMockUserQueries(ctrl)
	masters := queriesmock.NewMockMasterReadStore(ctrl)
	bookings := queriesmock.NewMockBookingReadStore(ctrl)
	loc := time.UTC
	// Wednesday
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, loc)
	q := queries.NewMasterPanelQueries(users, masters, bookings, clock.NewMockClock(now), loc)

	userID := uuid.New()
	master := &queries.MasterView{ID: uuid.New(), Name: "Екатерина"}
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, loc)

	today := builder.NewBookingBuilder().WithStartsAt(time.Date(2024, 6, 12, 14, 0, 0, 0, loc)).
		WithStatus(booking.StatusConfirmed).BuildView()
	friday := builder.NewBookingBuilder().WithStartsAt(time.Date(2024, 6, 14, 11, 0, 0, 0, loc)).BuildView()

	masters.EXPECT().FindByUserLink(gomock.Any(), userID).Return(master, nil)
	bookings.EXPECT().FindForMaster(gomock.Any(), master.ID, monday, monday.AddDate(0, 0, 7)).
		Return([]queries.BookingView{today, friday}, nil)

	d, err := q.Dashboard(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, master.Name, d.Master.Name)
	assert.Len(t, d.Week, 2)
	require.Len(t, d.Today, 1)
	assert.Equal(t, today.ID, d.Today[0].ID)
	assert.Equal(t, []booking.Status{booking.StatusCompleted, booking.StatusCancelled}, d.Today[0].Actions)
}
