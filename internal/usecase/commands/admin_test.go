//go:build unit

package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"
	commandsmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminCommandsTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	tx        *txMocks
	mockCache *commandsmock.MockCatalogCache
	loc       *time.Location
	commands  commands.AdminCommands
}

func (s *AdminCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.tx = newTxMocks(s.mockCtrl)
	s.mockCache = commandsmock.NewMockCatalogCache(s.mockCtrl)
	s.loc = time.FixedZone("MSK", 3*60*60)
	// late December, so a January label would roll over for a client booking
	clk := clock.NewMockClock(time.Date(2024, 12, 20, 12, 0, 0, 0, s.loc))
	s.commands = commands.NewAdminCommands(s.tx.uow, s.mockCache, clk, s.loc)
}

func (s *AdminCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(AdminCommandsTestSuite))
}

func (s *AdminCommandsTestSuite) expectReschedule(id uuid.UUID, expected time.Time) {
	s.tx.bookings.EXPECT().Reschedule(gomock.Any(), id, gomock.Any(), gomock.Any(), "перенос").
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ *uuid.UUID, startsAt time.Time, _ string) error {
			s.True(expected.Equal(startsAt), "got %s, want %s", startsAt, expected)
			return nil
		})
}

func (s *AdminCommandsTestSuite) TestUpdateBooking() {
	id := uuid.New()
	snap := &shared.BookingSnapshot{
		ID:       id,
		Status:   booking.StatusConfirmed,
		StartsAt: time.Date(2024, 12, 18, 10, 0, 0, 0, s.loc),
	}

	s.Run("earlier date stays in the booking's year", func() {
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).Return(snap, nil)
		s.expectReschedule(id, time.Date(2024, 1, 5, 11, 0, 0, 0, s.loc))

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "5 января", TimeLabel: "11:00", Comment: "перенос",
		})

		s.Require().NoError(err)
	})

	s.Run("explicit year moves across the new year", func() {
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).Return(snap, nil)
		s.expectReschedule(id, time.Date(2025, 1, 5, 11, 0, 0, 0, s.loc))

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "5 января", TimeLabel: "11:00", Year: 2025, Comment: "перенос",
		})

		s.Require().NoError(err)
	})

	s.Run("year follows the salon zone", func() {
		utcEve := &shared.BookingSnapshot{
			ID:       id,
			Status:   booking.StatusPending,
			StartsAt: time.Date(2024, 12, 31, 22, 0, 0, 0, time.UTC),
		}
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).Return(utcEve, nil)
		s.expectReschedule(id, time.Date(2025, 1, 2, 10, 0, 0, 0, s.loc))

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "2 января", TimeLabel: "10:00", Comment: "перенос",
		})

		s.Require().NoError(err)
	})

	s.Run("impossible date", func() {
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).Return(snap, nil)

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "31 февраля", TimeLabel: "11:00",
		})

		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("malformed time", func() {
		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "5 января", TimeLabel: "25:99",
		})

		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("finished booking is a conflict", func() {
		done := *snap
		done.Status = booking.StatusCompleted
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).Return(&done, nil)

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "5 января", TimeLabel: "11:00",
		})

		s.True(errs.Is(err, errs.ErrConflict))
	})

	s.Run("missing booking", func() {
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "booking not found", nil))

		err := s.commands.UpdateBooking(context.Background(), id, commands.BookingUpdateInput{
			DateLabel: "5 января", TimeLabel: "11:00",
		})

		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
