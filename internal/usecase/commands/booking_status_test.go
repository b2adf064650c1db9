//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/shared"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"
	commandsmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/commands"
	sharedmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// txMocks wires a unit of work whose Within runs the callback against mocked repositories.
type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	reviews  *sharedmock.MockReviewRepository
	users    *sharedmock.MockUserRepository
	resets   *sharedmock.MockPasswordResetRepository
}

func newTxMocks(ctrl *gomock.Controller) *txMocks {
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		reviews:  sharedmock.NewMockReviewRepository(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		resets:   sharedmock.NewMockPasswordResetRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Reviews().Return(m.reviews).AnyTimes()
	m.tx.EXPECT().Users().Return(m.users).AnyTimes()
	m.tx.EXPECT().PasswordResets().Return(m.resets).AnyTimes()
	return m
}

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	tx           *txMocks
	mockMasters  *commandsmock.MockMasterResolver
	mockNotifier *commandsmock.MockNotifier
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.tx = newTxMocks(s.mockCtrl)
	s.mockMasters = commandsmock.NewMockMasterResolver(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.commands = commands.NewBookingCommands(s.tx.uow, s.mockMasters, s.mockNotifier, time.UTC)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestAdmin() {
	s.Run("confirm notifies the client", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusConfirmed).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), snap.ClientPhone, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body string) error {
				s.Contains(body, booking.ShortID(snap.ID))
				s.Contains(body, "подтверждена")
				return nil
			})

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusConfirmed, Actor: booking.ActorAdmin,
		})
		s.NoError(err)
	})

	s.Run("complete sends nothing", func() {
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusConfirmed).BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusCompleted).Return(nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusCompleted, Actor: booking.ActorAdmin,
		})
		s.NoError(err)
	})

	s.Run("terminal booking is a conflict", func() {
		snap := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusConfirmed, Actor: booking.ActorAdmin,
		})
		s.ErrorIs(err, booking.ErrTerminalStatus)
		s.True(errs.Is(err, errs.ErrConflict))
	})
}

func (s *BookingCommandsTestSuite) TestClient() {
	userID := uuid.New()

	s.Run("owner by phone may cancel", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.reads.EXPECT().UserByID(gomock.Any(), userID).
			Return(&shared.UserSnapshot{ID: userID, Phone: "8 (916) 123-45-67"}, nil)
		s.tx.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusCancelled).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusCancelled, Actor: booking.ActorClient, ActorID: userID,
		})
		s.NoError(err)
	})

	s.Run("client can never complete", func() {
		snap := builder.NewBookingBuilder().WithUserID(userID).WithStatus(booking.StatusConfirmed).BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.reads.EXPECT().UserByID(gomock.Any(), userID).Return(&shared.UserSnapshot{ID: userID}, nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusCompleted, Actor: booking.ActorClient, ActorID: userID,
		})
		s.ErrorIs(err, booking.ErrIllegalTransition)
	})

	s.Run("someone else's booking", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.reads.EXPECT().UserByID(gomock.Any(), userID).
			Return(&shared.UserSnapshot{ID: userID, Email: "other@example.com", Phone: "+79990000000"}, nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusCancelled, Actor: booking.ActorClient, ActorID: userID,
		})
		s.ErrorIs(err, commands.ErrBookingNotOwned)
		s.True(errs.Is(err, errs.ErrForbidden))
	})
}

func (s *BookingCommandsTestSuite) TestMaster() {
	userID := uuid.New()
	master := &queries.MasterView{ID: uuid.New()}

	s.Run("own booking", func() {
		snap := builder.NewBookingBuilder().WithMaster(master.ID, "").WithStatus(booking.StatusConfirmed).BuildSnapshot()
		s.mockMasters.EXPECT().ResolveMaster(gomock.Any(), userID).Return(master, nil)
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusCompleted).Return(nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusCompleted, Actor: booking.ActorMaster, ActorID: userID,
		})
		s.NoError(err)
	})

	s.Run("unassigned booking is open", func() {
		snap := builder.NewBookingBuilder().BuildSnapshot()
		s.mockMasters.EXPECT().ResolveMaster(gomock.Any(), userID).Return(master, nil)
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.tx.bookings.EXPECT().UpdateStatus(gomock.Any(), snap.ID, booking.StatusConfirmed).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusConfirmed, Actor: booking.ActorMaster, ActorID: userID,
		})
		s.NoError(err)
	})

	s.Run("another master's booking", func() {
		snap := builder.NewBookingBuilder().WithMaster(uuid.New(), "").BuildSnapshot()
		s.mockMasters.EXPECT().ResolveMaster(gomock.Any(), userID).Return(master, nil)
		s.tx.reads.EXPECT().BookingForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: snap.ID, Status: booking.StatusConfirmed, Actor: booking.ActorMaster, ActorID: userID,
		})
		s.ErrorIs(err, commands.ErrBookingNotOwned)
	})

	s.Run("account without a master profile", func() {
		s.mockMasters.EXPECT().ResolveMaster(gomock.Any(), userID).Return(nil, queries.ErrMasterProfileNotFound)

		err := s.commands.ChangeStatus(context.Background(), commands.ChangeStatusRequest{
			BookingID: uuid.New(), Status: booking.StatusConfirmed, Actor: booking.ActorMaster, ActorID: userID,
		})
		s.ErrorIs(err, queries.ErrMasterProfileNotFound)
	})
}
