//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/client"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/promotion"
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/wizard"
	"github.com/whiteedeesign/khansart1-sub000/internal/infra"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/commands"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	"github.com/whiteedeesign/khansart1-sub000/tests/common/builder"
	commandsmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/commands"
	queriesmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockStore     *commandsmock.MockWizardStore
	mockCatalog   *queriesmock.MockCatalogQueries
	mockPromos    *commandsmock.MockPromotionFinder
	mockBlacklist *commandsmock.MockBlacklistChecker
	mockBookings  *commandsmock.MockBookingWriter
	mockClients   *commandsmock.MockClientWriter
	mockNotifier  *commandsmock.MockNotifier
	clock         *clock.MockClock
	loc           *time.Location
	service       *queries.ServiceView
	commands      commands.WizardCommands
}

func (s *WizardCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = commandsmock.NewMockWizardStore(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.mockPromos = commandsmock.NewMockPromotionFinder(s.mockCtrl)
	s.mockBlacklist = commandsmock.NewMockBlacklistChecker(s.mockCtrl)
	s.mockBookings = commandsmock.NewMockBookingWriter(s.mockCtrl)
	s.mockClients = commandsmock.NewMockClientWriter(s.mockCtrl)
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.loc = time.FixedZone("MSK", 3*60*60)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 10, 9, 0, 0, 0, s.loc))
	s.service = &queries.ServiceView{ID: uuid.New(), Name: "Ламинирование ресниц", Price: 2000, DurationMin: 90, Active: true}

	s.mockCatalog.EXPECT().ServiceByID(gomock.Any(), s.service.ID).Return(s.service, queries.SourceLive, nil).AnyTimes()

	s.commands = commands.NewWizardCommands(
		s.mockStore, s.mockCatalog, s.mockPromos, s.mockBlacklist,
		s.mockBookings, s.mockClients, s.mockNotifier,
		s.clock, s.loc, "Lash Studio",
	)
}

func (s *WizardCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardCommandsTestSuite(t *testing.T) {
	suite.Run(t, new(WizardCommandsTestSuite))
}

// readyState is a session on the confirmation step for the 2000 ₽ lamination with any master.
func (s *WizardCommandsTestSuite) readyState() *wizard.State {
	st := wizard.New(s.clock.Now())
	s.Require().NoError(st.SelectService(s.service.ID, nil))
	s.Require().NoError(st.SelectMaster(nil))
	s.Require().NoError(st.SelectDate("12 июня"))
	s.Require().NoError(st.SelectTime("14:00"))
	s.Require().NoError(st.SetContact(wizard.Contact{Name: "Анна", Phone: "+7 916 123-45-67"}))
	st.Step = wizard.StepConfirm
	return st
}

func (s *WizardCommandsTestSuite) TestStart() {
	s.mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	v, err := s.commands.Start(context.Background())

	s.Require().NoError(err)
	s.Equal(wizard.StepService, v.State.Step)
	s.False(v.CanAdvance)
	s.Nil(v.Service)
	s.Equal(queries.SourceLive, v.Source)
}

func (s *WizardCommandsTestSuite) TestSelectService() {
	s.Run("success", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		v, err := s.commands.SelectService(context.Background(), st.ID, s.service.ID)

		s.Require().NoError(err)
		s.True(v.CanAdvance)
		s.Equal(int64(2000), v.BasePrice)
		s.Equal(int64(2000), v.Total)
		s.Equal(s.service.Name, v.Service.Name)
	})

	s.Run("unknown service is not saved", func() {
		st := wizard.New(s.clock.Now())
		unknown := uuid.New()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockCatalog.EXPECT().ServiceByID(gomock.Any(), unknown).Return(nil, queries.SourceLive, queries.ErrServiceNotFound)

		_, err := s.commands.SelectService(context.Background(), st.ID, unknown)

		s.ErrorIs(err, queries.ErrServiceNotFound)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("expired session", func() {
		id := uuid.New()
		s.mockStore.EXPECT().Load(gomock.Any(), id).Return(nil, commands.ErrWizardSessionNotFound)

		_, err := s.commands.SelectService(context.Background(), id, s.service.ID)

		s.ErrorIs(err, commands.ErrWizardSessionNotFound)
	})
}

func (s *WizardCommandsTestSuite) TestSelectMaster() {
	s.Run("inactive master is rejected", func() {
		st := wizard.New(s.clock.Now())
		masterID := uuid.New()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockCatalog.EXPECT().MasterByID(gomock.Any(), masterID).
			Return(&queries.PublicMasterView{ID: masterID, Active: false}, queries.SourceLive, nil)

		_, err := s.commands.SelectMaster(context.Background(), st.ID, &masterID)

		s.True(errs.Is(err, errs.ErrValidation))
		s.Empty(st.MasterChoice)
	})

	s.Run("chosen master is shown", func() {
		st := wizard.New(s.clock.Now())
		master := &queries.PublicMasterView{ID: uuid.New(), Name: "Екатерина", Active: true}
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)
		s.mockCatalog.EXPECT().MasterByID(gomock.Any(), master.ID).Return(master, queries.SourceLive, nil).Times(2)

		v, err := s.commands.SelectMaster(context.Background(), st.ID, &master.ID)

		s.Require().NoError(err)
		s.Equal("Екатерина", v.Master.Name)
	})
}

func (s *WizardCommandsTestSuite) TestSelectDateAndTime() {
	s.Run("unparseable date", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.SelectDate(context.Background(), st.ID, "завтра")

		s.ErrorIs(err, booking.ErrInvalidDateLabel)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("bad time", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.SelectTime(context.Background(), st.ID, "25:00")

		s.ErrorIs(err, booking.ErrInvalidTimeLabel)
	})

	s.Run("valid date", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		v, err := s.commands.SelectDate(context.Background(), st.ID, "12 июня")

		s.Require().NoError(err)
		s.Equal("12 июня", v.State.DateLabel)
	})
}

func (s *WizardCommandsTestSuite) TestNext() {
	s.Run("incomplete step", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.Next(context.Background(), st.ID)

		s.ErrorIs(err, wizard.ErrStepIncomplete)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("completed session", func() {
		st := s.readyState()
		st.Complete(uuid.New())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.Back(context.Background(), st.ID)

		s.ErrorIs(err, wizard.ErrCompleted)
		s.True(errs.Is(err, errs.ErrConflict))
	})
}

func (s *WizardCommandsTestSuite) TestApplyPromo() {
	s.Run("percent promo gives 1700 on 2000", func() {
		st := s.readyState()
		promo, err := builder.NewPromotionBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockPromos.EXPECT().FindActiveByCode(gomock.Any(), "SUMMER2024").Return(promo, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		v, err := s.commands.ApplyPromo(context.Background(), st.ID, " summer2024 ")

		s.Require().NoError(err)
		s.Equal(int64(2000), v.BasePrice)
		s.Equal(int64(1700), v.Total)
		s.Equal("SUMMER2024", v.State.PromoCode())
	})

	s.Run("unknown code", func() {
		st := s.readyState()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockPromos.EXPECT().FindActiveByCode(gomock.Any(), "NOPE2024").
			Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.commands.ApplyPromo(context.Background(), st.ID, "nope2024")

		s.ErrorIs(err, promotion.ErrPromotionNotFound)
		s.True(errs.Is(err, errs.ErrValidation))
		s.Nil(st.Promo)
	})

	s.Run("malformed code never reaches the database", func() {
		st := s.readyState()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.ApplyPromo(context.Background(), st.ID, "!")

		s.ErrorIs(err, promotion.ErrPromotionNotFound)
	})

	s.Run("lookup failure", func() {
		st := s.readyState()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockPromos.EXPECT().FindActiveByCode(gomock.Any(), "SUMMER2024").Return(nil, errors.New("conn reset"))

		_, err := s.commands.ApplyPromo(context.Background(), st.ID, "SUMMER2024")

		s.True(errs.Is(err, commands.ErrPromotionLookupFailed))
		s.False(errs.Is(err, errs.ErrValidation))
	})

	s.Run("remove restores the base price", func() {
		st := s.readyState()
		st.Promo = &wizard.AppliedPromo{Code: "SUMMER2024", DiscountPercent: new(float64)}
		*st.Promo.DiscountPercent = 15
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		v, err := s.commands.RemovePromo(context.Background(), st.ID)

		s.Require().NoError(err)
		s.Equal(int64(2000), v.Total)
	})
}

func (s *WizardCommandsTestSuite) TestSubmit() {
	s.Run("lamination at 2000 with no promo", func() {
		st := s.readyState()
		var created *booking.Booking
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), "+79161234567").Return(false, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				created = b
				return nil
			})
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), "+79161234567", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, body string) error {
				s.Contains(body, "Ламинирование ресниц")
				s.Contains(body, "12 июня в 14:00")
				return nil
			})

		v, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(int64(2000), created.TotalPrice())
		s.Equal(int64(2000), v.Total)
		s.Len(v.ShortID, 8)
		s.True(strings.HasPrefix(created.ID().String(), v.ShortID))
		s.Equal(booking.StatusPending, created.Status())
		s.Nil(created.MasterID())
		s.Equal(time.Date(2024, 6, 12, 14, 0, 0, 0, s.loc), created.StartsAt())
		s.True(v.State.IsCompleted())
		s.Empty(v.State.LastError)
	})

	s.Run("promo total is stored", func() {
		st := s.readyState()
		promo, err := builder.NewPromotionBuilder().BuildDomain()
		s.Require().NoError(err)
		s.Require().NoError(st.ApplyPromo(promo, s.clock.Now()))
		userID := uuid.New()

		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) error {
				s.Equal(int64(2000), b.Price())
				s.Equal(int64(1700), b.TotalPrice())
				s.Equal("SUMMER2024", b.PromoCode())
				s.Equal(&userID, b.UserID())
				return nil
			})
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		v, err := s.commands.Submit(context.Background(), st.ID, &userID)

		s.Require().NoError(err)
		s.Equal(int64(1700), v.Total)
	})

	s.Run("insert failure keeps the raw error on step 5", func() {
		st := s.readyState()
		dbErr := errors.New(`new row for relation "bookings" violates check constraint "bookings_total_price_check"`)
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dbErr)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.True(errs.Is(err, commands.ErrBookingSubmitFailed))
		s.Equal(wizard.StepConfirm, st.Step)
		s.Equal(dbErr.Error(), st.LastError)
		s.False(st.IsCompleted())
	})

	s.Run("blacklisted phone", func() {
		st := s.readyState()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(true, nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.ErrorIs(err, commands.ErrClientBlacklisted)
		s.True(errs.Is(err, errs.ErrForbidden))
		s.NotEmpty(st.LastError)
	})

	s.Run("blacklist outage does not block booking", func() {
		st := s.readyState()
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("sms down"))

		v, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.Require().NoError(err)
		s.True(v.State.IsCompleted())
	})

	s.Run("client card is saved on request", func() {
		st := s.readyState()
		st.Contact.CreateAccount = true
		st.Contact.Email = "anna@example.com"
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
		s.mockBlacklist.EXPECT().IsBlacklisted(gomock.Any(), gomock.Any()).Return(false, nil)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)
		s.mockClients.EXPECT().UpsertByPhone(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *client.Client) error {
				s.Equal("+79161234567", c.Phone().String())
				s.Equal("anna@example.com", c.Email().String())
				return nil
			})
		s.mockNotifier.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.Require().NoError(err)
	})

	s.Run("incomplete form", func() {
		st := wizard.New(s.clock.Now())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.ErrorIs(err, wizard.ErrNotReady)
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("filled form off the confirmation step", func() {
		st := s.readyState()
		st.Step = wizard.StepService
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.ErrorIs(err, wizard.ErrNotReady)
		s.True(errs.Is(err, errs.ErrValidation))
		s.False(st.IsCompleted())
	})

	s.Run("second submit is a conflict", func() {
		st := s.readyState()
		st.Complete(uuid.New())
		s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)

		_, err := s.commands.Submit(context.Background(), st.ID, nil)

		s.True(errs.Is(err, errs.ErrConflict))
	})
}

func (s *WizardCommandsTestSuite) TestReset() {
	st := s.readyState()
	st.Complete(uuid.New())
	s.mockStore.EXPECT().Load(gomock.Any(), st.ID).Return(st, nil)
	s.mockStore.EXPECT().Save(gomock.Any(), st).Return(nil)

	v, err := s.commands.Reset(context.Background(), st.ID)

	s.Require().NoError(err)
	s.Equal(wizard.StepService, v.State.Step)
	s.Empty(v.ShortID)
	s.Equal(st.ID, v.State.ID)
}
