//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
	queriesmock "github.com/whiteedeesign/khansart1-sub000/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errDBDown = errors.New("dial tcp: connection refused")

type CatalogQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockCatalogReadStore
	clock     *clock.MockClock
	loc       *time.Location
	queries   queries.CatalogQueries
}

func (s *CatalogQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockCatalogReadStore(s.mockCtrl)
	s.loc = time.FixedZone("MSK", 3*60*60)
	s.clock = clock.NewMockClock(time.Date(2024, 5, 31, 21, 30, 0, 0, time.UTC))
	s.queries = queries.NewCatalogQueries(s.mockStore, s.clock, s.loc)
}

func (s *CatalogQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesTestSuite))
}

func (s *CatalogQueriesTestSuite) TestServices() {
	s.Run("live rows get display labels", func() {
		id := uuid.New()
		s.mockStore.EXPECT().ListActiveServices(gomock.Any()).
			Return([]queries.ServiceView{{ID: id, Name: "Ламинирование ресниц", Price: 2000, DurationMin: 90}}, nil)

		l := s.queries.Services(context.Background())

		s.Equal(queries.SourceLive, l.Source)
		s.Require().Len(l.Items, 1)
		s.Equal("2 000 ₽", l.Items[0].PriceLabel)
		s.Equal("1 ч. 30 мин.", l.Items[0].DurationLabel)
	})

	s.Run("read failure serves bundled services", func() {
		s.mockStore.EXPECT().ListActiveServices(gomock.Any()).Return(nil, errDBDown)

		l := s.queries.Services(context.Background())

		s.True(l.IsFallback())
		s.NotEmpty(l.Items)
		for _, item := range l.Items {
			s.NotEmpty(item.PriceLabel)
		}
	})

	s.Run("empty table is live, not fallback", func() {
		s.mockStore.EXPECT().ListActiveServices(gomock.Any()).Return(nil, nil)

		l := s.queries.Services(context.Background())

		s.Equal(queries.SourceLive, l.Source)
		s.NotNil(l.Items)
		s.Empty(l.Items)
	})
}

func (s *CatalogQueriesTestSuite) TestServiceByID() {
	s.Run("resolves from the fallback listing", func() {
		s.mockStore.EXPECT().ListActiveServices(gomock.Any()).Return(nil, errDBDown).Times(2)

		var lamination uuid.UUID
		for _, item := range s.queries.Services(context.Background()).Items {
			if item.Name == "Ламинирование ресниц" {
				lamination = item.ID
			}
		}
		s.Require().NotEqual(uuid.Nil, lamination)

		svc, source, err := s.queries.ServiceByID(context.Background(), lamination)
		s.Require().NoError(err)
		s.Equal(queries.SourceFallback, source)
		s.Equal(int64(2000), svc.Price)
	})

	s.Run("unknown id", func() {
		s.mockStore.EXPECT().ListActiveServices(gomock.Any()).Return([]queries.ServiceView{}, nil)

		_, _, err := s.queries.ServiceByID(context.Background(), uuid.New())
		s.ErrorIs(err, queries.ErrServiceNotFound)
	})
}

func (s *CatalogQueriesTestSuite) TestListings() {
	s.Run("reviews request the public limit", func() {
		s.mockStore.EXPECT().ListPublishedReviews(gomock.Any(), queries.PublicReviewsLimit).Return(nil, errDBDown)

		l := s.queries.Reviews(context.Background())
		s.True(l.IsFallback())
	})

	s.Run("promotions use today in the salon zone", func() {
		// 21:30 UTC is already June 1st in Moscow
		s.mockStore.EXPECT().ListCurrentPromotions(gomock.Any(), time.Date(2024, 6, 1, 0, 0, 0, 0, s.loc)).
			Return([]queries.PromotionView{{Code: "SUMMER2024"}}, nil)

		l := s.queries.Promotions(context.Background())
		s.Equal(queries.SourceLive, l.Source)
		s.Len(l.Items, 1)
	})

	s.Run("masters fall back", func() {
		s.mockStore.EXPECT().ListActiveMasters(gomock.Any()).Return(nil, errDBDown)

		s.True(s.queries.Masters(context.Background()).IsFallback())
	})

	s.Run("gallery and categories", func() {
		s.mockStore.EXPECT().ListVisibleGallery(gomock.Any()).Return([]queries.GalleryView{{ImageURL: "/img/1.jpg"}}, nil)
		s.mockStore.EXPECT().ListCategories(gomock.Any()).Return(nil, errDBDown)

		s.Len(s.queries.Gallery(context.Background()).Items, 1)
		s.True(s.queries.Categories(context.Background()).IsFallback())
	})
}

func (s *CatalogQueriesTestSuite) TestSlots() {
	slots := s.queries.Slots(context.Background())

	s.Require().Len(slots.Dates, queries.DateOptionDays)
	s.Equal("1 июня", slots.Dates[0].Label)
	s.Equal("10:00", slots.Times[0])
}

func TestFetchOrFallback(t *testing.T) {
	fallback := []string{"a", "b"}

	l := queries.FetchOrFallback(context.Background(), "letters", func(context.Context) ([]string, error) {
		return nil, errDBDown
	}, fallback)
	require.True(t, l.IsFallback())

	l.Items[0] = "changed"
	assert.Equal(t, "a", fallback[0], "fallback data is copied")
}
