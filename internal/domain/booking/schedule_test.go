//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moscow(t *testing.T) *time.Location {
	t.Helper()
	return time.FixedZone("MSK", 3*60*60)
}

func TestParseSlot(t *testing.T) {
	loc := moscow(t)

	tests := []struct {
		name      string
		dateLabel string
		timeLabel string
		expected  time.Time
		errIs     error
	}{
		{name: "genitive month", dateLabel: "12 мая", timeLabel: "14:30", expected: time.Date(2024, 5, 12, 14, 30, 0, 0, loc)},
		{name: "nominative month", dateLabel: "1 Январь", timeLabel: "10:00", expected: time.Date(2024, 1, 1, 10, 0, 0, 0, loc)},
		{name: "weekday suffix is ignored", dateLabel: "3 июня, Пн", timeLabel: "09:05", expected: time.Date(2024, 6, 3, 9, 5, 0, 0, loc)},
		{name: "leap day", dateLabel: "29 февраля", timeLabel: "12:00", expected: time.Date(2024, 2, 29, 12, 0, 0, 0, loc)},
		{name: "day overflow", dateLabel: "31 февраля", timeLabel: "12:00", errIs: booking.ErrInvalidDateLabel},
		{name: "unknown month", dateLabel: "12 may", timeLabel: "12:00", errIs: booking.ErrInvalidDateLabel},
		{name: "missing month", dateLabel: "12", timeLabel: "12:00", errIs: booking.ErrInvalidDateLabel},
		{name: "bad hour", dateLabel: "12 мая", timeLabel: "24:00", errIs: booking.ErrInvalidTimeLabel},
		{name: "bad time format", dateLabel: "12 мая", timeLabel: "1400", errIs: booking.ErrInvalidTimeLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := booking.ParseSlot(tt.dateLabel, tt.timeLabel, 2024, loc)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(actual), "got %s", actual)
		})
	}
}

func TestParseUpcomingSlot(t *testing.T) {
	loc := moscow(t)
	now := time.Date(2024, 12, 28, 18, 0, 0, 0, loc)

	t.Run("later this year", func(t *testing.T) {
		actual, err := booking.ParseUpcomingSlot("30 декабря", "11:00", now, loc)
		require.NoError(t, err)
		assert.Equal(t, 2024, actual.Year())
	})

	t.Run("today stays in this year", func(t *testing.T) {
		actual, err := booking.ParseUpcomingSlot("28 декабря", "10:00", now, loc)
		require.NoError(t, err)
		assert.Equal(t, 2024, actual.Year())
	})

	t.Run("passed date rolls over", func(t *testing.T) {
		actual, err := booking.ParseUpcomingSlot("5 января", "11:00", now, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 5, 11, 0, 0, 0, loc), actual)
	})
}

func TestLabels(t *testing.T) {
	ts := time.Date(2024, 5, 12, 9, 5, 0, 0, time.UTC)

	assert.Equal(t, "12 мая", booking.DateLabel(ts))
	assert.Equal(t, "09:05", booking.TimeLabel(ts))
	assert.NoError(t, booking.ValidateTimeLabel("20:00"))
	assert.ErrorIs(t, booking.ValidateTimeLabel("8pm"), booking.ErrInvalidTimeLabel)
}

func TestDateOptions(t *testing.T) {
	// Friday
	now := time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)

	opts := booking.DateOptions(now, 3)
	require.Len(t, opts, 3)

	assert.Equal(t, booking.DateOption{Label: "31 мая", Weekday: "Пт", Date: "2024-05-31"}, opts[0])
	assert.Equal(t, booking.DateOption{Label: "1 июня", Weekday: "Сб", Date: "2024-06-01"}, opts[1])
	assert.Equal(t, booking.DateOption{Label: "2 июня", Weekday: "Вс", Date: "2024-06-02"}, opts[2])
}
