//go:build unit

package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

type countingReminders struct {
	calls int
	err   error
}

func (c *countingReminders) SendDailyReminders(context.Context) (int, error) {
	c.calls++
	return 3, c.err
}

func TestReminderScheduler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("rejects an invalid spec", func(t *testing.T) {
		s := NewReminderScheduler(&countingReminders{}, "not a cron spec", time.UTC, logger)

		assert.Error(t, s.Start())
	})

	t.Run("starts and stops", func(t *testing.T) {
		s := NewReminderScheduler(&countingReminders{}, "0 9 * * *", time.UTC, logger)

		assert.NoError(t, s.Start())
		s.Stop(context.Background())
	})

	t.Run("run calls the use case even when it fails", func(t *testing.T) {
		r := &countingReminders{err: errs.New("db down")}
		s := NewReminderScheduler(r, "0 9 * * *", time.UTC, logger)

		s.run()
		s.run()
		assert.Equal(t, 2, r.calls)
	})
}
