package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/clock"
)

type ReminderCommands interface {
	// SendDailyReminders texts every client with an active booking tomorrow and reports how many were sent.
	SendDailyReminders(ctx context.Context) (int, error)
}

type reminderCommandsImpl struct {
	source    ReminderSource
	notifier  Notifier
	clock     clock.Clock
	loc       *time.Location
	salonName string
}

func NewReminderCommands(source ReminderSource, notifier Notifier, clk clock.Clock, loc *time.Location, salonName string) ReminderCommands {
	return &reminderCommandsImpl{source: source, notifier: notifier, clock: clk, loc: loc, salonName: salonName}
}

func (uc *reminderCommandsImpl) SendDailyReminders(ctx context.Context) (int, error) {
	from := clock.StartOfDay(uc.clock.Now(), uc.loc).AddDate(0, 0, 1)
	targets, err := uc.source.RemindersBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, t := range targets {
		if !t.Status.IsActive() {
			continue
		}
		local := t.StartsAt.In(uc.loc)
		msg := fmt.Sprintf("%s, напоминаем: завтра в %s вы записаны на «%s» в %s",
			t.ClientName, booking.TimeLabel(local), t.ServiceName, uc.salonName)
		if err := uc.notifier.Send(ctx, t.ClientPhone, msg); err != nil {
			slog.WarnContext(ctx, "failed to send reminder", "booking_id", t.BookingID, "error", err.Error())
			continue
		}
		sent++
	}
	return sent, nil
}
