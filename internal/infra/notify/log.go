package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes messages to the log instead of sending them. Used when Twilio is disabled.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (LogNotifier) Send(ctx context.Context, to, body string) error {
	slog.InfoContext(ctx, "notification", "to", to, "body", body)
	return nil
}
