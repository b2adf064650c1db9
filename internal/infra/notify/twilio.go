package notify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/config"
	"github.com/whiteedeesign/khansart1-sub000/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrNoSender = errs.New("no sender number configured")

// MessageAPI is the part of the Twilio REST client the notifier uses.
type MessageAPI interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioNotifier sends texts through Twilio, over WhatsApp when a WhatsApp sender is configured.
type TwilioNotifier struct {
	api            MessageAPI
	phoneNumber    string
	whatsAppNumber string
}

func NewTwilioNotifier(cfg config.TwilioConfig) *TwilioNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewTwilioNotifierWithAPI(client.Api, cfg.PhoneNumber, cfg.WhatsAppNumber)
}

func NewTwilioNotifierWithAPI(api MessageAPI, phoneNumber, whatsAppNumber string) *TwilioNotifier {
	return &TwilioNotifier{api: api, phoneNumber: phoneNumber, whatsAppNumber: whatsAppNumber}
}

func (n *TwilioNotifier) Send(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)

	switch {
	case n.whatsAppNumber != "" && strings.HasPrefix(to, "+"):
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + n.whatsAppNumber)
	case n.phoneNumber != "":
		params.SetTo(to)
		params.SetFrom(n.phoneNumber)
	default:
		return ErrNoSender
	}

	resp, err := n.api.CreateMessage(params)
	if err != nil {
		return errs.Wrap(err, "failed to send message")
	}
	if resp != nil && resp.Sid != nil {
		slog.DebugContext(ctx, "message sent", "sid", *resp.Sid)
	}
	return nil
}
