package sms

import (
	"context"
	"log/slog"
)

// Nop stands in for the Twilio client in dev mode: every send is logged and
// every number looks valid.
type Nop struct{}

func (Nop) Send(ctx context.Context, toPhoneNumber, body string) error {
	slog.Info("sms send skipped", "to", toPhoneNumber, "body", body)
	return nil
}

func (Nop) Lookup(ctx context.Context, phoneNumber string) (bool, error) {
	return true, nil
}
