package service

import "context"

// SubscriptionService interprets inbound SMS keywords against a volunteer's
// opt-in state. The returned reply is the TwiML message body; empty means the
// webhook answers with a bare <Response></Response>.
type SubscriptionService interface {
	HandleInbound(ctx context.Context, fromPhoneNumber, body string) (string, error)
}
