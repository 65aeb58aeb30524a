package service

import "context"

// Notifier is the outbound SMS transport plus the number-validity lookup.
// Both are fire-and-forget from the engine's point of view: a failure is
// logged by the caller and never rolls back a state transition.
type Notifier interface {
	Send(ctx context.Context, toPhoneNumber, body string) error
	Lookup(ctx context.Context, phoneNumber string) (bool, error)
}
