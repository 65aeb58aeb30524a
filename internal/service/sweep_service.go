package service

import "context"

type SweepResult struct {
	Scanned           int
	ExpiredAccounts   int
	RemovedVolunteers int
}

// SweepService is the periodic reconciliation work: removing stale unconfirmed
// signups and repairing one-sided relationship memberships. It assumes it runs
// exclusively (single scheduled job).
type SweepService interface {
	RemoveExpired(ctx context.Context) (SweepResult, error)
	Reconcile(ctx context.Context) (int, error)
}
