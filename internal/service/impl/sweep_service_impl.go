package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"volly/internal/domain"
	"volly/internal/observability/metrics"
	"volly/internal/service"
	"volly/internal/store"
)

// SweepServiceImpl runs the batch maintenance passes. It assumes it is the
// only writer while it runs (single scheduled job).
type SweepServiceImpl struct {
	Store dataStore
	Now   func() time.Time
}

func NewSweepServiceImpl(st *store.Store) *SweepServiceImpl {
	return &SweepServiceImpl{Store: gormStoreAdapter{store: st}, Now: time.Now}
}

// RemoveExpired deletes every unverified account past the TTL, along with the
// volunteer it links to when that volunteer still exists.
func (s *SweepServiceImpl) RemoveExpired(ctx context.Context) (service.SweepResult, error) {
	var res service.SweepResult

	accounts, err := s.Store.UnverifiedAccounts().All(ctx)
	if err != nil {
		return res, err
	}
	res.Scanned = len(accounts)

	now := s.Now().UTC()
	for _, account := range accounts {
		if !account.ExpiredAt(now) {
			continue
		}
		res.ExpiredAccounts++

		if _, err := s.Store.Volunteers().GetByID(ctx, account.VolunteerID); err == nil {
			if err := s.Store.Volunteers().Delete(ctx, account.VolunteerID); err != nil {
				return res, err
			}
			res.RemovedVolunteers++
			metrics.SweepRemovalsTotal.WithLabelValues("volunteer").Inc()
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			return res, err
		}

		if err := s.Store.UnverifiedAccounts().Delete(ctx, account.ID); err != nil {
			return res, err
		}
		metrics.SweepRemovalsTotal.WithLabelValues("unverified_account").Inc()
	}

	return res, nil
}

// Reconcile repairs one-sided relationship memberships left behind by the
// two-write mutation scheme. The authoritative copy is the company's: a
// membership missing on the volunteer is restored there, and a volunteer-side
// membership pointing at a company that does not reciprocate is dropped.
// Every repair is logged; the return value counts records rewritten.
func (s *SweepServiceImpl) Reconcile(ctx context.Context) (int, error) {
	companies, err := s.Store.Companies().All(ctx)
	if err != nil {
		return 0, err
	}
	volunteers, err := s.Store.Volunteers().All(ctx)
	if err != nil {
		return 0, err
	}

	companyByID := make(map[domain.CompanyID]*domain.Company, len(companies))
	for _, c := range companies {
		companyByID[c.ID] = c
	}
	volunteerByID := make(map[domain.VolunteerID]*domain.Volunteer, len(volunteers))
	for _, v := range volunteers {
		volunteerByID[v.ID] = v
	}

	dirty := make(map[domain.VolunteerID]*domain.Volunteer)

	for _, c := range companies {
		for _, id := range c.PendingVolunteers {
			v, ok := volunteerByID[id]
			if !ok {
				continue
			}
			if !v.HasPending(c.ID) {
				slog.Warn("reconcile: restoring pending membership", "company_id", c.ID, "volunteer_id", v.ID)
				v.RemoveCompany(c.ID)
				v.PushPending(c.ID)
				dirty[v.ID] = v
			}
		}
		for _, id := range c.ActiveVolunteers {
			v, ok := volunteerByID[id]
			if !ok {
				continue
			}
			if !v.HasActive(c.ID) {
				slog.Warn("reconcile: restoring active membership", "company_id", c.ID, "volunteer_id", v.ID)
				v.RemoveCompany(c.ID)
				v.PushActive(c.ID)
				dirty[v.ID] = v
			}
		}
	}

	for _, v := range volunteers {
		for _, id := range append(append([]domain.CompanyID{}, v.PendingCompanies...), v.ActiveCompanies...) {
			c, ok := companyByID[id]
			if ok && (c.HasPending(v.ID) || c.HasActive(v.ID)) {
				continue
			}
			slog.Warn("reconcile: dropping orphaned membership", "company_id", id, "volunteer_id", v.ID)
			v.RemoveCompany(id)
			dirty[v.ID] = v
		}
	}

	repaired := 0
	for _, v := range dirty {
		v.UpdatedAt = s.Now().UTC()
		if err := s.Store.Volunteers().Save(ctx, v); err != nil {
			return repaired, err
		}
		repaired++
	}
	return repaired, nil
}
