package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"volly/internal/domain"
	"volly/internal/dto"
	"volly/internal/observability/metrics"
	"volly/internal/service"
	"volly/internal/store"
)

// Outbound copy for relationship transitions. Texts go only to volunteers who
// have opted in.
const (
	acceptedText          = "Volly: Congratulations! You have been accepted to volunteer with %s."
	terminatedPendingText = "Volly: %s has decided to pursue other candidates at this time."
	terminatedActiveText  = "Volly: You have been removed from %s's volunteer list."
)

type RelationshipServiceImpl struct {
	Store    dataStore
	Notifier service.Notifier
}

func NewRelationshipServiceImpl(st *store.Store, notifier service.Notifier) *RelationshipServiceImpl {
	return &RelationshipServiceImpl{
		Store:    gormStoreAdapter{store: st},
		Notifier: notifier,
	}
}

// Apply puts the volunteer into the company's pending set and mirrors the
// membership on the volunteer. Two sequential saves, no transaction.
func (r *RelationshipServiceImpl) Apply(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error) {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("apply", result).Inc() }()

	company, err := r.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.HasPending(v.ID) || company.HasActive(v.ID) {
		return nil, fmt.Errorf("%w: already applied to this company", domain.ErrDuplicate)
	}

	company.PushPending(v.ID)
	v.PushPending(company.ID)

	now := time.Now().UTC()
	company.UpdatedAt = now
	v.UpdatedAt = now
	if err := r.Store.Companies().Save(ctx, company); err != nil {
		return nil, err
	}
	if err := r.Store.Volunteers().Save(ctx, v); err != nil {
		return nil, err
	}

	result = "success"
	return r.VolunteerCompanies(ctx, v)
}

// Approve moves the volunteer from pending to active on both sides. A
// volunteer who never applied is rejected, not silently accepted.
func (r *RelationshipServiceImpl) Approve(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error) {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("approve", result).Inc() }()

	volunteer, err := r.getVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	if !c.HasPending(volunteer.ID) {
		return nil, fmt.Errorf("%w: volunteer not found in pending", domain.ErrNotFound)
	}

	c.RemoveVolunteer(volunteer.ID)
	c.PushActive(volunteer.ID)
	volunteer.RemoveCompany(c.ID)
	volunteer.PushActive(c.ID)

	now := time.Now().UTC()
	c.UpdatedAt = now
	volunteer.UpdatedAt = now
	if err := r.Store.Volunteers().Save(ctx, volunteer); err != nil {
		return nil, err
	}
	if err := r.Store.Companies().Save(ctx, c); err != nil {
		return nil, err
	}

	r.notify(ctx, volunteer, fmt.Sprintf(acceptedText, c.CompanyName))

	result = "success"
	return r.CompanyRoster(ctx, c)
}

// Terminate removes the relationship from whichever set holds it, on both
// sides. The notification copy depends on which state it was in.
func (r *RelationshipServiceImpl) Terminate(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error) {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("terminate", result).Inc() }()

	volunteer, err := r.getVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	wasPending := c.HasPending(volunteer.ID)
	wasActive := c.HasActive(volunteer.ID)
	if !wasPending && !wasActive {
		return nil, fmt.Errorf("%w: volunteer has no relationship with this company", domain.ErrNotFound)
	}

	c.RemoveVolunteer(volunteer.ID)
	volunteer.RemoveCompany(c.ID)

	now := time.Now().UTC()
	c.UpdatedAt = now
	volunteer.UpdatedAt = now
	if err := r.Store.Companies().Save(ctx, c); err != nil {
		return nil, err
	}
	if err := r.Store.Volunteers().Save(ctx, volunteer); err != nil {
		return nil, err
	}

	if wasPending {
		r.notify(ctx, volunteer, fmt.Sprintf(terminatedPendingText, c.CompanyName))
	} else {
		r.notify(ctx, volunteer, fmt.Sprintf(terminatedActiveText, c.CompanyName))
	}

	result = "success"
	return r.CompanyRoster(ctx, c)
}

// Leave is the volunteer-initiated mirror of Terminate; no notification.
func (r *RelationshipServiceImpl) Leave(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error) {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("leave", result).Inc() }()

	company, err := r.getCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !v.HasPending(company.ID) && !v.HasActive(company.ID) {
		return nil, fmt.Errorf("%w: no relationship with this company", domain.ErrNotFound)
	}

	company.RemoveVolunteer(v.ID)
	v.RemoveCompany(company.ID)

	now := time.Now().UTC()
	company.UpdatedAt = now
	v.UpdatedAt = now
	if err := r.Store.Companies().Save(ctx, company); err != nil {
		return nil, err
	}
	if err := r.Store.Volunteers().Save(ctx, v); err != nil {
		return nil, err
	}

	result = "success"
	return r.VolunteerCompanies(ctx, v)
}

// Send texts every listed volunteer that has opted in. Every id must belong to
// the company's pending or active set; the first unknown id fails the call.
func (r *RelationshipServiceImpl) Send(ctx context.Context, c *domain.Company, volunteerIDs []domain.VolunteerID, message string) error {
	if len(volunteerIDs) == 0 || message == "" {
		return fmt.Errorf("%w: volunteers and textMessage are required", domain.ErrValidation)
	}
	for _, id := range volunteerIDs {
		if !c.HasPending(id) && !c.HasActive(id) {
			return fmt.Errorf("%w: volunteer %s is not associated with this company", domain.ErrNotFound, id)
		}
	}

	volunteers, err := r.Store.Volunteers().GetByIDs(ctx, volunteerIDs)
	if err != nil {
		return err
	}
	for _, volunteer := range volunteers {
		if !volunteer.Textable {
			continue
		}
		r.notify(ctx, volunteer, message)
	}
	return nil
}

// DeleteCompany strips the company from every related volunteer, then removes
// the record. Each volunteer is persisted individually.
func (r *RelationshipServiceImpl) DeleteCompany(ctx context.Context, c *domain.Company) error {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("delete_company", result).Inc() }()

	related := append(append([]domain.VolunteerID{}, c.PendingVolunteers...), c.ActiveVolunteers...)
	for _, id := range related {
		volunteer, err := r.Store.Volunteers().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				continue
			}
			return err
		}
		volunteer.RemoveCompany(c.ID)
		volunteer.UpdatedAt = time.Now().UTC()
		if err := r.Store.Volunteers().Save(ctx, volunteer); err != nil {
			return err
		}
	}

	if err := r.Store.Companies().Delete(ctx, c.ID); err != nil {
		return err
	}
	result = "success"
	return nil
}

// DeleteVolunteer is the symmetric cascade, and also clears any pending
// opt-in confirmation row.
func (r *RelationshipServiceImpl) DeleteVolunteer(ctx context.Context, v *domain.Volunteer) error {
	result := "failure"
	defer func() { metrics.RelationshipTransitionsTotal.WithLabelValues("delete_volunteer", result).Inc() }()

	related := append(append([]domain.CompanyID{}, v.PendingCompanies...), v.ActiveCompanies...)
	for _, id := range related {
		company, err := r.Store.Companies().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				continue
			}
			return err
		}
		company.RemoveVolunteer(v.ID)
		company.UpdatedAt = time.Now().UTC()
		if err := r.Store.Companies().Save(ctx, company); err != nil {
			return err
		}
	}

	if err := r.Store.UnverifiedAccounts().DeleteByVolunteerID(ctx, v.ID); err != nil {
		return err
	}
	if err := r.Store.Volunteers().Delete(ctx, v.ID); err != nil {
		return err
	}
	result = "success"
	return nil
}

func (r *RelationshipServiceImpl) CompanyRoster(ctx context.Context, c *domain.Company) (*dto.RosterResponse, error) {
	pending, err := r.Store.Volunteers().GetByIDs(ctx, c.PendingVolunteers)
	if err != nil {
		return nil, err
	}
	active, err := r.Store.Volunteers().GetByIDs(ctx, c.ActiveVolunteers)
	if err != nil {
		return nil, err
	}
	return &dto.RosterResponse{
		PendingVolunteers: dto.NewVolunteerViews(pending),
		ActiveVolunteers:  dto.NewVolunteerViews(active),
	}, nil
}

func (r *RelationshipServiceImpl) VolunteerCompanies(ctx context.Context, v *domain.Volunteer) (*dto.CompanyListResponse, error) {
	pending, err := r.Store.Companies().GetByIDs(ctx, v.PendingCompanies)
	if err != nil {
		return nil, err
	}
	active, err := r.Store.Companies().GetByIDs(ctx, v.ActiveCompanies)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyListResponse{
		PendingCompanies: dto.NewCompanyViews(pending),
		ActiveCompanies:  dto.NewCompanyViews(active),
	}, nil
}

func (r *RelationshipServiceImpl) Opportunities(ctx context.Context) ([]dto.CompanyView, error) {
	companies, err := r.Store.Companies().All(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCompanyViews(companies), nil
}

func (r *RelationshipServiceImpl) getCompany(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	company, err := r.Store.Companies().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company", domain.ErrNotFound)
		}
		return nil, err
	}
	return company, nil
}

func (r *RelationshipServiceImpl) getVolunteer(ctx context.Context, id domain.VolunteerID) (*domain.Volunteer, error) {
	volunteer, err := r.Store.Volunteers().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: volunteer", domain.ErrNotFound)
		}
		return nil, err
	}
	return volunteer, nil
}

// notify sends if the volunteer opted in. A delivery failure never fails the
// transition that triggered it.
func (r *RelationshipServiceImpl) notify(ctx context.Context, v *domain.Volunteer, body string) {
	if !v.Textable {
		return
	}
	if err := r.Notifier.Send(ctx, v.PhoneNumber, body); err != nil {
		slog.Warn("notification failed", "volunteer_id", v.ID, "error", err)
	}
}
