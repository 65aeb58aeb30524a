package service

import (
	"context"

	"volly/internal/domain"
	"volly/internal/dto"
)

// RelationshipService owns every transition of the company/volunteer
// association. Both sides of a pair are written sequentially with no
// transaction; the reconciler exists to repair the window that leaves open.
type RelationshipService interface {
	Apply(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error)
	Leave(ctx context.Context, v *domain.Volunteer, companyID domain.CompanyID) (*dto.CompanyListResponse, error)

	Approve(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error)
	Terminate(ctx context.Context, c *domain.Company, volunteerID domain.VolunteerID) (*dto.RosterResponse, error)

	Send(ctx context.Context, c *domain.Company, volunteerIDs []domain.VolunteerID, message string) error

	DeleteCompany(ctx context.Context, c *domain.Company) error
	DeleteVolunteer(ctx context.Context, v *domain.Volunteer) error

	CompanyRoster(ctx context.Context, c *domain.Company) (*dto.RosterResponse, error)
	VolunteerCompanies(ctx context.Context, v *domain.Volunteer) (*dto.CompanyListResponse, error)
	Opportunities(ctx context.Context) ([]dto.CompanyView, error)
}
