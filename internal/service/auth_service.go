package service

import (
	"context"

	"volly/internal/domain"
	"volly/internal/dto"
)

type AuthService interface {
	SignupCompany(ctx context.Context, r dto.CompanySignupRequest) (string, error)
	SignupVolunteer(ctx context.Context, r dto.VolunteerSignupRequest) (string, error)

	LoginCompany(ctx context.Context, name, password string) (string, error)
	LoginVolunteer(ctx context.Context, userName, password string) (string, error)

	// CompanyByToken / VolunteerByToken resolve a bearer token back to the
	// account via its stored tokenSeed.
	CompanyByToken(ctx context.Context, token string) (*domain.Company, error)
	VolunteerByToken(ctx context.Context, token string) (*domain.Volunteer, error)

	// Updates apply an allow-listed field set; the returned token is non-empty
	// only when the password changed and the seed was rotated.
	UpdateCompany(ctx context.Context, c *domain.Company, u dto.CompanyUpdate) (string, error)
	UpdateVolunteer(ctx context.Context, v *domain.Volunteer, u dto.VolunteerUpdate) (string, error)
}
