package impl

import (
	"context"

	"github.com/google/uuid"

	"volly/internal/domain"
	"volly/internal/store"
)

// Narrow store interfaces so services can be exercised against an in-memory
// store in tests. The gorm sub-stores satisfy them directly.

type dataStore interface {
	Companies() companyStore
	Volunteers() volunteerStore
	UnverifiedAccounts() unverifiedAccountStore
}

type companyStore interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error)
	GetByName(ctx context.Context, name string) (*domain.Company, error)
	GetByTokenSeed(ctx context.Context, seed string) (*domain.Company, error)
	Save(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id domain.CompanyID) error
	All(ctx context.Context) ([]*domain.Company, error)
	GetByIDs(ctx context.Context, ids []domain.CompanyID) ([]*domain.Company, error)
}

type volunteerStore interface {
	Create(ctx context.Context, volunteer *domain.Volunteer) error
	GetByID(ctx context.Context, id domain.VolunteerID) (*domain.Volunteer, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Volunteer, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Volunteer, error)
	GetByTokenSeed(ctx context.Context, seed string) (*domain.Volunteer, error)
	Save(ctx context.Context, volunteer *domain.Volunteer) error
	Delete(ctx context.Context, id domain.VolunteerID) error
	All(ctx context.Context) ([]*domain.Volunteer, error)
	GetByIDs(ctx context.Context, ids []domain.VolunteerID) ([]*domain.Volunteer, error)
}

type unverifiedAccountStore interface {
	Create(ctx context.Context, account *domain.UnverifiedAccount) error
	All(ctx context.Context) ([]*domain.UnverifiedAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByVolunteerID(ctx context.Context, volunteerID domain.VolunteerID) error
}

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) Companies() companyStore { return g.store.Companies() }

func (g gormStoreAdapter) Volunteers() volunteerStore { return g.store.Volunteers() }

func (g gormStoreAdapter) UnverifiedAccounts() unverifiedAccountStore {
	return g.store.UnverifiedAccounts()
}
