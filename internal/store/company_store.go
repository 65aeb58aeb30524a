package store

import (
	"context"

	"volly/internal/domain"

	"github.com/google/uuid"
)

type CompanyStore struct{ db *Store }

func (s *Store) Companies() *CompanyStore { return &CompanyStore{db: s} }

func (c *CompanyStore) Create(ctx context.Context, company *domain.Company) error {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	return c.db.DB.WithContext(ctx).Create(company).Error
}

func (c *CompanyStore) GetByID(ctx context.Context, id domain.CompanyID) (*domain.Company, error) {
	var out domain.Company
	if err := c.db.DB.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (c *CompanyStore) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	var out domain.Company
	if err := c.db.DB.WithContext(ctx).First(&out, "company_name = ?", name).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (c *CompanyStore) GetByTokenSeed(ctx context.Context, seed string) (*domain.Company, error) {
	var out domain.Company
	if err := c.db.DB.WithContext(ctx).First(&out, "token_seed = ?", seed).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// Save writes the whole record back, document style.
func (c *CompanyStore) Save(ctx context.Context, company *domain.Company) error {
	return c.db.DB.WithContext(ctx).Save(company).Error
}

func (c *CompanyStore) Delete(ctx context.Context, id domain.CompanyID) error {
	return c.db.DB.WithContext(ctx).Delete(&domain.Company{}, "id = ?", id).Error
}

func (c *CompanyStore) All(ctx context.Context) ([]*domain.Company, error) {
	var out []*domain.Company
	if err := c.db.DB.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDs fetches the given companies, skipping ids that no longer resolve.
func (c *CompanyStore) GetByIDs(ctx context.Context, ids []domain.CompanyID) ([]*domain.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []*domain.Company
	if err := c.db.DB.WithContext(ctx).Find(&out, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return out, nil
}
