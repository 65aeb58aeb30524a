package store

import (
	"context"

	"volly/internal/domain"

	"github.com/google/uuid"
)

type VolunteerStore struct{ db *Store }

func (s *Store) Volunteers() *VolunteerStore { return &VolunteerStore{db: s} }

func (v *VolunteerStore) Create(ctx context.Context, volunteer *domain.Volunteer) error {
	if volunteer.ID == uuid.Nil {
		volunteer.ID = uuid.New()
	}
	return v.db.DB.WithContext(ctx).Create(volunteer).Error
}

func (v *VolunteerStore) GetByID(ctx context.Context, id domain.VolunteerID) (*domain.Volunteer, error) {
	var out domain.Volunteer
	if err := v.db.DB.WithContext(ctx).First(&out, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (v *VolunteerStore) GetByUserName(ctx context.Context, userName string) (*domain.Volunteer, error) {
	var out domain.Volunteer
	if err := v.db.DB.WithContext(ctx).First(&out, "user_name = ?", userName).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (v *VolunteerStore) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.Volunteer, error) {
	var out domain.Volunteer
	if err := v.db.DB.WithContext(ctx).First(&out, "phone_number = ?", phoneNumber).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (v *VolunteerStore) GetByTokenSeed(ctx context.Context, seed string) (*domain.Volunteer, error) {
	var out domain.Volunteer
	if err := v.db.DB.WithContext(ctx).First(&out, "token_seed = ?", seed).Error; err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (v *VolunteerStore) Save(ctx context.Context, volunteer *domain.Volunteer) error {
	return v.db.DB.WithContext(ctx).Save(volunteer).Error
}

func (v *VolunteerStore) Delete(ctx context.Context, id domain.VolunteerID) error {
	return v.db.DB.WithContext(ctx).Delete(&domain.Volunteer{}, "id = ?", id).Error
}

func (v *VolunteerStore) All(ctx context.Context) ([]*domain.Volunteer, error) {
	var out []*domain.Volunteer
	if err := v.db.DB.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (v *VolunteerStore) GetByIDs(ctx context.Context, ids []domain.VolunteerID) ([]*domain.Volunteer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []*domain.Volunteer
	if err := v.db.DB.WithContext(ctx).Find(&out, "id IN ?", ids).Error; err != nil {
		return nil, err
	}
	return out, nil
}
