package store

import (
	"context"

	"volly/internal/domain"

	"github.com/google/uuid"
)

type UnverifiedAccountStore struct{ db *Store }

func (s *Store) UnverifiedAccounts() *UnverifiedAccountStore {
	return &UnverifiedAccountStore{db: s}
}

func (u *UnverifiedAccountStore) Create(ctx context.Context, account *domain.UnverifiedAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	return u.db.DB.WithContext(ctx).Create(account).Error
}

func (u *UnverifiedAccountStore) All(ctx context.Context) ([]*domain.UnverifiedAccount, error) {
	var out []*domain.UnverifiedAccount
	if err := u.db.DB.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (u *UnverifiedAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	return u.db.DB.WithContext(ctx).Delete(&domain.UnverifiedAccount{}, "id = ?", id).Error
}

// DeleteByVolunteerID clears the pending-confirmation row once a volunteer
// confirms or is removed.
func (u *UnverifiedAccountStore) DeleteByVolunteerID(ctx context.Context, volunteerID domain.VolunteerID) error {
	return u.db.DB.WithContext(ctx).
		Delete(&domain.UnverifiedAccount{}, "volunteer_id = ?", volunteerID).Error
}
