// Package store is a thin document-style persistence layer over gorm. Records
// are read whole and written whole with Save; relationship mutations are two
// independent Saves with no cross-record transaction (see the reconciler).
package store

import (
	"errors"

	"volly/internal/domain"

	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

// Migrate creates or updates the schema for every model the service owns.
func (s *Store) Migrate() error {
	return s.DB.AutoMigrate(
		&domain.Company{},
		&domain.Volunteer{},
		&domain.UnverifiedAccount{},
	)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}
