package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Company struct {
	ID           CompanyID `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName  string    `gorm:"type:text;uniqueIndex:ux_companies_name" json:"companyName"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Email        string    `gorm:"type:citext;uniqueIndex:ux_companies_email" json:"email"`
	PhoneNumber  string    `gorm:"type:text;uniqueIndex:ux_companies_phone" json:"phoneNumber"`
	Website      string    `gorm:"type:text;uniqueIndex:ux_companies_website" json:"website"`
	TokenSeed    string    `gorm:"type:text;uniqueIndex:ux_companies_token_seed" json:"-"`

	// Each side of the relationship carries its own copy of the membership,
	// mirroring the volunteer's pendingCompanies/activeCompanies.
	PendingVolunteers datatypes.JSONSlice[VolunteerID] `gorm:"type:jsonb" json:"pendingVolunteers"`
	ActiveVolunteers  datatypes.JSONSlice[VolunteerID] `gorm:"type:jsonb" json:"activeVolunteers"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Company) TableName() string { return "companies" }

// HasPending reports whether the volunteer is in this company's pending set.
func (c *Company) HasPending(id VolunteerID) bool { return containsID(c.PendingVolunteers, id) }

// HasActive reports whether the volunteer is in this company's active set.
func (c *Company) HasActive(id VolunteerID) bool { return containsID(c.ActiveVolunteers, id) }

// PushPending appends the volunteer to the pending set.
func (c *Company) PushPending(id VolunteerID) {
	c.PendingVolunteers = append(c.PendingVolunteers, id)
}

// PushActive appends the volunteer to the active set.
func (c *Company) PushActive(id VolunteerID) {
	c.ActiveVolunteers = append(c.ActiveVolunteers, id)
}

// RemoveVolunteer strips the volunteer from both sets.
func (c *Company) RemoveVolunteer(id VolunteerID) {
	c.PendingVolunteers = removeID(c.PendingVolunteers, id)
	c.ActiveVolunteers = removeID(c.ActiveVolunteers, id)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
