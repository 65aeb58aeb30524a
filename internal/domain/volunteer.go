package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Volunteer struct {
	ID           VolunteerID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName    string      `gorm:"type:text;not null" json:"firstName"`
	LastName     string      `gorm:"type:text;not null" json:"lastName"`
	UserName     string      `gorm:"type:citext;uniqueIndex:ux_volunteers_username" json:"userName"`
	Email        string      `gorm:"type:citext;uniqueIndex:ux_volunteers_email" json:"email"`
	PhoneNumber  string      `gorm:"type:text;uniqueIndex:ux_volunteers_phone" json:"phoneNumber"`
	PasswordHash string      `gorm:"type:text;not null" json:"-"`
	TokenSeed    string      `gorm:"type:text;uniqueIndex:ux_volunteers_token_seed" json:"-"`

	// Textable is the SMS opt-in flag; FirstSubscribe stays true until the
	// one-time "text" confirmation has been handled.
	Textable       bool `gorm:"not null;default:false" json:"textable"`
	FirstSubscribe bool `gorm:"not null;default:true" json:"firstSubscribe"`

	PendingCompanies datatypes.JSONSlice[CompanyID] `gorm:"type:jsonb" json:"pendingCompanies"`
	ActiveCompanies  datatypes.JSONSlice[CompanyID] `gorm:"type:jsonb" json:"activeCompanies"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Volunteer) TableName() string { return "volunteers" }

func (v *Volunteer) HasPending(id CompanyID) bool { return containsID(v.PendingCompanies, id) }

func (v *Volunteer) HasActive(id CompanyID) bool { return containsID(v.ActiveCompanies, id) }

func (v *Volunteer) PushPending(id CompanyID) {
	v.PendingCompanies = append(v.PendingCompanies, id)
}

func (v *Volunteer) PushActive(id CompanyID) {
	v.ActiveCompanies = append(v.ActiveCompanies, id)
}

// RemoveCompany strips the company from both sets.
func (v *Volunteer) RemoveCompany(id CompanyID) {
	v.PendingCompanies = removeID(v.PendingCompanies, id)
	v.ActiveCompanies = removeID(v.ActiveCompanies, id)
}
