package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnverifiedAccount links a freshly signed-up volunteer to the phone number
// awaiting opt-in confirmation. Rows that outlive the TTL are swept together
// with the volunteer they point at.
type UnverifiedAccount struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	VolunteerID VolunteerID `gorm:"type:uuid;index"`
	PhoneNumber string      `gorm:"type:text;uniqueIndex:ux_unverified_phone"`
	CreatedAt   time.Time   `gorm:"not null"`
}

func (UnverifiedAccount) TableName() string { return "unverified_accounts" }

// UnverifiedTTL is how long an account may stay unconfirmed before the
// sweeper removes it.
const UnverifiedTTL = 72 * time.Hour

// ExpiredAt reports whether the record's age exceeds the TTL at the given time.
func (u *UnverifiedAccount) ExpiredAt(now time.Time) bool {
	age := now.Sub(u.CreatedAt)
	if age < 0 {
		age = -age
	}
	return age > UnverifiedTTL
}
