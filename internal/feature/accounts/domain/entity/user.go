// Package entity defines the domain entities for the accounts feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account in the system.
// It contains authentication credentials and the profile fields exposed
// through the API.
type User struct {
	// ID is the unique identifier for the user, assigned on creation.
	ID string `gorm:"primaryKey;size:36"`

	// FirstName is the user's given name. Login looks accounts up by this
	// field even though it carries no uniqueness guarantee.
	FirstName string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// Email is the user's email address.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This should never store plaintext passwords and never leaves the
	// repository boundary unprojected.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// BeforeCreate assigns a fresh UUID when the ID has not been set by the
// caller. Keeps ID generation inside the repository boundary.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
