// Package authserver is the reference two-endpoint authentication
// backend the client engine registers and logs in against.
package authserver

import (
	"time"

	"gorm.io/gorm"
)

// Account is a registered user as stored by the auth backend. The
// password is a bcrypt hash and never leaves the server.
type Account struct {
	ID            uint           `gorm:"primaryKey" json:"-"`
	FirstName     string         `gorm:"not null" json:"first_name"`
	LastName      string         `gorm:"not null" json:"last_name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	University    string         `gorm:"not null" json:"university"`
	StudentID     string         `json:"student_id,omitempty"`
	Password      string         `gorm:"not null" json:"-"`
	TermsAccepted bool           `gorm:"not null" json:"terms_accepted"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
