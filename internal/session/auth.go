package session

import (
	"context"

	"eventwall/internal/models"
)

// RegisterInput is the payload for creating an account with the auth
// service.
type RegisterInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	University    string `json:"university"`
	StudentID     string `json:"student_id,omitempty"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// LoginResult is what a successful login yields: a signed token and the
// user's public fields.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService is the external authentication collaborator. Register
// fails with a DUPLICATE_EMAIL error when the email is taken; Login
// fails with INVALID_CREDENTIALS for unknown email or wrong password,
// indistinguishably.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
