// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents an authenticated EventWall participant. The identity
// fields come from signup; the remaining profile fields are filled in
// during profile setup and may stay empty.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	University     string    `json:"university"`
	StudentID      string    `json:"student_id,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Year           string    `json:"year,omitempty"`
	Major          string    `json:"major,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	Interests      string    `json:"interests,omitempty"`
	GithubUsername string    `json:"github_username,omitempty"`
	LinkedinURL    string    `json:"linkedin_url,omitempty"`
	PortfolioURL   string    `json:"portfolio_url,omitempty"`
	ProfileImage   string    `json:"profile_image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// DisplayName returns the user's full name.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Skills != nil {
		cp.Skills = append([]string(nil), u.Skills...)
	}
	return &cp
}
