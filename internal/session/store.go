// Package session owns the authentication and onboarding state machine
// and the current user identity.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"eventwall/internal/models"
	"eventwall/internal/observability"

	"github.com/google/uuid"
)

// State is the onboarding state of the client.
type State string

// Onboarding states. Session data is non-nil exactly in StateAuthenticated.
const (
	StateSignedOut     State = "signed_out"
	StateSigningUp     State = "signing_up"
	StateProfileSetup  State = "profile_setup"
	StateWelcome       State = "welcome"
	StateAuthenticated State = "authenticated"
)

// SignupData is the first onboarding step's payload.
type SignupData struct {
	FirstName     string
	LastName      string
	Email         string
	University    string
	StudentID     string
	Password      string
	TermsAccepted bool
}

// ProfileData is the second onboarding step's payload. Every field is
// optional; empty fields leave the accumulated record untouched.
type ProfileData struct {
	Bio            string
	Year           string
	Major          string
	Skills         []string
	Interests      string
	GithubUsername string
	LinkedinURL    string
	PortfolioURL   string
	ProfileImage   string
}

// UserPatch is a partial profile update applied to an authenticated
// session. Empty fields are ignored; merges never erase existing data.
type UserPatch struct {
	FirstName  string
	LastName   string
	University string
	StudentID  string
	Profile    ProfileData
}

// Store is the session store. It gates access to the rest of the
// application: the feed and notifications are only reachable while the
// state is StateAuthenticated.
type Store struct {
	mu    sync.Mutex
	state State
	user  *models.User
	token string

	// accumulated onboarding record
	draft         models.User
	draftPassword string
	draftTerms    bool

	repo   Repository
	auth   AuthService
	now    func() time.Time
	newID  func() string
	logger *observability.StoreLogger
}

// New creates a session store and restores any persisted session. A
// missing, corrupt, or unreadable slot silently yields StateSignedOut.
func New(ctx context.Context, repo Repository, auth AuthService) *Store {
	s := &Store{
		state:  StateSignedOut,
		repo:   repo,
		auth:   auth,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: observability.NewStoreLogger("session"),
	}

	if user, err := repo.Load(ctx); err != nil {
		s.logger.LogWarn("restore", err)
	} else if user != nil {
		s.user = user
		s.setState(StateAuthenticated)
	}
	return s
}

// State returns the current onboarding state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Authenticated reports whether a session is active.
func (s *Store) Authenticated() bool {
	return s.State() == StateAuthenticated
}

// User returns a copy of the current session's user, or nil while
// signed out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Token returns the auth token of the current session, if any.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Login authenticates against the auth service and installs the
// returned user as the session. On failure the store stays signed out
// and the auth error is surfaced.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSignedOut {
		return nil, models.NewValidationError("Login is only possible while signed out")
	}

	result, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.user = result.User
	s.token = result.Token
	s.persist(ctx)
	s.setState(StateAuthenticated)
	return s.user.Clone(), nil
}

// BeginSignUp starts the onboarding flow.
func (s *Store) BeginSignUp() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSignedOut {
		return models.NewValidationError("Sign-up can only start while signed out")
	}

	s.draft = models.User{}
	s.draftPassword = ""
	s.draftTerms = false
	s.setState(StateSigningUp)
	return nil
}

// SubmitSignupData merges the signup step into the accumulating record
// and advances to profile setup. Only shape is validated here; field
// formats are the UI layer's concern.
func (s *Store) SubmitSignupData(data SignupData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSigningUp {
		return models.NewValidationError("Not in the sign-up step")
	}
	switch {
	case strings.TrimSpace(data.FirstName) == "":
		return models.NewValidationError("First name is required")
	case strings.TrimSpace(data.LastName) == "":
		return models.NewValidationError("Last name is required")
	case strings.TrimSpace(data.Email) == "":
		return models.NewValidationError("Email is required")
	case strings.TrimSpace(data.University) == "":
		return models.NewValidationError("University is required")
	case data.Password == "":
		return models.NewValidationError("Password is required")
	case !data.TermsAccepted:
		return models.NewValidationError("Terms must be accepted")
	}

	s.draft.FirstName = data.FirstName
	s.draft.LastName = data.LastName
	s.draft.Email = data.Email
	s.draft.University = data.University
	if data.StudentID != "" {
		s.draft.StudentID = data.StudentID
	}
	s.draftPassword = data.Password
	s.draftTerms = data.TermsAccepted
	s.setState(StateProfileSetup)
	return nil
}

// SubmitProfile merges the profile step into the accumulating record
// and advances to the welcome step. Every profile field is optional.
func (s *Store) SubmitProfile(data ProfileData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateProfileSetup {
		return models.NewValidationError("Not in the profile setup step")
	}

	mergeProfile(&s.draft, data)
	s.setState(StateWelcome)
	return nil
}

// CompleteWelcome materializes the accumulated record into a durable
// session: it registers the account with the auth service, assigns the
// session identity, persists it, and transitions to authenticated.
func (s *Store) CompleteWelcome(ctx context.Context) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWelcome {
		return nil, models.NewValidationError("Not in the welcome step")
	}

	err := s.auth.Register(ctx, RegisterInput{
		FirstName:     s.draft.FirstName,
		LastName:      s.draft.LastName,
		Email:         s.draft.Email,
		University:    s.draft.University,
		StudentID:     s.draft.StudentID,
		Password:      s.draftPassword,
		TermsAccepted: s.draftTerms,
	})
	if err != nil {
		if models.IsCode(err, models.CodeDuplicateEmail) {
			return nil, err
		}
		// Unreachable auth service degrades to a local-only account.
		s.logger.LogWarn("complete_welcome", err)
	}

	user := s.draft.Clone()
	user.ID = s.newID()
	user.CreatedAt = s.now()
	s.user = user
	s.draft = models.User{}
	s.draftPassword = ""
	s.draftTerms = false
	s.persist(ctx)
	s.setState(StateAuthenticated)
	return user.Clone(), nil
}

// UpdateUser merges a partial update into the authenticated session and
// re-persists it.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return nil, models.NewValidationError("No active session to update")
	}

	if patch.FirstName != "" {
		s.user.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		s.user.LastName = patch.LastName
	}
	if patch.University != "" {
		s.user.University = patch.University
	}
	if patch.StudentID != "" {
		s.user.StudentID = patch.StudentID
	}
	mergeProfile(s.user, patch.Profile)
	s.persist(ctx)
	return s.user.Clone(), nil
}

// Logout destroys the session and clears the persisted slot.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return models.NewValidationError("No active session")
	}

	if err := s.repo.Clear(ctx); err != nil {
		s.logger.LogWarn("logout", err)
	}
	s.user = nil
	s.token = ""
	s.setState(StateSignedOut)
	return nil
}

// persist writes the current user to the durable slot. Failures are
// non-fatal: the in-memory session stays authoritative. Callers must
// hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.user); err != nil {
		s.logger.LogWarn("persist", err)
	}
}

// setState transitions the state machine; callers must hold s.mu.
func (s *Store) setState(state State) {
	s.state = state
	observability.SessionTransitions.WithLabelValues(string(state)).Inc()
}

func mergeProfile(user *models.User, data ProfileData) {
	if data.Bio != "" {
		user.Bio = data.Bio
	}
	if data.Year != "" {
		user.Year = data.Year
	}
	if data.Major != "" {
		user.Major = data.Major
	}
	if len(data.Skills) > 0 {
		user.Skills = append([]string(nil), data.Skills...)
	}
	if data.Interests != "" {
		user.Interests = data.Interests
	}
	if data.GithubUsername != "" {
		user.GithubUsername = data.GithubUsername
	}
	if data.LinkedinURL != "" {
		user.LinkedinURL = data.LinkedinURL
	}
	if data.PortfolioURL != "" {
		user.PortfolioURL = data.PortfolioURL
	}
	if data.ProfileImage != "" {
		user.ProfileImage = data.ProfileImage
	}
}
