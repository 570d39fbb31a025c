// Package auth registers and authenticates users and manages login
// sessions. A session is an explicit token value handed to the caller at
// login and passed back into every authenticated operation; there is no
// process-global "current user" state.
package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/igire/igire/internal/store"
)

// SessionDuration is how long a login session stays valid.
const SessionDuration = 24 * time.Hour

// MinPasswordLen is the minimum accepted password length.
const MinPasswordLen = 8

var (
	// ErrInvalidEmail is returned when an email fails the format check.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrShortPassword is returned when a password is too short.
	ErrShortPassword = fmt.Errorf("password must be at least %d characters", MinPasswordLen)

	// ErrEmailTaken mirrors the store-level duplicate email error.
	ErrEmailTaken = store.ErrEmailTaken

	// ErrInvalidCredentials is returned for both unknown emails and
	// wrong passwords, so a caller cannot tell which case applied.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotLoggedIn is returned when no valid session exists for a token.
	ErrNotLoggedIn = errors.New("no user is logged in")
)

// Session is an authenticated identity reference.
type Session struct {
	Token     string
	UserID    int64
	Email     string
	ExpiresAt time.Time
}

// Registration carries the fields collected at sign-up. Age and
// BusinessInterest are optional.
type Registration struct {
	Email            string
	Password         string
	Name             string
	Age              *int
	BusinessInterest *string
}

// Service handles registration, login and session resolution.
type Service struct {
	users    store.UserRepo
	sessions store.SessionRepo
}

// NewService creates a Service backed by the given store.
func NewService(st *store.Store) *Service {
	return &Service{users: st.Users(), sessions: st.Sessions()}
}

// Register validates and creates a new user account. It does not log
// the user in; callers chain Login explicitly after registration.
func (s *Service) Register(reg Registration) (*store.User, error) {
	if !ValidEmail(reg.Email) {
		return nil, ErrInvalidEmail
	}
	if len(reg.Password) < MinPasswordLen {
		return nil, ErrShortPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &store.User{
		Email:        reg.Email,
		PasswordHash: string(hash),
		Name:         reg.Name,
	}
	if reg.Age != nil {
		u.Age = sql.NullInt64{Int64: int64(*reg.Age), Valid: true}
	}
	if reg.BusinessInterest != nil {
		u.BusinessInterest = sql.NullString{String: *reg.BusinessInterest, Valid: true}
	}

	created, err := s.users.Create(u)
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login authenticates the email/password pair and issues a session.
// Unknown email and wrong password both fail with ErrInvalidCredentials.
func (s *Service) Login(email, password string) (*Session, error) {
	if !ValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	u, err := s.users.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(SessionDuration)
	if _, err := s.sessions.Create(token, u.ID, expires); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("user logged in")
	return &Session{Token: token, UserID: u.ID, Email: u.Email, ExpiresAt: expires}, nil
}

// Logout invalidates the session. Returns ErrNotLoggedIn when the token
// does not resolve to an active session.
func (s *Service) Logout(sess *Session) error {
	if sess == nil {
		return ErrNotLoggedIn
	}
	stored, err := s.sessions.ByID(sess.Token)
	if err != nil {
		return err
	}
	if stored == nil {
		return ErrNotLoggedIn
	}
	return s.sessions.Delete(sess.Token)
}

// CurrentUser resolves the session to its user profile. Expired or
// unknown sessions fail with ErrNotLoggedIn.
func (s *Service) CurrentUser(sess *Session) (*store.User, error) {
	if sess == nil {
		return nil, ErrNotLoggedIn
	}
	stored, err := s.sessions.ByID(sess.Token)
	if err != nil {
		return nil, err
	}
	if stored == nil || time.Now().UTC().After(stored.ExpiresAt) {
		return nil, ErrNotLoggedIn
	}

	u, err := s.users.ByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}
