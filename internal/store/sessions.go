package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Session is a persisted login session. The token (ID) is handed to the
// caller at login and passed back into authenticated operations.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionRepo provides access to login sessions.
type SessionRepo interface {
	// Create inserts a new session record.
	Create(id string, userID int64, expiresAt time.Time) (*Session, error)

	// ByID returns the session with the given token, or nil if none exists.
	ByID(id string) (*Session, error)

	// Delete removes a session by token.
	Delete(id string) error

	// DeleteForUser removes all of a user's sessions.
	DeleteForUser(userID int64) error

	// DeleteExpired removes all sessions past their expiry.
	DeleteExpired() error
}

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Create(id string, userID int64, expiresAt time.Time) (*Session, error) {
	now := time.Now().UTC()
	_, err := r.db.Exec(`
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, id, userID, now, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &Session{ID: id, UserID: userID, CreatedAt: now, ExpiresAt: expiresAt}, nil
}

func (r *sessionRepo) ByID(id string) (*Session, error) {
	s := &Session{}
	err := r.db.QueryRow(`
		SELECT id, user_id, created_at, expires_at
		FROM sessions WHERE id = ?
	`, id).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

func (r *sessionRepo) Delete(id string) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteForUser(userID int64) error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE user_id = ?", userID); err != nil {
		return fmt.Errorf("delete user sessions: %w", err)
	}
	return nil
}

func (r *sessionRepo) DeleteExpired() error {
	if _, err := r.db.Exec("DELETE FROM sessions WHERE expires_at < ?", time.Now().UTC()); err != nil {
		return fmt.Errorf("delete expired sessions: %w", err)
	}
	return nil
}
