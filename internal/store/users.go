package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrEmailTaken is returned when an insert collides with the unique
// email constraint. The constraint is the single source of truth for
// duplicate detection; there is no read-then-write pre-check.
var ErrEmailTaken = errors.New("email already registered")

// User is the canonical user record. Every query path scans into this
// one shape.
type User struct {
	ID               int64
	Email            string
	PasswordHash     string
	Name             string
	Age              sql.NullInt64
	BusinessInterest sql.NullString
	CreatedAt        time.Time
}

// UserRepo provides access to user accounts.
type UserRepo interface {
	// Create inserts a new user and returns the stored record.
	// Returns ErrEmailTaken if the email is already registered.
	Create(u *User) (*User, error)

	// ByEmail returns the user with the given email, or nil if none exists.
	ByEmail(email string) (*User, error)

	// ByID returns the user with the given id, or nil if none exists.
	ByID(id int64) (*User, error)

	// Count returns the number of registered users.
	Count() (int, error)
}

type userRepo struct {
	db *sql.DB
}

func (r *userRepo) Create(u *User) (*User, error) {
	now := time.Now().UTC()
	res, err := r.db.Exec(`
		INSERT INTO users (email, password_hash, name, age, business_interest, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, u.Email, u.PasswordHash, u.Name, u.Age, u.BusinessInterest, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("user id: %w", err)
	}

	created := *u
	created.ID = id
	created.CreatedAt = now
	return &created, nil
}

func (r *userRepo) ByEmail(email string) (*User, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, email, password_hash, name, age, business_interest, created_at
		FROM users WHERE email = ?
	`, email))
}

func (r *userRepo) ByID(id int64) (*User, error) {
	return r.scanOne(r.db.QueryRow(`
		SELECT id, email, password_hash, name, age, business_interest, created_at
		FROM users WHERE id = ?
	`, id))
}

func (r *userRepo) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *userRepo) scanOne(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Age, &u.BusinessInterest, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return u, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure. The modernc driver exposes this only through the message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
