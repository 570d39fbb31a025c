package store

import (
	"database/sql"
	"errors"
	"testing"
)

func createTestUser(t *testing.T, repo UserRepo, email string) *User {
	t.Helper()
	u, err := repo.Create(&User{
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Name:         "Test User",
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func TestUserCreateAndFetch(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()

	created, err := repo.Create(&User{
		Email:            "ann@example.com",
		PasswordHash:     "hash",
		Name:             "Ann",
		Age:              sql.NullInt64{Int64: 31, Valid: true},
		BusinessInterest: sql.NullString{String: "Tailoring", Valid: true},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected non-zero id")
	}

	byEmail, err := repo.ByEmail("ann@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if byEmail == nil {
		t.Fatal("expected user, got nil")
	}
	if byEmail.Name != "Ann" {
		t.Errorf("name = %q, want %q", byEmail.Name, "Ann")
	}
	if !byEmail.Age.Valid || byEmail.Age.Int64 != 31 {
		t.Errorf("age = %+v, want 31", byEmail.Age)
	}

	byID, err := repo.ByID(created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID == nil || byID.Email != "ann@example.com" {
		t.Errorf("by id returned %+v", byID)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()

	createTestUser(t, repo, "dup@example.com")
	_, err := repo.Create(&User{Email: "dup@example.com", PasswordHash: "x", Name: "Other"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()

	u, err := repo.ByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if u != nil {
		t.Errorf("expected nil for unknown email, got %+v", u)
	}
}

func TestUserCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.Users()

	n, err := repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}

	createTestUser(t, repo, "one@example.com")
	createTestUser(t, repo, "two@example.com")

	n, err = repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
