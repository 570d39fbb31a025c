package auth

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/igire/igire/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewService(st)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		reg     Registration
		wantErr error
	}{
		{"bad email", Registration{Email: "not-an-email", Password: "longpassword", Name: "Ann"}, ErrInvalidEmail},
		{"short password", Registration{Email: "a@b.com", Password: "short", Name: "Ann"}, ErrShortPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.reg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	reg := Registration{Email: "a@b.com", Password: "longpassword", Name: "Ann"}
	if _, err := svc.Register(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(reg)
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("second register error = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc := newTestService(t)

	u, err := svc.Register(Registration{Email: "a@b.com", Password: "longpassword", Name: "Ann"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "longpassword" || u.PasswordHash == "" {
		t.Error("password must be stored as a hash")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(Registration{Email: "a@b.com", Password: "longpassword", Name: "Ann"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, unknownErr := svc.Login("nobody@b.com", "longpassword")
	_, wrongPassErr := svc.Login("a@b.com", "wrongpassword")

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPassErr, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassErr)
	}
	if unknownErr.Error() != wrongPassErr.Error() {
		t.Errorf("failure messages differ: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestLoginRejectsMalformedEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login("not-an-email", "whatever123")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("error = %v, want ErrInvalidEmail", err)
	}
}

func TestSessionScenario(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Register(Registration{Email: "a@b.com", Password: "longpassword", Name: "Ann"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Login("a@b.com", "longpassword")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Email != "a@b.com" {
		t.Errorf("session email = %q, want a@b.com", sess.Email)
	}
	if sess.Token == "" {
		t.Error("expected non-empty session token")
	}

	u, err := svc.CurrentUser(sess)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if u.Name != "Ann" {
		t.Errorf("name = %q, want Ann", u.Name)
	}

	if err := svc.Logout(sess); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.CurrentUser(sess); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("current user after logout = %v, want ErrNotLoggedIn", err)
	}
	if err := svc.Logout(sess); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("second logout = %v, want ErrNotLoggedIn", err)
	}
}

func TestCurrentUserNilSession(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CurrentUser(nil); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("error = %v, want ErrNotLoggedIn", err)
	}
}
