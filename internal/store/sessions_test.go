package store

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	u := createTestUser(t, s.Users(), "s@example.com")
	repo := s.Sessions()

	created, err := repo.Create("token-1", u.ID, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != u.ID {
		t.Errorf("user id = %d, want %d", created.UserID, u.ID)
	}

	got, err := repo.ByID("token-1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil {
		t.Fatal("expected session, got nil")
	}

	if err := repo.Delete("token-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = repo.ByID("token-1")
	if err != nil {
		t.Fatalf("by id after delete: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestDeleteForUser(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	u1 := createTestUser(t, s.Users(), "one@example.com")
	u2 := createTestUser(t, s.Users(), "two@example.com")

	for i, uid := range []int64{u1.ID, u1.ID, u2.ID} {
		if _, err := repo.Create("tok-"+string(rune('a'+i)), uid, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if err := repo.DeleteForUser(u1.ID); err != nil {
		t.Fatalf("delete for user: %v", err)
	}

	for _, tok := range []string{"tok-a", "tok-b"} {
		if got, _ := repo.ByID(tok); got != nil {
			t.Errorf("expected %s to be deleted", tok)
		}
	}
	if got, _ := repo.ByID("tok-c"); got == nil {
		t.Error("expected other user's session to survive")
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	s := openTestStore(t)
	u := createTestUser(t, s.Users(), "s@example.com")
	repo := s.Sessions()

	if _, err := repo.Create("stale", u.ID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("create stale: %v", err)
	}
	if _, err := repo.Create("fresh", u.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	if err := repo.DeleteExpired(); err != nil {
		t.Fatalf("delete expired: %v", err)
	}

	stale, _ := repo.ByID("stale")
	if stale != nil {
		t.Error("expected stale session to be gone")
	}
	fresh, _ := repo.ByID("fresh")
	if fresh == nil {
		t.Error("expected fresh session to survive")
	}
}
