package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/igire/igire/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

// refreshStub records whether Refresh ran when revealed by a pop.
type refreshStub struct {
	stubScreen
	refreshed bool
}

func (s *refreshStub) Refresh() tea.Cmd {
	s.refreshed = true
	return nil
}

func TestPopRefreshesRevealedScreen(t *testing.T) {
	s1 := &refreshStub{stubScreen: stubScreen{title: "list"}}
	r := New(s1)
	r.Push(&stubScreen{title: "detail"})

	r.Pop()

	if !s1.refreshed {
		t.Error("expected revealed screen to be refreshed after pop")
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplaceClearsStack(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)
	r.Push(&stubScreen{title: "second"})
	r.Push(&stubScreen{title: "third"})

	home := &stubScreen{title: "home"}
	r.Replace(home)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
	if !home.initRan {
		t.Error("expected Init() to run on replacement screen")
	}
}

func TestSwapReplacesTopOnly(t *testing.T) {
	r := New(&stubScreen{title: "first"})
	r.Push(&stubScreen{title: "second"})

	swapped := &stubScreen{title: "swapped"}
	r.Swap(swapped)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after swap, got %d", r.Depth())
	}
	if r.Active().Title() != "swapped" {
		t.Errorf("expected active 'swapped', got %q", r.Active().Title())
	}
	if !swapped.initRan {
		t.Error("expected Init() to run on swapped-in screen")
	}

	r.Pop()
	if r.Active().Title() != "first" {
		t.Errorf("expected 'first' under swapped screen, got %q", r.Active().Title())
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "first"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "second"}})
	if r.Depth() != 2 {
		t.Fatalf("expected depth 2 after PushScreenMsg, got %d", r.Depth())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("expected depth 1 after PopScreenMsg, got %d", r.Depth())
	}

	r.Update(ReplaceScreenMsg{Screen: &stubScreen{title: "home"}})
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}
