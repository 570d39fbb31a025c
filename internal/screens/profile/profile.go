// Package profile displays the logged-in user's account details.
package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/theme"
)

// ProfileScreen shows the current user's profile.
type ProfileScreen struct {
	user   *store.User
	errMsg string
}

var _ screen.Screen = (*ProfileScreen)(nil)

// New creates a ProfileScreen, resolving the session immediately.
func New(authSvc *auth.Service, sess *auth.Session) *ProfileScreen {
	s := &ProfileScreen{}
	user, err := authSvc.CurrentUser(sess)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.user = user
	return s
}

func (s *ProfileScreen) Title() string {
	return "Your Profile"
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("✗ "+s.errMsg))
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	rows := []string{
		label.Render("Email              ") + value.Render(s.user.Email),
		label.Render("Name               ") + value.Render(s.user.Name),
	}
	if s.user.Age.Valid {
		rows = append(rows, label.Render("Age                ")+value.Render(fmt.Sprintf("%d", s.user.Age.Int64)))
	}
	if s.user.BusinessInterest.Valid {
		rows = append(rows, label.Render("Business Interest  ")+value.Render(s.user.BusinessInterest.String))
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
