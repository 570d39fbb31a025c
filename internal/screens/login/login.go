// Package login is the email/password form. A successful login emits
// msgs.SessionStartedMsg so the root model can install the session and
// switch to the main menu.
package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/msgs"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/layout"
	"github.com/igire/igire/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
)

// submitMsg carries the outcome of a login attempt.
type submitMsg struct {
	sess *auth.Session
	user *store.User
	err  error
}

// LoginScreen collects credentials and establishes a session.
type LoginScreen struct {
	authSvc *auth.Service
	form    components.Form
	notice  string
	errMsg  string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates a LoginScreen. prefillEmail may be empty.
func New(authSvc *auth.Service, prefillEmail string) *LoginScreen {
	s := &LoginScreen{authSvc: authSvc}

	email := components.NewTextInput("Email", "you@example.com")
	if prefillEmail != "" {
		email.Model.SetValue(prefillEmail)
	}
	fields := []components.TextInput{
		email,
		components.NewPasswordInput("Password"),
	}
	s.form = components.NewForm(fields, "Login", s.submit)
	return s
}

// SetNotice sets an informational line shown above the form.
func (s *LoginScreen) SetNotice(notice string) {
	s.notice = notice
}

func (s *LoginScreen) submit() tea.Cmd {
	email := s.form.Value(fieldEmail)
	password := s.form.Fields[fieldPassword].Value()

	return func() tea.Msg {
		sess, err := s.authSvc.Login(email, password)
		if err != nil {
			return submitMsg{err: err}
		}
		user, err := s.authSvc.CurrentUser(sess)
		if err != nil {
			return submitMsg{err: err}
		}
		return submitMsg{sess: sess, user: user}
	}
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return msgs.SessionStartedMsg{Session: msg.sess, User: msg.user}
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("WELCOME BACK"))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(theme.Correct.Render("✓ " + s.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(s.form.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints customizes the footer for form navigation.
func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/Enter", Description: "Next field"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
