// Package register is the account creation form. A successful
// registration does not log the user in; it hands off to the login
// screen with the email prefilled.
package register

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/login"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/layout"
	"github.com/igire/igire/internal/ui/theme"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldName
	fieldAge
	fieldInterest
)

// submitMsg carries the outcome of a registration attempt.
type submitMsg struct {
	err   error
	email string
}

// RegisterScreen collects the sign-up fields.
type RegisterScreen struct {
	authSvc *auth.Service
	form    components.Form
	errMsg  string
}

var _ screen.Screen = (*RegisterScreen)(nil)

// New creates a RegisterScreen.
func New(authSvc *auth.Service) *RegisterScreen {
	s := &RegisterScreen{authSvc: authSvc}

	fields := []components.TextInput{
		components.NewTextInput("Email", "you@example.com"),
		components.NewPasswordInput("Password (min 8 characters)"),
		components.NewTextInput("Full Name", ""),
		components.NewNumericInput("Age (optional)", ""),
		components.NewTextInput("Business Interest (optional)", ""),
	}
	s.form = components.NewForm(fields, "Register", s.submit)
	return s
}

func (s *RegisterScreen) submit() tea.Cmd {
	email := s.form.Value(fieldEmail)
	reg := auth.Registration{
		Email:    email,
		Password: s.form.Fields[fieldPassword].Value(),
		Name:     s.form.Value(fieldName),
	}
	if v := s.form.Value(fieldAge); v != "" {
		if age, err := strconv.Atoi(v); err == nil {
			reg.Age = &age
		}
	}
	if v := s.form.Value(fieldInterest); v != "" {
		reg.BusinessInterest = &v
	}

	return func() tea.Msg {
		_, err := s.authSvc.Register(reg)
		return submitMsg{err: err, email: email}
	}
}

func (s *RegisterScreen) Title() string {
	return "Registration"
}

func (s *RegisterScreen) Init() tea.Cmd {
	return s.form.Init()
}

func (s *RegisterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		// Registration does not authenticate; chain into login.
		next := login.New(s.authSvc, msg.email)
		next.SetNotice("Registration successful. Please log in.")
		return s, func() tea.Msg {
			return router.SwapScreenMsg{Screen: next}
		}
	}

	var cmd tea.Cmd
	s.form, cmd = s.form.Update(msg)
	return s, cmd
}

func (s *RegisterScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("CREATE YOUR ACCOUNT"))
	b.WriteString("\n\n")
	b.WriteString(s.form.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Incorrect.Render("✗ " + s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// KeyHints customizes the footer for form navigation.
func (s *RegisterScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/Enter", Description: "Next field"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
