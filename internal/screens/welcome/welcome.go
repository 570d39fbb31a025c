// Package welcome shows the entry screen: banner, tagline, and the
// register/login/exit menu.
package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/login"
	"github.com/igire/igire/internal/screens/register"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/theme"
)

// WelcomeScreen is the unauthenticated entry screen.
type WelcomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(st *store.Store, authSvc *auth.Service) *WelcomeScreen {
	items := []components.MenuItem{
		{Label: "REGISTER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: register.New(authSvc)}
			}
		}},
		{Label: "LOGIN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: login.New(authSvc, "")}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &WelcomeScreen{menu: components.NewMenu(items)}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Empowering Women Entrepreneurs")
	sections = append(sections, tagline)
	sections = append(sections, "")
	sections = append(sections, w.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
