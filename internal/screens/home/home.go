// Package home is the authenticated main menu.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/chapters"
	"github.com/igire/igire/internal/screens/msgs"
	"github.com/igire/igire/internal/screens/placeholder"
	"github.com/igire/igire/internal/screens/profile"
	"github.com/igire/igire/internal/screens/progressview"
	"github.com/igire/igire/internal/screens/topicmenu"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/theme"
)

// HomeScreen is the main menu shown after login.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

func pushCmd(s screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: s}
		}
	}
}

// New creates a HomeScreen for the given session.
func New(st *store.Store, authSvc *auth.Service, sess *auth.Session) *HomeScreen {
	items := []components.MenuItem{
		{Label: "Financial Literacy", Action: pushCmd(placeholder.New("Financial Literacy"))},
		{Label: "Budgeting & Savings", Action: pushCmd(placeholder.New("Budgeting & Savings"))},
		{Label: "Business Planning & Management", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: topicmenu.New(st, sess)}
			}
		}},
		{Label: "Accessing Funding & Loans", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chapters.New(st, sess, "Accessing Funding & Loans")}
			}
		}},
		{Label: "Marketing & Branding", Action: pushCmd(placeholder.New("Marketing & Branding"))},
		{Label: "Assess Yourself", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progressview.New(st, sess)}
			}
		}},
		{Label: "View Profile", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(authSvc, sess)}
			}
		}},
		{Label: "Logout", Action: func() tea.Cmd {
			return func() tea.Msg {
				return msgs.SessionEndedMsg{}
			}
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Title() string {
	return "Main Menu"
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render("WHAT WOULD YOU LIKE TO LEARN TODAY?"))
	sections = append(sections, "")
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
