package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/home"
	"github.com/igire/igire/internal/screens/msgs"
	"github.com/igire/igire/internal/screens/welcome"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/layout"
)

// Options carries the services the app depends on.
type Options struct {
	Store *store.Store
	Auth  *auth.Service
}

// AppModel is the root Bubble Tea model. It owns the login session for
// the lifetime of the run and hands it to the screens that need it.
type AppModel struct {
	opts      Options
	router    *router.Router
	width     int
	height    int
	sess      *auth.Session
	userLabel string
}

// newAppModel creates a new AppModel showing the welcome screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(opts.Store, opts.Auth)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.SessionStartedMsg:
		m.sess = msg.Session
		m.userLabel = msg.User.Name
		cmd := m.router.Replace(home.New(m.opts.Store, m.opts.Auth, m.sess))
		return m, cmd

	case msgs.SessionEndedMsg:
		if err := m.opts.Auth.Logout(m.sess); err != nil {
			log.Warn().Err(err).Msg("logout failed")
		}
		m.sess = nil
		m.userLabel = ""
		cmd := m.router.Replace(welcome.New(m.opts.Store, m.opts.Auth))
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.userLabel, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
