// Package progressview shows the user's per-module completion summary.
package progressview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/topics"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/theme"
)

// ProgressScreen renders one bar per module the user has touched.
type ProgressScreen struct {
	summary []store.ModuleProgress
	loadErr error
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New loads the summary for the logged-in user.
func New(st *store.Store, sess *auth.Session) *ProgressScreen {
	s := &ProgressScreen{}
	summary, err := st.Progress().Summary(sess.UserID)
	if err != nil {
		log.Error().Err(err).Msg("load progress summary")
		s.loadErr = err
		return s
	}
	s.summary = summary
	return s
}

func (s *ProgressScreen) Title() string {
	return "Assess Yourself"
}

func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

// displayName maps stored module keys to menu labels.
func displayName(module string) string {
	if module == topics.ModuleName {
		return "Business Planning & Management"
	}
	return module
}

func (s *ProgressScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Could not load your progress."))
	}

	if len(s.summary) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No progress yet. Complete a topic or chapter quiz first."))
	}

	var sections []string
	sections = append(sections, theme.Title.Render("YOUR PROGRESS"))
	sections = append(sections, "")

	for _, mp := range s.summary {
		sections = append(sections, theme.Body.Render(displayName(mp.Module)))
		bar := components.NewProgressBar("", mp.AvgScore/100, false, 36)
		line := fmt.Sprintf("%s  %d done · avg %.0f%%", bar.View(), mp.Completed, mp.AvgScore)
		sections = append(sections, line)
		sections = append(sections, "")
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
