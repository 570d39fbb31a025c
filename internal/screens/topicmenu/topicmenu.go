// Package topicmenu lists the Business Planning & Management topics,
// marking the ones the user has already completed.
package topicmenu

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/lesson"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/topics"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/theme"
)

// TopicMenuScreen lists the course topics.
type TopicMenuScreen struct {
	st      *store.Store
	sess    *auth.Session
	items   []topics.Topic
	menu    components.Menu
	loadErr error
}

var (
	_ screen.Screen    = (*TopicMenuScreen)(nil)
	_ screen.Refresher = (*TopicMenuScreen)(nil)
)

// New creates the topic menu.
func New(st *store.Store, sess *auth.Session) *TopicMenuScreen {
	s := &TopicMenuScreen{st: st, sess: sess}

	all, err := topics.All()
	if err != nil {
		log.Error().Err(err).Msg("load topics")
		s.loadErr = err
		return s
	}
	s.items = all
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *TopicMenuScreen) buildItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.items))
	for _, t := range s.items {
		t := t
		mark := " "
		p, err := s.st.Progress().TopicProgress(s.sess.UserID, topics.ModuleName, t.ID)
		if err != nil {
			log.Error().Err(err).Int("topic", t.ID).Msg("load topic progress")
		}
		if p.Completed {
			mark = "✓"
		}
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d. %s", t.ID, t.Title),
			Mark:  mark,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: lesson.New(s.st, s.sess, t)}
				}
			},
		})
	}
	return items
}

func (s *TopicMenuScreen) Title() string {
	return "Business Planning & Management"
}

func (s *TopicMenuScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads completion marks after a lesson below this screen
// recorded progress.
func (s *TopicMenuScreen) Refresh() tea.Cmd {
	if s.loadErr != nil {
		return nil
	}
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.buildItems())
	if selected < len(s.menu.Items) {
		s.menu.Selected = selected
	}
	return nil
}

func (s *TopicMenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.loadErr != nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TopicMenuScreen) View(width, height int) string {
	if s.loadErr != nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render("Course content failed to load."))
	}

	var sections []string
	sections = append(sections, theme.Title.Render("TOPICS"))
	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
