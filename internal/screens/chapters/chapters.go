// Package chapters lists a module's chapters in reading order, marking
// the ones the user has already completed.
package chapters

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/reader"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/theme"
)

// ChaptersScreen lists the chapters of one module.
type ChaptersScreen struct {
	st         *store.Store
	sess       *auth.Session
	moduleName string
	chapters   []store.Chapter
	menu       components.Menu
}

var (
	_ screen.Screen    = (*ChaptersScreen)(nil)
	_ screen.Refresher = (*ChaptersScreen)(nil)
)

// New creates a ChaptersScreen for the given module.
func New(st *store.Store, sess *auth.Session, moduleName string) *ChaptersScreen {
	s := &ChaptersScreen{st: st, sess: sess, moduleName: moduleName}

	chs, err := st.Content().ChaptersByModule(moduleName)
	if err != nil {
		log.Error().Err(err).Str("module", moduleName).Msg("load chapters")
	}
	s.chapters = chs
	s.menu = components.NewMenu(s.buildItems())
	return s
}

func (s *ChaptersScreen) buildItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.chapters))
	for _, ch := range s.chapters {
		ch := ch
		mark := " "
		p, err := s.st.Progress().TopicProgress(s.sess.UserID, s.moduleName, ch.ChapterNumber)
		if err != nil {
			log.Error().Err(err).Int("chapter", ch.ChapterNumber).Msg("load chapter progress")
		}
		if p.Completed {
			mark = "✓"
		}
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%d. %s", ch.ChapterNumber, ch.Title),
			Mark:  mark,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: reader.New(s.st, s.sess, s.moduleName, ch)}
				}
			},
		})
	}
	return items
}

func (s *ChaptersScreen) Title() string {
	return s.moduleName
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return nil
}

// Refresh reloads completion marks. A chapter quiz below this screen may
// have recorded new progress.
func (s *ChaptersScreen) Refresh() tea.Cmd {
	selected := s.menu.Selected
	s.menu = components.NewMenu(s.buildItems())
	if selected < len(s.menu.Items) {
		s.menu.Selected = selected
	}
	return nil
}

func (s *ChaptersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ChaptersScreen) View(width, height int) string {
	if len(s.chapters) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No chapters found. Run `igire seed` to load the catalog."))
	}

	var sections []string
	sections = append(sections, theme.Title.Render("CHAPTERS"))
	sections = append(sections, "")
	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
