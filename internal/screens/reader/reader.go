// Package reader pages through a chapter's content blocks and hands off
// to the chapter quiz.
package reader

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/screens/chapterquiz"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/layout"
	"github.com/igire/igire/internal/ui/theme"
)

// ReaderScreen shows one content block at a time.
type ReaderScreen struct {
	st         *store.Store
	sess       *auth.Session
	moduleName string
	chapter    store.Chapter
	blocks     []store.ContentBlock
	idx        int
}

var (
	_ screen.Screen          = (*ReaderScreen)(nil)
	_ screen.KeyHintProvider = (*ReaderScreen)(nil)
)

// New creates a ReaderScreen for the given chapter.
func New(st *store.Store, sess *auth.Session, moduleName string, chapter store.Chapter) *ReaderScreen {
	blocks, err := st.Content().ContentByChapter(chapter.ID)
	if err != nil {
		log.Error().Err(err).Int64("chapter_id", chapter.ID).Msg("load content")
	}
	return &ReaderScreen{
		st:         st,
		sess:       sess,
		moduleName: moduleName,
		chapter:    chapter,
		blocks:     blocks,
	}
}

func (s *ReaderScreen) Title() string {
	return fmt.Sprintf("Chapter %d", s.chapter.ChapterNumber)
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

func (s *ReaderScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if s.idx > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	if s.onLastBlock() {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start quiz"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter/→", Description: "Next"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Chapters"})
	return hints
}

func (s *ReaderScreen) onLastBlock() bool {
	return len(s.blocks) == 0 || s.idx == len(s.blocks)-1
}

func (s *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.idx > 0 {
			s.idx--
		}
	case "right", "l":
		if s.idx < len(s.blocks)-1 {
			s.idx++
		}
	case "enter":
		if !s.onLastBlock() {
			s.idx++
			return s, nil
		}
		return s, func() tea.Msg {
			return router.SwapScreenMsg{
				Screen: chapterquiz.New(s.st, s.sess, s.moduleName, s.chapter),
			}
		}
	}

	return s, nil
}

func (s *ReaderScreen) View(width, height int) string {
	title := theme.Title.Render(s.chapter.Title)

	if len(s.blocks) == 0 {
		content := title + "\n\n" + theme.Hint.Render("This chapter has no content yet.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	block := s.blocks[s.idx]

	textWidth := width - 16
	if textWidth > 64 {
		textWidth = 64
	}
	if textWidth < 24 {
		textWidth = 24
	}

	var sections []string
	sections = append(sections, title)
	sections = append(sections, theme.Hint.Render(
		fmt.Sprintf("%s  ·  part %d of %d", blockTag(block.ContentType), s.idx+1, len(s.blocks))))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Width(textWidth).Render(block.ContentText))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// blockTag renders a content type as a short display tag.
func blockTag(contentType string) string {
	switch contentType {
	case "text":
		return "Lesson"
	case "example":
		return "Example"
	case "tip":
		return "Tip"
	default:
		if contentType == "" {
			return "Lesson"
		}
		return strings.ToUpper(contentType[:1]) + contentType[1:]
	}
}
