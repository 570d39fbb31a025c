// Package lesson presents one Business Planning topic: the lesson text,
// its key points, and the single practice exercise.
package lesson

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/topics"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/layout"
	"github.com/igire/igire/internal/ui/theme"
)

type phase int

const (
	phaseLesson phase = iota
	phaseExercise
	phaseResult
)

// LessonScreen walks a topic from reading to exercise to feedback.
type LessonScreen struct {
	st      *store.Store
	sess    *auth.Session
	topic   topics.Topic
	phase   phase
	choice  components.MultiChoice
	correct bool
	saveErr error
}

var (
	_ screen.Screen          = (*LessonScreen)(nil)
	_ screen.KeyHintProvider = (*LessonScreen)(nil)
)

// New creates a LessonScreen for the given topic.
func New(st *store.Store, sess *auth.Session, topic topics.Topic) *LessonScreen {
	return &LessonScreen{
		st:    st,
		sess:  sess,
		topic: topic,
		choice: components.NewMultiChoice(
			topic.Exercise.Question,
			topic.Exercise.Options,
			topic.Exercise.CorrectAnswer-1,
			components.NumberLabels,
		),
	}
}

func (s *LessonScreen) Title() string {
	return s.topic.Title
}

func (s *LessonScreen) Init() tea.Cmd {
	return nil
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseLesson:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Try the exercise"},
			{Key: "Esc", Description: "Topics"},
		}
	case phaseExercise:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to topics"}}
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseLesson:
		if kmsg.String() == "enter" {
			s.phase = phaseExercise
		}
		return s, nil

	case phaseExercise:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(kmsg)
		if s.choice.Submitted {
			s.correct = s.topic.Exercise.IsCorrect(s.choice.ChosenIndex + 1)
			s.save()
			s.phase = phaseResult
		}
		return s, cmd

	case phaseResult:
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// save records the attempt. A single-exercise topic scores all or
// nothing, and attempting it completes it either way.
func (s *LessonScreen) save() {
	score := 0
	if s.correct {
		score = 100
	}
	if err := s.st.Progress().SaveProgress(s.sess.UserID, topics.ModuleName, s.topic.ID, score); err != nil {
		log.Error().Err(err).Int("topic", s.topic.ID).Msg("save progress")
		s.saveErr = err
	}
}

func (s *LessonScreen) View(width, height int) string {
	switch s.phase {
	case phaseExercise:
		return s.renderExercise(width, height)
	case phaseResult:
		return s.renderResult(width, height)
	default:
		return s.renderLesson(width, height)
	}
}

func textWidth(width int) int {
	w := width - 16
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

func (s *LessonScreen) renderLesson(width, height int) string {
	w := textWidth(width)

	var sections []string
	sections = append(sections, theme.Title.Render(strings.ToUpper(s.topic.Title)))
	sections = append(sections, "")
	sections = append(sections, theme.Body.Width(w).Render(s.topic.Description))
	sections = append(sections, "")
	sections = append(sections, theme.Subtitle.Render("Key Points"))
	for _, kp := range s.topic.KeyPoints {
		sections = append(sections, theme.Body.Width(w).Render("  • "+kp))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) renderExercise(width, height int) string {
	var sections []string
	sections = append(sections, theme.Hint.Render("Exercise"))
	sections = append(sections, "")
	sections = append(sections, s.choice.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *LessonScreen) renderResult(width, height int) string {
	w := textWidth(width)

	var verdict string
	if s.correct {
		verdict = theme.Correct.Render("✓ Correct! Well done.")
	} else {
		verdict = theme.Incorrect.Render("✗ Not quite, but you've completed this topic.")
	}

	var sections []string
	sections = append(sections, s.choice.View())
	sections = append(sections, verdict)
	if s.topic.Exercise.Explanation != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Body.Width(w).Render(s.topic.Exercise.Explanation))
	}
	if s.saveErr != nil {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render("Could not save your progress."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
