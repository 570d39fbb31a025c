// Package chapterquiz runs the end-of-chapter quiz and records the score.
package chapterquiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rs/zerolog/log"

	"github.com/igire/igire/internal/auth"
	"github.com/igire/igire/internal/quiz"
	"github.com/igire/igire/internal/router"
	"github.com/igire/igire/internal/screen"
	"github.com/igire/igire/internal/store"
	"github.com/igire/igire/internal/ui/components"
	"github.com/igire/igire/internal/ui/layout"
	"github.com/igire/igire/internal/ui/theme"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseResult
)

// QuizScreen asks each chapter question in order, shows per-question
// feedback, then the final score.
type QuizScreen struct {
	st         *store.Store
	sess       *auth.Session
	moduleName string
	chapter    store.Chapter
	questions  []store.Question
	answers    []string
	idx        int
	phase      phase
	choice     components.MultiChoice
	result     quiz.Result
	saveErr    error
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
)

// New creates a QuizScreen for the given chapter.
func New(st *store.Store, sess *auth.Session, moduleName string, chapter store.Chapter) *QuizScreen {
	questions, err := st.Content().QuestionsByChapter(chapter.ID)
	if err != nil {
		log.Error().Err(err).Int64("chapter_id", chapter.ID).Msg("load questions")
	}
	s := &QuizScreen{
		st:         st,
		sess:       sess,
		moduleName: moduleName,
		chapter:    chapter,
		questions:  questions,
	}
	if len(questions) == 0 {
		// Reading alone completes a chapter with no quiz.
		s.phase = phaseResult
		s.save()
	} else {
		s.choice = newChoice(questions[0])
	}
	return s
}

func newChoice(q store.Question) components.MultiChoice {
	correct := 0
	if co := strings.ToUpper(strings.TrimSpace(q.CorrectOption)); co != "" {
		correct = int(co[0] - 'A')
	}
	return components.NewMultiChoice(q.Text, q.Options(), correct, components.LetterLabels)
}

func (s *QuizScreen) Title() string {
	return fmt.Sprintf("Chapter %d Quiz", s.chapter.ChapterNumber)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case phaseResult:
		return []layout.KeyHint{{Key: "Enter", Description: "Back to chapters"}}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(kmsg)
		if s.choice.Submitted {
			s.answers = append(s.answers, s.choice.ChosenLabel())
			s.phase = phaseFeedback
		}
		return s, cmd

	case phaseFeedback:
		s.idx++
		if s.idx < len(s.questions) {
			s.choice = newChoice(s.questions[s.idx])
			s.phase = phaseQuestion
			return s, nil
		}
		s.phase = phaseResult
		s.save()
		return s, nil

	case phaseResult:
		if kmsg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// save grades the attempt and upserts the chapter's progress row. The
// chapter number doubles as the topic key within the module.
func (s *QuizScreen) save() {
	s.result = quiz.Grade(s.questions, s.answers)
	score := s.result.Percent()
	if len(s.questions) == 0 {
		score = 100
		s.result = quiz.Result{Correct: 0, Total: 0}
	}
	if err := s.st.Progress().SaveProgress(s.sess.UserID, s.moduleName, s.chapter.ChapterNumber, score); err != nil {
		log.Error().Err(err).
			Str("module", s.moduleName).
			Int("chapter", s.chapter.ChapterNumber).
			Msg("save progress")
		s.saveErr = err
	}
}

func (s *QuizScreen) View(width, height int) string {
	switch s.phase {
	case phaseResult:
		return s.renderResult(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderQuestion(width, height)
	}
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	var sections []string
	sections = append(sections, theme.Hint.Render(
		fmt.Sprintf("Question %d of %d", s.idx+1, len(s.questions))))
	sections = append(sections, "")
	sections = append(sections, s.choice.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderFeedback(width, height int) string {
	q := s.questions[s.idx]

	var verdict string
	if s.choice.IsCorrect() {
		verdict = theme.Correct.Render("✓ Correct!")
	} else {
		verdict = theme.Incorrect.Render(
			fmt.Sprintf("✗ Not quite. The answer was %s.", q.CorrectOption))
	}

	var sections []string
	sections = append(sections, s.choice.View())
	sections = append(sections, verdict)
	if q.Explanation != "" {
		sections = append(sections, "")
		sections = append(sections, theme.Body.Width(56).Render(q.Explanation))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderResult(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Render("QUIZ COMPLETE"))
	sections = append(sections, "")

	if s.result.Total > 0 {
		sections = append(sections, theme.Body.Render(
			fmt.Sprintf("You scored %s (%d%%)", s.result.Fraction(), s.result.Percent())))
		sections = append(sections, "")
		bar := components.NewProgressBar("", float64(s.result.Percent())/100, false, 40)
		sections = append(sections, bar.View())
	} else {
		sections = append(sections, theme.Body.Render("Chapter complete!"))
	}

	if s.saveErr != nil {
		sections = append(sections, "")
		sections = append(sections, theme.Incorrect.Render("Could not save your progress."))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
