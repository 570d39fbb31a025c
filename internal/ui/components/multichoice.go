package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/igire/igire/internal/ui/theme"
)

// ChoiceLabels selects how options are labeled.
type ChoiceLabels int

const (
	// LetterLabels labels options A), B), C), ...
	LetterLabels ChoiceLabels = iota
	// NumberLabels labels options 1), 2), 3), ...
	NumberLabels
)

// MultiChoice is a multiple-choice selector. Selection via arrow keys
// makes out-of-range answers impossible.
type MultiChoice struct {
	Question     string
	Options      []string
	Labels       ChoiceLabels
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewMultiChoice creates a multiple-choice selector. correctIndex is
// zero-based.
func NewMultiChoice(question string, options []string, correctIndex int, labels ChoiceLabels) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		Labels:       labels,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// label returns the display label for option i.
func (m MultiChoice) label(i int) string {
	if m.Labels == NumberLabels {
		return fmt.Sprintf("%d", i+1)
	}
	return string(rune('A' + i))
}

// View renders the selector. After submission the correct option is
// highlighted green and a wrong choice red.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, m.label(i), opt)

		if m.Submitted {
			switch {
			case i == m.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == m.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the user chose the correct answer.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}

// ChosenLabel returns the label of the chosen option ("A", "B", ... or
// "1", "2", ...), or "" before submission.
func (m MultiChoice) ChosenLabel() string {
	if !m.Submitted || m.ChosenIndex < 0 {
		return ""
	}
	return m.label(m.ChosenIndex)
}
