package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Form chains labeled text inputs with a submit button. Enter advances
// through the fields and finally submits; tab/shift+tab and up/down
// move focus both ways.
type Form struct {
	Fields []TextInput
	Submit Button
	focus  int // index into Fields; len(Fields) means the button
}

// NewForm creates a form over the given fields.
func NewForm(fields []TextInput, submitLabel string, onSubmit func() tea.Cmd) Form {
	return Form{
		Fields: fields,
		Submit: NewButton(submitLabel, false, onSubmit),
	}
}

// Init focuses the first field.
func (f Form) Init() tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	return f.Fields[0].Focus()
}

// Update handles focus movement and forwards everything else to the
// focused field or button.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return f.move(1)
		case "shift+tab", "up":
			return f.move(-1)
		case "enter":
			if f.focus < len(f.Fields) {
				return f.move(1)
			}
			var cmd tea.Cmd
			f.Submit, cmd = f.Submit.Update(msg)
			return f, cmd
		}
	}

	if f.focus < len(f.Fields) {
		var cmd tea.Cmd
		f.Fields[f.focus], cmd = f.Fields[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) move(delta int) (Form, tea.Cmd) {
	next := f.focus + delta
	if next < 0 || next > len(f.Fields) {
		return f, nil
	}

	if f.focus < len(f.Fields) {
		f.Fields[f.focus].Blur()
	}
	f.focus = next

	if f.focus == len(f.Fields) {
		f.Submit.Active = true
		return f, nil
	}
	f.Submit.Active = false
	return f, f.Fields[f.focus].Focus()
}

// Value returns the trimmed value of field i.
func (f Form) Value(i int) string {
	return strings.TrimSpace(f.Fields[i].Value())
}

// View renders the fields followed by the submit button.
func (f Form) View() string {
	parts := make([]string, 0, len(f.Fields)+1)
	for _, field := range f.Fields {
		parts = append(parts, field.View())
	}
	parts = append(parts, f.Submit.View())
	return strings.Join(parts, "\n\n")
}
