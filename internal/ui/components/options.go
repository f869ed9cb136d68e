package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// OptionList renders a question's answer options. The committed choice
// is owned by the caller; the component only moves its own cursor.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int  // committed option, -1 when none
	ShowAnswer   bool // reveal correct/incorrect styling
	Locked       bool // navigation disabled while a write is in flight
}

// NewOptionList creates an option list with no committed choice.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// View renders the options with cursor, choice, and reveal styling.
func (o OptionList) View() string {
	labels := []string{"A", "B", "C", "D"}

	var s string
	for i, opt := range o.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == o.Cursor && !o.Locked && !o.ShowAnswer {
			prefix = "▸ "
		}

		marker := "   "
		if i == o.Chosen {
			marker = " ● "
		}

		line := fmt.Sprintf("%s%s)%s%s", prefix, label, marker, opt)

		switch {
		case o.ShowAnswer && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.ShowAnswer && i == o.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		case o.ShowAnswer:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Chosen:
			s += theme.Selected.Render(line) + "\n"
		case i == o.Cursor && !o.Locked:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
