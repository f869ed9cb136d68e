package notes

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type notesLoadedMsg struct {
	Notes []api.Note
	Err   error
}

type noteSavedMsg struct {
	Note *api.Note
	Err  error
}

type noteDeletedMsg struct {
	ID  int
	Err error
}

type mode int

const (
	modeList mode = iota
	modeCompose
)

// NotesScreen lists, creates, edits, and deletes the user's notes.
type NotesScreen struct {
	client *api.Client

	notes    []api.Note
	selected int
	loaded   bool
	errMsg   string

	mode       mode
	editingID  int // 0 when composing a new note
	titleInput components.TextInput
	bodyInput  components.TextInput
	focusBody  bool
	saving     bool

	confirmDelete bool
}

var _ screen.Screen = (*NotesScreen)(nil)
var _ screen.KeyHintProvider = (*NotesScreen)(nil)

// New creates the notes screen.
func New(client *api.Client) *NotesScreen {
	return &NotesScreen{client: client}
}

func (s *NotesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		notes, err := s.client.ListNotes(context.Background())
		return notesLoadedMsg{Notes: notes, Err: err}
	}
}

func (s *NotesScreen) Title() string {
	return "Notes"
}

func (s *NotesScreen) KeyHints() []layout.KeyHint {
	if s.mode == modeCompose {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "n", Description: "New"},
		{Key: "e", Description: "Edit"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *NotesScreen) startCompose(note *api.Note) {
	s.mode = modeCompose
	s.focusBody = false
	s.errMsg = ""
	s.titleInput = components.NewTextInput("title", false, 0)
	s.bodyInput = components.NewTextInput("write your note", false, 0)
	if note != nil {
		s.editingID = note.ID
		s.titleInput.Model.SetValue(note.Title)
		s.bodyInput.Model.SetValue(note.Content)
	} else {
		s.editingID = 0
	}
	s.bodyInput.Model.Blur()
}

func (s *NotesScreen) save() tea.Cmd {
	title := strings.TrimSpace(s.titleInput.Value())
	content := strings.TrimSpace(s.bodyInput.Value())
	if title == "" {
		s.errMsg = "title must not be empty"
		return nil
	}
	s.saving = true
	id := s.editingID
	return func() tea.Msg {
		ctx := context.Background()
		if id != 0 {
			note, err := s.client.UpdateNote(ctx, id, title, content)
			return noteSavedMsg{Note: note, Err: err}
		}
		note, err := s.client.CreateNote(ctx, title, content)
		return noteSavedMsg{Note: note, Err: err}
	}
}

func (s *NotesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.notes = msg.Notes
		return s, nil

	case noteSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeList
		// Reload so ordering and server timestamps stay authoritative.
		return s, s.Init()

	case noteDeletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		kept := s.notes[:0]
		for _, n := range s.notes {
			if n.ID != msg.ID {
				kept = append(kept, n)
			}
		}
		s.notes = kept
		if s.selected >= len(s.notes) && s.selected > 0 {
			s.selected--
		}
		return s, nil

	case tea.KeyMsg:
		if s.mode == modeCompose {
			return s.updateCompose(msg)
		}
		return s.updateList(msg)
	}
	return s, nil
}

func (s *NotesScreen) updateList(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmDelete {
		switch msg.String() {
		case "y", "enter":
			s.confirmDelete = false
			if s.selected < len(s.notes) {
				id := s.notes[s.selected].ID
				return s, func() tea.Msg {
					return noteDeletedMsg{ID: id, Err: s.client.DeleteNote(context.Background(), id)}
				}
			}
		case "n", "esc":
			s.confirmDelete = false
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.notes)-1 {
			s.selected++
		}
	case "n":
		s.startCompose(nil)
		return s, s.titleInput.Init()
	case "e":
		if s.selected < len(s.notes) {
			note := s.notes[s.selected]
			s.startCompose(&note)
			return s, s.titleInput.Init()
		}
	case "d":
		if s.selected < len(s.notes) {
			s.confirmDelete = true
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *NotesScreen) updateCompose(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.saving {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.mode = modeList
		s.errMsg = ""
		return s, nil
	case "tab":
		s.focusBody = !s.focusBody
		if s.focusBody {
			s.titleInput.Model.Blur()
			return s, s.bodyInput.Model.Focus()
		}
		s.bodyInput.Model.Blur()
		return s, s.titleInput.Model.Focus()
	case "enter":
		return s, s.save()
	}

	var cmd tea.Cmd
	if s.focusBody {
		s.bodyInput, cmd = s.bodyInput.Update(msg)
	} else {
		s.titleInput, cmd = s.titleInput.Update(msg)
	}
	return s, cmd
}

func (s *NotesScreen) View(width, height int) string {
	if s.mode == modeCompose {
		return s.viewCompose(width)
	}

	if s.errMsg != "" && len(s.notes) == 0 && s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading notes...")
	}
	if len(s.notes) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No notes yet. Press n to write one.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, note := range s.notes {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(prefix+note.Title) + "\n")
		if i == s.selected {
			preview := note.Content
			if len(preview) > 120 {
				preview = preview[:120] + "..."
			}
			b.WriteString("      " + theme.Hint.Render(preview) + "\n")
		}
	}

	if s.confirmDelete {
		b.WriteString("\n  " + theme.Flagged.Render("Delete this note? (y/n)") + "\n")
	} else if s.errMsg != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg) + "\n")
	}

	return b.String()
}

func (s *NotesScreen) viewCompose(width int) string {
	header := "New note"
	if s.editingID != 0 {
		header = "Edit note"
	}

	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render(header) + "\n\n")
	b.WriteString("  " + theme.Body.Render("Title") + "\n")
	b.WriteString("  " + s.titleInput.View() + "\n\n")
	b.WriteString("  " + theme.Body.Render("Note") + "\n")
	b.WriteString("  " + s.bodyInput.View() + "\n\n")

	switch {
	case s.saving:
		b.WriteString("  " + theme.Hint.Render("Saving..."))
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return b.String()
}
