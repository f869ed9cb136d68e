package help

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

type topicsLoadedMsg struct {
	Topics []api.HelpTopic
	Err    error
}

type ticketSentMsg struct {
	Ticket *api.Ticket
	Err    error
}

type mode int

const (
	modeBrowse mode = iota
	modeRead
	modeTicket
)

// HelpScreen browses help center articles and files support tickets.
type HelpScreen struct {
	client *api.Client

	topics   []api.HelpTopic
	selected int
	loaded   bool
	errMsg   string

	mode mode

	subjectInput components.TextInput
	messageInput components.TextInput
	focusMessage bool
	sending      bool
	sentRef      string
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates the help center screen.
func New(client *api.Client) *HelpScreen {
	return &HelpScreen{client: client}
}

func (s *HelpScreen) Init() tea.Cmd {
	return func() tea.Msg {
		topics, err := s.client.HelpTopics(context.Background())
		return topicsLoadedMsg{Topics: topics, Err: err}
	}
}

func (s *HelpScreen) Title() string {
	return "Help Center"
}

func (s *HelpScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeRead:
		return []layout.KeyHint{{Key: "Esc", Description: "Back to topics"}}
	case modeTicket:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Read"},
		{Key: "t", Description: "Contact support"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.topics = msg.Topics
		return s, nil

	case ticketSentMsg:
		s.sending = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.mode = modeBrowse
		s.sentRef = msg.Ticket.Reference
		return s, nil

	case tea.KeyMsg:
		switch s.mode {
		case modeTicket:
			return s.updateTicket(msg)
		case modeRead:
			if msg.String() == "esc" || msg.String() == "enter" {
				s.mode = modeBrowse
			}
			return s, nil
		}
		return s.updateBrowse(msg)
	}
	return s, nil
}

func (s *HelpScreen) updateBrowse(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.topics)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(s.topics) {
			s.mode = modeRead
		}
	case "t":
		s.mode = modeTicket
		s.errMsg = ""
		s.sentRef = ""
		s.focusMessage = false
		s.subjectInput = components.NewTextInput("subject", false, 0)
		s.messageInput = components.NewTextInput("describe the problem", false, 0)
		s.messageInput.Model.Blur()
		return s, s.subjectInput.Init()
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *HelpScreen) updateTicket(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.sending {
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.mode = modeBrowse
		s.errMsg = ""
		return s, nil
	case "tab":
		s.focusMessage = !s.focusMessage
		if s.focusMessage {
			s.subjectInput.Model.Blur()
			return s, s.messageInput.Model.Focus()
		}
		s.messageInput.Model.Blur()
		return s, s.subjectInput.Model.Focus()
	case "enter":
		subject := strings.TrimSpace(s.subjectInput.Value())
		message := strings.TrimSpace(s.messageInput.Value())
		if subject == "" || message == "" {
			s.errMsg = "subject and message are both required"
			return s, nil
		}
		s.sending = true
		s.errMsg = ""
		return s, func() tea.Msg {
			ticket, err := s.client.SubmitTicket(context.Background(), subject, message)
			return ticketSentMsg{Ticket: ticket, Err: err}
		}
	}

	var cmd tea.Cmd
	if s.focusMessage {
		s.messageInput, cmd = s.messageInput.Update(msg)
	} else {
		s.subjectInput, cmd = s.subjectInput.Update(msg)
	}
	return s, cmd
}

func (s *HelpScreen) View(width, height int) string {
	switch s.mode {
	case modeRead:
		return s.viewRead(width)
	case modeTicket:
		return s.viewTicket(width)
	}

	if s.errMsg != "" && len(s.topics) == 0 && s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading help topics...")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, topic := range s.topics {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(prefix+topic.Title) + "\n")
	}
	if len(s.topics) == 0 {
		b.WriteString("  " + theme.Hint.Render("No help topics published.") + "\n")
	}

	b.WriteString("\n")
	switch {
	case s.sentRef != "":
		b.WriteString("  " + theme.Correct.Render(
			fmt.Sprintf("Ticket sent. Reference: %s", s.sentRef)))
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	default:
		b.WriteString("  " + theme.Hint.Render("Press t to contact support."))
	}
	return b.String()
}

func (s *HelpScreen) viewRead(width int) string {
	if s.selected >= len(s.topics) {
		return ""
	}
	topic := s.topics[s.selected]

	body := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text).Render(topic.Body)

	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render(topic.Title) + "\n\n")
	b.WriteString("  " + strings.ReplaceAll(body, "\n", "\n  ") + "\n")
	return b.String()
}

func (s *HelpScreen) viewTicket(width int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render("Contact support") + "\n\n")
	b.WriteString("  " + theme.Body.Render("Subject") + "\n")
	b.WriteString("  " + s.subjectInput.View() + "\n\n")
	b.WriteString("  " + theme.Body.Render("Message") + "\n")
	b.WriteString("  " + s.messageInput.View() + "\n\n")

	switch {
	case s.sending:
		b.WriteString("  " + theme.Hint.Render("Sending..."))
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return b.String()
}
