package courses

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/session"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type coursesLoadedMsg struct {
	Domains []api.ActiveDomain
	Err     error
}

// courseEntry flattens a domain course with its domain label for the
// list view.
type courseEntry struct {
	Domain string
	Course api.DomainCourse
}

// CoursesScreen lists the courses across the user's active domains.
type CoursesScreen struct {
	client  *api.Client
	session *session.Session

	entries  []courseEntry
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*CoursesScreen)(nil)
var _ screen.KeyHintProvider = (*CoursesScreen)(nil)

// New creates the course list screen.
func New(client *api.Client, sess *session.Session) *CoursesScreen {
	return &CoursesScreen{client: client, session: sess}
}

func (s *CoursesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		domains, err := s.client.ActiveDomains(context.Background())
		return coursesLoadedMsg{Domains: domains, Err: err}
	}
}

func (s *CoursesScreen) Title() string {
	return "My Courses"
}

func (s *CoursesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CoursesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case coursesLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for _, d := range msg.Domains {
			for _, c := range d.Courses {
				s.entries = append(s.entries, courseEntry{Domain: d.Name, Course: c})
			}
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.entries) {
				entry := s.entries[s.selected]
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: NewDetail(s.client, s.session, entry.Course.ID, entry.Course.Name),
					}
				}
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *CoursesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading courses...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No courses yet. Subscribe to a domain to get started.")
	}

	activeID, _, _ := s.session.ActiveCourse()

	var b strings.Builder
	b.WriteString("\n")
	for i, entry := range s.entries {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		marker := ""
		if entry.Course.ID == activeID {
			marker = "  " + theme.Correct.Render("active")
		}
		line := fmt.Sprintf("%s%-40s %s  %d questions%s",
			prefix, entry.Course.Name,
			theme.Hint.Render(entry.Domain),
			entry.Course.TotalQuestions, marker)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString("  " + style.Render(line) + "\n")
	}
	return b.String()
}
