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

type detailLoadedMsg struct {
	Detail *api.CourseDetail
	Err    error
}

type activatedMsg struct {
	Err error
}

// DetailScreen shows one course's description, outline, and
// announcements, and lets the user make it the active course.
type DetailScreen struct {
	client  *api.Client
	session *session.Session

	courseID   int
	courseName string

	detail     *api.CourseDetail
	loaded     bool
	errMsg     string
	activated  bool
	activating bool
	scroll     int
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// NewDetail creates the course detail screen.
func NewDetail(client *api.Client, sess *session.Session, courseID int, courseName string) *DetailScreen {
	return &DetailScreen{
		client:     client,
		session:    sess,
		courseID:   courseID,
		courseName: courseName,
	}
}

func (s *DetailScreen) Init() tea.Cmd {
	return func() tea.Msg {
		detail, err := s.client.CourseDetail(context.Background(), s.courseID)
		return detailLoadedMsg{Detail: detail, Err: err}
	}
}

func (s *DetailScreen) Title() string {
	return s.courseName
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "a", Description: "Set active"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.detail = msg.Detail
		return s, nil

	case activatedMsg:
		s.activating = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.activated = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "a", "enter":
			if s.detail == nil || s.activating {
				return s, nil
			}
			s.activating = true
			return s, func() tea.Msg {
				err := s.session.SetActiveCourse(context.Background(), s.courseID, s.detail.Name)
				return activatedMsg{Err: err}
			}
		case "up", "k":
			if s.scroll > 0 {
				s.scroll--
			}
		case "down", "j":
			s.scroll++
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	if s.errMsg != "" && s.detail == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading course...")
	}

	d := s.detail
	var lines []string

	lines = append(lines, theme.Title.Render(d.Name), "")
	lines = append(lines, theme.Body.Render(fmt.Sprintf("%d chapters  ·  %d questions",
		d.TotalChapters, d.TotalQuestions)), "")

	about := d.About
	if about == "" {
		about = d.AboutShort
	}
	if about != "" {
		wrapped := lipgloss.NewStyle().Width(width - 6).Foreground(theme.Text).Render(about)
		lines = append(lines, strings.Split(wrapped, "\n")...)
		lines = append(lines, "")
	}

	if len(d.Announcements) > 0 {
		lines = append(lines, theme.Selected.Render("Announcements"))
		for _, a := range d.Announcements {
			lines = append(lines, "  "+theme.Body.Render(a.Title))
			lines = append(lines, "    "+theme.Hint.Render(a.Body))
		}
		lines = append(lines, "")
	}

	if len(d.Chapters) > 0 {
		lines = append(lines, theme.Selected.Render("Contents"))
		for _, ch := range d.Chapters {
			lines = append(lines, "  "+theme.Body.Render(ch.Name))
			for _, sub := range ch.Subtopics {
				lines = append(lines, fmt.Sprintf("    %s (%d)",
					theme.Hint.Render(sub.Name), sub.QuestionCount))
			}
		}
		lines = append(lines, "")
	}

	switch {
	case s.activated:
		lines = append(lines, theme.Correct.Render("This is now your active course."))
	case s.errMsg != "":
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	default:
		lines = append(lines, theme.Hint.Render("Press a to make this your active course."))
	}

	// Simple line scrolling for long outlines.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	visible := lines[s.scroll:]
	if len(visible) > height && height > 0 {
		visible = visible[:height]
	}

	var b strings.Builder
	for _, line := range visible {
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}
