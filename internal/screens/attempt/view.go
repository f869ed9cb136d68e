package attempt

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

func (s *AttemptScreen) View(width, height int) string {
	if s.loadErr != "" && s.ctrl == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not load quiz: %s\n\nPress r to retry.", s.loadErr))
	}
	if s.ctrl == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading quiz...")
	}

	st := s.ctrl.State
	q := s.ctrl.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  This quiz has no questions.")
	}

	var b strings.Builder

	chapter := st.Course.Chapters[st.Cursor.Chapter]
	subtopic := chapter.Subtopics[st.Cursor.Subtopic]

	crumb := fmt.Sprintf("%s  ›  %s", chapter.Name, subtopic.Name)
	if s.backend.Surface() == quiz.SurfaceFullTest {
		crumb = st.Course.Name
	}
	b.WriteString("  " + theme.Subtitle.Render(crumb) + "\n")

	position := fmt.Sprintf("Question %d of %d", questionOrdinal(st), st.Course.QuestionCount())
	if s.ctrl.Flagged() {
		position += "  " + theme.Flagged.Render("⚑ flagged")
	}
	b.WriteString("  " + theme.Body.Bold(true).Render(position) + "\n")

	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	bar := components.NewProgressBar("", st.OverallPercent(), true, barWidth)
	b.WriteString("  " + bar.View() + "\n\n")

	question := lipgloss.NewStyle().
		Foreground(theme.Text).Bold(true).
		Width(width - 6).
		Render(q.Text)
	b.WriteString("  " + strings.ReplaceAll(question, "\n", "\n  ") + "\n\n")

	options := s.options.View()
	b.WriteString("  " + strings.ReplaceAll(strings.TrimRight(options, "\n"), "\n", "\n  ") + "\n\n")

	b.WriteString(s.statusLine(width))

	return b.String()
}

// statusLine reports in-flight writes, errors, and the quit prompt.
func (s *AttemptScreen) statusLine(width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(theme.Error)

	if s.confirmQuit {
		return "  " + theme.Flagged.Render("Quit this quiz? Unsent answers are not saved. (y/n)")
	}

	switch s.ctrl.Phase() {
	case quiz.PhaseAdvancing:
		return "  " + dim.Render("Saving answer...")
	case quiz.PhaseSubmitting:
		return "  " + dim.Render("Submitting...")
	case quiz.PhaseQuitting:
		return "  " + dim.Render("Leaving quiz...")
	case quiz.PhaseSubmitError:
		return "  " + errStyle.Render("Submission failed. Press Enter to retry.")
	}

	if s.actionErr != "" {
		return "  " + errStyle.Render(fmt.Sprintf("Could not save: %s", s.actionErr))
	}
	return ""
}

// questionOrdinal returns the 1-based document-order position of the
// cursor question.
func questionOrdinal(st *quiz.CourseState) int {
	n := 0
	for ci, ch := range st.Course.Chapters {
		for si, sub := range ch.Subtopics {
			for qi := range sub.Questions {
				n++
				if ci == st.Cursor.Chapter && si == st.Cursor.Subtopic && qi == st.Cursor.Question {
					return n
				}
			}
		}
	}
	return n
}
