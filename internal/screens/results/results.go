package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/quiz"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// ResultsScreen shows the outcome of a submitted quiz.
type ResultsScreen struct {
	state   *quiz.CourseState
	surface quiz.Surface

	correct   int
	incorrect int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen from the final reconciled state. The
// correct count is recomputed locally from the answer key so it covers
// answers the server has not re-aggregated yet.
func New(state *quiz.CourseState, surface quiz.Surface) *ResultsScreen {
	s := &ResultsScreen{state: state, surface: surface}
	for _, ch := range state.Course.Chapters {
		for _, sub := range ch.Subtopics {
			for _, q := range sub.Questions {
				a, ok := state.Answers[q.ID]
				if !ok || a.Kind != quiz.KindAnswered {
					continue
				}
				if a.Option == q.CorrectOption {
					s.correct++
				} else {
					s.incorrect++
				}
			}
		}
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string {
	if s.surface == quiz.SurfaceFullTest {
		return "Test Results"
	}
	return "Practice Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	st := s.state
	total := st.Course.QuestionCount()

	var score float64
	if total > 0 {
		score = float64(s.correct) / float64(total)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Quiz submitted")))
	b.WriteString("\n\n")

	barWidth := width / 2
	if barWidth > 50 {
		barWidth = 50
	}
	bar := components.NewProgressBar("Score", score, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"Correct", fmt.Sprintf("%d", s.correct), theme.Correct},
		{"Incorrect", fmt.Sprintf("%d", s.incorrect), theme.Incorrect},
		{"Skipped", fmt.Sprintf("%d", st.SkippedCount), theme.Body},
		{"Flagged", fmt.Sprintf("%d", st.FlaggedCount), theme.Flagged},
		{"Attempted", fmt.Sprintf("%d of %d", st.Attempted, total), theme.Body},
	}
	for _, row := range rows {
		line := fmt.Sprintf("%-10s %s", row.label, row.style.Render(row.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press Esc to go back.")))

	return b.String()
}
