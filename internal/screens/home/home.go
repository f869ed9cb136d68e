package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/screens/attempt"
	"github.com/prepdeck/prepdeck/internal/screens/courses"
	"github.com/prepdeck/prepdeck/internal/screens/flashcards"
	"github.com/prepdeck/prepdeck/internal/screens/help"
	"github.com/prepdeck/prepdeck/internal/screens/notes"
	"github.com/prepdeck/prepdeck/internal/screens/notice"
	"github.com/prepdeck/prepdeck/internal/screens/subscription"
	"github.com/prepdeck/prepdeck/internal/session"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// Options are the home screen dependencies, shared with the screens it
// launches.
type Options struct {
	Client  *api.Client
	Session *session.Session
	Sync    store.SyncRepo
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts Options
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(opts Options) *HomeScreen {
	h := &HomeScreen{opts: opts}

	// Course-scoped entries resolve the active course when chosen, not
	// when the menu is built, so selecting a course takes effect
	// without rebuilding home.
	items := []components.MenuItem{
		{Label: "MY COURSES", Action: func() tea.Cmd {
			return push(courses.New(opts.Client, opts.Session))
		}},
		{Label: "PRACTICE QUIZ", Action: func() tea.Cmd {
			return h.withCourse("Practice", func(courseID int) screen.Screen {
				return attempt.New(opts.Client.Practice(courseID), opts.Sync)
			})
		}},
		{Label: "FULL TEST", Action: func() tea.Cmd {
			return h.withCourse("Full Test", func(courseID int) screen.Screen {
				return attempt.New(opts.Client.FullTest(courseID), opts.Sync)
			})
		}},
		{Label: "FLASHCARDS", Action: func() tea.Cmd {
			return h.withCourse("Flashcards", func(courseID int) screen.Screen {
				return flashcards.New(opts.Client, courseID)
			})
		}},
		{Label: "NOTES", Action: func() tea.Cmd {
			return push(notes.New(opts.Client))
		}},
		{Label: "SUBSCRIPTION", Action: func() tea.Cmd {
			return push(subscription.New(opts.Client))
		}},
		{Label: "HELP CENTER", Action: func() tea.Cmd {
			return push(help.New(opts.Client))
		}},
		{Label: "SIGN OUT", Action: func() tea.Cmd {
			return func() tea.Msg {
				// Best effort: a failed clear still quits, the next
				// launch will surface the stale token.
				_ = opts.Session.Clear(context.Background())
				return tea.Quit()
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

// withCourse pushes the built screen when a course is active, and a
// notice otherwise.
func (h *HomeScreen) withCourse(title string, build func(courseID int) screen.Screen) tea.Cmd {
	courseID, _, ok := h.opts.Session.ActiveCourse()
	if !ok {
		return push(notice.New(title,
			"No active course.\n\nOpen My Courses and pick one first."))
	}
	return push(build(courseID))
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("PrepDeck")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Exam preparation in your terminal")))
	b.WriteString("\n\n")

	if _, name, ok := h.opts.Session.ActiveCourse(); ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("Studying: ")+theme.Selected.Render(name)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Pick a course under My Courses to start practicing.")))
	}
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.TrimRight(menu, "\n")))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
