package login

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
	"github.com/prepdeck/prepdeck/internal/ui/components"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

// Options are the login screen dependencies. Next builds the screen to
// replace login with after a successful sign-in.
type Options struct {
	Client  *api.Client
	Session *session.Session
	Next    func() screen.Screen
}

type loginResultMsg struct {
	Err error
}

// LoginScreen collects an access token and verifies it against the
// service before storing it.
type LoginScreen struct {
	opts      Options
	input     components.TextInput
	verifying bool
	errMsg    string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen.
func New(opts Options) *LoginScreen {
	return &LoginScreen{
		opts:  opts,
		input: components.NewTextInput("paste your access token", false, 0),
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoginScreen) Title() string {
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Sign in"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// verify checks the token by listing the user's active domains, then
// persists it.
func (s *LoginScreen) verify(token string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		s.opts.Client.SetToken(token)
		if _, err := s.opts.Client.ActiveDomains(ctx); err != nil {
			s.opts.Client.SetToken(s.opts.Session.Token())
			return loginResultMsg{Err: err}
		}
		if err := s.opts.Session.SetToken(ctx, token); err != nil {
			return loginResultMsg{Err: err}
		}
		return loginResultMsg{}
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		s.verifying = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: s.opts.Next()}
		}

	case tea.KeyMsg:
		if s.verifying {
			return s, nil
		}
		if msg.String() == "enter" {
			token := strings.TrimSpace(s.input.Value())
			if token == "" {
				s.errMsg = "token must not be empty"
				return s, nil
			}
			s.verifying = true
			s.errMsg = ""
			return s, s.verify(token)
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Title.Render("Welcome to PrepDeck")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Sign in with the access token from your account page.")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n\n")

	switch {
	case s.verifying:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Verifying token...")))
	case s.errMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("Sign-in failed: %s", s.errMsg))))
	}

	return b.String()
}
