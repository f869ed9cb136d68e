package subscription

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prepdeck/prepdeck/internal/api"
	"github.com/prepdeck/prepdeck/internal/router"
	"github.com/prepdeck/prepdeck/internal/screen"
	"github.com/prepdeck/prepdeck/internal/ui/layout"
	"github.com/prepdeck/prepdeck/internal/ui/theme"
)

type catalogMsg struct {
	Domains []api.Domain
	Err     error
}

type activeMsg struct {
	Active []api.ActiveDomain
	Err    error
}

type checkoutMsg struct {
	URL string
	Err error
}

type cancelledMsg struct {
	SubscriptionID string
	Status         string
	Err            error
}

// SubscriptionScreen shows the domain catalog next to the user's
// subscriptions, with checkout and cancel flows.
type SubscriptionScreen struct {
	client *api.Client

	catalog []api.Domain
	active  map[int]api.ActiveDomain // keyed by domain id

	selected      int
	catalogLoaded bool
	activeLoaded  bool
	errMsg        string

	checkoutURL   string
	confirmCancel bool
	busy          bool
}

var _ screen.Screen = (*SubscriptionScreen)(nil)
var _ screen.KeyHintProvider = (*SubscriptionScreen)(nil)

// New creates the subscription screen.
func New(client *api.Client) *SubscriptionScreen {
	return &SubscriptionScreen{client: client, active: make(map[int]api.ActiveDomain)}
}

// Init loads catalog and subscriptions in parallel.
func (s *SubscriptionScreen) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			domains, err := s.client.Domains(context.Background())
			return catalogMsg{Domains: domains, Err: err}
		},
		func() tea.Msg {
			active, err := s.client.ActiveDomains(context.Background())
			return activeMsg{Active: active, Err: err}
		},
	)
}

func (s *SubscriptionScreen) Title() string {
	return "Subscription"
}

func (s *SubscriptionScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Subscribe"},
		{Key: "c", Description: "Cancel plan"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SubscriptionScreen) loaded() bool {
	return s.catalogLoaded && s.activeLoaded
}

func (s *SubscriptionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		s.catalogLoaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.catalog = msg.Domains
		return s, nil

	case activeMsg:
		s.activeLoaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for _, a := range msg.Active {
			s.active[a.DomainID] = a
		}
		return s, nil

	case checkoutMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.checkoutURL = msg.URL
		return s, nil

	case cancelledMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for id, a := range s.active {
			if a.SubscriptionID == msg.SubscriptionID {
				a.Status = msg.Status
				s.active[id] = a
			}
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SubscriptionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.busy || !s.loaded() {
		return s, nil
	}

	if s.confirmCancel {
		switch msg.String() {
		case "y", "enter":
			s.confirmCancel = false
			if s.selected < len(s.catalog) {
				if a, ok := s.active[s.catalog[s.selected].ID]; ok {
					s.busy = true
					return s, func() tea.Msg {
						status, err := s.client.CancelSubscription(context.Background(), a.SubscriptionID)
						return cancelledMsg{SubscriptionID: a.SubscriptionID, Status: status, Err: err}
					}
				}
			}
		case "n", "esc":
			s.confirmCancel = false
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.catalog)-1 {
			s.selected++
		}
	case "enter":
		if s.selected >= len(s.catalog) {
			return s, nil
		}
		domain := s.catalog[s.selected]
		if _, subscribed := s.active[domain.ID]; subscribed {
			return s, nil
		}
		s.busy = true
		s.errMsg = ""
		s.checkoutURL = ""
		return s, func() tea.Msg {
			url, err := s.client.CreateCheckoutSession(
				context.Background(), domain.ID, domain.MonthlyPriceID)
			return checkoutMsg{URL: url, Err: err}
		}
	case "c":
		if s.selected < len(s.catalog) {
			if _, subscribed := s.active[s.catalog[s.selected].ID]; subscribed {
				s.confirmCancel = true
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SubscriptionScreen) View(width, height int) string {
	if s.errMsg != "" && !s.loaded() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded() {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading plans...")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, d := range s.catalog {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}

		status := theme.Hint.Render(fmt.Sprintf("%s/mo · %s/yr", d.MonthlyPrice, d.YearlyPrice))
		if a, ok := s.active[d.ID]; ok {
			label := "subscribed"
			if a.Status != "" && a.Status != "active" {
				label = a.Status
			}
			status = theme.Correct.Render(label)
			if a.ExpiresAt != "" {
				status += theme.Hint.Render("  until " + a.ExpiresAt)
			}
		}

		b.WriteString(fmt.Sprintf("  %s  %s\n",
			style.Render(fmt.Sprintf("%s%-32s", prefix, d.Name)), status))
		if i == s.selected && d.Description != "" {
			b.WriteString("      " + theme.Hint.Render(d.Description) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case s.busy:
		b.WriteString("  " + theme.Hint.Render("Contacting payment service..."))
	case s.confirmCancel:
		b.WriteString("  " + theme.Flagged.Render("Cancel this subscription? (y/n)"))
	case s.checkoutURL != "":
		b.WriteString("  " + theme.Body.Render("Open this link in your browser to finish checkout:") + "\n")
		b.WriteString("  " + theme.Selected.Render(s.checkoutURL))
	case s.errMsg != "":
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return b.String()
}
