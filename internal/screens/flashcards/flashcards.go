package flashcards

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

type cardsLoadedMsg struct {
	Cards []api.Flashcard
	Err   error
}

type favoriteToggledMsg struct {
	CardID     int
	IsFavorite bool
	Err        error
}

// FlashcardsScreen browses a course's flashcards with flip and
// favorite actions.
type FlashcardsScreen struct {
	client   *api.Client
	courseID int

	cards    []api.Flashcard
	index    int
	flipped  bool
	showFavs bool // filter to favorites only
	loaded   bool
	errMsg   string
	toggling bool
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New creates the flashcards screen for the active course.
func New(client *api.Client, courseID int) *FlashcardsScreen {
	return &FlashcardsScreen{client: client, courseID: courseID}
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		cards, err := s.client.CourseFlashcards(context.Background(), s.courseID)
		return cardsLoadedMsg{Cards: cards, Err: err}
	}
}

func (s *FlashcardsScreen) Title() string {
	return "Flashcards"
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Card"},
		{Key: "Space", Description: "Flip"},
		{Key: "f", Description: "Favorite"},
		{Key: "v", Description: "Favorites only"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible returns the cards under the current filter.
func (s *FlashcardsScreen) visible() []api.Flashcard {
	if !s.showFavs {
		return s.cards
	}
	var favs []api.Flashcard
	for _, c := range s.cards {
		if c.IsFavorite {
			favs = append(favs, c)
		}
	}
	return favs
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case cardsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.cards = msg.Cards
		return s, nil

	case favoriteToggledMsg:
		s.toggling = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		for i := range s.cards {
			if s.cards[i].ID == msg.CardID {
				s.cards[i].IsFavorite = msg.IsFavorite
			}
		}
		return s, nil

	case tea.KeyMsg:
		cards := s.visible()
		switch msg.String() {
		case "left", "h":
			if s.index > 0 {
				s.index--
				s.flipped = false
			}
		case "right", "l":
			if s.index < len(cards)-1 {
				s.index++
				s.flipped = false
			}
		case " ", "space", "enter":
			s.flipped = !s.flipped
		case "v":
			s.showFavs = !s.showFavs
			s.index = 0
			s.flipped = false
		case "f":
			if s.toggling || s.index >= len(cards) {
				return s, nil
			}
			card := cards[s.index]
			s.toggling = true
			s.errMsg = ""
			return s, func() tea.Msg {
				fav, err := s.client.ToggleFavorite(context.Background(), card.ID, s.courseID)
				return favoriteToggledMsg{CardID: card.ID, IsFavorite: fav, Err: err}
			}
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *FlashcardsScreen) View(width, height int) string {
	if s.errMsg != "" && len(s.cards) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading flashcards...")
	}

	cards := s.visible()
	if len(cards) == 0 {
		hint := "No flashcards in this course yet."
		if s.showFavs {
			hint = "No favorites yet. Press f on a card to favorite it."
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  " + hint)
	}
	if s.index >= len(cards) {
		s.index = len(cards) - 1
	}
	card := cards[s.index]

	face := card.Front
	faceLabel := "front"
	if s.flipped {
		face = card.Back
		faceLabel = "back"
	}

	fav := ""
	if card.IsFavorite {
		fav = "  " + theme.Flagged.Render("★")
	}
	filter := ""
	if s.showFavs {
		filter = "  (favorites)"
	}

	cardWidth := width - 20
	if cardWidth > 70 {
		cardWidth = 70
	}
	box := theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(face)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(fmt.Sprintf("Card %d of %d%s%s · %s",
			s.index+1, len(cards), filter, fav, faceLabel))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	b.WriteString("\n\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg)))
	}

	return b.String()
}
