package api

import (
	"context"
	"fmt"
)

// Flashcard is a study card that can be marked as a favorite.
type Flashcard struct {
	ID         int    `json:"id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	IsFavorite bool   `json:"is_favorite"`
}

type favoriteRequest struct {
	Flashcard int `json:"flashcard"`
	Course    int `json:"course"`
}

type favoriteResult struct {
	IsFavorite bool `json:"is_favorite"`
}

// CourseFlashcards returns the flashcards for a course with their
// favorite state.
func (c *Client) CourseFlashcards(ctx context.Context, courseID int) ([]Flashcard, error) {
	var cards []Flashcard
	path := fmt.Sprintf("/favorites/course/%d/", courseID)
	if err := c.get(ctx, path, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// ToggleFavorite flips the favorite state of a flashcard and returns
// the new state.
func (c *Client) ToggleFavorite(ctx context.Context, flashcardID, courseID int) (bool, error) {
	var result favoriteResult
	req := favoriteRequest{Flashcard: flashcardID, Course: courseID}
	if err := c.post(ctx, "/favorites/", req, &result); err != nil {
		return false, err
	}
	return result.IsFavorite, nil
}
