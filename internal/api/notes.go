package api

import (
	"context"
	"fmt"
)

// Note is a user note stored by the remote service.
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ListNotes returns all notes for the signed-in user.
func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note
	if err := c.get(ctx, "/notes/", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// CreateNote creates a note and returns the server copy.
func (c *Client) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	var note Note
	if err := c.post(ctx, "/notes/", noteRequest{Title: title, Content: content}, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces a note's title and content.
func (c *Client) UpdateNote(ctx context.Context, id int, title, content string) (*Note, error) {
	var note Note
	path := fmt.Sprintf("/notes/%d/", id)
	if err := c.put(ctx, path, noteRequest{Title: title, Content: content}, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note.
func (c *Client) DeleteNote(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/notes/%d/", id))
}
