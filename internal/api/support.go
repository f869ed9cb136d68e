package api

import (
	"context"

	"github.com/google/uuid"
)

// HelpTopic is one entry in the help center.
type HelpTopic struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Ticket is a submitted support request.
type Ticket struct {
	ID        int    `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type ticketRequest struct {
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// HelpTopics returns the help center articles.
func (c *Client) HelpTopics(ctx context.Context) ([]HelpTopic, error) {
	var topics []HelpTopic
	if err := c.get(ctx, "/support/topics/", &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// SubmitTicket files a support request. The client attaches a UUID
// reference so a retried submission can be deduplicated server-side.
func (c *Client) SubmitTicket(ctx context.Context, subject, message string) (*Ticket, error) {
	var ticket Ticket
	req := ticketRequest{
		Subject:   subject,
		Message:   message,
		Reference: uuid.New().String(),
	}
	if err := c.post(ctx, "/support/tickets/", req, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}
