package marketplace

import (
	"context"
	"net/http"

	"kaamwala/internal/domain/contact"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) SubmitContact(ctx context.Context, m contact.Message) (string, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/contact/submit", contactRequest{
		Name:    m.Name,
		Email:   m.Email,
		Subject: m.Subject,
		Message: m.Message,
	}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) ContactMessages(ctx context.Context) ([]contact.Message, error) {
	var out []contact.Message
	if _, err := c.getJSON(ctx, "/api/contact/messages", &out); err != nil {
		return nil, err
	}
	return out, nil
}
