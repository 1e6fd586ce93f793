package marketplace

import (
	"context"
	"strings"

	"kaamwala/internal/domain/worker"
	"kaamwala/internal/search"
)

// Workers runs a planned search request.
func (c *Client) Workers(ctx context.Context, req search.Request) ([]worker.Row, error) {
	out := []worker.Row{}
	if _, err := c.getJSON(ctx, req.URL(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Suggestions(ctx context.Context, query string) ([]string, error) {
	var raw []Suggestion
	if _, err := c.getJSON(ctx, search.Suggestions(query).URL(), &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if v := strings.TrimSpace(string(s)); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}
