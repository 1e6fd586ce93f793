package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"kaamwala/internal/config"
)

const (
	DefaultTimeout = 15 * time.Second
	maxErrorBody   = 4096
)

// Client talks to the marketplace REST backend. It never retries.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

func NewClient(cfg config.MarketplaceConfig, logger *log.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: timeout}, logger)
}

func NewClientWithHTTP(baseURL string, hc *http.Client, logger *log.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  hc,
		logger:  logger,
	}
}

func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// envelope is the response shape of every backend endpoint.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
}

func (c *Client) getJSON(ctx context.Context, path string, out any) (envelope, error) {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) (envelope, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, reader, "application/json", out)
}

// upload sends a single file as multipart form data.
func (c *Client) upload(ctx context.Context, path, field string, f File, out any) (envelope, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, f.Filename))
	if f.ContentType != "" {
		h.Set("Content-Type", f.ContentType)
	}
	part, err := w.CreatePart(h)
	if err != nil {
		return envelope{}, err
	}
	if _, err := part.Write(f.Data); err != nil {
		return envelope{}, err
	}
	if err := w.Close(); err != nil {
		return envelope{}, err
	}
	return c.do(ctx, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (envelope, error) {
	if c == nil || c.client == nil {
		return envelope{}, errors.New("nil marketplace client")
	}
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return envelope{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	creds, hasCreds := CredentialsFromContext(ctx)
	if hasCreds {
		tok, err := creds.Token(ctx)
		if err != nil {
			return envelope{}, fmt.Errorf("read credentials: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Marketplace] request failed | method=%s endpoint=%s err=%v", method, endpoint, err)
		}
		return envelope{}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
		if hasCreds {
			if err := creds.ClearCredentials(ctx); err != nil && c.logger != nil {
				c.logger.Printf("[Marketplace] clear credentials failed | err=%v", err)
			}
		}
		return envelope{}, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: messageFrom(rb)}
		if c.logger != nil {
			c.logger.Printf("[Marketplace] error response | method=%s endpoint=%s status=%d message=%q", method, endpoint, resp.StatusCode, apiErr.Message)
		}
		return envelope{}, apiErr
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return envelope{}, &APIError{StatusCode: resp.StatusCode, Message: MessageFallback}
	}
	if env.Success != nil && !*env.Success {
		msg := strings.TrimSpace(env.Message)
		if msg == "" {
			msg = MessageFallback
		}
		return env, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env, fmt.Errorf("decode %s response: %w", path, err)
		}
	}
	return env, nil
}

// messageFrom extracts the server's message from an error body, falling back
// to a generic one.
func messageFrom(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &m); err == nil {
		if s := strings.TrimSpace(m.Message); s != "" {
			return s
		}
		if s := strings.TrimSpace(m.Error); s != "" {
			return s
		}
		return MessageFallback
	}
	if s := strings.TrimSpace(string(body)); s != "" && !strings.HasPrefix(s, "<") {
		return s
	}
	return MessageFallback
}
