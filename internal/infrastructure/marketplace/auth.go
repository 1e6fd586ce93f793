package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kaamwala/internal/domain/user"
)

var ErrNoToken = errors.New("marketplace login returned no token")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend. The token may be at the top of
// the envelope or inside data next to the user.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: password}, nil)
	if err != nil {
		return LoginResult{}, err
	}

	res := LoginResult{Token: strings.TrimSpace(env.Token)}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var nested struct {
			User  *user.User `json:"user"`
			Token string     `json:"token"`
		}
		if err := json.Unmarshal(env.Data, &nested); err != nil {
			return LoginResult{}, fmt.Errorf("decode login response: %w", err)
		}
		if res.Token == "" {
			res.Token = strings.TrimSpace(nested.Token)
		}
		if nested.User != nil {
			res.User = *nested.User
		} else if err := json.Unmarshal(env.Data, &res.User); err != nil {
			return LoginResult{}, fmt.Errorf("decode login user: %w", err)
		}
	}
	if res.Token == "" {
		return LoginResult{}, ErrNoToken
	}
	res.User = res.User.Sanitized()
	return res, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", struct{}{}, nil)
	return err
}

func (c *Client) Me(ctx context.Context) (user.User, error) {
	var out user.User
	_, err := c.getJSON(ctx, "/api/auth/me", &out)
	return out, err
}

// ForgotPassword returns the backend's confirmation message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	env, err := c.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
