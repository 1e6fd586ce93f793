package marketplace

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/domain/worker"
)

// ImageField is the multipart field the upload endpoint reads.
const ImageField = "userImage"

func (c *Client) CreateUser(ctx context.Context, p user.RegistrationPayload) (user.User, error) {
	var out user.User
	_, err := c.doJSON(ctx, http.MethodPost, "/users/create", p, &out)
	return out, err
}

func (c *Client) User(ctx context.Context, id string) (user.User, error) {
	var out user.User
	_, err := c.getJSON(ctx, "/users/getById/"+url.PathEscape(id), &out)
	return out, err
}

func (c *Client) UserByEmail(ctx context.Context, email string) (user.User, error) {
	var out user.User
	_, err := c.getJSON(ctx, "/users/getByEmail/"+url.PathEscape(email), &out)
	return out, err
}

func (c *Client) UpdateUser(ctx context.Context, id string, u user.User) (user.User, error) {
	var out user.User
	env, err := c.doJSON(ctx, http.MethodPut, "/users/update/"+url.PathEscape(id), u, &out)
	if err != nil {
		return user.User{}, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return u, nil
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/users/delete/"+url.PathEscape(id), nil, nil)
	return err
}

// Users lists users. pageNumber is passed through unchanged.
func (c *Client) Users(ctx context.Context, pageNumber, pageSize int) ([]user.User, error) {
	var out []user.User
	path := fmt.Sprintf("/users/getAll?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
	if _, err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UploadImage(ctx context.Context, userID string, f File) error {
	_, err := c.upload(ctx, "/users/uploadImage/"+url.PathEscape(userID), ImageField, f, nil)
	return err
}

func (c *Client) ImageURL(userID string) string {
	return worker.ImagePath(c.BaseURL(), url.PathEscape(userID))
}
