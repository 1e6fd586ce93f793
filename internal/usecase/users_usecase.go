package usecase

import (
	"context"
	"strings"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/search"
	"kaamwala/internal/session"
)

type UsersUsecase interface {
	List(ctx context.Context, sess *session.Session, page, pageSize int) ([]user.User, error)
	ByEmail(ctx context.Context, sess *session.Session, email string) (user.User, error)
	Delete(ctx context.Context, sess *session.Session, id string) error
}

type Users struct {
	api UserAPI
}

func NewUsersUsecase(api UserAPI) *Users {
	return &Users{api: api}
}

func (u *Users) List(ctx context.Context, sess *session.Session, page, pageSize int) ([]user.User, error) {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = search.PageSize
	}
	list, err := u.api.Users(withSession(ctx, sess), search.ClampPage(page), pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]user.User, 0, len(list))
	for _, it := range list {
		out = append(out, it.Sanitized())
	}
	return out, nil
}

func (u *Users) ByEmail(ctx context.Context, sess *session.Session, email string) (user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return user.User{}, invalidField("email", "required", "")
	}
	found, err := u.api.UserByEmail(withSession(ctx, sess), email)
	if err != nil {
		return user.User{}, err
	}
	return found.Sanitized(), nil
}

// Delete signs the session out when it removes the signed-in user.
func (u *Users) Delete(ctx context.Context, sess *session.Session, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalidField("id", "required", "")
	}
	if err := u.api.DeleteUser(withSession(ctx, sess), id); err != nil {
		return err
	}
	if sess != nil {
		if me, ok, _ := sess.User(ctx); ok && me.UserID == id {
			return sess.Clear(ctx)
		}
	}
	return nil
}

var _ UsersUsecase = (*Users)(nil)
