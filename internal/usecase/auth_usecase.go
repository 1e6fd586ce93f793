package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"kaamwala/internal/domain/user"
	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/session"
)

const formLogin = "login"

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type AuthUsecase interface {
	Login(ctx context.Context, sess *session.Session, in LoginInput) (user.User, error)
	Logout(ctx context.Context, sess *session.Session) error
	Me(ctx context.Context, sess *session.Session) (user.User, bool, error)
	ForgotPassword(ctx context.Context, in ForgotPasswordInput) (string, error)
	IsAuthenticated(ctx context.Context, sess *session.Session) bool
	StoredUser(ctx context.Context, sess *session.Session) (user.User, bool, error)
}

type Auth struct {
	api      AuthAPI
	validate Validator
	logger   *log.Logger
}

func NewAuthUsecase(api AuthAPI, v Validator, logger *log.Logger) *Auth {
	return &Auth{api: api, validate: v, logger: logger}
}

func (u *Auth) Login(ctx context.Context, sess *session.Session, in LoginInput) (user.User, error) {
	if sess == nil {
		return user.User{}, ErrInternal
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := u.validate.Struct(in); err != nil {
		return user.User{}, invalid(err)
	}

	var out user.User
	err := guard(ctx, sess, formLogin, func() error {
		res, err := u.api.Login(ctx, in.Email, in.Password)
		if err != nil {
			if errors.Is(err, marketplace.ErrNoToken) {
				return ErrUnauthorized
			}
			return err
		}
		if err := sess.SetToken(ctx, res.Token); err != nil {
			return err
		}
		if err := sess.SetUser(ctx, res.User); err != nil {
			return err
		}
		out = res.User
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	if u.logger != nil {
		u.logger.Printf("[Auth] login ok | session=%s user=%s", sess.ID(), out.UserID)
	}
	return out, nil
}

// Logout tells the backend when a token is held, and always clears the
// session even when that call fails.
func (u *Auth) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	if sess.IsAuthenticated(ctx) {
		if err := u.api.Logout(withSession(ctx, sess)); err != nil && u.logger != nil {
			u.logger.Printf("[Auth] backend logout failed | session=%s err=%v", sess.ID(), err)
		}
	}
	return sess.Clear(ctx)
}

// Me refreshes the signed-in user from the backend. Any failure signs the
// session out and reports no user.
func (u *Auth) Me(ctx context.Context, sess *session.Session) (user.User, bool, error) {
	if sess == nil || !sess.IsAuthenticated(ctx) {
		return user.User{}, false, nil
	}
	me, err := u.api.Me(withSession(ctx, sess))
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Auth] me failed, clearing session | session=%s err=%v", sess.ID(), err)
		}
		if cerr := sess.Clear(ctx); cerr != nil {
			return user.User{}, false, cerr
		}
		return user.User{}, false, nil
	}
	me = me.Sanitized()
	if err := sess.SetUser(ctx, me); err != nil && u.logger != nil {
		u.logger.Printf("[Auth] session user refresh failed | session=%s err=%v", sess.ID(), err)
	}
	return me, true, nil
}

func (u *Auth) ForgotPassword(ctx context.Context, in ForgotPasswordInput) (string, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := u.validate.Struct(in); err != nil {
		return "", invalid(err)
	}
	return u.api.ForgotPassword(ctx, in.Email)
}

func (u *Auth) IsAuthenticated(ctx context.Context, sess *session.Session) bool {
	return sess != nil && sess.IsAuthenticated(ctx)
}

func (u *Auth) StoredUser(ctx context.Context, sess *session.Session) (user.User, bool, error) {
	if sess == nil {
		return user.User{}, false, nil
	}
	return sess.User(ctx)
}

var _ AuthUsecase = (*Auth)(nil)
