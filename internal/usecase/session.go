package usecase

import (
	"context"

	"kaamwala/internal/infrastructure/marketplace"
	"kaamwala/internal/session"
)

// withSession attaches the session's backend credentials to ctx.
func withSession(ctx context.Context, sess *session.Session) context.Context {
	if sess == nil {
		return ctx
	}
	return marketplace.ContextWithCredentials(ctx, sess)
}

// guard runs fn with the form's submit flag raised.
func guard(ctx context.Context, sess *session.Session, form string, fn func() error) error {
	if sess == nil {
		return fn()
	}
	if err := sess.BeginSubmit(ctx, form); err != nil {
		return err
	}
	defer func() {
		_ = sess.EndSubmit(context.WithoutCancel(ctx), form)
	}()
	return fn()
}

var _ marketplace.Credentials = (*session.Session)(nil)
