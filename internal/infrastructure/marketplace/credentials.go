package marketplace

import "context"

// Credentials supplies the bearer token for a request and is told to forget
// it when the backend answers 401.
type Credentials interface {
	Token(ctx context.Context) (string, error)
	ClearCredentials(ctx context.Context) error
}

type credentialsKey struct{}

func ContextWithCredentials(ctx context.Context, c Credentials) context.Context {
	if c == nil {
		return ctx
	}
	return context.WithValue(ctx, credentialsKey{}, c)
}

func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	c, ok := ctx.Value(credentialsKey{}).(Credentials)
	return c, ok && c != nil
}
