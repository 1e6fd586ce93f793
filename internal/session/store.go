package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kaamwala/internal/domain/user"
)

var (
	ErrSubmitInProgress = errors.New("submission already in progress")
	ErrInvalidSession   = errors.New("invalid session id")
)

const (
	DefaultTTL       = 24 * time.Hour
	DefaultSubmitTTL = 2 * time.Minute
)

// Store hands out sessions over a shared Backend.
type Store struct {
	backend   Backend
	ttl       time.Duration
	submitTTL time.Duration
	logger    *log.Logger
}

func NewStore(backend Backend, ttl time.Duration, logger *log.Logger) *Store {
	if backend == nil {
		backend = NewMemory()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{backend: backend, ttl: ttl, submitTTL: DefaultSubmitTTL, logger: logger}
}

// Session scopes the store to one session id. It does not touch the backend.
func (s *Store) Session(id string) *Session {
	return &Session{store: s, id: strings.TrimSpace(id)}
}

// Session is the state of one browser session. It satisfies the marketplace
// client's credential source.
type Session struct {
	store *Store
	id    string
}

func (s *Session) ID() string { return s.id }

func (s *Session) key(parts ...string) string {
	return "session:" + s.id + ":" + strings.Join(parts, ":")
}

func (s *Session) check() error {
	if s == nil || s.store == nil || s.id == "" {
		return ErrInvalidSession
	}
	return nil
}

func (s *Session) Token(ctx context.Context) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	b, ok, err := s.store.backend.Get(ctx, s.key("token"))
	if err != nil || !ok {
		return "", err
	}
	return string(b), nil
}

func (s *Session) SetToken(ctx context.Context, token string) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.store.backend.Set(ctx, s.key("token"), []byte(token), s.store.ttl)
}

func (s *Session) IsAuthenticated(ctx context.Context) bool {
	tok, err := s.Token(ctx)
	return err == nil && tok != ""
}

func (s *Session) User(ctx context.Context) (user.User, bool, error) {
	if err := s.check(); err != nil {
		return user.User{}, false, err
	}
	return s.getUser(ctx, s.store.backend.Get, s.key("user"))
}

func (s *Session) SetUser(ctx context.Context, u user.User) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.putUser(ctx, s.key("user"), u, s.store.ttl)
}

// Clear removes the token and the cached user.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.store.backend.Delete(ctx, s.key("token"), s.key("user"))
}

func (s *Session) ClearCredentials(ctx context.Context) error {
	err := s.Clear(ctx)
	if err == nil && s.store.logger != nil {
		s.store.logger.Printf("[Session] credentials cleared | session=%s", s.id)
	}
	return err
}

// PutHandoff stores u for exactly one later TakeHandoff. A second put
// replaces the first.
func (s *Session) PutHandoff(ctx context.Context, u user.User) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.putUser(ctx, s.key("handoff"), u, s.store.ttl)
}

func (s *Session) TakeHandoff(ctx context.Context) (user.User, bool, error) {
	if err := s.check(); err != nil {
		return user.User{}, false, err
	}
	return s.getUser(ctx, s.store.backend.Take, s.key("handoff"))
}

// BeginSubmit raises the submitting flag for form. It fails with
// ErrSubmitInProgress while a previous submission has not ended.
func (s *Session) BeginSubmit(ctx context.Context, form string) error {
	if err := s.check(); err != nil {
		return err
	}
	ok, err := s.store.backend.SetIfNotExists(ctx, s.key("submit", form), []byte("1"), s.store.submitTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSubmitInProgress
	}
	return nil
}

func (s *Session) EndSubmit(ctx context.Context, form string) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.store.backend.Delete(ctx, s.key("submit", form))
}

func (s *Session) putUser(ctx context.Context, key string, u user.User, ttl time.Duration) error {
	b, err := json.Marshal(u.Sanitized())
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return s.store.backend.Set(ctx, key, b, ttl)
}

func (s *Session) getUser(ctx context.Context, read func(context.Context, string) ([]byte, bool, error), key string) (user.User, bool, error) {
	b, ok, err := read(ctx, key)
	if err != nil || !ok {
		return user.User{}, false, err
	}
	var u user.User
	if err := json.Unmarshal(b, &u); err != nil {
		return user.User{}, false, fmt.Errorf("decode session user: %w", err)
	}
	return u, true, nil
}
