package middleware

import (
	"errors"
	"log"
	"strings"
	"time"

	"kaamwala/internal/pkg/jwt"
	"kaamwala/internal/session"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxSessionKey = "session"
	HeaderSession = "X-Session-Token"
	defaultCookie = "kw_session"
)

type SessionOptions struct {
	CookieName   string
	CookieSecure bool
	TTL          time.Duration
}

// SessionMiddleware resolves the caller's session from a signed token in the
// session cookie or the X-Session-Token header. A missing, expired or
// tampered token starts a new session.
type SessionMiddleware struct {
	jwt    jwt.Service
	store  *session.Store
	opts   SessionOptions
	logger *log.Logger
	newID  func() string
}

func NewSessionMiddleware(jwtSvc jwt.Service, store *session.Store, opts SessionOptions, logger *log.Logger) *SessionMiddleware {
	if strings.TrimSpace(opts.CookieName) == "" {
		opts.CookieName = defaultCookie
	}
	if opts.TTL <= 0 {
		opts.TTL = session.DefaultTTL
	}
	return &SessionMiddleware{jwt: jwtSvc, store: store, opts: opts, logger: logger, newID: uuid.NewString}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := strings.TrimSpace(c.Get(HeaderSession))
		if token == "" {
			token = strings.TrimSpace(c.Cookies(m.opts.CookieName))
		}

		sid, ok := m.resolve(token)
		if !ok {
			var err error
			sid, token, err = m.mint()
			if err != nil {
				return NewAppError(fiber.StatusInternalServerError, "", nil, err)
			}
			c.Cookie(&fiber.Cookie{
				Name:     m.opts.CookieName,
				Value:    token,
				Path:     "/",
				Expires:  time.Now().Add(m.opts.TTL),
				HTTPOnly: true,
				Secure:   m.opts.CookieSecure,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
			c.Set(HeaderSession, token)
		}

		c.Locals(CtxSessionKey, m.store.Session(sid))
		return c.Next()
	}
}

func (m *SessionMiddleware) resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		if m.logger != nil && !errors.Is(err, jwt.ErrTokenExpired) {
			m.logger.Printf("[Session] rejected token | err=%v", err)
		}
		return "", false
	}
	if claims.TokenType != jwt.TokenTypeSession || strings.TrimSpace(claims.SessionID) == "" {
		return "", false
	}
	return claims.SessionID, true
}

func (m *SessionMiddleware) mint() (string, string, error) {
	sid := m.newID()
	token, err := m.jwt.GenerateSessionToken(sid)
	if err != nil {
		return "", "", err
	}
	return sid, token, nil
}

// SessionFrom returns the session resolved by SessionMiddleware, or nil.
func SessionFrom(c fiber.Ctx) *session.Session {
	sess, _ := c.Locals(CtxSessionKey).(*session.Session)
	return sess
}
