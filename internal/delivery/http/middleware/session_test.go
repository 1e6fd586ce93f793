package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kaamwala/internal/pkg/jwt"
	"kaamwala/internal/session"

	"github.com/gofiber/fiber/v3"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newSessionApp(t *testing.T) (*fiber.App, *jwt.HMACService) {
	t.Helper()
	svc := jwt.NewHMACService(testSecret, "test", time.Hour)
	store := session.NewStore(session.NewMemory(), time.Hour, nil)

	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Use(NewSessionMiddleware(svc, store, SessionOptions{}, nil).Middleware())
	app.Get("/sid", func(c fiber.Ctx) error {
		return c.SendString(SessionFrom(c).ID())
	})
	return app, svc
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func TestSessionMiddleware_MintsWhenMissing(t *testing.T) {
	app, svc := newSessionApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/sid", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	sid := readBody(t, resp)
	if sid == "" {
		t.Fatalf("expected a session id")
	}

	tok := resp.Header.Get(HeaderSession)
	claims, err := svc.ValidateToken(tok)
	if err != nil || claims.SessionID != sid {
		t.Fatalf("expected header token for %q, got %+v err=%v", sid, claims, err)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == defaultCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != tok || !cookie.HttpOnly {
		t.Fatalf("expected http-only session cookie, got %+v", cookie)
	}
}

func TestSessionMiddleware_ReusesValidToken(t *testing.T) {
	app, svc := newSessionApp(t)
	tok, err := svc.GenerateSessionToken("abc")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/sid", nil)
	req.Header.Set(HeaderSession, tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if sid := readBody(t, resp); sid != "abc" {
		t.Fatalf("expected session abc, got %q", sid)
	}
	if resp.Header.Get(HeaderSession) != "" {
		t.Fatalf("expected no new token for a valid session")
	}

	req = httptest.NewRequest(http.MethodGet, "/sid", nil)
	req.AddCookie(&http.Cookie{Name: defaultCookie, Value: tok})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if sid := readBody(t, resp); sid != "abc" {
		t.Fatalf("expected cookie session abc, got %q", sid)
	}
}

func TestSessionMiddleware_TamperedTokenStartsNewSession(t *testing.T) {
	app, svc := newSessionApp(t)
	tok, _ := svc.GenerateSessionToken("abc")

	req := httptest.NewRequest(http.MethodGet, "/sid", nil)
	req.Header.Set(HeaderSession, tok+"x")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if sid := readBody(t, resp); sid == "abc" || sid == "" {
		t.Fatalf("expected a fresh session, got %q", sid)
	}
}
