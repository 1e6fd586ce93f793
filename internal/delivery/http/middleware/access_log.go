package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("X-Request-ID", rid)

		err := c.Next()

		sid := ""
		if sess := SessionFrom(c); sess != nil {
			sid = sess.ID()
		}

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] access | rid=%s sid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
				rid, sid, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(),
				time.Since(start), len(c.Response().Body()), c.Get("User-Agent"),
			)
		}

		return err
	}
}
