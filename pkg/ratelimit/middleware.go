package ratelimit

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// KeyFunc extracts the rate-limit key from a request; empty means "do not limit".
type KeyFunc func(c *fiber.Ctx) string

// Middleware limits requests per key to limit calls per window.
func Middleware(l Limiter, prefix string, limit int, window time.Duration, key KeyFunc, log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		if l == nil {
			return c.Next()
		}
		k := key(c)
		if k == "" {
			return c.Next()
		}
		if !l.Allow(c.UserContext(), prefix+":"+k, limit, window) {
			log.Warn("rate limit exceeded", zap.String("key", k), zap.String("path", c.Path()))
			c.Set("Retry-After", strconv.Itoa(int(window.Seconds())))
			return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{"message": "too many bulk actions, try again later"})
		}
		return c.Next()
	}
}
