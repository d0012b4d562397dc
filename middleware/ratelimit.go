package middleware

import (
	"time"

	"samaj-backend/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// rateLimit builds a fixed-window per-IP limiter. The counters live in
// process memory and reset on restart, which is acceptable for their
// advisory purpose.
func rateLimit(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(types.ErrorResponse{
				Message: message,
				Status:  fiber.StatusTooManyRequests,
			})
		},
	})
}

// PasswordResetLimiter bounds password-reset requests to 5 per hour per IP
func PasswordResetLimiter() fiber.Handler {
	return rateLimit(5, time.Hour, "Too many password reset requests. Try again later.")
}

// ContactLimiter bounds contact-form submissions to 10 per hour per IP
func ContactLimiter() fiber.Handler {
	return rateLimit(10, time.Hour, "Too many contact requests. Try again later.")
}
