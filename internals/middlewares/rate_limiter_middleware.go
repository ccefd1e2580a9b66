package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "homework_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter for every endpoint
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(120, time.Minute, "too many requests, please try again later")
}

// Teacher / student-account login
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "too many login attempts, please wait a moment")
}

// Sign-up and student registration
func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "too many sign-up attempts, please wait a few minutes")
}

// Name + classroom code login. A whole class may join from one school IP.
func StudentSessionRateLimiter() fiber.Handler {
	return newLimiter(60, time.Minute, "too many join attempts, please try again shortly")
}
