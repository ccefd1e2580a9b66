package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "homework_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret string
}

// AuthJWT accepts teacher access tokens and student session tokens and hydrates
// the locals read by helperAuth getters.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := helperAuth.BearerToken(c)
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		role, teacher, student, err := helperAuth.ParseToken(secret, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(helperAuth.LocRole, role)
		if teacher != nil {
			c.Locals(helperAuth.LocTeacher, *teacher)
		}
		if student != nil {
			c.Locals(helperAuth.LocStudentSession, *student)
		}
		return c.Next()
	}
}
