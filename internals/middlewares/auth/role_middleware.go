package auth

import (
	"slices"

	"github.com/gofiber/fiber/v2"

	"homework_backend/internals/constants"
	helperAuth "homework_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError checks the role set by AuthJWT.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	if customForbiddenMessage == "" {
		customForbiddenMessage = "you are not allowed to access this resource"
	}
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing role information")
		}
		if slices.Contains(allowedRoles, role) {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}

func OnlyTeacher(feature string) fiber.Handler {
	return RoleMiddlewareWithCustomError([]string{constants.RoleTeacher}, constants.RoleErrorTeacher(feature))
}

func OnlyStudent(feature string) fiber.Handler {
	return RoleMiddlewareWithCustomError([]string{constants.RoleStudent}, constants.RoleErrorStudent(feature))
}
