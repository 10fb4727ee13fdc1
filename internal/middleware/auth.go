package middleware

import (
	"constancias-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "user"

// RequireAuth rejects requests without a logged-in session user.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(userLocal) == nil {
			return response.Unauthorized(c, "Unauthorized")
		}
		return c.Next()
	}
}

// GetUser returns the session user from Locals, nil when anonymous.
func GetUser(c *fiber.Ctx) interface{} {
	return c.Locals(userLocal)
}
