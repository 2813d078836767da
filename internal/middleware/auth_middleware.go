package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/auth"
)

// Protected validates the bearer token and stores the verified email in the
// request locals. Every rejection returns immediately so a failed request
// never reaches the next handler.
func Protected(tokens *auth.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token format"})
		}

		email, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// Email returns the verified identity attached by Protected.
func Email(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}
