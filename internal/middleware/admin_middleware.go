package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

// RequireRole gates a route on the user's stored role. The role is read
// from the users collection on every request, never from the token.
func RequireRole(users repository.UserStore, roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := Email(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing token"})
		}

		user, err := users.FindByEmail(c.Context(), email)
		if errors.Is(err, apperr.ErrNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch user"})
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
	}
}

// RequireAdmin restricts a route to admins only.
func RequireAdmin(users repository.UserStore) fiber.Handler {
	return RequireRole(users, models.RoleAdmin)
}

// RequireSeller restricts a route to sellers; admins pass as well.
func RequireSeller(users repository.UserStore) fiber.Handler {
	return RequireRole(users, models.RoleSeller, models.RoleAdmin)
}
