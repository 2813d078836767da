package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
)

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(apperr.Status(err)).JSON(fiber.Map{"error": err.Error()})
}
