package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/middleware"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type StatsHandler struct {
	stats *services.StatsService
	auth  *services.AuthService
}

func NewStatsHandler(stats *services.StatsService, auth *services.AuthService) *StatsHandler {
	return &StatsHandler{stats: stats, auth: auth}
}

// AdminStats handles GET /admin-stats (admin only, gated at the route).
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	stats, err := h.stats.AdminStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// SellerStats handles GET /seller-stats?email=. A seller only sees their
// own numbers; admins may query any seller.
func (h *StatsHandler) SellerStats(c *fiber.Ctx) error {
	target := c.Query("email")
	requester := middleware.Email(c)
	if requester != target {
		isAdmin, err := h.auth.IsAdmin(c.Context(), requester)
		if err != nil {
			return respondError(c, err)
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden access"})
		}
	}

	stats, err := h.stats.SellerStats(c.Context(), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
