package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// CreateToken handles POST /jwt.
func (h *AuthHandler) CreateToken(c *fiber.Ctx) error {
	var request struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	token, err := h.auth.IssueToken(request.Email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}

// Register handles POST /users. Registering an existing email is a no-op
// that reports the duplicate without creating a document.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.auth.Register(c.Context(), user)
	if errors.Is(err, apperr.ErrAlreadyExists) {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "user registered successfully", "insertedId": id})
}
