package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/middleware"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/services"
)

type MedicineHandler struct {
	medicines *services.MedicineService
}

func NewMedicineHandler(medicines *services.MedicineService) *MedicineHandler {
	return &MedicineHandler{medicines: medicines}
}

// List handles GET /medicines, the public catalog.
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	medicines, err := h.medicines.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(medicines)
}

// ListBySeller handles GET /medicines/seller/:email.
func (h *MedicineHandler) ListBySeller(c *fiber.Ctx) error {
	medicines, err := h.medicines.ListBySeller(c.Context(), middleware.Email(c), c.Params("email"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(medicines)
}

// Create handles POST /medicines. The seller email is stamped from the
// verified claim, never trusted from the body.
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	var medicine models.Medicine
	if err := c.BodyParser(&medicine); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	id, err := h.medicines.Create(c.Context(), middleware.Email(c), medicine)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"insertedId": id})
}

// Update handles PATCH /medicines/:id.
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	var update services.MedicineUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	modified, err := h.medicines.Update(c.Context(), middleware.Email(c), c.Params("id"), update)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"modifiedCount": modified})
}

// Delete handles DELETE /medicines/:id.
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.medicines.Delete(c.Context(), middleware.Email(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deletedCount": deleted})
}

// UploadImage handles POST /medicines/:id/image (multipart field "image").
func (h *MedicineHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open image file"})
	}
	defer file.Close()

	url, err := h.medicines.AttachImage(
		c.Context(),
		middleware.Email(c),
		c.Params("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"imageURL": url})
}
