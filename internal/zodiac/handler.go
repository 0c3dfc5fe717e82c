package zodiac

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/zodiac-signs", h.getSigns)
	app.Get("/api/zodiac-signs/:name", h.getSign)
	app.Get("/api/compatibility", h.getCompatibility)
}

func (h *Handler) getSigns(c *fiber.Ctx) error {
	signs, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching zodiac signs"})
	}
	return c.JSON(signs)
}

func (h *Handler) getSign(c *fiber.Ctx) error {
	sign, err := h.service.GetByName(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Zodiac sign not found"})
	}
	return c.JSON(sign)
}

func (h *Handler) getCompatibility(c *fiber.Ctx) error {
	first := c.Query("sign1")
	second := c.Query("sign2")
	if first == "" || second == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "sign1 and sign2 are required"})
	}

	result, err := h.service.Compatibility(first, second)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Zodiac sign not found"})
	}
	return c.JSON(result)
}
