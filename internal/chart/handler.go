package chart

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type createChartRequest struct {
	UserID     int             `json:"userId"`
	Name       string          `json:"name"`
	BirthDate  string          `json:"birthDate"`
	BirthTime  string          `json:"birthTime"`
	BirthPlace string          `json:"birthPlace"`
	ChartData  json.RawMessage `json:"chartData"`
}

type calculateRequest struct {
	BirthDate  string `json:"birthDate"`
	BirthTime  string `json:"birthTime"`
	BirthPlace string `json:"birthPlace"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/birth-charts", h.createChart)
	app.Post("/api/birth-charts/calculate", h.calculateChart)
	app.Get("/api/users/:userId/birth-charts", h.getUserCharts)
}

func (h *Handler) createChart(c *fiber.Ctx) error {
	payload := new(createChartRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.UserID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}
	if payload.Name == "" || payload.BirthDate == "" || payload.BirthTime == "" || payload.BirthPlace == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name, birth date, birth time and birth place are required"})
	}
	if len(payload.ChartData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Chart data is required"})
	}

	birthDate, err := parseDate(payload.BirthDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid birth date"})
	}

	created, err := h.service.Create(BirthChart{
		UserID:     payload.UserID,
		Name:       payload.Name,
		BirthDate:  birthDate,
		BirthTime:  payload.BirthTime,
		BirthPlace: payload.BirthPlace,
		ChartData:  payload.ChartData,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating birth chart"})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) calculateChart(c *fiber.Ctx) error {
	payload := new(calculateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.BirthDate == "" || payload.BirthTime == "" || payload.BirthPlace == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Birth date, birth time and birth place are required"})
	}

	birthDate, err := parseDate(payload.BirthDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid birth date"})
	}

	return c.JSON(h.service.Calculate(birthDate, payload.BirthTime, payload.BirthPlace))
}

func (h *Handler) getUserCharts(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	charts, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching birth charts"})
	}

	return c.JSON(charts)
}

// parseDate accepts the date-only form used by the booking UI as well as
// full RFC3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
