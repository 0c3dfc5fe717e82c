package appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type createAppointmentRequest struct {
	UserID          int     `json:"userId"`
	FullName        string  `json:"fullName"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	AppointmentDate string  `json:"appointmentDate"`
	AppointmentTime string  `json:"appointmentTime"`
	AppointmentType string  `json:"appointmentType"`
	Notes           *string `json:"notes"`
}

// both flags are required in the PATCH body; pointers catch a missing field.
type statusRequest struct {
	Confirmed *bool `json:"confirmed"`
	Completed *bool `json:"completed"`
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/appointments", h.createAppointment)
	app.Get("/api/users/:userId/appointments", h.getUserAppointments)
	app.Get("/api/appointments/:id", h.getAppointment)
	app.Patch("/api/appointments/:id/status", h.updateStatus)
}

// RegisterProtectedRoutes is called after the JWT middleware is installed.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/admin/appointments", h.listAppointments)
}

func (h *Handler) createAppointment(c *fiber.Ctx) error {
	payload := new(createAppointmentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if payload.FullName == "" || payload.Email == "" || payload.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Full name, email and phone are required"})
	}
	if !strings.Contains(payload.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid email address"})
	}
	if !ValidType(payload.AppointmentType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment type"})
	}
	if !ValidSlot(payload.AppointmentTime) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment time"})
	}

	date, err := time.Parse("2006-01-02", payload.AppointmentDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment date"})
	}
	if date.Format("2006-01-02") < time.Now().Format("2006-01-02") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Appointment date cannot be in the past"})
	}
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Appointments are not available on weekends"})
	}

	created, err := h.service.Create(Appointment{
		UserID:          payload.UserID,
		FullName:        payload.FullName,
		Email:           payload.Email,
		Phone:           payload.Phone,
		AppointmentDate: date,
		AppointmentTime: payload.AppointmentTime,
		AppointmentType: payload.AppointmentType,
		Notes:           payload.Notes,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error creating appointment"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Your appointment request has been received!",
		"appointmentId": created.ID,
	})
}

func (h *Handler) getUserAppointments(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid user ID"})
	}

	appts, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching appointments"})
	}

	return c.JSON(appts)
}

func (h *Handler) getAppointment(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment ID"})
	}

	appt, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Appointment not found"})
	}

	return c.JSON(appt)
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid appointment ID"})
	}

	payload := new(statusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Confirmed == nil || payload.Completed == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "confirmed and completed are required"})
	}

	updated, err := h.service.SetStatus(id, *payload.Confirmed, *payload.Completed)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Appointment not found"})
		case ErrInvalidTransition:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid status transition"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error updating appointment"})
		}
	}

	return c.JSON(updated)
}

func (h *Handler) listAppointments(c *fiber.Ctx) error {
	appts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching appointments"})
	}
	return c.JSON(appts)
}
