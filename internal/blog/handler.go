package blog

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
	app.Get("/api/blog-posts", h.getPosts)
	app.Get("/api/blog-posts/:slug", h.getPost)
}

func (h *Handler) getPosts(c *fiber.Ctx) error {
	posts, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Error fetching blog posts"})
	}
	return c.JSON(posts)
}

func (h *Handler) getPost(c *fiber.Ctx) error {
	post, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Blog post not found"})
	}
	return c.JSON(post)
}
