package server

import (
	"gamechanger/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts. The draft is accepted after the
// simulated upload delay and then discarded; the feed never changes.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var draft models.DraftPost
	if err := c.BodyParser(&draft); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	accepted, err := s.postService.Submit(c.UserContext(), draft)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"accepted": accepted})
}
