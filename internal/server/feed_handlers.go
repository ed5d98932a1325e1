package server

import (
	"gamechanger/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	viewerID, _ := c.Locals("viewerID").(string)

	posts, source := s.feedService.Load(c.UserContext(), viewerID, middleware.ViewerHandle(c))
	return c.JSON(fiber.Map{
		"posts":  posts,
		"source": source,
	})
}
