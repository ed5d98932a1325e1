package server

import (
	"gamechanger/internal/models"

	"github.com/gofiber/fiber/v2"
)

func searchFilter(c *fiber.Ctx) models.SearchFilter {
	return models.SearchFilter{
		Query:    c.Query("q"),
		Sport:    c.Query("sport", "all"),
		Location: c.Query("location", "all"),
		Level:    c.Query("level", "all"),
	}
}

// SearchAthletes handles GET /api/search/athletes?q=&sport=&location=&level=
func (s *Server) SearchAthletes(c *fiber.Ctx) error {
	results := s.directoryService.SearchAthletes(searchFilter(c))
	return c.JSON(fiber.Map{"results": results, "count": len(results)})
}

// SearchScouts handles GET /api/search/scouts?q=&sport=&location=
func (s *Server) SearchScouts(c *fiber.Ctx) error {
	results := s.directoryService.SearchScouts(searchFilter(c))
	return c.JSON(fiber.Map{"results": results, "count": len(results)})
}
