package server

import (
	"context"

	"gamechanger/internal/models"
	"gamechanger/internal/service"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) profileBody(athlete models.Athlete) fiber.Map {
	identity, ok := s.viewer()
	return fiber.Map{
		"profile":    athlete,
		"is_own":     service.IsOwnProfile(identity, ok, athlete),
		"post_count": len(athlete.Posts),
	}
}

// GetProfile handles GET /api/profiles/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	athlete, err := s.profileService.Lookup(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(s.profileBody(athlete))
}

type profileEntryRequest struct {
	Text string `json:"text"`
}

type addEntryFunc func(ctx context.Context, id, text string) (models.Athlete, bool, error)

type removeEntryFunc func(ctx context.Context, id string, index int) (models.Athlete, bool, error)

func (s *Server) addProfileEntry(c *fiber.Ctx, add addEntryFunc) error {
	var req profileEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	athlete, applied, err := add(c.UserContext(), c.Params("id"), req.Text)
	if err != nil {
		return respondError(c, err)
	}
	body := s.profileBody(athlete)
	body["applied"] = applied
	return c.JSON(body)
}

func (s *Server) removeProfileEntry(c *fiber.Ctx, remove removeEntryFunc) error {
	index, err := s.parseIndex(c, "index")
	if err != nil {
		return nil
	}

	athlete, applied, err := remove(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return respondError(c, err)
	}
	body := s.profileBody(athlete)
	body["applied"] = applied
	return c.JSON(body)
}

// AddAchievement handles POST /api/profiles/:id/achievements
func (s *Server) AddAchievement(c *fiber.Ctx) error {
	return s.addProfileEntry(c, s.profileService.AddAchievement)
}

// AddClub handles POST /api/profiles/:id/clubs
func (s *Server) AddClub(c *fiber.Ctx) error {
	return s.addProfileEntry(c, s.profileService.AddClub)
}

// RemoveAchievement handles DELETE /api/profiles/:id/achievements/:index
func (s *Server) RemoveAchievement(c *fiber.Ctx) error {
	return s.removeProfileEntry(c, s.profileService.RemoveAchievement)
}

// RemoveClub handles DELETE /api/profiles/:id/clubs/:index
func (s *Server) RemoveClub(c *fiber.Ctx) error {
	return s.removeProfileEntry(c, s.profileService.RemoveClub)
}
