package server

import (
	"gamechanger/internal/models"
	"gamechanger/internal/onboarding"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) wizard(c *fiber.Ctx) (*onboarding.Wizard, error) {
	w, err := s.wizards.Get(c.Params("id"))
	if err != nil {
		_ = respondError(c, err)
		return nil, errResponseWritten
	}
	return w, nil
}

// StartOnboarding handles POST /api/onboarding with {"type": "athlete"|"scout"}.
func (s *Server) StartOnboarding(c *fiber.Ctx) error {
	var req struct {
		Type models.Role `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	w, err := s.wizards.Start(req.Type)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(w.State())
}

// GetOnboarding handles GET /api/onboarding/:id
func (s *Server) GetOnboarding(c *fiber.Ctx) error {
	w, err := s.wizard(c)
	if err != nil {
		return nil
	}
	return c.JSON(w.State())
}

// SetOnboardingFields handles PUT /api/onboarding/:id/fields with a map of answers.
func (s *Server) SetOnboardingFields(c *fiber.Ctx) error {
	w, err := s.wizard(c)
	if err != nil {
		return nil
	}

	var fields map[string]string
	if err := c.BodyParser(&fields); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := w.SetAll(fields); err != nil {
		return respondError(c, err)
	}
	return c.JSON(w.State())
}

// NextOnboardingStep handles POST /api/onboarding/:id/next
func (s *Server) NextOnboardingStep(c *fiber.Ctx) error {
	w, err := s.wizard(c)
	if err != nil {
		return nil
	}
	w.Next()
	return c.JSON(w.State())
}

// PreviousOnboardingStep handles POST /api/onboarding/:id/previous
func (s *Server) PreviousOnboardingStep(c *fiber.Ctx) error {
	w, err := s.wizard(c)
	if err != nil {
		return nil
	}
	w.Previous()
	return c.JSON(w.State())
}

// CompleteOnboarding handles POST /api/onboarding/:id/complete. The built
// identity becomes the signed-in session.
func (s *Server) CompleteOnboarding(c *fiber.Ctx) error {
	w, err := s.wizard(c)
	if err != nil {
		return nil
	}

	identity, err := w.Complete(onboarding.TimestampID)
	if err != nil {
		return respondError(c, err)
	}
	if err := s.session.Login(c.UserContext(), identity); err != nil {
		return respondError(c, err)
	}

	s.wizards.Finish(w.ID())
	return c.JSON(sessionBody(s.viewer()))
}
