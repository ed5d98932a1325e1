package server

import (
	"gamechanger/internal/models"
	"gamechanger/internal/session"

	"github.com/gofiber/fiber/v2"
)

type signInPrompt struct {
	Title   string
	Message string
}

// signInPrompts is the placeholder shown by each protected page to anonymous viewers.
var signInPrompts = map[string]signInPrompt{
	"notifications": {"Please sign in to view notifications", "You need to be logged in to access notifications."},
	"search":        {"Please sign in to search", "You need to be logged in to search for athletes and scouts."},
	"profile":       {"Please sign in to view profiles", "You need to be logged in to access profile pages."},
	"messages":      {"Please sign in to view messages", "You need to be logged in to access messages."},
	"create-post":   {"Please sign in to create posts", "You need to be logged in to share your journey."},
}

// SessionRequired answers anonymous requests with the page's sign in
// placeholder instead of its content. The placeholder is a normal 200
// response so every protected page behaves the same way.
func (s *Server) SessionRequired(page string) fiber.Handler {
	prompt, ok := signInPrompts[page]
	if !ok {
		prompt = signInPrompt{"Please sign in", "You need to be logged in to access this page."}
	}

	return func(c *fiber.Ctx) error {
		if s.session != nil && s.session.Authenticated() {
			return c.Next()
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"signed_in": false,
			"page":      page,
			"title":     prompt.Title,
			"message":   prompt.Message,
		})
	}
}

func sessionBody(identity models.Identity, ok bool) fiber.Map {
	if !ok {
		return fiber.Map{"authenticated": false, "user": nil}
	}
	return fiber.Map{"authenticated": true, "user": identity}
}

// GetSession handles GET /api/session
func (s *Server) GetSession(c *fiber.Ctx) error {
	return c.JSON(sessionBody(s.viewer()))
}

// Login handles POST /api/session/login with a full identity record.
func (s *Server) Login(c *fiber.Ctx) error {
	var identity models.Identity
	if err := c.BodyParser(&identity); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.session.Login(c.UserContext(), identity); err != nil {
		return respondError(c, err)
	}
	return c.JSON(sessionBody(s.viewer()))
}

// DemoLogin handles POST /api/session/demo, the one-click demo sign in.
func (s *Server) DemoLogin(c *fiber.Ctx) error {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	if err := s.session.Login(c.UserContext(), session.DemoIdentity(req.Name, req.Email)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(sessionBody(s.viewer()))
}

// Logout handles POST /api/session/logout. Signing out twice is the same as once.
func (s *Server) Logout(c *fiber.Ctx) error {
	if err := s.session.Logout(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(sessionBody(models.Identity{}, false))
}
