package server

import (
	"log/slog"

	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// GetChats handles GET /api/messages
func (s *Server) GetChats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"chats": s.messageService.Chats()})
}

// GetThread handles GET /api/messages/:id
func (s *Server) GetThread(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	chat, thread, err := s.messageService.Thread(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"chat": chat, "messages": thread})
}

// SendMessage handles POST /api/messages/:id
func (s *Server) SendMessage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sent, err := s.messageService.Send(c.UserContext(), id, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	if sent {
		ev := notifications.Event{Kind: notifications.EventMessageSent, Text: req.Message}
		if err := s.notifier.PublishChat(c.UserContext(), id, ev); err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "message event not published",
				slog.Int("chat_id", id), slog.String("error", err.Error()))
		}
	}
	return c.JSON(fiber.Map{"sent": sent})
}
