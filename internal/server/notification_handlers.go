package server

import (
	"log/slog"

	"gamechanger/internal/middleware"
	"gamechanger/internal/notifications"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications?filter=unread
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	unreadOnly := c.Query("filter") == "unread"

	return c.JSON(fiber.Map{
		"notifications": s.notificationService.List(unreadOnly),
		"unread":        s.notificationService.UnreadCount(),
	})
}

// MarkNotificationRead handles POST /api/notifications/:id/read
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	unread, err := s.notificationService.MarkRead(id)
	if err != nil {
		return respondError(c, err)
	}
	s.publishViewer(c, notifications.Event{
		Kind:           notifications.EventNotificationRead,
		NotificationID: id,
		Unread:         unread,
	})
	return c.JSON(fiber.Map{"unread": unread})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	s.notificationService.MarkAllRead()
	unread := s.notificationService.UnreadCount()
	s.publishViewer(c, notifications.Event{Kind: notifications.EventAllRead, Unread: unread})
	return c.JSON(fiber.Map{"unread": unread})
}

// publishViewer fans a read-state change out to the viewer's other clients.
// Delivery failures are logged; the request still succeeds.
func (s *Server) publishViewer(c *fiber.Ctx, ev notifications.Event) {
	viewerID, _ := c.Locals("viewerID").(string)
	if err := s.notifier.PublishViewer(c.UserContext(), viewerID, ev); err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "notification event not published",
			slog.String("kind", ev.Kind), slog.String("error", err.Error()))
	}
}
