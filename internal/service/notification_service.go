package service

import (
	"sync"

	"gamechanger/internal/models"
	"gamechanger/internal/seed"
)

// NotificationService is the viewer's inbox. It starts from the seeded
// notifications and keeps read state in memory only.
type NotificationService struct {
	mu    sync.Mutex
	items []models.Notification
	seed  func() []models.Notification
}

func NewNotificationService() *NotificationService {
	return NewNotificationServiceFrom(seed.Notifications)
}

// NewNotificationServiceFrom seeds the inbox from source, also used by Reset.
func NewNotificationServiceFrom(source func() []models.Notification) *NotificationService {
	s := &NotificationService{seed: source}
	s.items = source()
	return s
}

// List returns the inbox in seed order, optionally only unread entries.
func (s *NotificationService) List(unreadOnly bool) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Notification, 0, len(s.items))
	for _, n := range s.items {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n.Clone())
	}
	return out
}

func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadLocked()
}

func (s *NotificationService) unreadLocked() int {
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read and returns the new unread count.
func (s *NotificationService) MarkRead(id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
			return s.unreadLocked(), nil
		}
	}
	return s.unreadLocked(), models.NewNotFoundError("Notification", id)
}

func (s *NotificationService) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
}

// Reset restores the seeded inbox, undoing every read mark.
func (s *NotificationService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.seed()
}
