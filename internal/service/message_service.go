package service

import (
	"context"
	"log/slog"

	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"
	"gamechanger/internal/seed"
)

// MessageService serves the demo conversations. Sent messages are logged and
// dropped; threads never change.
type MessageService struct {
	chats  []models.Chat
	thread []models.Message
	logger *slog.Logger
}

func NewMessageService() *MessageService {
	return &MessageService{
		chats:  seed.Chats(),
		thread: seed.Thread(),
		logger: middleware.Logger,
	}
}

func (s *MessageService) Chats() []models.Chat {
	return append([]models.Chat(nil), s.chats...)
}

// Thread returns the conversation for chatID. Every known chat shows the same
// sample thread.
func (s *MessageService) Thread(chatID int) (models.Chat, []models.Message, error) {
	for _, c := range s.chats {
		if c.ID == chatID {
			return c, append([]models.Message(nil), s.thread...), nil
		}
	}
	return models.Chat{}, nil, models.NewNotFoundError("Chat", chatID)
}

// Send accepts a message for chatID. Blank text is ignored and reported as
// not sent.
func (s *MessageService) Send(ctx context.Context, chatID int, text string) (bool, error) {
	if _, _, err := s.Thread(chatID); err != nil {
		return false, err
	}

	body := cleanText(text)
	if body == "" {
		observability.IgnoredInputs.WithLabelValues("message").Inc()
		return false, nil
	}

	s.logger.InfoContext(ctx, "sending message", slog.Int("chat_id", chatID), slog.Int("length", len(body)))
	return true, nil
}
