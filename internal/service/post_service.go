package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"
)

// PostService accepts drafts from the create-post flow. Nothing is stored:
// the draft is logged after a simulated upload delay.
type PostService struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewPostService(delay time.Duration) *PostService {
	return &PostService{delay: delay, logger: middleware.Logger}
}

// Submit posts the draft. A draft with blank content and no media is ignored
// and reported as not accepted. Cancelling ctx during the delay aborts the
// submission.
func (s *PostService) Submit(ctx context.Context, draft models.DraftPost) (bool, error) {
	content := cleanText(draft.Content)
	media := make([]string, 0, len(draft.Media))
	for _, m := range draft.Media {
		if m = strings.TrimSpace(m); m != "" {
			media = append(media, m)
		}
	}

	if content == "" && len(media) == 0 {
		observability.IgnoredInputs.WithLabelValues("post").Inc()
		return false, nil
	}

	span, ctx := observability.NewSpan(ctx, "post.submit")
	defer span.End()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			span.SetError(ctx.Err())
			return false, ctx.Err()
		}
	}

	s.logger.InfoContext(ctx, "posting draft", slog.Int("content_length", len(content)), slog.Int("media", len(media)))
	return true, nil
}
