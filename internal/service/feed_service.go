package service

import (
	"context"
	"log/slog"

	"gamechanger/internal/featureflags"
	"gamechanger/internal/feed"
	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"
	"gamechanger/internal/repository"
	"gamechanger/internal/seed"

	"go.opentelemetry.io/otel/attribute"
)

// FeedSource reports where a composed feed came from.
type FeedSource string

const (
	FeedSourceCatalog  FeedSource = "catalog"
	FeedSourceFallback FeedSource = "fallback"
)

type FeedService struct {
	catalog repository.CatalogRepository
	flags   *featureflags.Manager
	logger  *slog.Logger
}

func NewFeedService(catalog repository.CatalogRepository, flags *featureflags.Manager) *FeedService {
	return &FeedService{
		catalog: catalog,
		flags:   flags,
		logger:  middleware.Logger,
	}
}

// Load composes the home feed for the viewer. An empty viewerHandle excludes
// nobody. When the catalog cannot be loaded the fixed fallback posts are
// returned instead; that failure is logged and counted, never returned.
func (s *FeedService) Load(ctx context.Context, viewerID, viewerHandle string) ([]models.FeedPost, FeedSource) {
	span, ctx := observability.NewSpan(ctx, "feed.load", attribute.String("viewer.handle", viewerHandle))
	defer span.End()

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		span.SetError(err)
		s.logger.WarnContext(ctx, "demo catalog unavailable, serving fallback feed", slog.String("error", err.Error()))
		observability.FeedFallbacks.Inc()
		observability.FeedLoads.WithLabelValues(string(FeedSourceFallback)).Inc()
		return seed.FallbackPosts(), FeedSourceFallback
	}

	order := s.Order(viewerID)
	span.AddAttributes(attribute.String("feed.order", order.String()))

	posts := feed.Compose(catalog, viewerHandle, order)
	observability.FeedLoads.WithLabelValues(string(FeedSourceCatalog)).Inc()
	return posts, FeedSourceCatalog
}

// Order is the ordering applied for a viewer.
func (s *FeedService) Order(viewerID string) feed.Order {
	if s.flags.Enabled(featureflags.LegacyFeedOrder, viewerID) {
		return feed.OrderRecencyBucket
	}
	return feed.OrderChronological
}
