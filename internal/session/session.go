// Package session holds the identity the client is signed in as and keeps it
// in a single persisted record so it survives restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gamechanger/internal/config"
	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"
	"gamechanger/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// Session is the narrow view of the store that pages depend on.
type Session interface {
	CurrentIdentity() (models.Identity, bool)
	Authenticated() bool
	Login(ctx context.Context, identity models.Identity) error
	Logout(ctx context.Context) error
}

// Options configure a Store.
type Options struct {
	// Key is the record key the identity is persisted under.
	Key string
	// Logger defaults to middleware.Logger.
	Logger *slog.Logger
}

// Store is the process-wide session. It is safe for concurrent use.
type Store struct {
	records repository.RecordRepository
	key     string
	logger  *slog.Logger

	mu       sync.RWMutex
	identity *models.Identity
}

var _ Session = (*Store)(nil)

// Open restores the session from records. A missing, unreadable or malformed
// record yields an anonymous session; that case is logged, never returned.
func Open(ctx context.Context, records repository.RecordRepository, opts Options) *Store {
	s := &Store{
		records: records,
		key:     opts.Key,
		logger:  opts.Logger,
	}
	if s.key == "" {
		s.key = config.DefaultSessionKey
	}
	if s.logger == nil {
		s.logger = middleware.Logger
	}

	s.identity = s.restore(ctx)
	return s
}

func (s *Store) restore(ctx context.Context) *models.Identity {
	raw, ok, err := s.records.Get(ctx, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "session record unreadable, starting signed out",
			slog.String("key", s.key), slog.String("error", err.Error()))
		return nil
	}
	if !ok {
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		observability.SessionEvents.WithLabelValues(observability.SessionMalformed).Inc()
		s.logger.WarnContext(ctx, "session record malformed, starting signed out",
			slog.String("key", s.key), slog.String("error", err.Error()))
		return nil
	}
	if err := identity.Validate(); err != nil {
		observability.SessionEvents.WithLabelValues(observability.SessionMalformed).Inc()
		s.logger.WarnContext(ctx, "session record incomplete, starting signed out",
			slog.String("key", s.key), slog.String("error", err.Error()))
		return nil
	}

	observability.SessionEvents.WithLabelValues(observability.SessionRestored).Inc()
	return &identity
}

// Key returns the record key the identity is persisted under.
func (s *Store) Key() string {
	return s.key
}

// CurrentIdentity returns a copy of the signed-in identity.
func (s *Store) CurrentIdentity() (models.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return models.Identity{}, false
	}
	return s.identity.Clone(), true
}

// Authenticated reports whether an identity is signed in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Login persists identity and makes it current, replacing any previous one.
// If the record cannot be written the session is left unchanged.
func (s *Store) Login(ctx context.Context, identity models.Identity) error {
	span, ctx := observability.NewSpan(ctx, "session.login",
		attribute.String("identity.role", string(identity.Role)))
	defer span.End()

	if err := identity.Validate(); err != nil {
		span.SetError(err)
		return err
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		span.SetError(err)
		return models.NewInternalError(fmt.Errorf("encode identity: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.records.Put(ctx, s.key, raw); err != nil {
		span.SetError(err)
		return fmt.Errorf("persist session: %w", err)
	}

	stored := identity.Clone()
	s.identity = &stored
	observability.SessionEvents.WithLabelValues(observability.SessionLogin).Inc()
	s.logger.InfoContext(middleware.WithViewerID(ctx, identity.ID), "signed in",
		slog.String("role", string(identity.Role)))
	return nil
}

// Logout clears the identity and deletes its record. The in-memory session is
// always cleared; a failed delete is still reported.
func (s *Store) Logout(ctx context.Context) error {
	span, ctx := observability.NewSpan(ctx, "session.logout")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	wasSignedIn := s.identity != nil
	s.identity = nil

	if err := s.records.Delete(ctx, s.key); err != nil {
		span.SetError(err)
		return fmt.Errorf("delete session record: %w", err)
	}

	if wasSignedIn {
		observability.SessionEvents.WithLabelValues(observability.SessionLogout).Inc()
		s.logger.InfoContext(ctx, "signed out")
	}
	return nil
}

// Defaults for the demo sign in shortcut.
const (
	DemoName  = "Demo User"
	DemoEmail = "demo@gamechanger.app"
)

// DemoIdentity builds the identity used by the one-click demo sign in.
// Blank name or email fall back to the demo defaults.
func DemoIdentity(name, email string) models.Identity {
	if strings.TrimSpace(name) == "" {
		name = DemoName
	}
	if strings.TrimSpace(email) == "" {
		email = DemoEmail
	}
	return models.Identity{
		ID:    "1",
		Name:  name,
		Email: email,
		Role:  models.RoleAthlete,
	}
}
