package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"gamechanger/internal/middleware"
	"gamechanger/internal/models"
	"gamechanger/internal/observability"
	"gamechanger/internal/repository"
)

// ProfileService resolves profile pages against the catalog and keeps the
// achievements and clubs added during this run. Additions are not persisted.
type ProfileService struct {
	catalog repository.CatalogRepository

	mu      sync.Mutex
	overlay map[string]*profileEdits
}

type profileEdits struct {
	achievements []string
	clubs        []string
}

func NewProfileService(catalog repository.CatalogRepository) *ProfileService {
	return &ProfileService{
		catalog: catalog,
		overlay: make(map[string]*profileEdits),
	}
}

// Lookup finds the athlete addressed by id, which may be an id, a handle with
// or without "@", a slugged name or a fragment of the id or handle. The first
// athlete in catalog order that matches wins.
func (s *ProfileService) Lookup(ctx context.Context, id string) (models.Athlete, error) {
	athlete, err := s.find(ctx, id)
	if err != nil {
		return models.Athlete{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(athlete), nil
}

func (s *ProfileService) find(ctx context.Context, id string) (models.Athlete, error) {
	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return models.Athlete{}, models.NewInternalError(fmt.Errorf("load catalog: %w", err))
	}

	search := id
	if decoded, err := url.PathUnescape(id); err == nil {
		search = decoded
	}
	search = strings.ToLower(search)
	if strings.TrimSpace(search) == "" {
		return models.Athlete{}, models.NewNotFoundError("Profile", id)
	}

	for _, a := range catalog.Athletes {
		if matchesProfile(a, search) {
			return a, nil
		}
	}
	return models.Athlete{}, models.NewNotFoundError("Profile", id)
}

func matchesProfile(a models.Athlete, search string) bool {
	athleteID := strings.ToLower(a.ID)
	handle := strings.ToLower(a.Username)
	slug := strings.ToLower(strings.Join(strings.Fields(a.Name), "-"))

	return athleteID == search ||
		athleteID == strings.Replace(search, "@", "", 1) ||
		handle == search ||
		handle == "@"+search ||
		slug == search ||
		strings.Contains(athleteID, search) ||
		strings.Contains(handle, search)
}

// applyLocked returns a copy of the athlete with this run's edits applied.
func (s *ProfileService) applyLocked(a models.Athlete) models.Athlete {
	if edits, ok := s.overlay[a.ID]; ok {
		a.Achievements = edits.achievements
		a.Clubs = edits.clubs
	}
	a.Achievements = append([]string(nil), a.Achievements...)
	a.Clubs = append([]string(nil), a.Clubs...)
	a.Injuries = append([]string(nil), a.Injuries...)
	a.Posts = append([]models.Post(nil), a.Posts...)
	if a.GameStats != nil {
		stats := make(map[string]string, len(a.GameStats))
		for k, v := range a.GameStats {
			stats[k] = v
		}
		a.GameStats = stats
	}
	return a
}

func (s *ProfileService) editsLocked(a models.Athlete) *profileEdits {
	edits, ok := s.overlay[a.ID]
	if !ok {
		edits = &profileEdits{
			achievements: append([]string(nil), a.Achievements...),
			clubs:        append([]string(nil), a.Clubs...),
		}
		s.overlay[a.ID] = edits
	}
	return edits
}

// AddAchievement appends an achievement to the profile. Blank text is ignored
// and reported as not applied.
func (s *ProfileService) AddAchievement(ctx context.Context, id, text string) (models.Athlete, bool, error) {
	return s.add(ctx, id, text, "achievement", func(e *profileEdits, v string) {
		e.achievements = append(e.achievements, v)
	})
}

// AddClub appends a club to the profile. Blank text is ignored and reported as
// not applied.
func (s *ProfileService) AddClub(ctx context.Context, id, text string) (models.Athlete, bool, error) {
	return s.add(ctx, id, text, "club", func(e *profileEdits, v string) {
		e.clubs = append(e.clubs, v)
	})
}

func (s *ProfileService) add(ctx context.Context, id, text, kind string, apply func(*profileEdits, string)) (models.Athlete, bool, error) {
	athlete, err := s.find(ctx, id)
	if err != nil {
		return models.Athlete{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value := cleanText(text)
	if value == "" {
		observability.IgnoredInputs.WithLabelValues(kind).Inc()
		return s.applyLocked(athlete), false, nil
	}

	apply(s.editsLocked(athlete), value)
	middleware.Logger.DebugContext(ctx, "profile entry added", slog.String("profile_id", athlete.ID), slog.String("kind", kind))
	return s.applyLocked(athlete), true, nil
}

// RemoveAchievement drops the achievement at index. An out of range index is
// reported as not applied.
func (s *ProfileService) RemoveAchievement(ctx context.Context, id string, index int) (models.Athlete, bool, error) {
	return s.remove(ctx, id, func(e *profileEdits) bool {
		var ok bool
		e.achievements, ok = removeAt(e.achievements, index)
		return ok
	})
}

// RemoveClub drops the club at index. An out of range index is reported as
// not applied.
func (s *ProfileService) RemoveClub(ctx context.Context, id string, index int) (models.Athlete, bool, error) {
	return s.remove(ctx, id, func(e *profileEdits) bool {
		var ok bool
		e.clubs, ok = removeAt(e.clubs, index)
		return ok
	})
}

func (s *ProfileService) remove(ctx context.Context, id string, apply func(*profileEdits) bool) (models.Athlete, bool, error) {
	athlete, err := s.find(ctx, id)
	if err != nil {
		return models.Athlete{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := apply(s.editsLocked(athlete))
	return s.applyLocked(athlete), applied, nil
}

func removeAt(items []string, index int) ([]string, bool) {
	if index < 0 || index >= len(items) {
		return items, false
	}
	out := make([]string, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), true
}

// IsOwnProfile reports whether the signed-in viewer is the athlete shown.
func IsOwnProfile(viewer models.Identity, signedIn bool, athlete models.Athlete) bool {
	return signedIn && viewer.ID != "" && viewer.ID == athlete.ID
}
