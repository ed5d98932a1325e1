package service

import (
	"strings"

	"gamechanger/internal/models"
	"gamechanger/internal/seed"
)

// DirectoryService answers discovery searches over the athlete and scout
// directories.
type DirectoryService struct {
	athletes []models.AthleteCard
	scouts   []models.ScoutCard
}

func NewDirectoryService() *DirectoryService {
	return &DirectoryService{
		athletes: seed.AthleteDirectory(),
		scouts:   seed.ScoutDirectory(),
	}
}

func NewDirectoryServiceFrom(athletes []models.AthleteCard, scouts []models.ScoutCard) *DirectoryService {
	return &DirectoryService{athletes: athletes, scouts: scouts}
}

// SearchAthletes matches the query against name, sport and position.
func (s *DirectoryService) SearchAthletes(filter models.SearchFilter) []models.AthleteCard {
	q := strings.ToLower(filter.Query)
	sport := selection(filter.Sport)
	level := selection(filter.Level)

	out := make([]models.AthleteCard, 0)
	for _, a := range s.athletes {
		if !containsFold(q, a.Name, a.Sport, a.Position) {
			continue
		}
		if sport != "" && strings.ToLower(a.Sport) != sport {
			continue
		}
		if !matchesLocation(filter.Location, a.Location) {
			continue
		}
		if level != "" && strings.ToLower(a.Level) != level {
			continue
		}
		a.Achievements = append([]string(nil), a.Achievements...)
		out = append(out, a)
	}
	return out
}

// SearchScouts matches the query against name, club and specialization. The
// sport filter applies to the specialization; level does not apply to scouts.
func (s *DirectoryService) SearchScouts(filter models.SearchFilter) []models.ScoutCard {
	q := strings.ToLower(filter.Query)
	sport := selection(filter.Sport)

	out := make([]models.ScoutCard, 0)
	for _, sc := range s.scouts {
		if !containsFold(q, sc.Name, sc.Club, sc.Specialization) {
			continue
		}
		if sport != "" && strings.ToLower(sc.Specialization) != sport {
			continue
		}
		if !matchesLocation(filter.Location, sc.Location) {
			continue
		}
		out = append(out, sc)
	}
	return out
}

// selection lowercases a select value, mapping "all" to no filter.
func selection(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "all" {
		return ""
	}
	return v
}

func containsFold(lowerQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// location is matched case-sensitively, e.g. "Mumbai" matches "Mumbai, Maharashtra".
func matchesLocation(want, location string) bool {
	if want == "" || strings.EqualFold(want, "all") {
		return true
	}
	return strings.Contains(location, want)
}
