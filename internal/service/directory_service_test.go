package service

import (
	"testing"

	"gamechanger/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryService_SearchAthletes(t *testing.T) {
	svc := NewDirectoryService()

	tests := []struct {
		name     string
		filter   models.SearchFilter
		expected []string
	}{
		{"no filter", models.SearchFilter{}, []string{"Rahul Sharma", "Priya Patel", "Arjun Singh", "Sneha Reddy"}},
		{"all selections", models.SearchFilter{Sport: "all", Location: "all", Level: "all"}, []string{"Rahul Sharma", "Priya Patel", "Arjun Singh", "Sneha Reddy"}},
		{"query matches name", models.SearchFilter{Query: "PRIYA"}, []string{"Priya Patel"}},
		{"query matches position", models.SearchFilter{Query: "raider"}, []string{"Arjun Singh"}},
		{"sport", models.SearchFilter{Sport: "football"}, []string{"Rahul Sharma"}},
		{"sport any case", models.SearchFilter{Sport: "Volleyball"}, []string{"Sneha Reddy"}},
		{"level", models.SearchFilter{Level: "state"}, []string{"Rahul Sharma", "Sneha Reddy"}},
		{"location substring", models.SearchFilter{Location: "Delhi"}, []string{"Arjun Singh"}},
		{"location is case sensitive", models.SearchFilter{Location: "delhi"}, []string{}},
		{"combined", models.SearchFilter{Query: "a", Sport: "cricket", Level: "district"}, []string{"Priya Patel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{}
			for _, a := range svc.SearchAthletes(tt.filter) {
				names = append(names, a.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDirectoryService_SearchScouts(t *testing.T) {
	svc := NewDirectoryService()

	tests := []struct {
		name     string
		filter   models.SearchFilter
		expected []string
	}{
		{"query matches club", models.SearchFilter{Query: "academy"}, []string{"Coach Rajesh Kumar", "Meera Gupta"}},
		{"sport matches specialization", models.SearchFilter{Sport: "kabaddi"}, []string{"Vikram Yadav"}},
		{"level is ignored", models.SearchFilter{Sport: "cricket", Level: "national"}, []string{"Meera Gupta"}},
		{"location", models.SearchFilter{Location: "Mumbai"}, []string{"Coach Rajesh Kumar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{}
			for _, s := range svc.SearchScouts(tt.filter) {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestDirectoryService_ResultsAreCopies(t *testing.T) {
	svc := NewDirectoryService()

	first := svc.SearchAthletes(models.SearchFilter{})
	first[0].Achievements[0] = "changed"

	again := svc.SearchAthletes(models.SearchFilter{})
	assert.Equal(t, "District Champion 2023", again[0].Achievements[0])
}
