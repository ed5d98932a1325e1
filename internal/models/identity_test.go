package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_JSONFlattensRoleFields(t *testing.T) {
	athlete := Identity{
		ID: "1", Name: "Sam Daniel", Email: "sam@x.com", Role: RoleAthlete,
		Location: "Chennai",
		Athlete:  &AthleteFields{Sport: "Football", Position: "Forward"},
	}

	raw, err := json.Marshal(athlete)
	require.NoError(t, err)

	var flat map[string]any
	require.NoError(t, json.Unmarshal(raw, &flat))
	assert.Equal(t, "athlete", flat["type"])
	assert.Equal(t, "Football", flat["sport"])
	assert.NotContains(t, flat, "clubName")

	var back Identity
	require.NoError(t, json.Unmarshal(raw, &back))
	if diff := cmp.Diff(athlete, back); diff != "" {
		t.Fatalf("identity changed across encoding (-want +got):\n%s", diff)
	}
}

func TestIdentity_UnmarshalDropsOtherRoleFields(t *testing.T) {
	var identity Identity
	raw := `{"id":"7","name":"Meera","email":"m@x.com","type":"scout","sport":"Cricket","clubName":"CEA","extra":true}`
	require.NoError(t, json.Unmarshal([]byte(raw), &identity))

	assert.Nil(t, identity.Athlete)
	require.NotNil(t, identity.Scout)
	assert.Equal(t, "CEA", identity.Scout.ClubName)
}

func TestIdentity_Validate(t *testing.T) {
	tests := []struct {
		name     string
		identity Identity
		valid    bool
	}{
		{"complete", Identity{ID: "1", Name: "X", Email: "x@x.com", Role: RoleScout}, true},
		{"missing id", Identity{Name: "X", Email: "x@x.com", Role: RoleScout}, false},
		{"blank name", Identity{ID: "1", Name: "  ", Email: "x@x.com", Role: RoleAthlete}, false},
		{"unknown role", Identity{ID: "1", Name: "X", Email: "x@x.com", Role: "admin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.identity.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.True(t, HasCode(err, CodeValidation))
			assert.Equal(t, 400, StatusFor(err))
		})
	}
}

func TestIdentity_Handle(t *testing.T) {
	tests := []struct {
		identity Identity
		expected string
	}{
		{Identity{Name: "Demo User"}, "@demo_user"},
		{Identity{Name: "  Priya   Patel "}, "@priya_patel"},
		{Identity{Name: "X", Username: "sxm_leo"}, "@sxm_leo"},
		{Identity{Username: "@kabaddi_king"}, "@kabaddi_king"},
		{Identity{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.identity.Handle())
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, 404, StatusFor(NewNotFoundError("Chat", 9)))
	assert.Equal(t, 401, StatusFor(NewUnauthorizedError("sign in")))
	assert.Equal(t, 500, StatusFor(assert.AnError))
	assert.False(t, HasCode(nil, CodeNotFound))
}
