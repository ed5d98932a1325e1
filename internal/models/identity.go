// Package models contains data structures for the application's domain models.
package models

import (
	"encoding/json"
	"strings"
)

// Role distinguishes the two kinds of identity a client can sign in as.
type Role string

const (
	RoleAthlete Role = "athlete"
	RoleScout   Role = "scout"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAthlete || r == RoleScout
}

// AthleteFields are the onboarding answers specific to athletes.
type AthleteFields struct {
	Sport        string `json:"sport,omitempty"`
	Position     string `json:"position,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Achievements string `json:"achievements,omitempty"`
	Stats        string `json:"stats,omitempty"`
	StrongFoot   string `json:"strongFoot,omitempty"`
	Height       string `json:"height,omitempty"`
	Weight       string `json:"weight,omitempty"`
}

// ScoutFields are the onboarding answers specific to scouts and coaches.
type ScoutFields struct {
	ClubName        string `json:"clubName,omitempty"`
	CoachingStyle   string `json:"coachingStyle,omitempty"`
	ExperienceYears string `json:"experience_years,omitempty"`
	Specialization  string `json:"specialization,omitempty"`
	Requirements    string `json:"requirements,omitempty"`
}

// Identity is the currently active user of the client.
// Exactly one of Athlete or Scout is populated, matching Role.
type Identity struct {
	ID       string
	Name     string
	Email    string
	Role     Role
	Username string
	Phone    string
	Location string

	Athlete *AthleteFields
	Scout   *ScoutFields
}

// identityJSON is the persisted shape: core fields plus the role fields
// flattened into the same object.
type identityJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"type"`
	Username string `json:"username,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	*AthleteFields
	*ScoutFields
}

// MarshalJSON flattens the role-specific fields into the identity object.
func (i Identity) MarshalJSON() ([]byte, error) {
	out := identityJSON{
		ID:       i.ID,
		Name:     i.Name,
		Email:    i.Email,
		Role:     i.Role,
		Username: i.Username,
		Phone:    i.Phone,
		Location: i.Location,
	}
	switch i.Role {
	case RoleAthlete:
		out.AthleteFields = i.Athlete
	case RoleScout:
		out.ScoutFields = i.Scout
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads a flattened identity object. Fields belonging to the
// other role are discarded; unknown keys are ignored.
func (i *Identity) UnmarshalJSON(data []byte) error {
	in := identityJSON{
		AthleteFields: &AthleteFields{},
		ScoutFields:   &ScoutFields{},
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*i = Identity{
		ID:       in.ID,
		Name:     in.Name,
		Email:    in.Email,
		Role:     in.Role,
		Username: in.Username,
		Phone:    in.Phone,
		Location: in.Location,
	}
	switch in.Role {
	case RoleAthlete:
		if *in.AthleteFields != (AthleteFields{}) {
			i.Athlete = in.AthleteFields
		}
	case RoleScout:
		if *in.ScoutFields != (ScoutFields{}) {
			i.Scout = in.ScoutFields
		}
	}
	return nil
}

// Validate checks that the fields required to sign in are present.
func (i Identity) Validate() error {
	var missing []string
	if strings.TrimSpace(i.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(i.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(i.Email) == "" {
		missing = append(missing, "email")
	}
	if !i.Role.Valid() {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return NewValidationError("Missing required identity fields: " + strings.Join(missing, ", "))
	}
	return nil
}

// Handle returns the feed handle of the identity: the explicit username
// when set, otherwise one derived from the display name.
func (i Identity) Handle() string {
	if u := strings.TrimSpace(i.Username); u != "" {
		if !strings.HasPrefix(u, "@") {
			u = "@" + u
		}
		return u
	}
	name := strings.ToLower(strings.Join(strings.Fields(i.Name), "_"))
	if name == "" {
		return ""
	}
	return "@" + name
}

// Clone returns a deep copy so callers cannot mutate the owner's record.
func (i Identity) Clone() Identity {
	out := i
	if i.Athlete != nil {
		a := *i.Athlete
		out.Athlete = &a
	}
	if i.Scout != nil {
		s := *i.Scout
		out.Scout = &s
	}
	return out
}
