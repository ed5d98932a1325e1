// Package onboarding implements the role-branched sign up wizard that ends in
// a session login.
package onboarding

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"gamechanger/internal/models"
)

var athleteSteps = []string{"Personal Details", "Game Details", "Achievements & Stats", "Welcome"}

var scoutSteps = []string{"Scout Details", "Expertise & Requirements", "Ready to Scout"}

var commonFields = []string{"name", "email", "phone", "location"}

var athleteFields = []string{"sport", "position", "experience", "achievements", "stats", "strongFoot", "height", "weight"}

var scoutFields = []string{"clubName", "coachingStyle", "experience_years", "specialization", "requirements"}

var requiredFields = map[models.Role][]string{
	models.RoleAthlete: {"name", "email", "location", "sport", "position"},
	models.RoleScout:   {"name", "email", "clubName", "location", "specialization"},
}

// Wizard is one in-progress onboarding form. It is safe for concurrent use.
type Wizard struct {
	id   string
	role models.Role

	mu     sync.Mutex
	step   int
	values map[string]string
}

// State is a point-in-time view of a wizard.
type State struct {
	ID         string            `json:"id"`
	Type       models.Role       `json:"type"`
	Step       int               `json:"step"`
	TotalSteps int               `json:"totalSteps"`
	Title      string            `json:"title"`
	Progress   int               `json:"progress"`
	Final      bool              `json:"final"`
	Fields     map[string]string `json:"fields"`
	Missing    []string          `json:"missing"`
}

// NewWizard starts a wizard for role at step 1.
func NewWizard(id string, role models.Role) (*Wizard, error) {
	if !role.Valid() {
		return nil, models.NewValidationError("Onboarding type must be athlete or scout")
	}
	return &Wizard{id: id, role: role, step: 1, values: make(map[string]string)}, nil
}

func (w *Wizard) ID() string { return w.id }

func (w *Wizard) Role() models.Role { return w.role }

func (w *Wizard) steps() []string {
	if w.role == models.RoleScout {
		return scoutSteps
	}
	return athleteSteps
}

// TotalSteps is 4 for athletes and 3 for scouts.
func (w *Wizard) TotalSteps() int { return len(w.steps()) }

func (w *Wizard) Step() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Next advances one step, stopping at the last.
func (w *Wizard) Next() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step < w.TotalSteps() {
		w.step++
	}
	return w.step
}

// Previous goes back one step, stopping at the first.
func (w *Wizard) Previous() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 1 {
		w.step--
	}
	return w.step
}

// Progress is the completed share of the wizard as a whole percentage.
func (w *Wizard) Progress() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step * 100 / w.TotalSteps()
}

// Fields lists the field names this wizard accepts.
func (w *Wizard) Fields() []string {
	out := append([]string(nil), commonFields...)
	if w.role == models.RoleScout {
		return append(out, scoutFields...)
	}
	return append(out, athleteFields...)
}

func (w *Wizard) accepts(field string) bool {
	for _, f := range w.Fields() {
		if f == field {
			return true
		}
	}
	return false
}

// Set records one answer. Fields outside this role's form are rejected.
func (w *Wizard) Set(field, value string) error {
	if !w.accepts(field) {
		return models.NewValidationError("Unknown onboarding field: " + field)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.values[field] = value
	return nil
}

// SetAll records several answers, rejecting the whole batch if any field is unknown.
func (w *Wizard) SetAll(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !w.accepts(k) {
			return models.NewValidationError("Unknown onboarding field: " + k)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for k, v := range values {
		w.values[k] = v
	}
	return nil
}

func (w *Wizard) missingLocked() []string {
	missing := []string{}
	for _, f := range requiredFields[w.role] {
		if strings.TrimSpace(w.values[f]) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// State returns a copy of the wizard's current state.
func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	fields := make(map[string]string, len(w.values))
	for k, v := range w.values {
		fields[k] = v
	}
	steps := w.steps()
	return State{
		ID:         w.id,
		Type:       w.role,
		Step:       w.step,
		TotalSteps: len(steps),
		Title:      steps[w.step-1],
		Progress:   w.step * 100 / len(steps),
		Final:      w.step == len(steps),
		Fields:     fields,
		Missing:    w.missingLocked(),
	}
}

// Complete builds the identity the wizard signs in as. All required answers
// must be present.
func (w *Wizard) Complete(newID func() string) (models.Identity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if missing := w.missingLocked(); len(missing) > 0 {
		return models.Identity{}, models.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}
	if newID == nil {
		newID = TimestampID
	}

	v := func(k string) string { return strings.TrimSpace(w.values[k]) }
	identity := models.Identity{
		ID:       newID(),
		Name:     v("name"),
		Email:    v("email"),
		Role:     w.role,
		Phone:    v("phone"),
		Location: v("location"),
	}
	switch w.role {
	case models.RoleAthlete:
		identity.Athlete = &models.AthleteFields{
			Sport:        v("sport"),
			Position:     v("position"),
			Experience:   v("experience"),
			Achievements: v("achievements"),
			Stats:        v("stats"),
			StrongFoot:   v("strongFoot"),
			Height:       v("height"),
			Weight:       v("weight"),
		}
	case models.RoleScout:
		identity.Scout = &models.ScoutFields{
			ClubName:        v("clubName"),
			CoachingStyle:   v("coachingStyle"),
			ExperienceYears: v("experience_years"),
			Specialization:  v("specialization"),
			Requirements:    v("requirements"),
		}
	}
	return identity, nil
}

// TimestampID returns the current time in milliseconds, the id format used for
// identities created by sign up.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
