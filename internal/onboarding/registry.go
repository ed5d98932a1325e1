package onboarding

import (
	"sync"

	"gamechanger/internal/models"

	"github.com/google/uuid"
)

// Registry holds the wizards that are in progress, keyed by a random id.
type Registry struct {
	mu      sync.RWMutex
	wizards map[string]*Wizard
}

func NewRegistry() *Registry {
	return &Registry{wizards: make(map[string]*Wizard)}
}

// Start opens a new wizard for role.
func (r *Registry) Start(role models.Role) (*Wizard, error) {
	w, err := NewWizard(uuid.NewString(), role)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.wizards[w.ID()] = w
	return w, nil
}

func (r *Registry) Get(id string) (*Wizard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.wizards[id]
	if !ok {
		return nil, models.NewNotFoundError("Onboarding", id)
	}
	return w, nil
}

// Finish removes a completed wizard.
func (r *Registry) Finish(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.wizards, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.wizards)
}
