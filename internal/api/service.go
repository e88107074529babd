package api

import (
	"fmt"

	"github.com/starford/raido/internal/engine"
	"github.com/starford/raido/internal/settings"
)

// Service exposes the engine operations the API surfaces.
type Service struct {
	eng   *engine.Engine
	store *settings.Store
}

// NewService creates a new Service.
func NewService(eng *engine.Engine, store *settings.Store) *Service {
	return &Service{eng: eng, store: store}
}

// Settings returns the active settings snapshot.
func (s *Service) Settings() *settings.Settings {
	return s.store.Current()
}

// UpdateSettings swaps in a normalized replacement record, persists it, and
// runs a full regeneration pass so every generated block reflects the new
// settings.
func (s *Service) UpdateSettings(next settings.Settings) (*settings.Settings, error) {
	applied, err := s.store.Update(next)
	if err != nil {
		return nil, err
	}
	if err := s.eng.FullPass(); err != nil {
		return applied, fmt.Errorf("api: regenerate after settings change: %w", err)
	}
	return applied, nil
}

// Regenerate runs a propagation pass from folder, or a full vault pass when
// folder is empty.
func (s *Service) Regenerate(folder string) error {
	if folder == "" {
		return s.eng.FullPass()
	}
	s.eng.PropagateUp(folder, true)
	return nil
}

// Preview renders a folder's tree without writing anything.
func (s *Service) Preview(folder string) (string, error) {
	return s.eng.Preview(folder)
}
