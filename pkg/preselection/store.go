package preselection

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/artem13815/ats/pkg/pipeline"
)

// Store — единственный источник текущего списка заявок.
// Published snapshots are never mutated; every change swaps in a new slice.
type Store struct {
	api API
	log *zap.Logger

	mu      sync.RWMutex
	apps    []pipeline.Application
	loadErr error
}

func NewStore(api API, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{api: api, log: log}
}

// Load replaces the whole collection with a fresh server snapshot.
// On failure the previous snapshot stays in place and the error is kept until dismissed.
func (s *Store) Load(ctx context.Context) error {
	apps, err := s.api.ListApplications(ctx)
	if err != nil {
		s.log.Warn("load applications failed", zap.Error(err))
		wrapped := fmt.Errorf("%w: %v", ErrLoadFailed, err)
		s.mu.Lock()
		s.loadErr = wrapped
		s.mu.Unlock()
		return wrapped
	}
	if apps == nil {
		apps = []pipeline.Application{}
	}
	s.mu.Lock()
	s.apps = apps
	s.loadErr = nil
	s.mu.Unlock()
	s.log.Debug("applications loaded", zap.Int("count", len(apps)))
	return nil
}

// RemoveLocally hides an application from the view without calling the server.
// The next Load restores it.
func (s *Store) RemoveLocally(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]pipeline.Application, 0, len(s.apps))
	for _, a := range s.apps {
		if a.ID != id {
			next = append(next, a)
		}
	}
	s.apps = next
}

func (s *Store) Snapshot() []pipeline.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apps
}

// Get finds an application in the current snapshot.
func (s *Store) Get(id int64) (pipeline.Application, bool) {
	for _, a := range s.Snapshot() {
		if a.ID == id {
			return a, true
		}
	}
	return pipeline.Application{}, false
}

func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *Store) DismissError() {
	s.mu.Lock()
	s.loadErr = nil
	s.mu.Unlock()
}
