package workspace

import (
	"sync"
	"time"

	"github.com/labstack/gommon/random"

	"github.com/techbucket/techbucket-web/internal/metrics"
)

const idLength = 32

// Store keeps live workspaces in memory, keyed by the id stored in the
// admin's session cookie.
type Store struct {
	factory func(id string) *Workspace
	now     func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

func NewStore(factory func(id string) *Workspace) *Store {
	return &Store{factory: factory, now: time.Now, items: map[string]*Workspace{}}
}

// Get returns the workspace id and marks it as used.
func (s *Store) Get(id string) (*Workspace, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.items[id]
	if ok {
		w.lastSeen = s.now()
	}
	return w, ok
}

// Create starts a workspace under a fresh random id.
func (s *Store) Create() *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := random.String(idLength)
	for s.items[id] != nil {
		id = random.String(idLength)
	}
	w := s.factory(id)
	w.lastSeen = s.now()
	s.items[id] = w
	metrics.SetWorkspaces(len(s.items))
	return w
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	metrics.SetWorkspaces(len(s.items))
}

// Sweep drops workspaces unused for longer than idle and returns how many
// were removed.
func (s *Store) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	n := 0
	for id, w := range s.items {
		if w.lastSeen.Before(cutoff) {
			delete(s.items, id)
			n++
		}
	}
	metrics.SetWorkspaces(len(s.items))
	return n
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
