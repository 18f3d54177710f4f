package session

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Manager holds games by id.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	opts  []Option
}

// NewManager creates an empty manager; opts apply to every game it starts.
func NewManager(opts ...Option) *Manager {
	return &Manager{
		games: make(map[string]*Game),
		opts:  opts,
	}
}

// NewGame starts a game under a fresh random id.
func (m *Manager) NewGame() *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := newGame(uuid.NewString(), m.opts...)
	m.games[g.id] = g
	return g
}

// Get returns the game with the given id.
func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	return g, nil
}

// Delete removes the game with the given id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "id %q", id)
	}
	delete(m.games, id)
	return nil
}

// Len returns the number of games held.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// IDs returns the ids of all games in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()

	slices.Sort(ids)
	return ids
}
