package game

import (
	"sync"

	"go.uber.org/zap"
)

// Manager owns every live game, keyed by game ID. It is safe for concurrent
// use by transport handlers and bot agents.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	log   *zap.Logger
}

// NewManager creates an empty manager.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		games: make(map[string]*Game),
		log:   logger,
	}
}

// CreateGame creates a game and immediately starts its draft.
func (m *Manager) CreateGame(numPlayers int, seed int64) (*Game, error) {
	g, err := NewGame(numPlayers, seed, m.log)
	if err != nil {
		return nil, err
	}
	if res := g.StartDraft(); !res.OK {
		m.log.Error("draft failed to start", zap.String("reason", res.Reason))
	}

	m.mu.Lock()
	m.games[g.ID()] = g
	m.mu.Unlock()
	return g, nil
}

// Game looks up a live game by ID.
func (m *Manager) Game(id string) (*Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, found := m.games[id]
	return g, found
}

// Remove drops a game from the manager.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

// GameIDs lists the IDs of every live game.
func (m *Manager) GameIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	return ids
}
