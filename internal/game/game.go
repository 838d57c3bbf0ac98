package game

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Game is an owned game-state handle. The engine itself is single-threaded
// cooperative: every exported operation runs to completion under the game's
// mutex, so concurrent callers (UI handlers, bot agents) observe each
// operation as atomic. Unexported methods assume the lock is held.
type Game struct {
	mu  sync.Mutex
	id  string
	log *zap.Logger
	rng *rand.Rand

	phase   rules.Phase
	players []*PlayerState

	draft  *draftState
	income *incomeState
	action *actionState

	availableMonuments  []*cards.Card
	monumentDeck        []*cards.Card
	availablePlaces     []*cards.Card
	availableMagicItems []*cards.Card
	availableScrolls    []*cards.Card

	result *VictoryResult
}

// NewGame creates a game in the setup phase. Player count outside 2-4 is the
// one unrecoverable condition and fails fast.
func NewGame(numPlayers int, seed int64, logger *zap.Logger) (*Game, error) {
	if numPlayers < 2 || numPlayers > 4 {
		return nil, fmt.Errorf("game supports 2-4 players, got %d", numPlayers)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Game{
		id:    uuid.NewString(),
		rng:   rand.New(rand.NewSource(seed)),
		phase: rules.PhaseSetup,
	}
	g.log = logger.With(zap.String("game_id", g.id))

	for i := 0; i < numPlayers; i++ {
		g.players = append(g.players, newPlayer(i))
	}
	first := g.rng.Intn(numPlayers)
	g.players[first].HasFirstPlayerToken = true
	g.players[first].TokenFaceUp = true

	g.availablePlaces = g.selectPlacesOfPower(numPlayers)
	g.availableMonuments, g.monumentDeck = g.selectMonuments(numPlayers)
	g.availableMagicItems = cards.MagicItems()
	g.availableScrolls = cards.Scrolls()

	g.log.Info("game created",
		zap.Int("players", numPlayers),
		zap.Int("first_player", first),
	)
	return g, nil
}

// ID returns the game's unique identifier.
func (g *Game) ID() string {
	return g.id
}

// Phase returns the current phase.
func (g *Game) Phase() rules.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// PlayerCount returns the number of seats.
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// FirstPlayer returns the index of the first player token holder.
func (g *Game) FirstPlayer() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.firstPlayerIndex()
}

// Result returns the terminal victory result once the game is over.
func (g *Game) Result() (VictoryResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.result == nil {
		return VictoryResult{}, false
	}
	return *g.result, true
}

func (g *Game) firstPlayerIndex() int {
	for i, p := range g.players {
		if p.HasFirstPlayerToken {
			return i
		}
	}
	return 0
}

// turnOrder lists player indices clockwise starting at the token holder.
func (g *Game) turnOrder() []int {
	n := len(g.players)
	first := g.firstPlayerIndex()
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		order = append(order, (first+i)%n)
	}
	return order
}

func (g *Game) player(id int) *PlayerState {
	if id < 0 || id >= len(g.players) {
		return nil
	}
	return g.players[id]
}

// setPhase advances the state machine, guarding against illegal transitions.
func (g *Game) setPhase(to rules.Phase) {
	if !rules.CanTransition(g.phase, to) {
		g.log.Error("illegal phase transition",
			zap.Stringer("from", g.phase),
			zap.Stringer("to", to),
		)
		return
	}
	g.log.Debug("phase transition", zap.Stringer("from", g.phase), zap.Stringer("to", to))
	g.phase = to
}

func (g *Game) shuffle(s []*cards.Card) {
	g.rng.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
