package game

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGame(t *testing.T, numPlayers int) *Game {
	t.Helper()
	g, err := NewGame(numPlayers, 7, zap.NewNop())
	require.NoError(t, err)
	return g
}

// forcePlaying drops a fresh game straight into the action phase with the
// given player to act, bypassing draft and income.
func forcePlaying(g *Game, current int) {
	g.phase = rules.PhasePlaying
	g.action = &actionState{current: current, passed: make(map[int]bool)}
}

func forceIncome(g *Game) {
	g.phase = rules.PhaseIncome
	g.income = newIncomeState(len(g.players))
}

// control puts a named catalog card into the matching zone of the player's
// play area.
func control(t *testing.T, p *PlayerState, name string) *ControlledCard {
	t.Helper()
	c := cards.ByName(name)
	require.NotNil(t, c, "unknown card %q", name)
	cc := NewControlledCard(c)
	switch c.Type {
	case cards.Mage:
		p.Mage = cc
	case cards.MagicItem:
		p.MagicItem = cc
	case cards.Monument:
		p.Monuments = append(p.Monuments, cc)
	case cards.PlaceOfPower:
		p.PlacesOfPower = append(p.PlacesOfPower, cc)
	case cards.Scroll:
		p.Scrolls = append(p.Scrolls, c)
	default:
		p.Artifacts = append(p.Artifacts, cc)
	}
	return cc
}

func handCard(t *testing.T, p *PlayerState, name string) {
	t.Helper()
	c := cards.ByName(name)
	require.NotNil(t, c, "unknown card %q", name)
	p.Hand = append(p.Hand, c)
}
