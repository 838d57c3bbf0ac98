package game

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewHidesOtherHands(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	handCard(t, g.players[0], "Hawk")
	handCard(t, g.players[1], "Prism")

	v := g.View(0)
	require.Len(t, v.Players, 2)
	assert.Len(t, v.Players[0].Hand, 1)
	assert.Empty(t, v.Players[1].Hand)
	assert.Equal(t, 1, v.Players[1].HandCount)
}

func TestViewHidesMonumentDeck(t *testing.T) {
	g := newTestGame(t, 2)
	v := g.View(0)
	assert.Len(t, v.Monuments, 2)
	assert.Equal(t, 5, v.MonumentDeckCount)
}

func TestViewHidesDraftOfOthers(t *testing.T) {
	g := newTestGame(t, 2)
	require.True(t, g.StartDraft().OK)

	v := g.View(0)
	require.NotNil(t, v.Draft)
	assert.Len(t, v.Draft.CardsToPick, 4)
	assert.Len(t, v.Draft.MageOptions, 2)
	for _, p := range v.Players {
		assert.Nil(t, p.Mage)
	}

	spectator := g.View(-1)
	assert.Nil(t, spectator.Draft)
}

func TestViewShowsPoolsAndStores(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Athanor")
	cc.Store.Add(essence.Red, 2)
	g.players[0].Pool.Add(essence.Gold, 1)

	v := g.View(1)
	require.Len(t, v.Players[0].Artifacts, 1)
	assert.Equal(t, map[string]int{"red": 2}, v.Players[0].Artifacts[0].Store)
	assert.Equal(t, map[string]int{"gold": 1}, v.Players[0].Pool)
	assert.Equal(t, 0, v.CurrentPlayer)
}

func TestManagerLifecycle(t *testing.T) {
	m := NewManager(nil)
	g, err := m.CreateGame(2, 99)
	require.NoError(t, err)

	got, found := m.Game(g.ID())
	require.True(t, found)
	assert.Same(t, g, got)
	assert.Contains(t, m.GameIDs(), g.ID())

	m.Remove(g.ID())
	_, found = m.Game(g.ID())
	assert.False(t, found)
}

func TestManagerRejectsBadPlayerCount(t *testing.T) {
	m := NewManager(nil)
	_, err := m.CreateGame(5, 1)
	assert.Error(t, err)
}
