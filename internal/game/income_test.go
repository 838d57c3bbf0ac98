package game

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finalizeAll(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < g.PlayerCount(); i++ {
		require.True(t, g.FinalizeIncome(i).OK, "player %d failed to finalize", i)
	}
}

func TestIncomeFixed(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	control(t, g.players[0], "Chalice of Life")

	finalizeAll(t, g)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Blue))
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Green))
	assert.Equal(t, rules.PhasePlaying, g.Phase())
}

func TestIncomeChoice(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	control(t, g.players[0], "Celestial Horse")

	require.True(t, g.SetIncomeChoice(0, "Celestial Horse", map[essence.Type]int{
		essence.Red:  1,
		essence.Blue: 1,
	}).OK)
	finalizeAll(t, g)

	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Blue))
}

func TestIncomeChoiceDefaultsToFirstType(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	control(t, g.players[0], "Celestial Horse")

	finalizeAll(t, g)
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Red))
}

func TestIncomeChoiceRejectsWrongTotal(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	control(t, g.players[0], "Celestial Horse")

	// A short distribution is recorded but invalid, so the default applies.
	require.True(t, g.SetIncomeChoice(0, "Celestial Horse", map[essence.Type]int{
		essence.Blue: 1,
	}).OK)
	finalizeAll(t, g)
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Blue))
}

func TestArtifactStoresCollectedByDefault(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	cc := control(t, g.players[0], "Athanor")
	cc.Store.Add(essence.Red, 3)

	finalizeAll(t, g)
	assert.Equal(t, 3, g.players[0].Pool.Count(essence.Red))
	assert.True(t, cc.Store.IsEmpty())
}

func TestConditionalIncomeNeedsRetainedEssence(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	cc := control(t, g.players[0], "Windup Man")
	cc.Store.Add(essence.Red, 1)

	// Collected by default, so the store is empty when incomes fire and the
	// conditional income is skipped.
	finalizeAll(t, g)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Red))
	assert.True(t, cc.Store.IsEmpty())
}

func TestConditionalIncomeGrowsRetainedStore(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	cc := control(t, g.players[0], "Windup Man")
	cc.Store.Add(essence.Red, 1)

	require.True(t, g.SetCollectionChoice(0, "Windup Man", false).OK)
	finalizeAll(t, g)
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 2, cc.Store.Count(essence.Red))
}

func TestPlacesOfPowerSkipCollectionByDefault(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	cc := control(t, g.players[0], "Sacrificial Pit")
	cc.Store.Add(essence.Black, 2)

	finalizeAll(t, g)
	assert.Equal(t, 2, cc.Store.Count(essence.Black))
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Black))
}

func TestPlacesOfPowerCollectWhenAutoSkipDisabled(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	cc := control(t, g.players[0], "Sacrificial Pit")
	cc.Store.Add(essence.Black, 2)

	require.True(t, g.SetAutoSkipPlaces(0, false).OK)
	finalizeAll(t, g)
	assert.True(t, cc.Store.IsEmpty())
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Black))
}

func TestWaitForEarlierPlayers(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	first := g.FirstPlayer()
	second := (first + 1) % 2

	res := g.SetWaitForEarlier(first, true)
	assert.False(t, res.OK)

	require.True(t, g.SetWaitForEarlier(second, true).OK)
	res = g.FinalizeIncome(second)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "waiting")

	require.True(t, g.FinalizeIncome(first).OK)
	require.True(t, g.FinalizeIncome(second).OK)
	assert.Equal(t, rules.PhasePlaying, g.Phase())
}

func TestIncomeStartUntapsAndFlipsToken(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, g.FirstPlayer())
	cc := control(t, g.players[0], "Athanor")
	cc.Tapped = true
	holder := g.players[g.FirstPlayer()]
	holder.TokenFaceUp = false

	g.startIncomePhase()
	assert.False(t, cc.Tapped)
	assert.True(t, holder.TokenFaceUp)
	assert.Equal(t, rules.PhaseIncome, g.phase)
}

func TestIncomeRejectsAfterFinalize(t *testing.T) {
	g := newTestGame(t, 2)
	forceIncome(g)
	control(t, g.players[0], "Celestial Horse")

	require.True(t, g.FinalizeIncome(0).OK)
	res := g.SetIncomeChoice(0, "Celestial Horse", map[essence.Type]int{essence.Red: 2})
	assert.False(t, res.OK)
}
