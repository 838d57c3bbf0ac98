package game

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftDeals(t *testing.T) {
	g := newTestGame(t, 3)
	require.True(t, g.StartDraft().OK)
	require.Equal(t, rules.PhaseDraftingRound1, g.Phase())

	for i := 0; i < 3; i++ {
		assert.Len(t, g.CardsToPick(i), 4)
		assert.Len(t, g.MageOptions(i), 2)
		assert.Empty(t, g.DraftedCards(i))
	}
}

func TestDraftRejectsDoublePick(t *testing.T) {
	g := newTestGame(t, 2)
	require.True(t, g.StartDraft().OK)

	batch := g.CardsToPick(0)
	require.True(t, g.PickCard(0, batch[0].Name).OK)
	res := g.PickCard(0, batch[1].Name)
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "already picked")
}

func TestDraftPassesLeftoversClockwise(t *testing.T) {
	g := newTestGame(t, 3)
	require.True(t, g.StartDraft().OK)

	leftover := make(map[int][]string)
	for i := 0; i < 3; i++ {
		batch := g.CardsToPick(i)
		require.True(t, g.PickCard(i, batch[0].Name).OK)
		for _, c := range batch[1:] {
			leftover[i] = append(leftover[i], c.Name)
		}
	}

	// Round 1: player i now holds what player i-1 left over.
	for i := 0; i < 3; i++ {
		got := g.CardsToPick(i)
		require.Len(t, got, 3)
		want := leftover[(i+2)%3]
		for j, c := range got {
			assert.Equal(t, want[j], c.Name)
		}
	}
}

func TestDraftPassesLeftoversCounterClockwise(t *testing.T) {
	g := newTestGame(t, 3)
	require.True(t, g.StartDraft().OK)

	for g.Phase() == rules.PhaseDraftingRound1 {
		for i := 0; i < 3; i++ {
			batch := g.CardsToPick(i)
			require.NotEmpty(t, batch)
			require.True(t, g.PickCard(i, batch[0].Name).OK)
		}
	}
	require.Equal(t, rules.PhaseDraftingRound2, g.Phase())

	leftover := make(map[int][]string)
	for i := 0; i < 3; i++ {
		batch := g.CardsToPick(i)
		require.Len(t, batch, 4)
		require.True(t, g.PickCard(i, batch[0].Name).OK)
		for _, c := range batch[1:] {
			leftover[i] = append(leftover[i], c.Name)
		}
	}

	// Round 2: player i now holds what player i+1 left over.
	for i := 0; i < 3; i++ {
		got := g.CardsToPick(i)
		require.Len(t, got, 3)
		want := leftover[(i+1)%3]
		for j, c := range got {
			assert.Equal(t, want[j], c.Name)
		}
	}
}

func runDraftRounds(t *testing.T, g *Game) {
	t.Helper()
	for g.Phase().IsDrafting() {
		for i := 0; i < g.PlayerCount(); i++ {
			batch := g.CardsToPick(i)
			require.NotEmpty(t, batch)
			require.True(t, g.PickCard(i, batch[0].Name).OK)
		}
	}
}

func TestDraftFullFlow(t *testing.T) {
	g := newTestGame(t, 2)
	require.True(t, g.StartDraft().OK)

	runDraftRounds(t, g)
	require.Equal(t, rules.PhaseMageSelection, g.Phase())
	for i := 0; i < 2; i++ {
		assert.Len(t, g.DraftedCards(i), 8)
	}

	// Player 0 revises before player 1 commits; the revision must stick.
	options := g.MageOptions(0)
	require.True(t, g.SelectMage(0, options[0].Name).OK)
	require.True(t, g.SelectMage(0, options[1].Name).OK)
	require.Equal(t, rules.PhaseMageSelection, g.Phase())
	require.True(t, g.SelectMage(1, g.MageOptions(1)[0].Name).OK)

	require.Equal(t, rules.PhaseMagicItemSelection, g.Phase())
	assert.Equal(t, options[1].Name, g.players[0].Mage.Card.Name)

	// Items go in reverse play order: the seat before the first player
	// chooses first, the first player last.
	first := g.FirstPlayer()
	selector, active := g.MagicItemSelector()
	require.True(t, active)
	assert.Equal(t, (first+1)%2, selector)

	res := g.TakeMagicItem(first, g.availableMagicItems[0].Name)
	assert.False(t, res.OK)

	require.True(t, g.TakeMagicItem(selector, g.availableMagicItems[0].Name).OK)
	selector, _ = g.MagicItemSelector()
	require.Equal(t, first, selector)
	require.True(t, g.TakeMagicItem(first, g.availableMagicItems[0].Name).OK)

	require.Equal(t, rules.PhaseIncome, g.Phase())
	for i := 0; i < 2; i++ {
		p := g.players[i]
		assert.Len(t, p.Hand, 3)
		assert.Len(t, p.Deck, 5)
		assert.False(t, p.Mage.IsPlaceholder())
		assert.False(t, p.MagicItem.IsPlaceholder())
	}
	assert.Len(t, g.availableMagicItems, 6)
}

func TestSetupCounts(t *testing.T) {
	tests := []struct {
		players   int
		monuments int
	}{
		{2, 7},
		{3, 10},
		{4, 12},
	}
	for _, tt := range tests {
		g := newTestGame(t, tt.players)
		assert.Len(t, g.availableMonuments, 2)
		assert.Len(t, g.monumentDeck, tt.monuments-2)
		assert.Len(t, g.availablePlaces, tt.players+2)
		assert.Len(t, g.availableMagicItems, 8)
		assert.Len(t, g.availableScrolls, 8)
	}
}

func TestPlacesOfPowerUseOneSidePerPair(t *testing.T) {
	g := newTestGame(t, 4)
	require.Len(t, g.availablePlaces, 6)

	names := make(map[string]bool)
	for _, c := range g.availablePlaces {
		names[c.Name] = true
	}
	for _, pair := range cards.PlacePairs() {
		assert.False(t, names[pair[0].Name] && names[pair[1].Name],
			"both sides of %q/%q in play", pair[0].Name, pair[1].Name)
	}
}
