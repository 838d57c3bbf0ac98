package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/arcanaworks/arcana-server-go/internal/game"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
)

// runDraft drives both players through drafting, mage selection and magic
// item selection with a first-legal-move policy.
func runDraft(t *testing.T, g *game.Game) {
	t.Helper()

	for g.Phase().IsDrafting() {
		for i := 0; i < g.PlayerCount(); i++ {
			batch := g.CardsToPick(i)
			require.NotEmpty(t, batch, "player %d has no cards to pick", i)
			require.True(t, g.PickCard(i, batch[0].Name).OK)
		}
	}
	require.Equal(t, rules.PhaseMageSelection, g.Phase())

	for i := 0; i < g.PlayerCount(); i++ {
		require.True(t, g.SelectMage(i, g.MageOptions(i)[0].Name).OK)
	}
	require.Equal(t, rules.PhaseMagicItemSelection, g.Phase())

	for {
		selector, active := g.MagicItemSelector()
		if !active {
			break
		}
		items := g.View(selector).MagicItems
		require.NotEmpty(t, items)
		require.True(t, g.TakeMagicItem(selector, items[0].Name).OK)
	}
	require.Equal(t, rules.PhaseIncome, g.Phase())
}

// playRound finalizes income for everyone and then plays actions with a
// simple policy until the round ends: play the first affordable hand card,
// otherwise discard one for essence, otherwise pass.
func playRound(t *testing.T, g *game.Game) {
	t.Helper()

	require.Equal(t, rules.PhaseIncome, g.Phase())
	for i := 0; i < g.PlayerCount(); i++ {
		require.True(t, g.FinalizeIncome(i).OK)
	}
	require.Equal(t, rules.PhasePlaying, g.Phase())

	for g.Phase() == rules.PhasePlaying {
		p := g.CurrentPlayer()
		require.GreaterOrEqual(t, p, 0)
		hand := g.View(p).Players[p].Hand

		acted := false
		for _, c := range hand {
			if g.PlayCard(p, c.Name, nil).OK {
				acted = true
				break
			}
		}
		if !acted && len(hand) > 0 {
			acted = g.DiscardForResources(p, hand[0].Name, nil).OK
		}
		if !acted {
			require.True(t, g.Pass(p, "").OK)
		}
	}
}

func TestFullGameFlow(t *testing.T) {
	logger := zaptest.NewLogger(t)
	m := game.NewManager(logger)
	g, err := m.CreateGame(2, 42)
	require.NoError(t, err)

	runDraft(t, g)

	for i := 0; i < g.PlayerCount(); i++ {
		v := g.View(i)
		require.Len(t, v.Players[i].Hand, 3)
		require.Equal(t, 5, v.Players[i].DeckCount)
		require.NotNil(t, v.Players[i].Mage)
		require.NotNil(t, v.Players[i].MagicItem)
	}

	for round := 0; round < 5 && g.Phase() != rules.PhaseGameOver; round++ {
		playRound(t, g)

		// Drafted cards only move between hand, deck, discard and play.
		for i := 0; i < g.PlayerCount(); i++ {
			v := g.View(-1)
			total := v.Players[i].HandCount + v.Players[i].DeckCount +
				len(v.Players[i].Discard) + len(v.Players[i].Artifacts)
			require.Equal(t, 8, total, "player %d leaked cards", i)
		}
	}

	if g.Phase() == rules.PhaseGameOver {
		result, over := g.Result()
		require.True(t, over)
		require.Len(t, result.Scores, 2)
	} else {
		require.Equal(t, rules.PhaseIncome, g.Phase())
	}
}

func TestFourPlayerDraftDealsCleanly(t *testing.T) {
	logger := zaptest.NewLogger(t)
	m := game.NewManager(logger)
	g, err := m.CreateGame(4, 99)
	require.NoError(t, err)

	runDraft(t, g)
	for i := 0; i < 4; i++ {
		v := g.View(i)
		require.Len(t, v.Players[i].Hand, 3)
		require.Equal(t, 5, v.Players[i].DeckCount)
	}
	// 4 players x 8 drafts = 32 of the 40 artifacts in circulation.
	require.Equal(t, rules.PhaseIncome, g.Phase())
}
