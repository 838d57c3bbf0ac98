package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"go.uber.org/zap"
)

// monumentCounts is the number of monuments in play by player count; the
// first two are face up, the rest form the monument deck.
var monumentCounts = map[int]int{2: 7, 3: 10, 4: 12}

// selectPlacesOfPower picks players+2 places, one random side per double-sided
// card, so the flip side of every selected place is out of the game.
func (g *Game) selectPlacesOfPower(numPlayers int) []*cards.Card {
	needed := numPlayers + 2
	pairs := cards.PlacePairs()
	g.rng.Shuffle(len(pairs), func(i, j int) {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	})

	var selected []*cards.Card
	for _, pair := range pairs {
		if len(selected) >= needed {
			break
		}
		selected = append(selected, pair[g.rng.Intn(2)])
	}
	return selected
}

func (g *Game) selectMonuments(numPlayers int) (available, deck []*cards.Card) {
	all := cards.Monuments()
	g.shuffle(all)
	total := monumentCounts[numPlayers]
	if total > len(all) {
		total = len(all)
	}
	selected := all[:total]
	return selected[:2], selected[2:]
}

// StartDraft deals every player 2 secret mage options and a batch of 4
// artifacts, then opens drafting round 1.
func (g *Game) StartDraft() Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != rules.PhaseSetup {
		return fail("draft can only start from setup, current phase %s", g.phase)
	}

	allMages := cards.Mages()
	allArtifacts := cards.Artifacts()
	g.shuffle(allMages)
	g.shuffle(allArtifacts)

	g.draft = newDraftState(len(g.players))
	for i := range g.players {
		g.draft.mageOptions[i] = append([]*cards.Card{}, allMages[:mageOptionCount]...)
		allMages = allMages[mageOptionCount:]
		g.draft.cardsToPick[i] = append([]*cards.Card{}, allArtifacts[:draftBatchSize]...)
		allArtifacts = allArtifacts[draftBatchSize:]
	}
	g.draft.remainingArtifacts = allArtifacts

	g.setPhase(rules.PhaseDraftingRound1)
	g.log.Info("draft started", zap.Int("players", len(g.players)))
	return ok()
}

// setupStartingHands splits each player's 8 drafted cards into a 3-card hand
// and a 5-card draw pile, tears down the draft state, and opens the first
// income phase.
func (g *Game) setupStartingHands() {
	for i, p := range g.players {
		drafted := g.draft.drafted[i]
		g.shuffle(drafted)
		p.Hand = append([]*cards.Card{}, drafted[:startingHandSize]...)
		p.Deck = append([]*cards.Card{}, drafted[startingHandSize:]...)
	}
	g.draft = nil
	g.log.Info("starting hands dealt")
	g.startIncomePhase()
}
