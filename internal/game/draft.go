package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"go.uber.org/zap"
)

const (
	draftBatchSize   = 4
	mageOptionCount  = 2
	startingHandSize = 3
)

// draftState exists only during the setup-through-item-selection phases and
// is torn down once starting hands are dealt.
type draftState struct {
	cardsToPick map[int][]*cards.Card
	drafted     map[int][]*cards.Card
	mageOptions map[int][]*cards.Card
	selected    map[int]*cards.Card
	picked      map[int]bool

	remainingArtifacts []*cards.Card
	magicItemSelector  int
}

func newDraftState(numPlayers int) *draftState {
	d := &draftState{
		cardsToPick: make(map[int][]*cards.Card),
		drafted:     make(map[int][]*cards.Card),
		mageOptions: make(map[int][]*cards.Card),
		selected:    make(map[int]*cards.Card),
		picked:      make(map[int]bool),
	}
	for i := 0; i < numPlayers; i++ {
		d.drafted[i] = nil
	}
	return d
}

// PickCard drafts one card from the player's current batch. Once every player
// has picked this sub-round, the leftover batches rotate: clockwise in round
// 1, counter-clockwise in round 2.
func (g *Game) PickCard(playerID int, cardName string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.phase.IsDrafting() {
		return fail("cannot pick cards during %s", g.phase)
	}
	if g.player(playerID) == nil {
		return fail("unknown player %d", playerID)
	}
	if g.draft.picked[playerID] {
		return fail("player %d already picked this sub-round", playerID)
	}

	batch := g.draft.cardsToPick[playerID]
	idx := -1
	for i, c := range batch {
		if c.Name == cardName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fail("card %q is not in player %d's batch", cardName, playerID)
	}

	g.draft.drafted[playerID] = append(g.draft.drafted[playerID], batch[idx])
	g.draft.cardsToPick[playerID] = append(batch[:idx], batch[idx+1:]...)
	g.draft.picked[playerID] = true
	g.log.Debug("card picked", zap.Int("player", playerID), zap.String("card", cardName))

	if g.allPicked() {
		g.advanceDraft()
	}
	return ok()
}

func (g *Game) allPicked() bool {
	for i := range g.players {
		if !g.draft.picked[i] {
			return false
		}
	}
	return true
}

func (g *Game) roundExhausted() bool {
	for i := range g.players {
		if len(g.draft.cardsToPick[i]) > 0 {
			return false
		}
	}
	return true
}

func (g *Game) advanceDraft() {
	for i := range g.players {
		g.draft.picked[i] = false
	}

	if g.roundExhausted() {
		if g.phase == rules.PhaseDraftingRound1 {
			g.startDraftRound2()
		} else {
			g.setPhase(rules.PhaseMageSelection)
		}
		return
	}
	g.passBatches()
}

// passBatches rotates the leftover batches: in round 1 each player receives
// from the previous seat (cards travel clockwise), in round 2 from the next.
func (g *Game) passBatches() {
	n := len(g.players)
	old := make(map[int][]*cards.Card, n)
	for i := 0; i < n; i++ {
		old[i] = g.draft.cardsToPick[i]
	}
	clockwise := g.phase == rules.PhaseDraftingRound1
	for i := 0; i < n; i++ {
		source := (i - 1 + n) % n
		if !clockwise {
			source = (i + 1) % n
		}
		g.draft.cardsToPick[i] = old[source]
	}
}

func (g *Game) startDraftRound2() {
	for i := range g.players {
		g.draft.cardsToPick[i] = append([]*cards.Card{}, g.draft.remainingArtifacts[:draftBatchSize]...)
		g.draft.remainingArtifacts = g.draft.remainingArtifacts[draftBatchSize:]
	}
	g.setPhase(rules.PhaseDraftingRound2)
}

// SelectMage secretly commits one of the player's two mage options. The
// choice may be revised until every player has chosen; then all mages are
// revealed at once and magic item selection begins in reverse play order.
func (g *Game) SelectMage(playerID int, mageName string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != rules.PhaseMageSelection {
		return fail("cannot select a mage during %s", g.phase)
	}
	if g.player(playerID) == nil {
		return fail("unknown player %d", playerID)
	}

	var chosen *cards.Card
	for _, m := range g.draft.mageOptions[playerID] {
		if m.Name == mageName {
			chosen = m
			break
		}
	}
	if chosen == nil {
		return fail("mage %q is not among player %d's options", mageName, playerID)
	}
	g.draft.selected[playerID] = chosen

	for i := range g.players {
		if g.draft.selected[i] == nil {
			return ok()
		}
	}
	g.revealMages()
	return ok()
}

func (g *Game) revealMages() {
	for i, p := range g.players {
		p.Mage = NewControlledCard(g.draft.selected[i])
	}
	// The turn-order-advantaged player selects their magic item last.
	n := len(g.players)
	g.draft.magicItemSelector = (g.firstPlayerIndex() - 1 + n) % n
	g.setPhase(rules.PhaseMagicItemSelection)
	g.log.Info("mages revealed", zap.Int("item_selector", g.draft.magicItemSelector))
}

// TakeMagicItem claims a magic item from the shared pool. Selection proceeds
// counter-clockwise; once every player holds an item, starting hands are
// dealt and the first income phase begins.
func (g *Game) TakeMagicItem(playerID int, itemName string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != rules.PhaseMagicItemSelection {
		return fail("cannot take a magic item during %s", g.phase)
	}
	p := g.player(playerID)
	if p == nil {
		return fail("unknown player %d", playerID)
	}
	if playerID != g.draft.magicItemSelector {
		return fail("it is not player %d's turn to select", playerID)
	}

	idx := -1
	for i, item := range g.availableMagicItems {
		if item.Name == itemName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fail("magic item %q is not available", itemName)
	}

	p.MagicItem = NewControlledCard(g.availableMagicItems[idx])
	g.availableMagicItems = append(g.availableMagicItems[:idx], g.availableMagicItems[idx+1:]...)
	g.log.Debug("magic item taken", zap.Int("player", playerID), zap.String("item", itemName))

	for _, other := range g.players {
		if other.MagicItem.IsPlaceholder() {
			n := len(g.players)
			g.draft.magicItemSelector = (g.draft.magicItemSelector - 1 + n) % n
			return ok()
		}
	}
	g.setupStartingHands()
	return ok()
}

// CardsToPick returns the player's current draft batch.
func (g *Game) CardsToPick(playerID int) []*cards.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.draft == nil {
		return nil
	}
	return append([]*cards.Card{}, g.draft.cardsToPick[playerID]...)
}

// DraftedCards returns the cards the player has drafted so far.
func (g *Game) DraftedCards(playerID int) []*cards.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.draft == nil {
		return nil
	}
	return append([]*cards.Card{}, g.draft.drafted[playerID]...)
}

// MageOptions returns the player's secret mage options.
func (g *Game) MageOptions(playerID int) []*cards.Card {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.draft == nil {
		return nil
	}
	return append([]*cards.Card{}, g.draft.mageOptions[playerID]...)
}

// MagicItemSelector returns whose turn it is to take a magic item.
func (g *Game) MagicItemSelector() (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != rules.PhaseMagicItemSelection || g.draft == nil {
		return 0, false
	}
	return g.draft.magicItemSelector, true
}
