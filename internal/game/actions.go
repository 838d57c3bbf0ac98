package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"go.uber.org/zap"
)

// actionState tracks whose turn it is and who has passed for the round.
type actionState struct {
	current int
	passed  map[int]bool
}

func (g *Game) startActionPhase() {
	g.action = &actionState{
		current: g.firstPlayerIndex(),
		passed:  make(map[int]bool),
	}
	g.setPhase(rules.PhasePlaying)
}

// CurrentPlayer returns the index of the player whose turn it is, or -1
// outside the action phase.
func (g *Game) CurrentPlayer() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.phase != rules.PhasePlaying {
		return -1
	}
	return g.action.current
}

// HasPassed reports whether the player has passed this round.
func (g *Game) HasPassed(playerID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == rules.PhasePlaying && g.action.passed[playerID]
}

func (g *Game) actionPrecondition(playerID int) (*PlayerState, Result) {
	if g.phase != rules.PhasePlaying {
		return nil, fail("not in the action phase (current %s)", g.phase)
	}
	p := g.player(playerID)
	if p == nil {
		return nil, fail("unknown player %d", playerID)
	}
	if g.action.current != playerID {
		return nil, fail("not player %d's turn", playerID)
	}
	if g.action.passed[playerID] {
		return nil, fail("player %d has already passed", playerID)
	}
	return p, ok()
}

// advanceTurn hands the turn to the next player who has not passed, ending
// the round once everyone has.
func (g *Game) advanceTurn() {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		next := (g.action.current + i) % n
		if !g.action.passed[next] {
			g.action.current = next
			return
		}
	}
	g.endRound()
}

// endRound checks victory and either finishes the game or opens the next
// income phase.
func (g *Game) endRound() {
	g.action = nil
	if res := g.evaluateVictory(); res.GameOver {
		g.result = &res
		g.setPhase(rules.PhaseGameOver)
		g.log.Info("game over",
			zap.Int("winner", res.Winner),
			zap.Bool("tie", res.IsTie),
			zap.Ints("scores", res.Scores),
		)
		return
	}
	g.startIncomePhase()
}

// effectiveCost applies the player's passive cost reductions. Reductions
// bind to artifact purchases only; monuments and places of power always cost
// their printed price.
func (g *Game) effectiveCost(p *PlayerState, c *cards.Card) essence.Cost {
	cost := c.Cost
	if c.Type != cards.Artifact {
		return cost
	}
	for _, cc := range p.ControlledCards() {
		for _, pas := range cc.Card.Passives {
			if c.HasTag(pas.Tag) {
				cost = pas.Reduction.Apply(cost)
			}
		}
	}
	return cost
}

func toPool(m map[essence.Type]int) essence.Pool {
	if m == nil {
		return nil
	}
	pool := essence.NewPool()
	for t, n := range m {
		pool.Add(t, n)
	}
	return pool
}

// PlayCard plays an artifact from the player's hand, paying its cost after
// passive reductions. split optionally distributes the cost's generic part.
func (g *Game) PlayCard(playerID int, cardName string, split map[essence.Type]int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	i := p.handIndex(cardName)
	if i < 0 {
		return fail("%q is not in player %d's hand", cardName, playerID)
	}
	c := p.Hand[i]
	cost := g.effectiveCost(p, c)
	if !essence.Pay(cost, p.Pool, toPool(split)) {
		return fail("player %d cannot pay %s for %q", playerID, cost, cardName)
	}
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	p.Artifacts = append(p.Artifacts, NewControlledCard(c))
	g.log.Debug("artifact played", zap.Int("player", playerID), zap.String("card", cardName))
	g.advanceTurn()
	return ok()
}

// BuyPlaceOfPower claims an available place of power, paying its printed
// cost.
func (g *Game) BuyPlaceOfPower(playerID int, cardName string, split map[essence.Type]int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	var c *cards.Card
	idx := -1
	for j, have := range g.availablePlaces {
		if have.Name == cardName {
			c, idx = have, j
			break
		}
	}
	if c == nil {
		return fail("place of power %q is not available", cardName)
	}
	if !essence.Pay(c.Cost, p.Pool, toPool(split)) {
		return fail("player %d cannot pay %s for %q", playerID, c.Cost, cardName)
	}
	g.availablePlaces = append(g.availablePlaces[:idx], g.availablePlaces[idx+1:]...)
	p.PlacesOfPower = append(p.PlacesOfPower, NewControlledCard(c))
	g.log.Debug("place of power claimed", zap.Int("player", playerID), zap.String("card", cardName))
	g.advanceTurn()
	return ok()
}

// BuyMonument buys a monument for its flat gold price. With a card name it
// takes a face-up monument, replenished from the deck; with an empty name it
// takes the top of the deck blind.
func (g *Game) BuyMonument(playerID int, cardName string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	var c *cards.Card
	if cardName == "" {
		if len(g.monumentDeck) == 0 {
			return fail("the monument deck is empty")
		}
		c = g.monumentDeck[0]
	} else {
		for _, have := range g.availableMonuments {
			if have.Name == cardName {
				c = have
				break
			}
		}
		if c == nil {
			return fail("monument %q is not face up", cardName)
		}
	}
	if !essence.Pay(c.Cost, p.Pool, nil) {
		return fail("player %d cannot pay %s for a monument", playerID, c.Cost)
	}

	if cardName == "" {
		g.monumentDeck = g.monumentDeck[1:]
	} else {
		for j, have := range g.availableMonuments {
			if have == c {
				g.availableMonuments = append(g.availableMonuments[:j], g.availableMonuments[j+1:]...)
				break
			}
		}
		if len(g.monumentDeck) > 0 {
			g.availableMonuments = append(g.availableMonuments, g.monumentDeck[0])
			g.monumentDeck = g.monumentDeck[1:]
		}
	}
	p.Monuments = append(p.Monuments, NewControlledCard(c))
	g.log.Debug("monument bought", zap.Int("player", playerID), zap.String("card", c.Name))
	g.advanceTurn()
	return ok()
}

// DiscardForResources discards a card from hand for either one gold or two
// non-gold essences of the player's choice. An absent or invalid choice
// defaults to two red.
func (g *Game) DiscardForResources(playerID int, cardName string, choice map[essence.Type]int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	i := p.handIndex(cardName)
	if i < 0 {
		return fail("%q is not in player %d's hand", cardName, playerID)
	}
	p.discardFromHand(i)
	p.Pool.AddAll(discardGain(toPool(choice)))
	g.log.Debug("card discarded for essence", zap.Int("player", playerID), zap.String("card", cardName))
	g.advanceTurn()
	return ok()
}

func discardGain(choice essence.Pool) essence.Pool {
	if choice != nil {
		if choice.Total() == 1 && choice.Count(essence.Gold) == 1 {
			return choice
		}
		if choice.Total() == 2 && choice.NonGoldTotal() == 2 {
			return choice
		}
	}
	return essence.Pool{essence.Red: 2}
}

// Pass removes the player from the round. Passing swaps the player's magic
// item for a different one from the pool (the first available when no name
// is given), and the first player to pass each round claims the face-up
// first player token, turning it face down.
func (g *Game) Pass(playerID int, newItemName string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	var item *cards.Card
	idx := -1
	if newItemName == "" {
		if len(g.availableMagicItems) > 0 {
			item, idx = g.availableMagicItems[0], 0
		}
	} else {
		for j, have := range g.availableMagicItems {
			if have.Name == newItemName {
				item, idx = have, j
				break
			}
		}
	}
	if item == nil {
		return fail("magic item %q is not available", newItemName)
	}

	returned := p.MagicItem.Card
	g.availableMagicItems = append(g.availableMagicItems[:idx], g.availableMagicItems[idx+1:]...)
	if returned.Name != "" {
		g.availableMagicItems = append(g.availableMagicItems, returned)
	}
	p.MagicItem = NewControlledCard(item)

	g.claimTokenOnPass(p)
	g.action.passed[playerID] = true
	g.log.Debug("player passed", zap.Int("player", playerID), zap.String("magic_item", item.Name))
	g.advanceTurn()
	return ok()
}

// claimTokenOnPass moves the face-up first player token to the first passer
// of the round, face down.
func (g *Game) claimTokenOnPass(p *PlayerState) {
	holder := g.players[g.firstPlayerIndex()]
	if !holder.TokenFaceUp {
		return
	}
	holder.HasFirstPlayerToken = false
	holder.TokenFaceUp = false
	p.HasFirstPlayerToken = true
	p.TokenFaceUp = false
}

// AbilityRef identifies an activated ability on a card the player controls.
type AbilityRef struct {
	CardName string
	Index    int
}

// ActivatableAbilities lists the abilities the player could currently pay
// for, checking each ability's costs independently against the player's
// state. Reactions are excluded; they only fire off events.
func (g *Game) ActivatableAbilities(playerID int) []AbilityRef {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.player(playerID)
	if p == nil || g.phase != rules.PhasePlaying {
		return nil
	}
	var out []AbilityRef
	for _, src := range p.abilitySources() {
		if src.controlled != nil && src.controlled.Tapped {
			continue
		}
		for i, ab := range src.card.Abilities {
			if ab.IsReaction() {
				continue
			}
			if g.canPayCosts(p, src, ab) {
				out = append(out, AbilityRef{CardName: src.card.Name, Index: i})
			}
		}
	}
	return out
}
