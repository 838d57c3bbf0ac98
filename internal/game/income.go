package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"go.uber.org/zap"
)

// incomeState holds each player's collection and income choices for one
// round. It is rebuilt at every income phase and torn down when the action
// phase starts.
type incomeState struct {
	// collect maps card ID to the take-all-or-leave choice for cards with
	// stored essence. Absent entries default to take, except places of power
	// under the auto-skip default.
	collect map[int]map[string]bool
	// choices maps card ID to the distribution chosen for choice incomes.
	choices map[int]map[string]essence.Pool
	// autoSkipPlaces is the per-player place-of-power collection default.
	autoSkipPlaces map[int]bool
	wait           map[int]bool
	finalized      map[int]bool
}

func newIncomeState(numPlayers int) *incomeState {
	s := &incomeState{
		collect:        make(map[int]map[string]bool),
		choices:        make(map[int]map[string]essence.Pool),
		autoSkipPlaces: make(map[int]bool),
		wait:           make(map[int]bool),
		finalized:      make(map[int]bool),
	}
	for i := 0; i < numPlayers; i++ {
		s.collect[i] = make(map[string]bool)
		s.choices[i] = make(map[string]essence.Pool)
		s.autoSkipPlaces[i] = true
	}
	return s
}

// startIncomePhase unTaps every controlled card, flips the first player token
// face up, and opens a fresh income substate.
func (g *Game) startIncomePhase() {
	for _, p := range g.players {
		for _, cc := range p.ControlledCards() {
			cc.Tapped = false
		}
		if p.HasFirstPlayerToken {
			p.TokenFaceUp = true
		}
	}
	g.income = newIncomeState(len(g.players))
	g.setPhase(rules.PhaseIncome)
}

func (g *Game) incomePrecondition(playerID int) (p *PlayerState, res Result) {
	if g.phase != rules.PhaseIncome {
		return nil, fail("not in the income phase (current %s)", g.phase)
	}
	p = g.player(playerID)
	if p == nil {
		return nil, fail("unknown player %d", playerID)
	}
	if g.income.finalized[playerID] {
		return nil, fail("player %d already finalized income", playerID)
	}
	return p, ok()
}

// SetCollectionChoice records take-all-or-leave for one of the player's cards
// holding stored essence.
func (g *Game) SetCollectionChoice(playerID int, cardName string, take bool) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.incomePrecondition(playerID)
	if !res.OK {
		return res
	}
	cc := p.findControlled(cardName)
	if cc == nil {
		return fail("player %d does not control %q", playerID, cardName)
	}
	g.income.collect[playerID][cc.Card.ID] = take
	return ok()
}

// SetIncomeChoice records the distribution for a card whose income rule
// offers a choice.
func (g *Game) SetIncomeChoice(playerID int, cardName string, choice map[essence.Type]int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.incomePrecondition(playerID)
	if !res.OK {
		return res
	}
	cc := p.findControlled(cardName)
	if cc == nil {
		return fail("player %d does not control %q", playerID, cardName)
	}
	if cc.Card.Income == nil || !cc.Card.Income.IsChoice() {
		return fail("%q has no income choice", cardName)
	}
	pool := essence.NewPool()
	for t, n := range choice {
		pool.Add(t, n)
	}
	g.income.choices[playerID][cc.Card.ID] = pool
	return ok()
}

// SetAutoSkipPlaces flips the player's place-of-power collection default.
// When enabled (the default), places of power keep their stored essence
// unless an explicit collection choice says otherwise.
func (g *Game) SetAutoSkipPlaces(playerID int, skip bool) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, res := g.incomePrecondition(playerID)
	if !res.OK {
		return res
	}
	g.income.autoSkipPlaces[playerID] = skip
	return ok()
}

// SetWaitForEarlier makes the player's finalization wait until every
// turn-order-earlier player has finalized. The first player has no one
// earlier and may never wait.
func (g *Game) SetWaitForEarlier(playerID int, wait bool) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, res := g.incomePrecondition(playerID)
	if !res.OK {
		return res
	}
	if wait && playerID == g.firstPlayerIndex() {
		return fail("the first player may not wait for earlier players")
	}
	g.income.wait[playerID] = wait
	return ok()
}

// FinalizeIncome locks in the player's choices. Once every player has
// finalized, all collection and income rules are applied in one pass and the
// action phase begins.
func (g *Game) FinalizeIncome(playerID int) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, res := g.incomePrecondition(playerID)
	if !res.OK {
		return res
	}
	if g.income.wait[playerID] && !g.earlierFinalized(playerID) {
		return fail("player %d is waiting for earlier players to finalize", playerID)
	}
	g.income.finalized[playerID] = true
	g.log.Debug("income finalized", zap.Int("player", playerID))

	for i := range g.players {
		if !g.income.finalized[i] {
			return ok()
		}
	}
	g.applyIncome()
	return ok()
}

func (g *Game) earlierFinalized(playerID int) bool {
	for _, id := range g.turnOrder() {
		if id == playerID {
			return true
		}
		if !g.income.finalized[id] {
			return false
		}
	}
	return true
}

// applyIncome runs the single resolution pass: all collection choices first,
// then every income rule, in turn order.
func (g *Game) applyIncome() {
	for _, id := range g.turnOrder() {
		g.collectStored(g.players[id])
	}
	for _, id := range g.turnOrder() {
		g.grantIncome(g.players[id])
	}
	g.income = nil
	g.startActionPhase()
}

func (g *Game) collectStored(p *PlayerState) {
	for _, cc := range p.ControlledCards() {
		if cc.Store.IsEmpty() {
			continue
		}
		take := true
		if cc.Card.Type == cards.PlaceOfPower && g.income.autoSkipPlaces[p.ID] {
			take = false
		}
		if explicit, has := g.income.collect[p.ID][cc.Card.ID]; has {
			take = explicit
		}
		if take {
			p.Pool.AddAll(cc.Store.Drain())
		}
	}
}

func (g *Game) grantIncome(p *PlayerState) {
	for _, cc := range p.ControlledCards() {
		in := cc.Card.Income
		if in == nil {
			continue
		}
		if in.Conditional && cc.Store.IsEmpty() {
			continue
		}
		target := p.Pool
		if in.AddToCard {
			target = cc.Store
		}
		if !in.IsChoice() {
			target.AddAll(in.Fixed.AsPool())
			continue
		}
		target.AddAll(resolveDistribution(g.income.choices[p.ID][cc.Card.ID], in.Count, in.Types))
	}
}

// resolveDistribution validates a player-chosen distribution of count units
// among the allowed types, falling back to count units of the first allowed
// type when the choice is absent or invalid.
func resolveDistribution(choice essence.Pool, count int, allowed []essence.Type) essence.Pool {
	if validDistribution(choice, count, allowed) {
		return choice.Clone()
	}
	fallback := essence.NewPool()
	if len(allowed) > 0 {
		fallback.Add(allowed[0], count)
	}
	return fallback
}

func validDistribution(choice essence.Pool, count int, allowed []essence.Type) bool {
	if choice == nil || choice.Total() != count {
		return false
	}
	for t, n := range choice {
		if n < 0 {
			return false
		}
		permitted := false
		for _, a := range allowed {
			if t == a {
				permitted = true
				break
			}
		}
		if !permitted {
			return false
		}
	}
	return true
}

// IncomeFinalized reports whether the player has finalized this round.
func (g *Game) IncomeFinalized(playerID int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase == rules.PhaseIncome && g.income.finalized[playerID]
}

// CardsWithStoredEssence lists the player's cards holding essence, i.e. the
// ones a collection choice applies to.
func (g *Game) CardsWithStoredEssence(playerID int) []*ControlledCard {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.player(playerID)
	if p == nil {
		return nil
	}
	var out []*ControlledCard
	for _, cc := range p.ControlledCards() {
		if !cc.Store.IsEmpty() {
			out = append(out, cc)
		}
	}
	return out
}

// CardsNeedingIncomeChoice lists the player's cards whose income rule offers
// a choice this round.
func (g *Game) CardsNeedingIncomeChoice(playerID int) []*ControlledCard {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.player(playerID)
	if p == nil {
		return nil
	}
	var out []*ControlledCard
	for _, cc := range p.ControlledCards() {
		if cc.Card.Income != nil && cc.Card.Income.IsChoice() {
			out = append(out, cc)
		}
	}
	return out
}
