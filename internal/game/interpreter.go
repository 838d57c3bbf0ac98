package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"go.uber.org/zap"
)

// CostChoices carries the player decisions an ability's cost list may need.
// Every field is optional; the interpreter falls back to a documented default
// when a choice is absent or invalid.
type CostChoices struct {
	// TapCard names the target of a tap-another-card cost.
	TapCard string
	// DestroyArtifact names the artifact destroyed as a cost.
	DestroyArtifact string
	// Discard names the hand cards discarded as a cost.
	Discard []string
	// VariablePayment is the distribution for a pay-variable cost.
	VariablePayment map[essence.Type]int
	// AnySplit distributes the generic part of a fixed pool price.
	AnySplit map[essence.Type]int
}

// AttackResponseKind selects how an opponent answers an attack.
type AttackResponseKind string

const (
	// AttackPay takes the hit: the attacked amount in green, with a
	// two-for-one penalty in other essence for each missing green.
	AttackPay AttackResponseKind = "pay"
	// AttackAvoid pays the attack's distinct avoid cost instead.
	AttackAvoid AttackResponseKind = "avoid"
	// AttackReact fires an ignore-attack reaction on one of the opponent's
	// cards.
	AttackReact AttackResponseKind = "react"
)

// AttackResponse is one opponent's answer to an attack. ReactCard names the
// reacting card when Kind is AttackReact.
type AttackResponse struct {
	Kind      AttackResponseKind
	ReactCard string
}

// EffectChoices carries the player decisions an ability's effect list may
// need, plus the pre-declared responses of attacked opponents.
type EffectChoices struct {
	// Resources distributes a choice gain among its allowed types.
	Resources map[essence.Type]int
	// BonusType picks the type for a cost-echo bonus.
	BonusType essence.Type
	// TargetCard names the target of add/take/untap effects.
	TargetCard string
	// PlayCard names the card put into play by a play-card effect, and
	// PlaySplit distributes the generic part of its price.
	PlayCard  string
	PlaySplit map[essence.Type]int
	// Discard names the cards discarded by a draw-then-discard effect.
	Discard []string
	// DeckOrder is the new top-of-deck order for a reorder effect.
	DeckOrder []string
	// AttackResponses maps opponent index to that opponent's answer.
	// Unlisted opponents pay.
	AttackResponses map[int]AttackResponse
}

// abilitySource is a card whose abilities the interpreter can run: a
// controlled instance, or a scroll (which has no instance state).
type abilitySource struct {
	card       *cards.Card
	controlled *ControlledCard
}

func (p *PlayerState) abilitySources() []abilitySource {
	var out []abilitySource
	for _, cc := range p.ControlledCards() {
		if !cc.IsPlaceholder() {
			out = append(out, abilitySource{card: cc.Card, controlled: cc})
		}
	}
	for _, s := range p.Scrolls {
		out = append(out, abilitySource{card: s})
	}
	return out
}

func (p *PlayerState) abilitySource(name string) *abilitySource {
	for _, src := range p.abilitySources() {
		if src.card.Name == name {
			s := src
			return &s
		}
	}
	return nil
}

// paidInfo records what the cost list consumed, for effects that reference
// the payment.
type paidInfo struct {
	variableType   essence.Type
	variableAmount int
	removed        *cards.Card
}

// UseAbility activates an ability on a card the player controls (or a scroll
// they hold). The full cost list is checked before anything is mutated;
// effects then run in order with the supplied choices, falling back to each
// effect's documented default. A successful activation consumes the turn.
func (g *Game) UseAbility(playerID int, cardName string, abilityIndex int, costs CostChoices, effects EffectChoices) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, res := g.actionPrecondition(playerID)
	if !res.OK {
		return res
	}
	src := p.abilitySource(cardName)
	if src == nil {
		return fail("player %d does not control %q", playerID, cardName)
	}
	if src.controlled != nil && src.controlled.Tapped {
		return fail("%q is tapped", cardName)
	}
	if abilityIndex < 0 || abilityIndex >= len(src.card.Abilities) {
		return fail("%q has no ability %d", cardName, abilityIndex)
	}
	ab := src.card.Abilities[abilityIndex]
	if ab.IsReaction() {
		return fail("%q ability %d only fires as a reaction", cardName, abilityIndex)
	}
	if !g.canPayCosts(p, *src, ab) {
		return fail("player %d cannot pay the costs of %q ability %d", playerID, cardName, abilityIndex)
	}

	paid := g.payCosts(p, *src, ab, costs)
	g.runEffects(p, *src, ab, paid, effects)
	g.log.Debug("ability used",
		zap.Int("player", playerID),
		zap.String("card", cardName),
		zap.Int("ability", abilityIndex),
	)
	g.advanceTurn()
	return ok()
}

// canPayCosts checks each cost independently against the player's current
// state. Costs never collide on the same resource in the catalog, so the
// conjunction of independent checks is sound.
func (g *Game) canPayCosts(p *PlayerState, src abilitySource, ab cards.Ability) bool {
	for _, c := range ab.Costs {
		if !g.canPayCost(p, src, c) {
			return false
		}
	}
	return true
}

func (g *Game) canPayCost(p *PlayerState, src abilitySource, c cards.AbilityCost) bool {
	switch cost := c.(type) {
	case cards.TapSelf:
		return src.controlled != nil && !src.controlled.Tapped
	case cards.TapOther:
		return g.findTapTarget(p, src, cost.Tag, "") != nil
	case cards.PayPool:
		return cost.Price.CanPay(p.Pool)
	case cards.PayVariable:
		if cost.SingleType {
			for _, t := range essence.NonGold() {
				if p.Pool.Count(t) >= cost.Min {
					return true
				}
			}
			return false
		}
		return p.Pool.NonGoldTotal() >= cost.Min
	case cards.RemoveFromCard:
		return src.controlled != nil && cost.Price.CanPay(src.controlled.Store)
	case cards.DestroySelf:
		return true
	case cards.DestroyArtifact:
		return g.findDestroyTarget(p, src, cost.Other, "") != nil
	case cards.DiscardFromHand:
		return len(p.Hand) >= cost.Count
	}
	return false
}

// findTapTarget resolves a tap-other target: untapped, tag-matched, not the
// source. An empty name falls back to the first eligible card.
func (g *Game) findTapTarget(p *PlayerState, src abilitySource, tag cards.Tag, name string) *ControlledCard {
	var fallback *ControlledCard
	for _, cc := range p.ControlledCards() {
		if cc.IsPlaceholder() || cc.Tapped || cc == src.controlled || !cc.Card.HasTag(tag) {
			continue
		}
		if cc.Card.Name == name {
			return cc
		}
		if fallback == nil {
			fallback = cc
		}
	}
	return fallback
}

// findDestroyTarget resolves a destroy-artifact target among the player's
// artifacts, excluding the source when other is set.
func (g *Game) findDestroyTarget(p *PlayerState, src abilitySource, other bool, name string) *ControlledCard {
	var fallback *ControlledCard
	for _, cc := range p.Artifacts {
		if other && cc == src.controlled {
			continue
		}
		if cc.Card.Name == name {
			return cc
		}
		if fallback == nil {
			fallback = cc
		}
	}
	return fallback
}

// payCosts mutates state for every cost in order. canPayCosts must have
// passed; payment cannot fail past that point.
func (g *Game) payCosts(p *PlayerState, src abilitySource, ab cards.Ability, choices CostChoices) paidInfo {
	var paid paidInfo
	for _, c := range ab.Costs {
		switch cost := c.(type) {
		case cards.TapSelf:
			src.controlled.Tapped = true
		case cards.TapOther:
			g.findTapTarget(p, src, cost.Tag, choices.TapCard).Tapped = true
		case cards.PayPool:
			essence.Pay(cost.Price, p.Pool, toPool(choices.AnySplit))
		case cards.PayVariable:
			g.payVariable(p, cost, toPool(choices.VariablePayment), &paid)
		case cards.RemoveFromCard:
			essence.Pay(cost.Price, src.controlled.Store, nil)
		case cards.DestroySelf:
			paid.removed = src.card
			if src.controlled != nil {
				g.destroyControlled(p, src.controlled)
			} else {
				p.removeScroll(src.card)
			}
		case cards.DestroyArtifact:
			target := g.findDestroyTarget(p, src, cost.Other, choices.DestroyArtifact)
			paid.removed = target.Card
			g.destroyControlled(p, target)
		case cards.DiscardFromHand:
			paid.removed = g.discardChosen(p, cost.Count, choices.Discard)
		}
	}
	return paid
}

// payVariable deducts a variable payment, recording the amount and, when the
// payment is a single type, the type. The fallback pays the minimum: the
// first non-gold type holding enough for single-type costs, a greedy split
// otherwise.
func (g *Game) payVariable(p *PlayerState, cost cards.PayVariable, payment essence.Pool, paid *paidInfo) {
	if !validVariablePayment(p.Pool, cost, payment) {
		payment = fallbackVariablePayment(p.Pool, cost)
	}
	for t, n := range payment {
		p.Pool.Remove(t, n)
	}
	paid.variableAmount = payment.Total()
	if len(payment) == 1 {
		for t := range payment {
			paid.variableType = t
		}
	}
}

func validVariablePayment(pool essence.Pool, cost cards.PayVariable, payment essence.Pool) bool {
	if payment == nil || payment.Total() < cost.Min || payment.Count(essence.Gold) > 0 {
		return false
	}
	if cost.SingleType && len(payment) > 1 {
		return false
	}
	for t, n := range payment {
		if pool.Count(t) < n {
			return false
		}
	}
	return true
}

func fallbackVariablePayment(pool essence.Pool, cost cards.PayVariable) essence.Pool {
	if cost.SingleType {
		for _, t := range essence.NonGold() {
			if pool.Count(t) >= cost.Min {
				return essence.Pool{t: cost.Min}
			}
		}
		return essence.NewPool()
	}
	split := essence.GreedySplit(pool, cost.Min)
	if split == nil {
		return essence.NewPool()
	}
	return split
}

// destroyControlled removes an instance from play and sends artifacts to the
// discard pile. Essence stored on the card is lost. Monuments and places of
// power leave the game entirely. An artifact leaving play fires the owner's
// artifact-destroyed reactions.
func (g *Game) destroyControlled(p *PlayerState, cc *ControlledCard) {
	p.removeControlled(cc)
	if cc.Card.Type == cards.Artifact {
		p.Discard = append(p.Discard, cc.Card)
		g.fireDestroyReactions(p, cc.Card)
	}
}

// fireDestroyReactions runs every payable reaction the owner holds for an
// artifact leaving play. The destroyed card's tags feed the trigger filter;
// reactions pay and resolve with fallback choices.
func (g *Game) fireDestroyReactions(p *PlayerState, destroyed *cards.Card) {
	for _, src := range p.abilitySources() {
		if src.controlled != nil && src.controlled.Tapped {
			continue
		}
		for _, ab := range src.card.Abilities {
			if !ab.IsReaction() || ab.Trigger.Event != rules.EventArtifactDestroyed {
				continue
			}
			if !destroyed.HasTag(ab.Trigger.Tag) {
				continue
			}
			if !g.canPayCosts(p, src, ab) {
				continue
			}
			paid := g.payCosts(p, src, ab, CostChoices{})
			g.runEffects(p, src, ab, paid, EffectChoices{})
		}
	}
}

// discardChosen discards count cards by name, padding from the front of the
// hand when the choice is short or invalid. Returns the first discarded card.
func (g *Game) discardChosen(p *PlayerState, count int, names []string) *cards.Card {
	var first *cards.Card
	for _, name := range names {
		if count == 0 {
			break
		}
		if i := p.handIndex(name); i >= 0 {
			c := p.discardFromHand(i)
			if first == nil {
				first = c
			}
			count--
		}
	}
	for count > 0 && len(p.Hand) > 0 {
		c := p.discardFromHand(0)
		if first == nil {
			first = c
		}
		count--
	}
	return first
}

func (g *Game) runEffects(p *PlayerState, src abilitySource, ab cards.Ability, paid paidInfo, choices EffectChoices) {
	for _, e := range ab.Effects {
		switch ef := e.(type) {
		case cards.Gain:
			p.Pool.AddAll(g.resolveGain(ef, paid, choices))
		case cards.GainPerOpponent:
			p.Pool.Add(ef.Of, g.richestOpponent(p, ef.Of))
		case cards.GainPerOpponentCount:
			p.Pool.Add(ef.Of, g.mostTagged(p, ef.Tag))
		case cards.GainFromRemoved:
			g.gainFromRemoved(p, ef, paid, choices)
		case cards.AddToCard:
			g.addToCard(p, src, ef, choices)
		case cards.TakeFromCard:
			g.takeFromCard(p, choices.TargetCard)
		case cards.Attack:
			g.resolveAttack(p, src, ef, choices.AttackResponses)
		case cards.Draw:
			p.draw(ef.Count)
		case cards.DrawThenDiscard:
			p.draw(ef.Draw)
			g.discardChosen(p, ef.Discard, choices.Discard)
		case cards.Untap:
			g.untap(p, src, ef, choices.TargetCard)
		case cards.Convert:
			gold := p.Pool.NonGoldTotal()
			for _, t := range essence.NonGold() {
				p.Pool.Remove(t, p.Pool.Count(t))
			}
			p.Pool.Add(essence.Gold, gold)
		case cards.PlayCard:
			g.playFromEffect(p, ef, choices)
		case cards.GiveToOpponents:
			for _, o := range g.players {
				if o != p {
					o.Pool.AddAll(ef.Bundle.AsPool())
				}
			}
		case cards.ReorderTopOfDeck:
			reorderDeck(p, ef.Count, choices.DeckOrder)
		case cards.IgnoreAttack:
			// Only meaningful inside a reaction; nothing to do here.
		}
	}
}

// resolveGain builds the gained bundle, honoring variable-payment echoes and
// the paid-type exclusion.
func (g *Game) resolveGain(ef cards.Gain, paid paidInfo, choices EffectChoices) essence.Pool {
	count := ef.Count
	if ef.FromPaid {
		count = paid.variableAmount
	}
	if count == 0 {
		return ef.Fixed.AsPool()
	}
	allowed := ef.Types
	if ef.ExcludePaid && paid.variableType != "" {
		allowed = nil
		for _, t := range ef.Types {
			if t != paid.variableType {
				allowed = append(allowed, t)
			}
		}
	}
	return resolveDistribution(toPool(choices.Resources), count, allowed)
}

func (g *Game) richestOpponent(p *PlayerState, of essence.Type) int {
	max := 0
	for _, o := range g.players {
		if o != p && o.Pool.Count(of) > max {
			max = o.Pool.Count(of)
		}
	}
	return max
}

func (g *Game) mostTagged(p *PlayerState, tag cards.Tag) int {
	max := 0
	for _, o := range g.players {
		if o == p {
			continue
		}
		n := 0
		for _, cc := range o.ControlledCards() {
			if !cc.IsPlaceholder() && cc.Card.HasTag(tag) {
				n++
			}
		}
		if n > max {
			max = n
		}
	}
	return max
}

// gainFromRemoved echoes the removed card's printed cost into the pool, plus
// the bonus in a chosen type (red when the choice is absent or invalid).
func (g *Game) gainFromRemoved(p *PlayerState, ef cards.GainFromRemoved, paid paidInfo, choices EffectChoices) {
	if paid.removed == nil {
		return
	}
	p.Pool.AddAll(paid.removed.Cost.AsPool())
	bonus := essence.Red
	if choices.BonusType.IsValid() {
		bonus = choices.BonusType
	}
	p.Pool.Add(bonus, ef.Bonus)
}

func (g *Game) addToCard(p *PlayerState, src abilitySource, ef cards.AddToCard, choices EffectChoices) {
	target := src.controlled
	if ef.Other {
		target = nil
		var fallback *ControlledCard
		for _, cc := range p.ControlledCards() {
			if cc.IsPlaceholder() || cc == src.controlled || !cc.Card.HasTag(ef.Tag) {
				continue
			}
			if cc.Card.Name == choices.TargetCard {
				target = cc
				break
			}
			if fallback == nil {
				fallback = cc
			}
		}
		if target == nil {
			target = fallback
		}
	}
	if target == nil {
		return
	}
	if ef.Count == 0 {
		target.Store.AddAll(ef.Fixed.AsPool())
		return
	}
	target.Store.AddAll(resolveDistribution(toPool(choices.Resources), ef.Count, ef.Types))
}

// takeFromCard drains a controlled card's store into the pool; the fallback
// target is the first card holding essence.
func (g *Game) takeFromCard(p *PlayerState, name string) {
	var fallback *ControlledCard
	for _, cc := range p.ControlledCards() {
		if cc.Store.IsEmpty() {
			continue
		}
		if cc.Card.Name == name {
			p.Pool.AddAll(cc.Store.Drain())
			return
		}
		if fallback == nil {
			fallback = cc
		}
	}
	if fallback != nil {
		p.Pool.AddAll(fallback.Store.Drain())
	}
}

func (g *Game) untap(p *PlayerState, src abilitySource, ef cards.Untap, name string) {
	if ef.Self {
		if src.controlled != nil {
			src.controlled.Tapped = false
		}
		return
	}
	var fallback *ControlledCard
	for _, cc := range p.ControlledCards() {
		if cc.IsPlaceholder() || !cc.Tapped || !cc.Card.HasTag(ef.Tag) {
			continue
		}
		if cc.Card.Name == name {
			cc.Tapped = false
			return
		}
		if fallback == nil {
			fallback = cc
		}
	}
	if fallback != nil {
		fallback.Tapped = false
	}
}

// playFromEffect puts a chosen card from hand or discard into play at a
// reduced (or zero) price. An absent, ineligible or unaffordable choice is a
// no-op.
func (g *Game) playFromEffect(p *PlayerState, ef cards.PlayCard, choices EffectChoices) {
	zone := &p.Hand
	if ef.FromDiscard {
		zone = &p.Discard
	}
	idx := -1
	for i, c := range *zone {
		if c.Name == choices.PlayCard && c.HasTag(ef.Tag) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	c := (*zone)[idx]
	if !ef.Free {
		cost := g.effectiveCost(p, c)
		if ef.Discount > 0 {
			cost = essence.Reduction{Amount: ef.Discount, Scope: essence.ScopeNonGold}.Apply(cost)
		}
		if !essence.Pay(cost, p.Pool, toPool(choices.PlaySplit)) {
			return
		}
	}
	*zone = append((*zone)[:idx], (*zone)[idx+1:]...)
	p.Artifacts = append(p.Artifacts, NewControlledCard(c))
}

func reorderDeck(p *PlayerState, count int, order []string) {
	if count > len(p.Deck) {
		count = len(p.Deck)
	}
	if len(order) != count {
		return
	}
	top := make([]*cards.Card, 0, count)
	used := make(map[int]bool)
	for _, name := range order {
		found := -1
		for i := 0; i < count; i++ {
			if !used[i] && p.Deck[i].Name == name {
				found = i
				break
			}
		}
		if found < 0 {
			return
		}
		used[found] = true
		top = append(top, p.Deck[found])
	}
	copy(p.Deck, top)
}

// resolveAttack runs the attack sub-protocol against every opponent in turn
// order. An opponent with no declared response pays; a declared avoid or
// reaction falls back to paying when it cannot be honored.
func (g *Game) resolveAttack(attacker *PlayerState, src abilitySource, atk cards.Attack, responses map[int]AttackResponse) {
	for _, id := range g.turnOrder() {
		o := g.players[id]
		if o == attacker {
			continue
		}
		resp := responses[id]
		switch resp.Kind {
		case AttackReact:
			if g.fireAttackReaction(o, src, resp.ReactCard) {
				continue
			}
		case AttackAvoid:
			if atk.Avoid != nil && g.payAvoidCost(o, *atk.Avoid) {
				continue
			}
		}
		payAttack(o, atk.Amount)
	}
}

// fireAttackReaction finds and pays an ignore-attack reaction on the named
// card. The reaction's trigger tag must match the attacking card, and only
// abilities that actually ignore the attack qualify; their other effects run
// with fallback choices.
func (g *Game) fireAttackReaction(o *PlayerState, attackSrc abilitySource, reactCard string) bool {
	src := o.abilitySource(reactCard)
	if src == nil {
		return false
	}
	if src.controlled != nil && src.controlled.Tapped {
		return false
	}
	for _, ab := range src.card.Abilities {
		if !ab.IsReaction() || ab.Trigger.Event != rules.EventAttacked {
			continue
		}
		if !hasIgnoreAttack(ab) {
			continue
		}
		if !attackSrc.card.HasTag(ab.Trigger.Tag) {
			continue
		}
		if !g.canPayCosts(o, *src, ab) {
			continue
		}
		paid := g.payCosts(o, *src, ab, CostChoices{})
		g.runEffects(o, *src, ab, paid, EffectChoices{})
		return true
	}
	return false
}

func hasIgnoreAttack(ab cards.Ability) bool {
	for _, e := range ab.Effects {
		if _, isIgnore := e.(cards.IgnoreAttack); isIgnore {
			return true
		}
	}
	return false
}

// payAvoidCost pays the attack's declared avoid cost, reporting whether the
// opponent could afford it.
func (g *Game) payAvoidCost(o *PlayerState, avoid cards.AvoidCost) bool {
	switch {
	case avoid.DiscardCard:
		if len(o.Hand) == 0 {
			return false
		}
		o.discardFromHand(0)
		return true
	case avoid.DestroyArtifact:
		if len(o.Artifacts) == 0 {
			return false
		}
		g.destroyControlled(o, o.Artifacts[0])
		return true
	default:
		return essence.Pay(avoid.Price, o.Pool, nil)
	}
}

// payAttack takes the hit: amount in green, then two units per missing green
// from the rest of the pool in a fixed order, capped at what the opponent
// holds.
func payAttack(o *PlayerState, amount int) {
	green := o.Pool.Count(essence.Green)
	if green > amount {
		green = amount
	}
	o.Pool.Remove(essence.Green, green)
	penalty := 2 * (amount - green)
	for _, t := range []essence.Type{essence.Red, essence.Blue, essence.Black, essence.Gold} {
		if penalty == 0 {
			break
		}
		have := o.Pool.Count(t)
		if have > penalty {
			have = penalty
		}
		o.Pool.Remove(t, have)
		penalty -= have
	}
}
