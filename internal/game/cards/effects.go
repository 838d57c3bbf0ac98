package cards

import "github.com/arcanaworks/arcana-server-go/internal/game/essence"

// AbilityEffect is the tagged-variant interface for ability effects. Effects
// execute in listed order after all costs are paid. Every effect that needs a
// player choice documents its fallback so the interpreter stays callable
// headlessly.
type AbilityEffect interface {
	abilityEffect()
}

// Gain grants essence to the player's pool. With Count zero it grants the
// Fixed bundle. Otherwise it grants Count units distributed among Types per
// the player's choice; fallback is Count units of the first listed type.
//
// FromPaid replaces Count with the amount recorded by a PayVariable cost;
// ExcludePaid removes the paid type from the allowed set (fallback then being
// the first listed type that differs from the paid one).
type Gain struct {
	Fixed       essence.Cost
	Count       int
	Types       []essence.Type
	FromPaid    bool
	ExcludePaid bool
}

// GainPerOpponent grants as many units of Of as the richest opponent holds of
// that type. No choice involved.
type GainPerOpponent struct {
	Of essence.Type
}

// GainPerOpponentCount grants one unit of Of per card tagged Tag controlled by
// the opponent with the most such cards.
type GainPerOpponentCount struct {
	Tag Tag
	Of  essence.Type
}

// GainFromRemoved echoes the cost of the card just destroyed or discarded by
// this ability's costs, plus Bonus units of a chosen type; fallback for the
// bonus type is red. A no-op if no card was removed.
type GainFromRemoved struct {
	Bonus int
}

// AddToCard places essence on a card's store instead of the pool. The target
// is the source card unless Other is set, in which case it is a chosen
// controlled card (optionally tag-filtered); fallback is the first matching
// card.
type AddToCard struct {
	Fixed essence.Cost
	Count int
	Types []essence.Type
	Other bool
	Tag   Tag
}

// TakeFromCard moves all stored essence from a chosen controlled card to the
// player's pool; fallback is the first own card holding essence. A no-op if
// none does.
type TakeFromCard struct{}

// Attack runs the attack sub-protocol against every opponent: pay Amount
// green, with a 2-for-1 penalty in other essence for each missing green,
// capped at holdings. Opponents may instead pay the distinct avoid cost, or
// ignore the attack with a matching reaction.
type Attack struct {
	Amount int
	Avoid  *AvoidCost
}

// AvoidCost is what an opponent may pay to sidestep an attack entirely:
// a resource price, discarding a hand card, or destroying an artifact.
type AvoidCost struct {
	Price           essence.Cost
	DiscardCard     bool
	DestroyArtifact bool
}

// Draw draws Count cards from the player's deck (stops silently when empty).
type Draw struct {
	Count int
}

// DrawThenDiscard draws Draw cards, then discards Discard cards chosen by the
// player; fallback discards from the front of the hand.
type DrawThenDiscard struct {
	Draw    int
	Discard int
}

// Untap untaps the source card (Self) or a chosen tapped controlled card,
// optionally tag-filtered; fallback is the first matching tapped card.
type Untap struct {
	Self bool
	Tag  Tag
}

// Convert turns every non-gold essence in the player's pool into gold 1:1.
type Convert struct{}

// PlayCard puts a card from hand (or discard) into play, paying its cost
// reduced by Discount, or nothing when Free. Tag optionally restricts the
// playable cards. The card is an effect choice; no valid choice is a no-op.
type PlayCard struct {
	FromDiscard bool
	Free        bool
	Discount    int
	Tag         Tag
}

// GiveToOpponents grants the bundle to every opponent.
type GiveToOpponents struct {
	Bundle essence.Cost
}

// ReorderTopOfDeck lets the player reorder the top Count cards of their deck;
// fallback leaves the order unchanged.
type ReorderTopOfDeck struct {
	Count int
}

// IgnoreAttack suppresses the standard attack payment for the reacting
// opponent. Only meaningful inside a reaction ability.
type IgnoreAttack struct{}

func (Gain) abilityEffect()                 {}
func (GainPerOpponent) abilityEffect()      {}
func (GainPerOpponentCount) abilityEffect() {}
func (GainFromRemoved) abilityEffect()      {}
func (AddToCard) abilityEffect()            {}
func (TakeFromCard) abilityEffect()         {}
func (Attack) abilityEffect()               {}
func (Draw) abilityEffect()                 {}
func (DrawThenDiscard) abilityEffect()      {}
func (Untap) abilityEffect()                {}
func (Convert) abilityEffect()              {}
func (PlayCard) abilityEffect()             {}
func (GiveToOpponents) abilityEffect()      {}
func (ReorderTopOfDeck) abilityEffect()     {}
func (IgnoreAttack) abilityEffect()         {}
