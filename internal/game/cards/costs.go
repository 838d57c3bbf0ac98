package cards

import "github.com/arcanaworks/arcana-server-go/internal/game/essence"

// AbilityCost is the tagged-variant interface for ability costs. One struct
// per kind; the interpreter dispatches on the concrete type. Costs are checked
// as a conjunction before any are paid: either the whole list is payable or
// nothing is mutated.
type AbilityCost interface {
	abilityCost()
}

// TapSelf taps the source card.
type TapSelf struct{}

// TapOther taps another untapped controlled card, optionally filtered by tag.
// The target is a cost choice; no valid target means the cost is unpayable.
type TapOther struct {
	Tag Tag
}

// PayPool pays a fixed price from the player's pool.
type PayPool struct {
	Price essence.Cost
}

// PayVariable pays a player-chosen amount of at least Min essence. When
// SingleType is set the whole payment must be one non-gold type. The paid type
// and amount are recorded for effects that reference them.
type PayVariable struct {
	Min        int
	SingleType bool
}

// RemoveFromCard removes essence from the source card's own store.
type RemoveFromCard struct {
	Price essence.Cost
}

// DestroySelf destroys the source card.
type DestroySelf struct{}

// DestroyArtifact destroys a controlled artifact chosen as a cost choice.
// When Other is set the target must differ from the source card.
type DestroyArtifact struct {
	Other bool
}

// DiscardFromHand discards Count cards from hand, chosen as a cost choice and
// defaulting to the first cards in hand.
type DiscardFromHand struct {
	Count int
}

func (TapSelf) abilityCost()         {}
func (TapOther) abilityCost()        {}
func (PayPool) abilityCost()         {}
func (PayVariable) abilityCost()     {}
func (RemoveFromCard) abilityCost()  {}
func (DestroySelf) abilityCost()     {}
func (DestroyArtifact) abilityCost() {}
func (DiscardFromHand) abilityCost() {}
