package cards

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
)

// Type classifies a card template.
type Type string

const (
	Artifact     Type = "artifact"
	Mage         Type = "mage"
	Monument     Type = "monument"
	MagicItem    Type = "magic_item"
	Scroll       Type = "scroll"
	PlaceOfPower Type = "place_of_power"
)

// Tag marks a card for filters and passive matching.
type Tag string

const (
	TagDragon Tag = "dragon"
	TagDemon  Tag = "demon"
	TagAnimal Tag = "animal"
)

// Card is an immutable template. All behavior lives in the engine; a card only
// declares its cost, income rule, abilities and passives.
type Card struct {
	// ID is a stable opaque identifier derived from the definition, assigned
	// at catalog init. Engine-internal lookups use it; the display name is a
	// presentation-layer key that happens to be unique in the active catalog.
	ID     string
	Name   string
	Type   Type
	Tags   []Tag
	Points int

	Cost      essence.Cost
	Income    *Income
	Abilities []Ability
	Passives  []Passive
}

// HasTag reports whether the card carries the given tag.
// An empty tag matches every card.
func (c *Card) HasTag(tag Tag) bool {
	if tag == "" {
		return true
	}
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Income describes a card's per-round income rule.
//
// When Count is zero the income is a fixed bundle: the player gains every
// essence listed in Fixed (conjunctive). Otherwise it is a choice: Count units
// distributed freely among Types, defaulting to Count units of the first
// listed type when the player supplies no valid choice.
type Income struct {
	Fixed essence.Cost
	Count int
	Types []essence.Type

	// Conditional income fires only if the card retained stored essence
	// through the collection step.
	Conditional bool
	// AddToCard places the income on the card's own store instead of the
	// player's pool.
	AddToCard bool
}

// IsChoice reports whether the income rule requires a player distribution.
func (in *Income) IsChoice() bool {
	return in.Count > 0
}

// Trigger turns an ability into a reaction: it fires off the named event
// instead of being player-activated. Tag optionally filters the triggering
// entity (e.g. only react to dragon attacks).
type Trigger struct {
	Event rules.EventType
	Tag   Tag
}

// Ability is an ordered cost list followed by an ordered effect list.
type Ability struct {
	Costs   []AbilityCost
	Effects []AbilityEffect
	Trigger *Trigger
}

// IsReaction reports whether the ability fires off an event rather than being
// player-activated.
func (a Ability) IsReaction() bool {
	return a.Trigger != nil
}

// Passive is a continuous modifier; the only kind is a cost reduction applied
// when the controller plays or buys a card matching Tag.
type Passive struct {
	Tag       Tag
	Reduction essence.Reduction
}
