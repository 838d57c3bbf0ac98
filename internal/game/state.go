package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
)

// ControlledCard is a card instance in a player's play area. It owns the
// mutable per-instance state: the tapped flag and the essence stored directly
// on the card, which is accounted separately from the controller's pool.
type ControlledCard struct {
	Card   *cards.Card
	Tapped bool
	Store  essence.Pool
}

// NewControlledCard binds a template to a fresh play-area instance.
func NewControlledCard(c *cards.Card) *ControlledCard {
	return &ControlledCard{Card: c, Store: essence.NewPool()}
}

// IsPlaceholder reports whether the slot has not been filled during setup yet.
func (cc *ControlledCard) IsPlaceholder() bool {
	return cc.Card.Name == ""
}

func placeholder(t cards.Type) *ControlledCard {
	return NewControlledCard(&cards.Card{Type: t})
}

// PlayerState is the complete per-player state. Mage and MagicItem are always
// present, holding placeholder cards until setup fills them.
type PlayerState struct {
	ID int

	Mage          *ControlledCard
	MagicItem     *ControlledCard
	Artifacts     []*ControlledCard
	Monuments     []*ControlledCard
	PlacesOfPower []*ControlledCard
	// Scrolls never tap and never hold essence; they stay plain templates.
	Scrolls []*cards.Card

	Hand    []*cards.Card
	Deck    []*cards.Card
	Discard []*cards.Card

	// Pool is the player's unplaced essence, disjoint from card stores.
	Pool essence.Pool

	HasFirstPlayerToken bool
	TokenFaceUp         bool
}

func newPlayer(id int) *PlayerState {
	return &PlayerState{
		ID:        id,
		Mage:      placeholder(cards.Mage),
		MagicItem: placeholder(cards.MagicItem),
		Pool:      essence.NewPool(),
	}
}

// ControlledCards returns every card in the player's play area, mage and magic
// item first. Scrolls are excluded; they are not controlled-card instances.
func (p *PlayerState) ControlledCards() []*ControlledCard {
	out := []*ControlledCard{p.Mage, p.MagicItem}
	out = append(out, p.Artifacts...)
	out = append(out, p.Monuments...)
	out = append(out, p.PlacesOfPower...)
	return out
}

// Points is the player's current score: victory points on all controlled
// cards plus one for holding the first player token.
func (p *PlayerState) Points() int {
	points := 0
	for _, cc := range p.ControlledCards() {
		points += cc.Card.Points
	}
	if p.HasFirstPlayerToken {
		points++
	}
	return points
}

// findControlled resolves a display name against the player's play area.
func (p *PlayerState) findControlled(name string) *ControlledCard {
	for _, cc := range p.ControlledCards() {
		if cc.Card.Name == name {
			return cc
		}
	}
	return nil
}

// removeControlled detaches an instance from whichever play-area zone holds
// it. Returns false if the instance is not in a removable zone (mage and
// magic item slots are never removed).
func (p *PlayerState) removeControlled(cc *ControlledCard) bool {
	for _, zone := range []*[]*ControlledCard{&p.Artifacts, &p.Monuments, &p.PlacesOfPower} {
		for i, have := range *zone {
			if have == cc {
				*zone = append((*zone)[:i], (*zone)[i+1:]...)
				return true
			}
		}
	}
	return false
}

// removeScroll detaches a scroll from the player's scroll row.
func (p *PlayerState) removeScroll(c *cards.Card) bool {
	for i, have := range p.Scrolls {
		if have == c {
			p.Scrolls = append(p.Scrolls[:i], p.Scrolls[i+1:]...)
			return true
		}
	}
	return false
}

// handIndex returns the position of a named card in hand, or -1.
func (p *PlayerState) handIndex(name string) int {
	for i, c := range p.Hand {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// discardFromHand moves the card at index i to the discard pile.
func (p *PlayerState) discardFromHand(i int) *cards.Card {
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	p.Discard = append(p.Discard, c)
	return c
}

// draw moves up to n cards from deck to hand, stopping silently when the deck
// runs out.
func (p *PlayerState) draw(n int) {
	for i := 0; i < n && len(p.Deck) > 0; i++ {
		p.Hand = append(p.Hand, p.Deck[0])
		p.Deck = p.Deck[1:]
	}
}
