package game

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
)

// CardView is the client-facing shape of a card template.
type CardView struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Tags   []string       `json:"tags,omitempty"`
	Points int            `json:"points,omitempty"`
	Cost   map[string]int `json:"cost,omitempty"`
}

// ControlledCardView is a card in play with its instance state.
type ControlledCardView struct {
	CardView
	Tapped bool           `json:"tapped"`
	Store  map[string]int `json:"store,omitempty"`
}

// PlayerView is one seat as shown to a specific viewer. Hand and mage options
// are only populated for the viewer's own seat; everyone else gets counts.
type PlayerView struct {
	ID            int                  `json:"id"`
	Mage          *ControlledCardView  `json:"mage,omitempty"`
	MagicItem     *ControlledCardView  `json:"magic_item,omitempty"`
	Artifacts     []ControlledCardView `json:"artifacts"`
	Monuments     []ControlledCardView `json:"monuments"`
	PlacesOfPower []ControlledCardView `json:"places_of_power"`
	Scrolls       []CardView           `json:"scrolls"`

	Hand      []CardView `json:"hand,omitempty"`
	HandCount int        `json:"hand_count"`
	DeckCount int        `json:"deck_count"`
	Discard   []CardView `json:"discard"`

	Pool   map[string]int `json:"pool"`
	Points int            `json:"points"`

	HasFirstPlayerToken bool `json:"has_first_player_token"`
	TokenFaceUp         bool `json:"token_face_up"`
	Passed              bool `json:"passed"`
	IncomeFinalized     bool `json:"income_finalized"`
}

// DraftView is the viewer's private draft state.
type DraftView struct {
	CardsToPick []CardView `json:"cards_to_pick"`
	Drafted     []CardView `json:"drafted"`
	MageOptions []CardView `json:"mage_options"`
}

// GameView is a snapshot of the game as a single viewer may see it. Hidden
// information (other hands, other mage options, the monument deck) is
// reduced to counts.
type GameView struct {
	GameID string `json:"game_id"`
	Phase  string `json:"phase"`
	Viewer int    `json:"viewer"`

	Players []PlayerView `json:"players"`

	Monuments         []CardView `json:"monuments"`
	MonumentDeckCount int        `json:"monument_deck_count"`
	PlacesOfPower     []CardView `json:"places_of_power"`
	MagicItems        []CardView `json:"magic_items"`
	Scrolls           []CardView `json:"scrolls"`

	CurrentPlayer     int `json:"current_player"`
	MagicItemSelector int `json:"magic_item_selector"`
	FirstPlayer       int `json:"first_player"`

	Draft  *DraftView     `json:"draft,omitempty"`
	Result *VictoryResult `json:"result,omitempty"`
}

func cardView(c *cards.Card) CardView {
	v := CardView{
		ID:     c.ID,
		Name:   c.Name,
		Type:   string(c.Type),
		Points: c.Points,
		Cost:   poolMap(c.Cost.AsPool()),
	}
	if c.Cost.Any > 0 {
		// The generic part of a price is not a concrete bundle; expose the
		// printed cost instead of the red-default expansion.
		v.Cost = map[string]int{}
		for _, t := range essence.All() {
			if n := c.Cost.Amount(t); n > 0 {
				v.Cost[string(t)] = n
			}
		}
		v.Cost["any"] = c.Cost.Any
	}
	for _, t := range c.Tags {
		v.Tags = append(v.Tags, string(t))
	}
	return v
}

func cardViews(cs []*cards.Card) []CardView {
	out := make([]CardView, 0, len(cs))
	for _, c := range cs {
		out = append(out, cardView(c))
	}
	return out
}

func controlledView(cc *ControlledCard) *ControlledCardView {
	if cc == nil || cc.IsPlaceholder() {
		return nil
	}
	return &ControlledCardView{
		CardView: cardView(cc.Card),
		Tapped:   cc.Tapped,
		Store:    poolMap(cc.Store),
	}
}

func controlledViews(ccs []*ControlledCard) []ControlledCardView {
	out := make([]ControlledCardView, 0, len(ccs))
	for _, cc := range ccs {
		if v := controlledView(cc); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func poolMap(p essence.Pool) map[string]int {
	out := make(map[string]int, len(p))
	for t, n := range p {
		out[string(t)] = n
	}
	return out
}

// View renders the game for one viewer. An out-of-range viewer (such as a
// spectator) sees only public information.
func (g *Game) View(viewer int) GameView {
	g.mu.Lock()
	defer g.mu.Unlock()

	gv := GameView{
		GameID:            g.id,
		Phase:             g.phase.String(),
		Viewer:            viewer,
		Monuments:         cardViews(g.availableMonuments),
		MonumentDeckCount: len(g.monumentDeck),
		PlacesOfPower:     cardViews(g.availablePlaces),
		MagicItems:        cardViews(g.availableMagicItems),
		Scrolls:           cardViews(g.availableScrolls),
		CurrentPlayer:     -1,
		MagicItemSelector: -1,
		FirstPlayer:       g.firstPlayerIndex(),
		Result:            g.result,
	}
	if g.phase == rules.PhasePlaying {
		gv.CurrentPlayer = g.action.current
	}
	if g.phase == rules.PhaseMagicItemSelection {
		gv.MagicItemSelector = g.draft.magicItemSelector
	}

	for _, p := range g.players {
		pv := PlayerView{
			ID:                  p.ID,
			Mage:                controlledView(p.Mage),
			MagicItem:           controlledView(p.MagicItem),
			Artifacts:           controlledViews(p.Artifacts),
			Monuments:           controlledViews(p.Monuments),
			PlacesOfPower:       controlledViews(p.PlacesOfPower),
			Scrolls:             cardViews(p.Scrolls),
			HandCount:           len(p.Hand),
			DeckCount:           len(p.Deck),
			Discard:             cardViews(p.Discard),
			Pool:                poolMap(p.Pool),
			Points:              p.Points(),
			HasFirstPlayerToken: p.HasFirstPlayerToken,
			TokenFaceUp:         p.TokenFaceUp,
		}
		// A mage stays hidden until the reveal; before that even a chosen
		// mage must not leak through another player's view.
		if g.phase == rules.PhaseMageSelection || g.phase.IsDrafting() {
			pv.Mage = nil
		}
		if p.ID == viewer {
			pv.Hand = cardViews(p.Hand)
		}
		if g.action != nil {
			pv.Passed = g.action.passed[p.ID]
		}
		if g.income != nil {
			pv.IncomeFinalized = g.income.finalized[p.ID]
		}
		gv.Players = append(gv.Players, pv)
	}

	if g.draft != nil && viewer >= 0 && viewer < len(g.players) {
		gv.Draft = &DraftView{
			CardsToPick: cardViews(g.draft.cardsToPick[viewer]),
			Drafted:     cardViews(g.draft.drafted[viewer]),
			MageOptions: cardViews(g.draft.mageOptions[viewer]),
		}
	}
	return gv
}
