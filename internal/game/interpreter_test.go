package game

import (
	"testing"

	"github.com/arcanaworks/arcana-server-go/internal/game/cards"
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetTurn hands the turn back after a successful activation so a test can
// chain abilities for the same player.
func resetTurn(g *Game, playerID int) {
	g.action.current = playerID
}

func TestDwarvenPickaxe(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Dwarven Pickaxe")
	g.players[0].Pool.Add(essence.Red, 1)

	require.True(t, g.UseAbility(0, "Dwarven Pickaxe", 0, CostChoices{}, EffectChoices{}).OK)
	assert.True(t, cc.Tapped)
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Gold))
}

func TestTappedAbilityRejected(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Magical Shard")
	cc.Tapped = true

	res := g.UseAbility(0, "Magical Shard", 0, CostChoices{}, EffectChoices{})
	assert.False(t, res.OK)
	assert.Contains(t, res.Reason, "tapped")
}

func TestAthanorAccumulates(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Athanor")
	g.players[0].Pool.Add(essence.Red, 3)

	for i := 0; i < 3; i++ {
		require.True(t, g.UseAbility(0, "Athanor", 0, CostChoices{}, EffectChoices{}).OK)
		cc.Tapped = false
		resetTurn(g, 0)
	}
	assert.Equal(t, 6, cc.Store.Count(essence.Red))
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Red))
}

func TestAthanorConvert(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Athanor")
	cc.Store.Add(essence.Red, 6)
	g.players[0].Pool.AddAll(essence.Pool{essence.Red: 2, essence.Blue: 1, essence.Gold: 1})

	require.True(t, g.UseAbility(0, "Athanor", 1, CostChoices{}, EffectChoices{}).OK)
	assert.True(t, cc.Store.IsEmpty())
	assert.Equal(t, 4, g.players[0].Pool.Count(essence.Gold))
	assert.Equal(t, 0, g.players[0].Pool.NonGoldTotal())
}

func TestAthanorConvertNeedsSixOnCard(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	cc := control(t, g.players[0], "Athanor")
	cc.Store.Add(essence.Red, 5)

	res := g.UseAbility(0, "Athanor", 1, CostChoices{}, EffectChoices{})
	assert.False(t, res.OK)
	assert.Equal(t, 5, cc.Store.Count(essence.Red))
	assert.False(t, cc.Tapped)
}

func TestElvishBowAttack(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{}).OK)
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Green))
}

func TestAttackPenaltyWithoutGreen(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	g.players[1].Pool.Add(essence.Red, 3)

	// One missing green costs two of anything else.
	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{}).OK)
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Red))
}

func TestAttackPenaltyCappedAtHoldings(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Bone Dragon")
	g.players[1].Pool.Add(essence.Red, 3)

	// Two missing green would cost four, but the pool only holds three.
	require.True(t, g.UseAbility(0, "Bone Dragon", 0, CostChoices{}, EffectChoices{}).OK)
	assert.Equal(t, 0, g.players[1].Pool.Total())
}

func TestAttackAvoidByDiscard(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Bone Dragon")
	handCard(t, g.players[1], "Hawk")
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Bone Dragon", 0, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackAvoid}},
	}).OK)
	assert.Empty(t, g.players[1].Hand)
	assert.Equal(t, 2, g.players[1].Pool.Count(essence.Green))
}

func TestAttackReaction(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	dog := control(t, g.players[1], "Guard Dog")
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackReact, ReactCard: "Guard Dog"}},
	}).OK)
	assert.True(t, dog.Tapped)
	assert.Equal(t, 2, g.players[1].Pool.Count(essence.Green))
}

func TestAttackReactionFallsBackToPaying(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	dog := control(t, g.players[1], "Guard Dog")
	dog.Tapped = true
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackReact, ReactCard: "Guard Dog"}},
	}).OK)
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Green))
}

func TestAttackReactionRequiresIgnoreAttack(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	ward := NewControlledCard(&cards.Card{
		Name: "Totem Ward", Type: cards.Artifact,
		Abilities: []cards.Ability{{
			Trigger: &cards.Trigger{Event: rules.EventAttacked},
			Costs:   []cards.AbilityCost{cards.TapSelf{}},
			Effects: []cards.AbilityEffect{cards.Gain{Fixed: essence.Cost{Blue: 1}}},
		}},
	})
	g.players[1].Artifacts = append(g.players[1].Artifacts, ward)
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackReact, ReactCard: "Totem Ward"}},
	}).OK)

	// A reaction that never ignores the attack cannot answer it; the attack
	// is paid and the ward stays untapped with nothing gained.
	assert.False(t, ward.Tapped)
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Green))
	assert.Equal(t, 0, g.players[1].Pool.Count(essence.Blue))
}

func TestAttackReactionRunsExtraEffects(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	ward := NewControlledCard(&cards.Card{
		Name: "Warding Idol", Type: cards.Artifact,
		Abilities: []cards.Ability{{
			Trigger: &cards.Trigger{Event: rules.EventAttacked},
			Costs:   []cards.AbilityCost{cards.TapSelf{}},
			Effects: []cards.AbilityEffect{cards.IgnoreAttack{}, cards.Gain{Fixed: essence.Cost{Blue: 1}}},
		}},
	})
	g.players[1].Artifacts = append(g.players[1].Artifacts, ward)
	g.players[1].Pool.Add(essence.Green, 2)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackReact, ReactCard: "Warding Idol"}},
	}).OK)

	assert.True(t, ward.Tapped)
	assert.Equal(t, 2, g.players[1].Pool.Count(essence.Green))
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Blue))
}

func TestPlayFromDiscardDiscountReducesFixedCost(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Crypt")
	g.players[0].Discard = append(g.players[0].Discard, cards.ByName("Fire Dragon"))
	g.players[0].Pool.AddAll(essence.Pool{essence.Black: 1, essence.Red: 4})

	// The dragon's six red come down to four under the Crypt's discount.
	require.True(t, g.UseAbility(0, "Crypt", 0, CostChoices{}, EffectChoices{
		PlayCard: "Fire Dragon",
	}).OK)

	require.Len(t, g.players[0].Artifacts, 2)
	assert.Equal(t, "Fire Dragon", g.players[0].Artifacts[1].Card.Name)
	assert.Equal(t, 0, g.players[0].Pool.Total())
	assert.Empty(t, g.players[0].Discard)
}

func TestDestroyReactionFires(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Corrupt Altar")
	control(t, g.players[0], "Dwarven Pickaxe")
	crypt := control(t, g.players[0], "Crypt")

	require.True(t, g.UseAbility(0, "Corrupt Altar", 0, CostChoices{
		DestroyArtifact: "Dwarven Pickaxe",
	}, EffectChoices{}).OK)

	// The Crypt taps itself for one black when the pickaxe leaves play; the
	// altar then echoes the pickaxe's cost plus its bonus.
	assert.True(t, crypt.Tapped)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Black))
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Red))
	require.Len(t, g.players[0].Discard, 1)
	assert.Equal(t, "Dwarven Pickaxe", g.players[0].Discard[0].Name)
}

func TestDestroyReactionSkipsTappedCard(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Corrupt Altar")
	control(t, g.players[0], "Dwarven Pickaxe")
	crypt := control(t, g.players[0], "Crypt")
	crypt.Tapped = true

	require.True(t, g.UseAbility(0, "Corrupt Altar", 0, CostChoices{
		DestroyArtifact: "Dwarven Pickaxe",
	}, EffectChoices{}).OK)
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Black))
}

func TestCursedDwarvenKingNeedsDragon(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Cursed Dwarven King")

	res := g.UseAbility(0, "Cursed Dwarven King", 1, CostChoices{}, EffectChoices{})
	assert.False(t, res.OK)

	dragon := control(t, g.players[0], "Bone Dragon")
	require.True(t, g.UseAbility(0, "Cursed Dwarven King", 1, CostChoices{}, EffectChoices{}).OK)
	assert.True(t, dragon.Tapped)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Gold))
}

func TestFieryWhipEchoesDestroyedCost(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Fiery Whip")
	control(t, g.players[0], "Dwarven Pickaxe")

	require.True(t, g.UseAbility(0, "Fiery Whip", 1, CostChoices{
		DestroyArtifact: "Dwarven Pickaxe",
	}, EffectChoices{BonusType: essence.Blue}).OK)

	// The pickaxe's printed cost comes back, plus two of the chosen type.
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Blue))
	assert.Len(t, g.players[0].Artifacts, 1)
	require.Len(t, g.players[0].Discard, 1)
	assert.Equal(t, "Dwarven Pickaxe", g.players[0].Discard[0].Name)
}

func TestFieryWhipNeverDestroysItself(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Fiery Whip")

	res := g.UseAbility(0, "Fiery Whip", 1, CostChoices{DestroyArtifact: "Fiery Whip"}, EffectChoices{})
	assert.False(t, res.OK)
	assert.Len(t, g.players[0].Artifacts, 1)
}

func TestMagicalShardChoice(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Magical Shard")

	require.True(t, g.UseAbility(0, "Magical Shard", 0, CostChoices{}, EffectChoices{
		Resources: map[essence.Type]int{essence.Blue: 1},
	}).OK)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Blue))
}

func TestMagicalShardDefaultsToRed(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Magical Shard")

	require.True(t, g.UseAbility(0, "Magical Shard", 0, CostChoices{}, EffectChoices{}).OK)
	assert.Equal(t, 1, g.players[0].Pool.Count(essence.Red))
}

func TestPrismSwapsPaidType(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Prism")
	g.players[0].Pool.Add(essence.Red, 2)

	require.True(t, g.UseAbility(0, "Prism", 1, CostChoices{
		VariablePayment: map[essence.Type]int{essence.Red: 2},
	}, EffectChoices{}).OK)

	// Red was paid, so the fallback gain is the first non-red type.
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Red))
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Blue))
}

func TestPrismChosenGain(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Prism")
	g.players[0].Pool.Add(essence.Blue, 3)

	require.True(t, g.UseAbility(0, "Prism", 1, CostChoices{
		VariablePayment: map[essence.Type]int{essence.Blue: 3},
	}, EffectChoices{
		Resources: map[essence.Type]int{essence.Green: 3},
	}).OK)
	assert.Equal(t, 3, g.players[0].Pool.Count(essence.Green))
	assert.Equal(t, 0, g.players[0].Pool.Count(essence.Blue))
}

func TestSacrificialDaggerDiscardFallback(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Sacrificial Dagger")
	handCard(t, g.players[0], "Hawk")
	handCard(t, g.players[0], "Prism")

	require.True(t, g.UseAbility(0, "Sacrificial Dagger", 0, CostChoices{}, EffectChoices{}).OK)
	assert.Equal(t, 2, g.players[0].Pool.Count(essence.Black))
	require.Len(t, g.players[0].Hand, 1)
	assert.Equal(t, "Prism", g.players[0].Hand[0].Name)
}

func TestHawkReordersTopOfDeck(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Hawk")
	for _, name := range []string{"Prism", "Athanor", "Mermaid", "Treant"} {
		c := cards.ByName(name)
		require.NotNil(t, c)
		g.players[0].Deck = append(g.players[0].Deck, c)
	}

	require.True(t, g.UseAbility(0, "Hawk", 0, CostChoices{}, EffectChoices{
		DeckOrder: []string{"Mermaid", "Prism", "Athanor"},
	}).OK)
	assert.Equal(t, "Mermaid", g.players[0].Deck[0].Name)
	assert.Equal(t, "Prism", g.players[0].Deck[1].Name)
	assert.Equal(t, "Athanor", g.players[0].Deck[2].Name)
	assert.Equal(t, "Treant", g.players[0].Deck[3].Name)
}

func TestDragonEggHatches(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Dragon Egg")
	handCard(t, g.players[0], "Fire Dragon")
	g.players[0].Pool.Add(essence.Red, 2)

	require.True(t, g.UseAbility(0, "Dragon Egg", 0, CostChoices{}, EffectChoices{
		PlayCard: "Fire Dragon",
	}).OK)

	// The egg is destroyed; the dragon comes into play 4 cheaper.
	require.Len(t, g.players[0].Artifacts, 1)
	assert.Equal(t, "Fire Dragon", g.players[0].Artifacts[0].Card.Name)
	assert.Equal(t, 0, g.players[0].Pool.Total())
	require.Len(t, g.players[0].Discard, 1)
	assert.Equal(t, "Dragon Egg", g.players[0].Discard[0].Name)
}

func TestScrollOfShieldingReaction(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	control(t, g.players[0], "Elvish Bow")
	control(t, g.players[1], "Scroll of Shielding")
	g.players[1].Pool.Add(essence.Green, 1)

	require.True(t, g.UseAbility(0, "Elvish Bow", 1, CostChoices{}, EffectChoices{
		AttackResponses: map[int]AttackResponse{1: {Kind: AttackReact, ReactCard: "Scroll of Shielding"}},
	}).OK)
	assert.Empty(t, g.players[1].Scrolls)
	assert.Equal(t, 1, g.players[1].Pool.Count(essence.Green))
}

func TestScrollIsConsumed(t *testing.T) {
	g := newTestGame(t, 2)
	forcePlaying(g, 0)
	p := g.players[0]
	control(t, p, "Scroll of Fire")

	refs := g.ActivatableAbilities(0)
	require.Contains(t, refs, AbilityRef{CardName: "Scroll of Fire", Index: 0})

	require.True(t, g.UseAbility(0, "Scroll of Fire", 0, CostChoices{}, EffectChoices{}).OK)
	assert.Empty(t, p.Scrolls)
	assert.Equal(t, 2, p.Pool.Count(essence.Red))
}
