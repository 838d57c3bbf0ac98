package cards

import (
	"github.com/arcanaworks/arcana-server-go/internal/game/essence"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
)

// The static catalog. Pure data: the engine interprets these descriptors,
// nothing here carries behavior.

var nonGold = essence.NonGold()

func tap() AbilityCost { return TapSelf{} }

var artifacts = []*Card{
	{
		Name: "Athanor", Type: Artifact,
		Cost: essence.Cost{Red: 1, Gold: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Red: 1}}},
				Effects: []AbilityEffect{AddToCard{Fixed: essence.Cost{Red: 2}}},
			},
			{
				Costs:   []AbilityCost{tap(), RemoveFromCard{essence.Cost{Red: 6}}},
				Effects: []AbilityEffect{Convert{}},
			},
		},
	},
	{
		Name: "Bone Dragon", Type: Artifact, Tags: []Tag{TagDragon},
		Cost: essence.Cost{Black: 4, Any: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 2, Avoid: &AvoidCost{DiscardCard: true}}},
			},
		},
	},
	{
		Name: "Celestial Horse", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost:   essence.Cost{Blue: 1, Any: 1},
		Income: &Income{Count: 2, Types: []essence.Type{essence.Red, essence.Blue, essence.Green}},
	},
	{
		Name: "Chalice of Fire", Type: Artifact,
		Cost:   essence.Cost{Red: 1, Gold: 1},
		Income: &Income{Fixed: essence.Cost{Red: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Untap{}},
			},
		},
	},
	{
		Name: "Chalice of Life", Type: Artifact,
		Cost: essence.Cost{Blue: 2, Gold: 1}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Blue: 1, Green: 1}},
	},
	{
		Name: "Corrupt Altar", Type: Artifact, Tags: []Tag{TagDemon},
		Cost: essence.Cost{Black: 2, Any: 2}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), DestroyArtifact{Other: true}},
				Effects: []AbilityEffect{GainFromRemoved{Bonus: 1}},
			},
		},
	},
	{
		Name: "Crypt", Type: Artifact,
		Cost:   essence.Cost{Black: 3, Any: 2},
		Income: &Income{Fixed: essence.Cost{Black: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Black: 1}}},
				Effects: []AbilityEffect{PlayCard{FromDiscard: true, Discount: 2}},
			},
			{
				Trigger: &Trigger{Event: rules.EventArtifactDestroyed},
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Black: 1}}},
			},
		},
	},
	{
		Name: "Cursed Dwarven King", Type: Artifact,
		Cost: essence.Cost{Red: 2, Gold: 1}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Red: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Red: 1}}},
			},
			{
				Costs:   []AbilityCost{tap(), TapOther{Tag: TagDragon}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
		},
	},
	{
		Name: "Dancing Sword", Type: Artifact,
		Cost: essence.Cost{Red: 1, Any: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 1}},
			},
		},
	},
	{
		Name: "Dragon Bridle", Type: Artifact,
		Cost: essence.Cost{Any: 3},
		Passives: []Passive{
			{Tag: TagDragon, Reduction: essence.Reduction{Amount: 3, Scope: essence.ScopeNonGold}},
		},
	},
	{
		Name: "Dragon Egg", Type: Artifact,
		Cost: essence.Cost{Any: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{PlayCard{Tag: TagDragon, Discount: 4}},
			},
		},
	},
	{
		Name: "Dragon Teeth", Type: Artifact,
		Cost: essence.Cost{Red: 1, Any: 2},
		Passives: []Passive{
			{Tag: TagDragon, Reduction: essence.Reduction{Amount: 1, Scope: essence.ScopeNonGold}},
		},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Red: 1}}},
				Effects: []AbilityEffect{AddToCard{Fixed: essence.Cost{Red: 1}, Other: true, Tag: TagDragon}},
			},
		},
	},
	{
		Name: "Dwarven Pickaxe", Type: Artifact,
		Cost: essence.Cost{Red: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Red: 1}}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
		},
	},
	{
		Name: "Earth Dragon", Type: Artifact, Tags: []Tag{TagDragon},
		Cost: essence.Cost{Green: 4, Any: 2}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 2, Avoid: &AvoidCost{Price: essence.Cost{Green: 1}}}},
			},
		},
	},
	{
		Name: "Elemental Spring", Type: Artifact,
		Cost: essence.Cost{Blue: 1, Green: 1, Any: 1}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Red: 1, Blue: 1, Green: 1}},
	},
	{
		Name: "Elvish Bow", Type: Artifact,
		Cost: essence.Cost{Green: 2},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Draw{Count: 1}},
			},
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 1}},
			},
		},
	},
	{
		Name: "Fiery Whip", Type: Artifact, Tags: []Tag{TagDemon},
		Cost: essence.Cost{Red: 2, Black: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Red: 1}}},
			},
			{
				Costs:   []AbilityCost{tap(), DestroyArtifact{Other: true}},
				Effects: []AbilityEffect{GainFromRemoved{Bonus: 2}},
			},
		},
	},
	{
		Name: "Fire Dragon", Type: Artifact, Tags: []Tag{TagDragon},
		Cost: essence.Cost{Red: 6}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 2}},
			},
		},
	},
	{
		Name: "Flaming Pit", Type: Artifact,
		Cost:   essence.Cost{Red: 1},
		Income: &Income{Fixed: essence.Cost{Red: 1}},
	},
	{
		Name: "Fountain of Youth", Type: Artifact,
		Cost:   essence.Cost{Black: 1},
		Income: &Income{Fixed: essence.Cost{Green: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Green: 2}}},
			},
		},
	},
	{
		Name: "Guard Dog", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost: essence.Cost{Red: 1},
		Abilities: []Ability{
			{
				Trigger: &Trigger{Event: rules.EventAttacked},
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{IgnoreAttack{}},
			},
		},
	},
	{
		Name: "Hand of Glory", Type: Artifact, Tags: []Tag{TagDemon},
		Cost:   essence.Cost{Black: 2},
		Income: &Income{Fixed: essence.Cost{Black: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Black: 1}}},
				Effects: []AbilityEffect{GainPerOpponent{Of: essence.Black}},
			},
		},
	},
	{
		Name: "Hawk", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost: essence.Cost{Blue: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{ReorderTopOfDeck{Count: 3}},
			},
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Blue: 1}}},
				Effects: []AbilityEffect{DrawThenDiscard{Draw: 1, Discard: 1}},
			},
		},
	},
	{
		Name: "Horn of Plenty", Type: Artifact,
		Cost: essence.Cost{Gold: 1, Any: 2},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Count: 2, Types: nonGold}},
			},
		},
	},
	{
		Name: "Hypnotic Basin", Type: Artifact,
		Cost:   essence.Cost{Blue: 2, Any: 1},
		Income: &Income{Fixed: essence.Cost{Blue: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Blue: 1}}},
				Effects: []AbilityEffect{GainPerOpponent{Of: essence.Blue}},
			},
		},
	},
	{
		Name: "Jeweled Statuette", Type: Artifact,
		Cost: essence.Cost{Gold: 1, Black: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 2}}},
			},
		},
	},
	{
		Name: "Magical Shard", Type: Artifact,
		Cost: essence.Cost{},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Count: 1, Types: nonGold}},
			},
		},
	},
	{
		Name: "Mermaid", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost: essence.Cost{Blue: 2}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Blue: 1}},
	},
	{
		Name: "Nightingale", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost: essence.Cost{Blue: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Draw{Count: 1}},
			},
		},
	},
	{
		Name: "Philosopher's Stone", Type: Artifact,
		Cost: essence.Cost{Gold: 2, Any: 2}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayVariable{Min: 2, SingleType: true}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
		},
	},
	{
		Name: "Prism", Type: Artifact,
		Cost: essence.Cost{Any: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Count: 1, Types: nonGold}},
			},
			{
				Costs:   []AbilityCost{tap(), PayVariable{Min: 1, SingleType: true}},
				Effects: []AbilityEffect{Gain{FromPaid: true, ExcludePaid: true, Types: nonGold}},
			},
		},
	},
	{
		Name: "Ring of Midas", Type: Artifact,
		Cost: essence.Cost{Gold: 1, Any: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Green: 1}}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
		},
	},
	{
		Name: "Sacrificial Dagger", Type: Artifact, Tags: []Tag{TagDemon},
		Cost: essence.Cost{Black: 1},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), DiscardFromHand{Count: 1}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Black: 2}}},
			},
		},
	},
	{
		Name: "Sea Serpent", Type: Artifact, Tags: []Tag{TagAnimal},
		Cost: essence.Cost{Blue: 5, Green: 1}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 3, Avoid: &AvoidCost{Price: essence.Cost{Blue: 1}}}},
			},
		},
	},
	{
		Name: "Treant", Type: Artifact,
		Cost: essence.Cost{Green: 3, Any: 1}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Green: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 1, Avoid: &AvoidCost{Price: essence.Cost{Green: 1}}}},
			},
		},
	},
	{
		Name: "Tree of Life", Type: Artifact,
		Cost: essence.Cost{Green: 2}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Green: 1}},
		Abilities: []Ability{
			{
				Trigger: &Trigger{Event: rules.EventAttacked},
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{IgnoreAttack{}},
			},
		},
	},
	{
		Name: "Vault", Type: Artifact,
		Cost:   essence.Cost{Gold: 1, Any: 1},
		Income: &Income{Fixed: essence.Cost{Gold: 1}, AddToCard: true},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{TakeFromCard{}},
			},
		},
	},
	{
		Name: "Water Dragon", Type: Artifact, Tags: []Tag{TagDragon},
		Cost: essence.Cost{Blue: 5, Any: 1}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Blue: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 2}},
			},
		},
	},
	{
		Name: "Wind Dragon", Type: Artifact, Tags: []Tag{TagDragon},
		Cost: essence.Cost{Blue: 4, Any: 2}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Attack{Amount: 2, Avoid: &AvoidCost{DiscardCard: true}}},
			},
		},
	},
	{
		Name: "Windup Man", Type: Artifact,
		Cost:   essence.Cost{Gold: 1, Any: 2},
		Income: &Income{Count: 1, Types: nonGold, AddToCard: true, Conditional: true},
	},
}

var mages = []*Card{
	{
		Name: "Alchemist", Type: Mage,
		Income: &Income{Count: 1, Types: nonGold},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Gold: 1}}},
				Effects: []AbilityEffect{Gain{Count: 3, Types: nonGold}},
			},
		},
	},
	{
		Name: "Artificer", Type: Mage,
		Income: &Income{Count: 1, Types: nonGold},
		Passives: []Passive{
			{Reduction: essence.Reduction{Amount: 1, Scope: essence.ScopeNonGold}},
		},
	},
	{
		Name: "Druid", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Green: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Untap{Tag: TagAnimal}},
			},
		},
	},
	{
		Name: "Duelist", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Red: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Red: 1}}},
				Effects: []AbilityEffect{Attack{Amount: 1}},
			},
		},
	},
	{
		Name: "Healer", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Green: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Green: 1}}},
				Effects: []AbilityEffect{Gain{Count: 2, Types: []essence.Type{essence.Blue, essence.Green}}},
			},
		},
	},
	{
		Name: "Necromancer", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Black: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Black: 1}}},
				Effects: []AbilityEffect{PlayCard{FromDiscard: true, Discount: 1}},
			},
		},
	},
	{
		Name: "Scholar", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Blue: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{DrawThenDiscard{Draw: 1, Discard: 1}},
			},
		},
	},
	{
		Name: "Seer", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Blue: 1}},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{ReorderTopOfDeck{Count: 3}},
			},
		},
	},
	{
		Name: "Transmuter", Type: Mage,
		Income: &Income{Count: 1, Types: nonGold},
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayVariable{Min: 1}},
				Effects: []AbilityEffect{Gain{FromPaid: true, ExcludePaid: true, Types: nonGold}},
			},
		},
	},
	{
		Name: "Witch", Type: Mage,
		Income: &Income{Fixed: essence.Cost{Black: 1}},
		Abilities: []Ability{
			{
				Trigger: &Trigger{Event: rules.EventAttacked},
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{IgnoreAttack{}},
			},
		},
	},
}

// Monuments all share the flat four gold price enforced by the action engine;
// the cost is carried on the card for display and passives.
var monuments = []*Card{
	{
		Name: "Alchemical Workshop", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Red: 1}},
	},
	{Name: "Colossus", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2},
	{
		Name: "Dark Cathedral", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2,
		Income: &Income{Fixed: essence.Cost{Black: 1}},
	},
	{Name: "Golden Statue", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 3},
	{Name: "Great Pyramid", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 3},
	{
		Name: "Hanging Gardens", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2,
		Income: &Income{Count: 1, Types: []essence.Type{essence.Blue, essence.Green}},
	},
	{
		Name: "Library", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 1,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Draw{Count: 1}},
			},
		},
	},
	{Name: "Mausoleum", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2},
	{
		Name: "Obelisk", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 1,
		Income: &Income{Count: 1, Types: nonGold},
	},
	{Name: "Oracle", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2},
	{
		Name: "Solomon's Mine", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 1,
		Income: &Income{Fixed: essence.Cost{Gold: 1}},
	},
	{Name: "Temple", Type: Monument, Cost: essence.Cost{Gold: 4}, Points: 2},
}

var magicItems = []*Card{
	{
		Name: "Alchemy", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Any: 2}}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
			},
		},
	},
	{
		Name: "Calm | Elan", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Count: 1, Types: []essence.Type{essence.Blue, essence.Red}}},
			},
		},
	},
	{
		Name: "Life | Death", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{Gain{Count: 1, Types: []essence.Type{essence.Green, essence.Black}}},
			},
		},
	},
	{
		Name: "Divination", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{ReorderTopOfDeck{Count: 2}},
			},
		},
	},
	{
		Name: "Protection", Type: MagicItem,
		Abilities: []Ability{
			{
				Trigger: &Trigger{Event: rules.EventAttacked},
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{IgnoreAttack{}},
			},
		},
	},
	{
		Name: "Reanimate", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Black: 1}}},
				Effects: []AbilityEffect{PlayCard{FromDiscard: true}},
			},
		},
	},
	{
		Name: "Research", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap()},
				Effects: []AbilityEffect{DrawThenDiscard{Draw: 2, Discard: 1}},
			},
		},
	},
	{
		Name: "Transmutation", Type: MagicItem,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{tap(), PayVariable{Min: 1}},
				Effects: []AbilityEffect{Gain{FromPaid: true, ExcludePaid: true, Types: nonGold}},
			},
		},
	},
}

// Scrolls never tap and never hold essence; every scroll is one use.
var scrolls = []*Card{
	{
		Name: "Scroll of Fire", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Red: 2}}},
			},
		},
	},
	{
		Name: "Scroll of Augury", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Draw{Count: 2}},
			},
		},
	},
	{
		Name: "Scroll of Destruction", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Attack{Amount: 2}},
			},
		},
	},
	{
		Name: "Scroll of Disjunction", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Untap{}},
			},
		},
	},
	{
		Name: "Scroll of the Midas", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Convert{}},
			},
		},
	},
	{
		Name: "Scroll of Plenty", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{Gain{Count: 3, Types: nonGold}},
			},
		},
	},
	{
		Name: "Scroll of Shielding", Type: Scroll,
		Abilities: []Ability{
			{
				Trigger: &Trigger{Event: rules.EventAttacked},
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{IgnoreAttack{}},
			},
		},
	},
	{
		Name: "Scroll of Vision", Type: Scroll,
		Abilities: []Ability{
			{
				Costs:   []AbilityCost{DestroySelf{}},
				Effects: []AbilityEffect{ReorderTopOfDeck{Count: 3}},
			},
		},
	},
}

// placePairs are the six double-sided place of power cards. Setup picks one
// side from each selected pair; the flip side leaves the game.
var placePairs = [][2]*Card{
	{
		{
			Name: "Catacombs of the Dead", Type: PlaceOfPower,
			Cost: essence.Cost{Black: 9}, Points: 2,
			Income: &Income{Fixed: essence.Cost{Black: 1}, AddToCard: true},
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap(), RemoveFromCard{essence.Cost{Black: 3}}},
					Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
				},
			},
		},
		{
			Name: "Sacrificial Pit", Type: PlaceOfPower,
			Cost: essence.Cost{Black: 6, Red: 2}, Points: 1,
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap(), DestroyArtifact{Other: true}},
					Effects: []AbilityEffect{GainFromRemoved{Bonus: 2}},
				},
			},
		},
	},
	{
		{
			Name: "Coral Castle", Type: PlaceOfPower,
			Cost: essence.Cost{Blue: 5, Red: 2, Gold: 1}, Points: 2,
			Abilities: []Ability{
				{
					Trigger: &Trigger{Event: rules.EventAttacked},
					Costs:   []AbilityCost{tap()},
					Effects: []AbilityEffect{IgnoreAttack{}},
				},
			},
		},
		{
			Name: "Sunken Reef", Type: PlaceOfPower,
			Cost: essence.Cost{Blue: 6, Green: 2}, Points: 1,
			Income: &Income{Fixed: essence.Cost{Blue: 2}},
		},
	},
	{
		{
			Name: "Cursed Forge", Type: PlaceOfPower,
			Cost: essence.Cost{Red: 6, Gold: 2}, Points: 1,
			Income: &Income{Fixed: essence.Cost{Gold: 1}, AddToCard: true},
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Red: 2}}},
					Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}, GiveToOpponents{Bundle: essence.Cost{Black: 1}}},
				},
			},
		},
		{
			Name: "Dwarven Mines", Type: PlaceOfPower,
			Cost: essence.Cost{Red: 5, Any: 3}, Points: 1,
			Income: &Income{Fixed: essence.Cost{Gold: 1}},
		},
	},
	{
		{
			Name: "Dragon's Lair", Type: PlaceOfPower,
			Cost: essence.Cost{Red: 3, Black: 3, Any: 3}, Points: 2,
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap()},
					Effects: []AbilityEffect{GainPerOpponentCount{Tag: TagDragon, Of: essence.Red}},
				},
			},
		},
		{
			Name: "Sorcerer's Bestiary", Type: PlaceOfPower,
			Cost: essence.Cost{Green: 4, Blue: 2, Any: 2}, Points: 1,
			Income: &Income{Count: 1, Types: nonGold},
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap()},
					Effects: []AbilityEffect{GainPerOpponentCount{Tag: TagAnimal, Of: essence.Green}},
				},
			},
		},
	},
	{
		{
			Name: "Sacred Grove", Type: PlaceOfPower,
			Cost: essence.Cost{Green: 5, Blue: 2}, Points: 2,
			Income: &Income{Fixed: essence.Cost{Green: 1}},
		},
		{
			Name: "Alchemist's Tower", Type: PlaceOfPower,
			Cost: essence.Cost{Gold: 3, Any: 4}, Points: 1,
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap(), PayVariable{Min: 2, SingleType: true}},
					Effects: []AbilityEffect{Gain{Fixed: essence.Cost{Gold: 1}}},
				},
			},
		},
	},
	{
		{
			Name: "Crystal Keep", Type: PlaceOfPower,
			Cost: essence.Cost{Gold: 5, Any: 5}, Points: 3,
		},
		{
			Name: "Temple of the Abyss", Type: PlaceOfPower,
			Cost: essence.Cost{Black: 5, Blue: 3}, Points: 2,
			Abilities: []Ability{
				{
					Costs:   []AbilityCost{tap(), PayPool{essence.Cost{Black: 1}}},
					Effects: []AbilityEffect{GainPerOpponent{Of: essence.Black}},
				},
			},
		},
	},
}
