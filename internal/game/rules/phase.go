package rules

import "fmt"

// Phase represents the broad phases of a game, from setup through game over.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseDraftingRound1
	PhaseDraftingRound2
	PhaseMageSelection
	PhaseMagicItemSelection
	PhaseIncome
	PhasePlaying
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseSetup:              "SETUP",
	PhaseDraftingRound1:     "DRAFTING_ROUND_1",
	PhaseDraftingRound2:     "DRAFTING_ROUND_2",
	PhaseMageSelection:      "MAGE_SELECTION",
	PhaseMagicItemSelection: "MAGIC_ITEM_SELECTION",
	PhaseIncome:             "INCOME",
	PhasePlaying:            "PLAYING",
	PhaseGameOver:           "GAME_OVER",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// legalTransitions is the only order phases may advance in. The income/playing
// pair loops each round until the game ends.
var legalTransitions = map[Phase][]Phase{
	PhaseSetup:              {PhaseDraftingRound1},
	PhaseDraftingRound1:     {PhaseDraftingRound2},
	PhaseDraftingRound2:     {PhaseMageSelection},
	PhaseMageSelection:      {PhaseMagicItemSelection},
	PhaseMagicItemSelection: {PhaseIncome},
	PhaseIncome:             {PhasePlaying},
	PhasePlaying:            {PhaseIncome, PhaseGameOver},
	PhaseGameOver:           {},
}

// CanTransition reports whether moving from one phase to another is legal.
func CanTransition(from, to Phase) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsDrafting reports whether the phase is one of the two pick-and-pass rounds.
func (p Phase) IsDrafting() bool {
	return p == PhaseDraftingRound1 || p == PhaseDraftingRound2
}
