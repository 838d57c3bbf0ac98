// Package bot drives a seat with a simple random policy, useful for filling
// tables and for soak-testing the engine.
package bot

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/arcanaworks/arcana-server-go/internal/game"
	"github.com/arcanaworks/arcana-server-go/internal/game/rules"
)

// Agent plays one seat of a game autonomously.
type Agent struct {
	game   *game.Game
	player int
	log    *zap.Logger
	rng    *rand.Rand
	delay  time.Duration

	mageChosen bool
}

// New creates an agent for a seat. delay spaces the agent's moves out so a
// human at the table can follow along.
func New(g *game.Game, player int, delay time.Duration, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{
		game:   g,
		player: player,
		log:    logger.With(zap.Int("bot", player), zap.String("game_id", g.ID())),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano() + int64(player))),
		delay:  delay,
	}
}

// Run steps the agent until the game ends or the context is canceled.
func (a *Agent) Run(ctx context.Context) {
	ticker := time.NewTicker(a.delay)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.game.Phase() == rules.PhaseGameOver {
				a.log.Debug("game over, bot stopping")
				return
			}
			a.step()
		}
	}
}

// step makes at most one move appropriate for the current phase.
func (a *Agent) step() {
	switch phase := a.game.Phase(); {
	case phase.IsDrafting():
		a.draftPick()
	case phase == rules.PhaseMageSelection:
		a.chooseMage()
	case phase == rules.PhaseMagicItemSelection:
		a.takeItem()
	case phase == rules.PhaseIncome:
		a.game.FinalizeIncome(a.player)
	case phase == rules.PhasePlaying:
		a.act()
	}
}

func (a *Agent) draftPick() {
	batch := a.game.CardsToPick(a.player)
	if len(batch) == 0 {
		return
	}
	pick := batch[a.rng.Intn(len(batch))]
	if res := a.game.PickCard(a.player, pick.Name); res.OK {
		a.log.Debug("picked", zap.String("card", pick.Name))
	}
}

func (a *Agent) chooseMage() {
	if a.mageChosen {
		return
	}
	options := a.game.MageOptions(a.player)
	if len(options) == 0 {
		return
	}
	choice := options[a.rng.Intn(len(options))]
	if res := a.game.SelectMage(a.player, choice.Name); res.OK {
		a.mageChosen = true
		a.log.Debug("mage chosen", zap.String("card", choice.Name))
	}
}

func (a *Agent) takeItem() {
	selector, active := a.game.MagicItemSelector()
	if !active || selector != a.player {
		return
	}
	items := a.game.View(a.player).MagicItems
	if len(items) == 0 {
		return
	}
	item := items[a.rng.Intn(len(items))]
	a.game.TakeMagicItem(a.player, item.Name)
}

// act uses a random payable ability, then tries to play a hand card, then
// discards for essence, and passes once nothing else works.
func (a *Agent) act() {
	if a.game.CurrentPlayer() != a.player {
		return
	}

	if refs := a.game.ActivatableAbilities(a.player); len(refs) > 0 && a.rng.Intn(2) == 0 {
		ref := refs[a.rng.Intn(len(refs))]
		if res := a.game.UseAbility(a.player, ref.CardName, ref.Index, game.CostChoices{}, game.EffectChoices{}); res.OK {
			a.log.Debug("ability used", zap.String("card", ref.CardName), zap.Int("ability", ref.Index))
			return
		}
	}

	hand := a.game.View(a.player).Players[a.player].Hand
	for _, c := range hand {
		if res := a.game.PlayCard(a.player, c.Name, nil); res.OK {
			a.log.Debug("card played", zap.String("card", c.Name))
			return
		}
	}
	if len(hand) > 0 && a.rng.Intn(2) == 0 {
		if res := a.game.DiscardForResources(a.player, hand[0].Name, nil); res.OK {
			return
		}
	}
	a.game.Pass(a.player, "")
}
