package game

// VictoryResult is the terminal outcome. Winner is -1 when the game ended in
// a dead tie.
type VictoryResult struct {
	GameOver bool
	Winner   int
	IsTie    bool
	Scores   []int
}

const victoryThreshold = 10

// evaluateVictory scores every player at the end of a round. The game ends
// once anyone reaches the threshold; ties on points break on total essence
// value, with gold counting double. A tie on both is a shared win.
func (g *Game) evaluateVictory() VictoryResult {
	res := VictoryResult{Winner: -1}
	for _, p := range g.players {
		res.Scores = append(res.Scores, p.Points())
	}

	best := 0
	for _, s := range res.Scores {
		if s > best {
			best = s
		}
	}
	if best < victoryThreshold {
		return res
	}
	res.GameOver = true

	bestValue := -1
	for i, s := range res.Scores {
		if s != best {
			continue
		}
		v := g.players[i].Pool.Value()
		switch {
		case v > bestValue:
			bestValue = v
			res.Winner = i
			res.IsTie = false
		case v == bestValue:
			res.IsTie = true
		}
	}
	if res.IsTie {
		res.Winner = -1
	}
	return res
}
