package agent

import (
	"fmt"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board) (game.Board, metrics.SearchMetric, error) {
	children := board.Children()
	if len(children) == 0 {
		return game.Board{}, metrics.SearchMetric{}, fmt.Errorf("%w: %s", searcher.ErrTerminalState, board.Key())
	}
	return children[a.rng.Intn(len(children))], metrics.SearchMetric{}, nil
}
