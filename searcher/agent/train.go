package agent

import (
	"math"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play that samples root moves
// by visit count instead of always playing the best one.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return trainingAgent{
		mcts:        mcts,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) FindMove(board game.Board) (game.Board, metrics.SearchMetric, error) {
	analysis, err := a.mcts.Analyze(board)
	if err != nil {
		return game.Board{}, metrics.SearchMetric{}, err
	}
	policy := adjustTemperature(analysis.Children, a.temperature)
	return sample(analysis.Children, policy, a.rng.Float64()), analysis.Metric, nil
}

func adjustTemperature(children []searcher.ChildStat, temperature float64) []float64 {
	// Compute temperature-adjusted move probabilities
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]float64, len(children))
	for i, child := range children {
		prob := math.Pow(float64(child.Visits), exponent)
		sum += prob
		adjusted[i] = prob
	}
	// Normalize
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(children []searcher.ChildStat, policy []float64, sampled float64) game.Board {
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return children[i].Board
		}
	}
	return children[len(children)-1].Board // Fallback in case of rounding errors
}
