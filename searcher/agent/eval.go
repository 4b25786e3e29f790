package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) FindMove(board game.Board) (game.Board, metrics.SearchMetric, error) {
	analysis, err := a.mcts.Analyze(board)
	if err != nil {
		return game.Board{}, metrics.SearchMetric{}, err
	}
	return analysis.Best, analysis.Metric, nil
}
