package agent

import (
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

type Agent interface {
	// FindMove returns the position after the agent's move and performance metrics (if collected) from the search
	FindMove(board game.Board) (game.Board, metrics.SearchMetric, error)
}
