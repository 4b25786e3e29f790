package engine

import (
	"errors"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

var ErrIllegalMove = errors.New("illegal move")

type Engine interface {
	// Run plays a game till there's a winner or the board is full
	Run() (winner game.Symbol, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
