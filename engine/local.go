package engine

import (
	"fmt"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local runs a game between two in-process agents. Agents[0] plays x and
// Agents[1] plays o.
type Local struct {
	State    game.Board
	Agents   []agent.Agent
	observer func(step int, board game.Board)
}

func WithStart(board game.Board) Option {
	return func(e *Local) {
		e.State = board
	}
}

// WithObserver registers a callback invoked after every move.
func WithObserver(observer func(step int, board game.Board)) Option {
	return func(e *Local) {
		e.observer = observer
	}
}

func LocalEngine(agents []agent.Agent, options ...Option) *Local {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	e := &Local{
		State:  game.NewBoard(),
		Agents: agents,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop until the board is terminal.
func (e *Local) Run() (game.Symbol, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.ToMove(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("player %s is starting", e.State.ToMove())

	step := 1
	for !e.State.IsTerminal() {
		player := e.State.ToMove()
		next, searchMetric, err := e.Agents[agentIndex(player)].FindMove(e.State)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %s failed to move: %w", player, err)
		}
		if !isChild(e.State, next) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w: player %s played %s from %s", ErrIllegalMove, player, next.Key(), e.State.Key())
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: player %s played %s", step, player, next.Key())

		e.State = next
		if e.observer != nil {
			e.observer(step, next)
		}
		step++
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if winner != game.Empty {
		log.Info().Msgf("game ended after %d moves with winner %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game ended after %d moves in a draw", gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, nil
}

func agentIndex(player game.Symbol) int {
	if player == game.X {
		return 0
	}
	return 1
}

func isChild(parent, child game.Board) bool {
	for _, c := range parent.Children() {
		if c == child {
			return true
		}
	}
	return false
}
