package engine

import (
	"errors"
	"testing"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/searcher"
	"tictactoe/searcher/agent"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []int // cell indices, row-major
}

func (a *scriptedAgent) FindMove(board game.Board) (game.Board, metrics.SearchMetric, error) {
	cell := a.moves[0]
	a.moves = a.moves[1:]
	next, err := board.Play(cell/game.Size, cell%game.Size)
	return next, metrics.SearchMetric{Episodes: cell}, err
}

type fixedAgent struct {
	board game.Board
	err   error
}

func (a fixedAgent) FindMove(game.Board) (game.Board, metrics.SearchMetric, error) {
	return a.board, metrics.SearchMetric{}, a.err
}

func TestLocalEngine(t *testing.T) {
	t.Run("panics without two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine([]agent.Agent{agent.NewRandomAgent(1)}) })
	})

	t.Run("starts from the empty board", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)})
		require.Equal(t, game.NewBoard(), e.State)
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("scripted game with a winner", func(t *testing.T) {
		x := &scriptedAgent{moves: []int{0, 1, 2}}
		o := &scriptedAgent{moves: []int{3, 4}}
		var observed []string
		e := LocalEngine([]agent.Agent{x, o}, WithObserver(func(step int, board game.Board) {
			observed = append(observed, board.Key())
		}))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.X, winner)
		require.Equal(t, game.X, gameMetric.StartingPlayer)
		require.Equal(t, game.X, gameMetric.Winner)
		require.Equal(t, 5, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 5)
		require.Equal(t, game.O, moveMetrics[1].Player, "Players should alternate")
		require.Equal(t, 4, moveMetrics[3].Episodes, "Search metrics should be recorded per move")
		require.Equal(t, []string{"x........", "x..o.....", "xx.o.....", "xx.oo....", "xxxoo...."}, observed)
		require.Equal(t, "xxxoo....", e.State.Key())
	})

	t.Run("random agents finish a game", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{agent.NewRandomAgent(1), agent.NewRandomAgent(2)})

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
		require.Equal(t, e.State.Winner(), winner)
		require.Equal(t, e.State.Moves(), gameMetric.TotalMoves)
	})

	t.Run("mcts agents finish a game", func(t *testing.T) {
		newAgent := func(seed uint64) agent.Agent {
			return agent.NewEvaluationAgent(searcher.NewMCTS(searcher.WithSeed(seed), searcher.WithIterations(300)))
		}
		e := LocalEngine([]agent.Agent{newAgent(1), newAgent(2)})

		_, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
		require.GreaterOrEqual(t, gameMetric.TotalMoves, 5)
	})

	t.Run("starting from a given board", func(t *testing.T) {
		start, err := game.ParseBoard("xx.oo....", game.O)
		require.NoError(t, err)
		o := &scriptedAgent{moves: []int{5}}
		e := LocalEngine([]agent.Agent{fixedAgent{}, o}, WithStart(start))

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.O, winner)
		require.Equal(t, game.O, gameMetric.StartingPlayer)
		require.Equal(t, 1, gameMetric.TotalMoves)
	})

	t.Run("rejects illegal moves", func(t *testing.T) {
		e := LocalEngine([]agent.Agent{fixedAgent{board: game.NewBoard()}, agent.NewRandomAgent(1)})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("propagates agent errors", func(t *testing.T) {
		boom := errors.New("boom")
		e := LocalEngine([]agent.Agent{fixedAgent{err: boom}, agent.NewRandomAgent(1)})

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, boom)
	})
}
