package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, cells string, toMove Symbol) Board {
	t.Helper()
	b, err := ParseBoard(cells, toMove)
	require.NoError(t, err)
	return b
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, ".........", b.Key())
	require.Equal(t, X, b.ToMove(), "x should move first")
	require.Equal(t, O, b.LastMover(), "o should hold the last mover slot on an empty board")
	require.False(t, b.IsTerminal())
	require.Len(t, b.Children(), 9)
}

func TestParseBoard(t *testing.T) {
	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseBoard("xx", O)
		require.ErrorIs(t, err, ErrBadBoard)
	})

	t.Run("rejects unknown symbol", func(t *testing.T) {
		_, err := ParseBoard("xx.....z.", O)
		require.ErrorIs(t, err, ErrBadBoard)
	})

	t.Run("rejects empty mover", func(t *testing.T) {
		_, err := ParseBoard(".........", Empty)
		require.ErrorIs(t, err, ErrBadBoard)
	})

	t.Run("sets both mover slots", func(t *testing.T) {
		b := mustParse(t, "xx.oo....", X)
		require.Equal(t, X, b.ToMove())
		require.Equal(t, O, b.LastMover())
		require.Equal(t, 4, b.Moves())
	})
}

func TestIsTerminal(t *testing.T) {
	wins := map[string]string{
		"top row":        "xxx......",
		"middle row":     "...ooo...",
		"bottom row":     "......xxx",
		"left column":    "o..o..o..",
		"middle column":  ".x..x..x.",
		"right column":   "..o..o..o",
		"main diagonal":  "x...x...x",
		"anti diagonal":  "..o.o.o..",
		"full board win": "xxxooxoox",
	}
	for name, cells := range wins {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, cells, O)
			require.True(t, b.IsWin(), "Board %s should be a win", cells)
			require.True(t, b.IsTerminal())
			require.Empty(t, b.Children(), "Terminal board should have no children")
		})
	}

	t.Run("full board without a line is a draw", func(t *testing.T) {
		b := mustParse(t, "xoxxoooxx", O)
		require.False(t, b.IsWin())
		require.True(t, b.IsDraw())
		require.True(t, b.IsTerminal())
		require.Empty(t, b.Children())
	})

	t.Run("alternating full board is a diagonal win", func(t *testing.T) {
		b := mustParse(t, "xoxoxoxox", O)
		require.True(t, b.IsWin())
		require.Equal(t, X, b.Winner())
	})

	t.Run("broken lines are not wins", func(t *testing.T) {
		for _, cells := range []string{"xx.......", "x.x......", "xox......", "x...o...x", "........."} {
			b := mustParse(t, cells, O)
			require.False(t, b.IsWin(), "Board %s should not be a win", cells)
			require.False(t, b.IsTerminal())
		}
	})
}

func TestChildren(t *testing.T) {
	b := mustParse(t, "xo.x.o...", X)
	children := b.Children()

	require.Len(t, children, 9-b.Moves(), "Each empty cell should yield one child")
	for _, child := range children {
		diff := b.Diff(child)
		require.Len(t, diff, 1, "Child should differ in exactly one cell")
		require.Equal(t, Empty, b.cells[diff[0]])
		require.Equal(t, X, child.cells[diff[0]], "Mover should be placed")
		require.Equal(t, O, child.ToMove(), "Turn should pass to the opponent")
		require.Equal(t, X, child.LastMover())
	}
	require.Equal(t, "xoxx.o...", children[0].Key(), "Children should follow row-major order")
	require.Equal(t, b.Key(), "xo.x.o...", "Parent should not change")
}

func TestKey(t *testing.T) {
	a := mustParse(t, "x...o....", X)
	require.Equal(t, a.Key(), a.Key())

	// Same cells reached through a different move order
	b := NewBoard()
	b, err := b.Play(0, 0)
	require.NoError(t, err)
	b, err = b.Play(1, 1)
	require.NoError(t, err)
	require.Equal(t, a.Key(), b.Key())
	require.Equal(t, a, b)
}

func TestPlay(t *testing.T) {
	t.Run("rejects out of bounds", func(t *testing.T) {
		_, err := NewBoard().Play(3, 0)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("rejects occupied cell", func(t *testing.T) {
		b, err := NewBoard().Play(1, 2)
		require.NoError(t, err)
		_, err = b.Play(1, 2)
		require.ErrorIs(t, err, ErrOccupied)
	})

	t.Run("rejects moves after a win", func(t *testing.T) {
		b := mustParse(t, "xxx.oo...", O)
		_, err := b.Play(2, 2)
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("places mover and swaps turn", func(t *testing.T) {
		b, err := NewBoard().Play(2, 1)
		require.NoError(t, err)
		require.Equal(t, X, b.Cell(2, 1))
		require.Equal(t, O, b.ToMove())
		require.Equal(t, X, b.LastMover())
	})
}

func TestString(t *testing.T) {
	b := mustParse(t, "x...o....", X)
	require.Contains(t, b.String(), "\"x\" to move:")
	require.Contains(t, b.String(), " x . .\n . o .\n . . .\n")
}
