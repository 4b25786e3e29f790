package searcher

import (
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, cells string, toMove game.Symbol) game.Board {
	t.Helper()
	b, err := game.ParseBoard(cells, toMove)
	require.NoError(t, err)
	return b
}

func TestNewTree(t *testing.T) {
	t.Run("non-terminal root", func(t *testing.T) {
		tr := newTree(game.NewBoard())

		require.Equal(t, 1, tr.size())
		require.Equal(t, noParent, tr.nodes[root].parent, "Root should have no parent")
		require.False(t, tr.nodes[root].terminal)
		require.False(t, tr.nodes[root].expanded)
		require.Zero(t, tr.nodes[root].visits)
	})

	t.Run("terminal root is fully expanded", func(t *testing.T) {
		tr := newTree(parse(t, "xxxoo....", game.O))

		require.True(t, tr.nodes[root].terminal)
		require.True(t, tr.nodes[root].expanded, "Terminal nodes should be fully expanded")
		require.Empty(t, tr.nodes[root].children)
	})
}

func TestTreeExpand(t *testing.T) {
	t.Run("expanding children in row-major order", func(t *testing.T) {
		tr := newTree(parse(t, "xoxoxo...", game.X))

		first := tr.expand(root)
		require.Equal(t, "xoxoxox..", tr.nodes[first].board.Key(), "First empty cell should be expanded first")
		require.Equal(t, root, tr.nodes[first].parent)
		require.True(t, tr.nodes[first].terminal, "Completed diagonal should be terminal")
		require.False(t, tr.nodes[root].expanded, "Node should not be fully expanded yet")

		second := tr.expand(root)
		require.Equal(t, "xoxoxo.x.", tr.nodes[second].board.Key())
		require.False(t, tr.nodes[root].expanded)

		third := tr.expand(root)
		require.Equal(t, "xoxoxo..x", tr.nodes[third].board.Key())
		require.True(t, tr.nodes[root].expanded, "Node should be fully expanded once every legal child exists")
		require.Equal(t, []int{first, second, third}, tr.nodes[root].children)
		require.Len(t, tr.nodes[root].keys, 3)
	})

	t.Run("panics on fully expanded node", func(t *testing.T) {
		tr := newTree(parse(t, "xoxooxox.", game.X))
		tr.expand(root)

		require.True(t, tr.nodes[root].expanded)
		require.Panics(t, func() { tr.expand(root) }, "Expanding without an unexpanded child is an invariant violation")
	})

	t.Run("same position under different parents is not merged", func(t *testing.T) {
		start := parse(t, "x...o....", game.X)
		play := func(b game.Board, cells ...int) game.Board {
			for _, c := range cells {
				var err error
				b, err = b.Play(c/game.Size, c%game.Size)
				require.NoError(t, err)
			}
			return b
		}

		tr := newTree(start)
		a := tr.add(root, play(start, 1))
		a = tr.add(a, play(start, 1, 5))
		a = tr.add(a, play(start, 1, 5, 2))
		b := tr.add(root, play(start, 2))
		b = tr.add(b, play(start, 2, 5))
		b = tr.add(b, play(start, 2, 5, 1))

		require.Equal(t, tr.nodes[a].board.Key(), tr.nodes[b].board.Key(), "Both lines should transpose")
		require.NotEqual(t, a, b, "Each parent should own its own child node")
		require.Equal(t, a, tr.nodes[tr.nodes[a].parent].keys["xxx.oo..."])
		require.Equal(t, b, tr.nodes[tr.nodes[b].parent].keys["xxx.oo..."])
	})
}

func TestTreeBackup(t *testing.T) {
	tr := newTree(game.NewBoard())
	child := tr.expand(root)
	grandChild := tr.expand(child)

	tr.backup(grandChild, Win)
	tr.backup(child, Loss)

	require.Equal(t, 1, tr.nodes[grandChild].visits)
	require.Equal(t, Win, tr.nodes[grandChild].score)
	require.Equal(t, 2, tr.nodes[child].visits, "Backup should reach every ancestor")
	require.Equal(t, 0.0, tr.nodes[child].score, "Outcome should not flip sign between levels")
	require.Equal(t, 2, tr.nodes[root].visits)
	require.Equal(t, 0.0, tr.nodes[root].score)
}
