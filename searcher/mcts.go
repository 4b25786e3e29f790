package searcher

import (
	"fmt"
	"math"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"
	"tictactoe/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations  int
	exploration float64
	winSymbol   game.Symbol
	rng         *rand.Rand
	metrics     metrics.Collector
}

// ChildStat describes one root move after a search.
type ChildStat struct {
	Board  game.Board
	Visits int
	Score  float64
	Value  float64 // move score without exploration
}

type Analysis struct {
	Best       game.Board
	RootVisits int
	TreeSize   int
	Children   []ChildStat
	Metric     metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithWinSymbol sets the symbol whose moves count as positive outcomes.
func WithWinSymbol(symbol game.Symbol) Option {
	return func(m *MCTS) {
		if symbol == game.X || symbol == game.O {
			m.winSymbol = symbol
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.ITERATIONS,
		exploration: meta.EXPLORATION,
		winSymbol:   game.X,
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

func (m *MCTS) Iterations() int {
	return m.iterations
}

func (m *MCTS) Exploration() float64 {
	return m.exploration
}

// Search runs the configured number of iterations on a fresh tree rooted at
// board and returns the child of the root with the best exploitation score.
// Every root move is only considered if iterations is at least the number of
// legal moves in board; with fewer iterations the choice is made among the
// moves expanded so far.
func (m *MCTS) Search(board game.Board) (game.Board, error) {
	analysis, err := m.Analyze(board)
	if err != nil {
		return game.Board{}, err
	}
	return analysis.Best, nil
}

// Analyze is Search that also reports the statistics of every root child.
func (m *MCTS) Analyze(board game.Board) (Analysis, error) {
	if board.IsTerminal() {
		return Analysis{}, fmt.Errorf("%w: %s", ErrTerminalState, board.Key())
	}

	t := newTree(board)
	m.metrics.Start(m.iterations, m.exploration)
	start := time.Now()
	for i := 0; i < m.iterations; i++ {
		m.simulate(t)
		m.metrics.AddEpisode()
	}

	best := m.bestChild(t, root, 0)
	analysis := Analysis{
		Best:       t.nodes[best].board,
		RootVisits: t.nodes[root].visits,
		TreeSize:   t.size(),
		Children:   m.childStats(t, root),
		Metric:     m.metrics.Complete(t.size()),
	}

	log.Debug().
		Str("root", board.Key()).
		Str("best", analysis.Best.Key()).
		Int("iterations", m.iterations).
		Int("tree_size", analysis.TreeSize).
		Dur("duration", time.Since(start)).
		Msg("search complete")

	return analysis, nil
}

func (m *MCTS) simulate(t *tree) {
	leaf := m.selectThenExpand(t)
	outcome := m.rollout(t.nodes[leaf].board)
	t.backup(leaf, outcome)
}

func (m *MCTS) selectThenExpand(t *tree) int {
	id := root
	for !t.nodes[id].terminal {
		if !t.nodes[id].expanded {
			return t.expand(id)
		}
		id = m.bestChild(t, id, m.exploration)
	}
	return id
}

// rollout plays uniformly random moves until a line is completed. Running
// out of moves first is a draw.
func (m *MCTS) rollout(board game.Board) float64 {
	for !board.IsWin() {
		children := board.Children()
		if len(children) == 0 {
			m.metrics.AddDrawPlayout()
			return Draw
		}
		board = children[m.rng.Intn(len(children))]
	}
	m.metrics.AddWinPlayout()
	return m.sign(board)
}

// sign is Win when the win symbol made the move leading to board, Loss otherwise.
func (m *MCTS) sign(board game.Board) float64 {
	if board.LastMover() == m.winSymbol {
		return Win
	}
	return Loss
}

// bestChild returns the child of id with the highest UCT value for the
// exploration constant c. Ties are broken uniformly at random.
func (m *MCTS) bestChild(t *tree, id int, c float64) int {
	parent := &t.nodes[id]
	if len(parent.children) == 0 {
		panic("node has no children")
	}

	policy := newUCT(c, parent.visits)
	maxScore := math.Inf(-1)
	ties := make([]int, 0, len(parent.children))
	for _, childID := range parent.children {
		child := &t.nodes[childID]
		score := policy.evaluate(m.sign(child.board), child.score, child.visits)
		if score > maxScore {
			maxScore = score
			ties = append(ties[:0], childID)
		} else if score == maxScore {
			ties = append(ties, childID)
		}
	}

	if len(ties) == 0 {
		panic(fmt.Sprintf("no scorable child under %s", parent.board.Key()))
	}
	return ties[m.rng.Intn(len(ties))]
}

func (m *MCTS) childStats(t *tree, id int) []ChildStat {
	parent := &t.nodes[id]
	policy := newUCT(0, parent.visits)
	stats := make([]ChildStat, 0, len(parent.children))
	for _, childID := range parent.children {
		child := &t.nodes[childID]
		stats = append(stats, ChildStat{
			Board:  child.board,
			Visits: child.visits,
			Score:  child.score,
			Value:  policy.evaluate(m.sign(child.board), child.score, child.visits),
		})
	}
	return stats
}
