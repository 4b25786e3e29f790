package metrics

import (
	"time"

	"tictactoe/game"
)

type SearchMetric struct {
	Iterations   int
	Exploration  float64
	Duration     time.Duration
	Episodes     int
	WinPlayouts  int
	DrawPlayouts int
	TreeSize     int
}

type MoveMetric struct {
	Step   int
	Player game.Symbol
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Symbol
	Winner         game.Symbol // game.Empty on a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(iterations int, exploration float64)
	AddEpisode()
	AddWinPlayout()
	AddDrawPlayout()
	Complete(treeSize int) SearchMetric
}

// Search is single threaded, so the collector does not need atomics.
type collector struct {
	iterations   int
	exploration  float64
	startTime    time.Time
	episodes     int
	winPlayouts  int
	drawPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(iterations int, exploration float64) {
	*m = collector{
		iterations:  iterations,
		exploration: exploration,
		startTime:   time.Now(),
	}
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddWinPlayout() {
	m.winPlayouts++
}

func (m *collector) AddDrawPlayout() {
	m.drawPlayouts++
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Iterations:   m.iterations,
		Exploration:  m.exploration,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		WinPlayouts:  m.winPlayouts,
		DrawPlayouts: m.drawPlayouts,
		TreeSize:     treeSize,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(iterations int, exploration float64) {}
func (m *dummyCollector) AddEpisode()                                {}
func (m *dummyCollector) AddWinPlayout()                             {}
func (m *dummyCollector) AddDrawPlayout()                            {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric         { return SearchMetric{} }
