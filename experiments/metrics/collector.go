package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Goroutines  int
	Duration    time.Duration
	Candidates  int // moves considered for the acting player
	Simulations int // board snapshots produced
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Score  int // acting player's score after the move
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string // "" on a draw
	RedScore       int
	BlueScore      int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector is safe for concurrent use by the goroutines of one search.
type Collector interface {
	Start(strategy string, goroutines int)
	AddCandidate()
	AddSimulation()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	goroutines  int
	startTime   time.Time
	candidates  atomic.Int32
	simulations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.goroutines = goroutines
	m.candidates.Store(0)
	m.simulations.Store(0)
}

func (m *collector) AddCandidate() {
	m.candidates.Add(1)
}

func (m *collector) AddSimulation() {
	m.simulations.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Candidates:  int(m.candidates.Load()),
		Simulations: int(m.simulations.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, goroutines int) {}
func (m *dummyCollector) AddCandidate()                         {}
func (m *dummyCollector) AddSimulation()                        {}
func (m *dummyCollector) Complete() SearchMetric                { return SearchMetric{} }
