package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Cutoffs   int
	Exhausted bool // No applicable move at the root
}

type MoveMetric struct {
	Step   int
	Player int // Seat index, 0 moves first
	Agent  int // AgentConfig.ID
	SearchMetric
}

type GameMetric struct {
	StartingAgent int // AgentConfig.ID
	WinnerAgent   int // AgentConfig.ID, -1 on draw or stalled game
	Draw          bool
	Stalled       bool
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
	FinalRed      int
	FinalBlue     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetExhausted(value bool)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int32
	leaves    atomic.Int32
	cutoffs   atomic.Int32
	exhausted atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.exhausted.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetExhausted(value bool) {
	m.exhausted.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		Exhausted: m.exhausted.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)         {}
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) AddLeaf()                {}
func (m *dummyCollector) AddCutoff()              {}
func (m *dummyCollector) SetExhausted(value bool) {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
