package search

import (
	"sync/atomic"
	"time"
)

// Metrics summarizes one best-move query.
type Metrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // interior nodes expanded
	Leaves    int64 // positions whose value came from the heuristic
	Cutoffs   int64 // sibling groups abandoned on alpha >= beta
}

// Collector observes the engine's queries. It sits on the search hot path, so
// implementations must be cheap; the default discards everything.
type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() Metrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start marks the beginning of a query and resets the counters.
func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() Metrics {
	return Metrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		Leaves:    c.leaves.Load(),
		Cutoffs:   c.cutoffs.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (noCollector) Start()            {}
func (noCollector) AddNode()          {}
func (noCollector) AddLeaf()          {}
func (noCollector) AddCutoff()        {}
func (noCollector) Complete() Metrics { return Metrics{} }
