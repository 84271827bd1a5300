// Package poolmetrics exports pool statistics as Prometheus metrics.
package poolmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/joshuapare/poolkit/pool"
)

const (
	namespace = "poolkit"
	subsystem = "pool"

	labelPool      = "pool"
	labelState     = "state"
	labelDirection = "direction"
)

// Collector reads pool.Stats on every scrape.
type Collector struct {
	p  *pool.Pool
	mu sync.Locker

	capacity      *prometheus.Desc
	allocated     *prometheus.Desc
	free          *prometheus.Desc
	largestFree   *prometheus.Desc
	runs          *prometheus.Desc
	fragmentation *prometheus.Desc
	allocs        *prometheus.Desc
	allocFailures *prometheus.Desc
	frees         *prometheus.Desc
	freeFailures  *prometheus.Desc
	splits        *prometheus.Desc
	coalesces     *prometheus.Desc
}

// NewCollector returns a collector for p labelled pool=name.
// Pools are not thread-safe: mu must be the lock that guards p, and is held
// while statistics are read. A nil mu is allowed when p is never mutated
// concurrently with a scrape.
func NewCollector(name string, p *pool.Pool, mu sync.Locker) *Collector {
	labels := prometheus.Labels{labelPool: name}
	desc := func(name, help string, variable ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystem, name), help, variable, labels)
	}
	return &Collector{
		p:  p,
		mu: mu,

		capacity:      desc("capacity_bytes", "Size of the pool arena."),
		allocated:     desc("allocated_bytes", "Bytes held by allocated runs."),
		free:          desc("free_bytes", "Bytes held by free runs."),
		largestFree:   desc("largest_free_bytes", "Length of the largest free run."),
		runs:          desc("runs", "Number of runs by state.", labelState),
		fragmentation: desc("fragmentation_ratio", "Share of free bytes outside the largest free run."),
		allocs:        desc("alloc_total", "Successful allocations."),
		allocFailures: desc("alloc_failures_total", "Rejected allocations."),
		frees:         desc("free_total", "Successful frees."),
		freeFailures:  desc("free_failures_total", "Rejected frees."),
		splits:        desc("splits_total", "Allocations that split a free run."),
		coalesces:     desc("coalesce_total", "Merges of a freed run with a free neighbor.", labelDirection),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.allocated
	ch <- c.free
	ch <- c.largestFree
	ch <- c.runs
	ch <- c.fragmentation
	ch <- c.allocs
	ch <- c.allocFailures
	ch <- c.frees
	ch <- c.freeFailures
	ch <- c.splits
	ch <- c.coalesces
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.mu != nil {
		c.mu.Lock()
	}
	s := c.p.Stats()
	if c.mu != nil {
		c.mu.Unlock()
	}

	gauge := func(d *prometheus.Desc, v float64, lvs ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, lvs...)
	}
	counter := func(d *prometheus.Desc, v uint64, lvs ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v), lvs...)
	}

	gauge(c.capacity, float64(s.Capacity))
	gauge(c.allocated, float64(s.Allocated))
	gauge(c.free, float64(s.Free))
	gauge(c.largestFree, float64(s.LargestFree))
	gauge(c.runs, float64(s.FreeRuns), "free")
	gauge(c.runs, float64(s.AllocatedRuns), "allocated")
	gauge(c.fragmentation, s.Fragmentation())
	counter(c.allocs, s.AllocCalls)
	counter(c.allocFailures, s.AllocFailures)
	counter(c.frees, s.FreeCalls)
	counter(c.freeFailures, s.FreeFailures)
	counter(c.splits, s.SplitCount)
	counter(c.coalesces, s.CoalesceForward, "forward")
	counter(c.coalesces, s.CoalesceBackward, "backward")
}
