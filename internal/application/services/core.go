// Package services implements the data access facade: the only component the
// rest of the application may use to read or mutate task and category data.
// Every operation is a whole-document read-modify-write against the store,
// serialized by one mutex so operations never observe partial writes.
package services

import (
	"sync"
	"time"

	"github.com/taskpanel/core/internal/infrastructure/logger"
	"github.com/taskpanel/core/internal/infrastructure/metrics"
	"github.com/taskpanel/core/internal/ports"
)

// Core bundles the data access services sharing one document store. One Core
// is constructed at application start and passed by reference to every
// consumer; there is no ambient global instance.
type Core struct {
	Categories *CategoryService
	Tasks      *TaskService
	Stats      *StatsService
}

// deps is the state shared by all services of one Core.
type deps struct {
	store   ports.DocumentStore
	mu      sync.Mutex
	logger  *logger.Logger
	metrics *metrics.Metrics
	latency time.Duration
}

// NewCore creates the service facade. latency is the simulated network delay
// applied at the service boundary before every operation; pass zero for
// deterministic tests. metrics may be nil to disable collection.
func NewCore(store ports.DocumentStore, log *logger.Logger, m *metrics.Metrics, latency time.Duration) *Core {
	d := &deps{
		store:   store,
		logger:  log,
		metrics: m,
		latency: latency,
	}

	return &Core{
		Categories: &CategoryService{deps: d},
		Tasks:      &TaskService{deps: d},
		Stats:      &StatsService{deps: d},
	}
}

// simulateLatency mirrors the delay a network-backed store would add. It is
// a plain delay with no cancellation path; callers await to completion.
func (d *deps) simulateLatency() {
	if d.latency > 0 {
		time.Sleep(d.latency)
	}
}
