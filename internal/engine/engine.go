// Package engine provides the tick-based simulation loop and the
// simulation state it drives.
package engine

import (
	"log/slog"
	"sync"
	"time"
)

// Default scheduling periods. The population loop steps every customer;
// the day check fires often but only closes a day once the configured
// day length has elapsed on the wall clock.
const (
	DefaultPopulationInterval = 1200 * time.Millisecond
	DefaultDayCheckInterval   = time.Second
)

// Engine drives the simulation with two independent periodic timers.
// All callbacks run on the engine goroutine, so everything they touch is
// single-owner state.
type Engine struct {
	PopulationInterval time.Duration
	DayCheckInterval   time.Duration

	OnPopulationTick func()
	OnDayCheck       func(now time.Time)

	stop     chan struct{}
	stopOnce sync.Once
}

// NewEngine creates an engine with the given periods, falling back to
// the defaults for non-positive values.
func NewEngine(populationInterval, dayCheckInterval time.Duration) *Engine {
	if populationInterval <= 0 {
		populationInterval = DefaultPopulationInterval
	}
	if dayCheckInterval <= 0 {
		dayCheckInterval = DefaultDayCheckInterval
	}
	return &Engine{
		PopulationInterval: populationInterval,
		DayCheckInterval:   dayCheckInterval,
		stop:               make(chan struct{}),
	}
}

// Run blocks, firing the two timers until Stop is called.
func (e *Engine) Run() {
	popTicker := time.NewTicker(e.PopulationInterval)
	defer popTicker.Stop()
	dayTicker := time.NewTicker(e.DayCheckInterval)
	defer dayTicker.Stop()

	slog.Info("simulation engine started",
		"population_interval", e.PopulationInterval,
		"day_check_interval", e.DayCheckInterval,
	)

	for {
		select {
		case <-popTicker.C:
			if e.OnPopulationTick != nil {
				e.OnPopulationTick()
			}
		case now := <-dayTicker.C:
			if e.OnDayCheck != nil {
				e.OnDayCheck(now)
			}
		case <-e.stop:
			slog.Info("simulation engine stopped")
			return
		}
	}
}

// Stop halts the loop. Safe to call more than once.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stop) })
}
