// Simulation ties the shop systems together and runs them each tick.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/deridev/minimercado/internal/catalog"
	"github.com/deridev/minimercado/internal/customer"
	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/events"
	"github.com/deridev/minimercado/internal/stock"
	"github.com/deridev/minimercado/internal/upgrade"
)

// Params configures a new simulation.
type Params struct {
	Catalog  []catalog.Item
	Ledger   *stock.Ledger
	Upgrades *upgrade.Registry
	Economy  *economy.Store
	Rand     *rand.Rand // seedable; every stochastic decision draws from it
	Seed     int64      // seeds the footfall curve

	DayLength   time.Duration
	DailyUpkeep float64
}

// Simulation holds the complete shop state. All fields are owned by the
// engine goroutine; other goroutines interact only through Do (commands
// in) and Latest (snapshots out).
type Simulation struct {
	Catalog  []catalog.Item
	Ledger   *stock.Ledger
	Upgrades *upgrade.Registry
	Economy  *economy.Store
	Factory  *customer.Factory
	Events   *events.Log

	Customers []*customer.Customer
	Tick      uint64
	Paused    bool

	// Journal receives every emitted event alongside the current day.
	// Wired to the persistence event table; nil is fine.
	Journal func(day int, event string)

	// OnSave is called after every applied player command and every day
	// boundary, while the state is quiescent.
	OnSave func()

	rng      *rand.Rand
	footfall opensimplex.Noise

	dayLength   time.Duration
	dailyUpkeep float64
	lastDay     time.Time

	commands chan Command
	snapshot snapshotHolder
}

// NewSimulation wires the shop systems together and publishes an initial
// snapshot so readers never observe a nil state.
func NewSimulation(p Params) *Simulation {
	if p.Catalog == nil {
		p.Catalog = catalog.Items()
	}
	if p.Ledger == nil {
		p.Ledger = stock.NewLedger()
	}
	if p.Upgrades == nil {
		p.Upgrades = upgrade.NewRegistry()
	}
	if p.Economy == nil {
		p.Economy = economy.NewStore()
	}
	if p.Rand == nil {
		p.Rand = rand.New(rand.NewSource(p.Seed))
	}
	if p.DayLength <= 0 {
		p.DayLength = 3 * time.Minute
	}
	if p.DailyUpkeep <= 0 {
		p.DailyUpkeep = economy.DefaultUpkeep
	}

	s := &Simulation{
		Catalog:     p.Catalog,
		Ledger:      p.Ledger,
		Upgrades:    p.Upgrades,
		Economy:     p.Economy,
		Factory:     customer.NewFactory(p.Rand),
		Events:      events.NewLog(),
		rng:         p.Rand,
		footfall:    opensimplex.NewNormalized(p.Seed),
		dayLength:   p.DayLength,
		dailyUpkeep: p.DailyUpkeep,
		lastDay:     time.Now(),
		commands:    make(chan Command, 16),
	}
	s.Economy.Emit = s.emit
	s.publish()
	return s
}

// emit pushes a notification onto the feed and into the journal.
func (s *Simulation) emit(event string) {
	s.Events.Push(event)
	if s.Journal != nil {
		s.Journal(s.Economy.Day, event)
	}
}

// TickPopulation advances the population loop by one tick: player
// commands are drained first, then a spawn attempt, then every customer
// is stepped once in list order. Customers that finished leaving are
// compacted out after the pass, and a fresh snapshot is published.
func (s *Simulation) TickPopulation() {
	s.Tick++
	s.drainCommands()

	if s.Paused {
		s.publish()
		return
	}

	s.trySpawn()

	kept := s.Customers[:0]
	for _, c := range s.Customers {
		if done := s.stepCustomer(c); !done {
			kept = append(kept, c)
		}
	}
	// Drop trailing references so departed customers can be collected.
	for i := len(kept); i < len(s.Customers); i++ {
		s.Customers[i] = nil
	}
	s.Customers = kept

	s.publish()
}

// CheckDay closes the day once the configured day length has elapsed.
// The day length is a soft minimum, not an exact period.
func (s *Simulation) CheckDay(now time.Time) {
	if now.Sub(s.lastDay) < s.dayLength {
		return
	}
	s.lastDay = now
	s.Economy.AdvanceDay(s.dailyUpkeep)
	s.save()
	s.publish()
}

// trySpawn admits a new customer with probability tied to reputation,
// modulated by the footfall curve, as long as there is room.
func (s *Simulation) trySpawn() {
	if len(s.Customers) >= economy.CustomerCapacity(s.Upgrades) {
		return
	}
	if s.rng.Float64() >= s.Economy.Reputation*s.footfallAt(s.Tick) {
		return
	}
	if s.rng.Float64() <= 0.5 {
		return
	}

	c := s.Factory.New()
	s.Customers = append(s.Customers, c)
	s.emit(fmt.Sprintf("%s entered the store", c.Name))
}

// footfallAt samples the slow traffic curve, in [0.75, 1.25]. Smooth
// noise keeps arrivals wavy instead of uniformly random across a day.
func (s *Simulation) footfallAt(tick uint64) float64 {
	return 0.75 + 0.5*s.footfall.Eval2(float64(tick)*0.004, 0)
}

func (s *Simulation) save() {
	if s.OnSave != nil {
		s.OnSave()
	}
}
