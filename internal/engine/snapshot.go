// Snapshots are the read side of the simulation: an immutable view
// rebuilt after every tick and published behind an atomic pointer, so
// the presentation layer never observes a half-applied pass.
package engine

import (
	"sync/atomic"

	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/stock"
	"github.com/deridev/minimercado/internal/upgrade"
)

// Snapshot is a consistent read-only view of the shop after one tick.
type Snapshot struct {
	Tick             uint64  `json:"tick"`
	Day              int     `json:"day"`
	Balance          float64 `json:"balance"`
	BalanceDisplay   string  `json:"balance_display"`
	Reputation       float64 `json:"reputation"`
	Paused           bool    `json:"paused"`
	OccupiedCashiers int     `json:"occupied_cashiers"`
	CustomerCapacity int     `json:"customer_capacity"`

	Customers []CustomerView `json:"customers"`
	Stock     []StockView    `json:"stock"`
	Upgrades  []UpgradeView  `json:"upgrades"`
	Events    []string       `json:"events"`
}

// CustomerView is one customer as shown to the presentation layer.
type CustomerView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	State        string  `json:"state"`
	Activity     string  `json:"activity"`
	Wallet       float64 `json:"wallet"`
	Satisfaction float64 `json:"satisfaction"`
	ItemsBought  int     `json:"items_bought"`
}

// StockView is one catalog item with its shelf state.
type StockView struct {
	Emoji      string  `json:"emoji"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	BuyPrice   float64 `json:"buy_price"`
	SellPrice  float64 `json:"sell_price"`
	Quantity   int     `json:"quantity"`
	Capacity   int     `json:"capacity"`
	CanRestock bool    `json:"can_restock"`
}

// UpgradeView is one upgrade track with its next cost.
type UpgradeView struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Emoji     string  `json:"emoji"`
	Level     int     `json:"level"`
	NextCost  float64 `json:"next_cost"`
	CanAfford bool    `json:"can_afford"`
}

type snapshotHolder struct {
	ptr atomic.Pointer[Snapshot]
}

// Latest returns the most recently published snapshot.
func (s *Simulation) Latest() *Snapshot {
	return s.snapshot.ptr.Load()
}

// publish rebuilds and swaps in the snapshot. Called only from the
// engine goroutine after a pass completes.
func (s *Simulation) publish() {
	storageLevel := s.Upgrades.Level(upgrade.Storage)

	snap := &Snapshot{
		Tick:             s.Tick,
		Day:              s.Economy.Day,
		Balance:          s.Economy.Balance,
		BalanceDisplay:   "$" + economy.Money(s.Economy.Balance),
		Reputation:       s.Economy.Reputation,
		Paused:           s.Paused,
		OccupiedCashiers: s.Economy.OccupiedCashiers,
		CustomerCapacity: economy.CustomerCapacity(s.Upgrades),
		Customers:        make([]CustomerView, 0, len(s.Customers)),
		Stock:            make([]StockView, 0, len(s.Catalog)),
		Events:           s.Events.Recent(),
	}

	for _, c := range s.Customers {
		snap.Customers = append(snap.Customers, CustomerView{
			ID:           c.ID.String(),
			Name:         c.Name,
			State:        c.State.Kind.String(),
			Activity:     c.State.Describe(),
			Wallet:       c.Wallet,
			Satisfaction: c.Satisfaction,
			ItemsBought:  c.ItemsBought,
		})
	}

	for _, it := range s.Catalog {
		qty := s.Ledger.Quantity(it)
		capacity := stock.Capacity(it, storageLevel)
		snap.Stock = append(snap.Stock, StockView{
			Emoji:      it.Emoji,
			Name:       it.Name,
			Category:   it.Category.Name,
			BuyPrice:   it.BuyPrice,
			SellPrice:  it.SellPrice,
			Quantity:   qty,
			Capacity:   capacity,
			CanRestock: s.Economy.Balance >= it.BuyPrice && qty < capacity,
		})
	}

	for _, d := range upgrade.Descriptors() {
		cost := s.Upgrades.CostToAdvance(d.Kind)
		snap.Upgrades = append(snap.Upgrades, UpgradeView{
			Kind:      string(d.Kind),
			Name:      d.Name,
			Emoji:     d.Emoji,
			Level:     s.Upgrades.Level(d.Kind),
			NextCost:  cost,
			CanAfford: s.Economy.Balance >= cost,
		})
	}

	s.snapshot.ptr.Store(snap)
}
