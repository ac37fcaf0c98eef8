// Package economy owns the store's money, reputation, day counter and
// cashier occupancy, and exposes the player-facing transactions.
//
// There are no error paths here: a transaction that cannot be afforded
// or would overflow capacity is simply a no-op, mirroring how the
// simulation treats every invalid action.
package economy

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/deridev/minimercado/internal/catalog"
	"github.com/deridev/minimercado/internal/stock"
	"github.com/deridev/minimercado/internal/upgrade"
)

// Tuning defaults and hard bounds.
const (
	DefaultBalance    = 100.0
	DefaultReputation = 0.5
	DefaultUpkeep     = 10.0

	MinReputation = 0.1
	MaxReputation = 1.0
)

// Store is the economic state of the shop.
type Store struct {
	Balance          float64
	Reputation       float64
	Day              int
	OccupiedCashiers int

	// Emit receives every notification the store produces. Nil is fine.
	Emit func(event string)
}

// NewStore returns a store with the documented starting values.
func NewStore() *Store {
	return Restore(DefaultBalance, DefaultReputation, 1)
}

// Restore builds a store from persisted values, clamping them into their
// legal ranges.
func Restore(balance, reputation float64, day int) *Store {
	if balance < 0 {
		balance = 0
	}
	if day < 1 {
		day = 1
	}
	s := &Store{Balance: balance, Day: day, Reputation: MinReputation}
	s.AdjustReputation(reputation - MinReputation)
	return s
}

func (s *Store) emit(event string) {
	if s.Emit != nil {
		s.Emit(event)
	}
}

// Money renders an amount the way notifications display it.
func Money(amount float64) string {
	return humanize.CommafWithDigits(amount, 2)
}

// PurchaseStock buys amount units of an item at its buy price. It is a
// no-op when the balance is insufficient or the shelves would overflow
// the capacity granted by the given storage level.
func (s *Store) PurchaseStock(ledger *stock.Ledger, it catalog.Item, amount, storageLevel int) bool {
	price := it.BuyPrice * float64(amount)
	if s.Balance < price {
		return false
	}
	if ledger.Quantity(it)+amount > stock.Capacity(it, storageLevel) {
		return false
	}

	s.Balance -= price
	ledger.Add(it, amount)
	s.emit(fmt.Sprintf("%s restocked for $%s", it.Name, Money(price)))
	return true
}

// PurchaseUpgrade buys the next level of an upgrade track. No-op when
// the balance cannot cover the cost.
func (s *Store) PurchaseUpgrade(reg *upgrade.Registry, k upgrade.Kind) bool {
	d, ok := upgrade.DescriptorFor(k)
	if !ok {
		return false
	}
	cost := reg.CostToAdvance(k)
	if s.Balance < cost {
		return false
	}

	s.Balance -= cost
	reg.Advance(k)
	s.emit(fmt.Sprintf("%s upgraded to level %d", d.Name, reg.Level(k)))
	return true
}

// AdvanceDay closes the current day: the counter advances and the fixed
// upkeep is deducted, flooring the balance at zero.
func (s *Store) AdvanceDay(upkeep float64) {
	s.emit(fmt.Sprintf("Day %d is over. Daily upkeep: $%s", s.Day, Money(upkeep)))
	s.Day++
	s.Balance -= upkeep
	if s.Balance < 0 {
		s.Balance = 0
	}
}

// CreditSale books the revenue of one customer purchase.
func (s *Store) CreditSale(sellPrice float64) {
	s.Balance += sellPrice
}

// AdjustReputation applies a delta, keeping reputation inside
// [MinReputation, MaxReputation]. The floor means word of mouth never
// dries up completely.
func (s *Store) AdjustReputation(delta float64) {
	s.Reputation += delta
	if s.Reputation < MinReputation {
		s.Reputation = MinReputation
	}
	if s.Reputation > MaxReputation {
		s.Reputation = MaxReputation
	}
}

// CustomerCapacity is how many customers fit in the store at once.
func CustomerCapacity(reg *upgrade.Registry) int {
	return reg.Level(upgrade.Parking) + 1
}
