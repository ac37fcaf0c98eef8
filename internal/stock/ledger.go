// Package stock tracks per-item quantities on the shelves. Capacity is
// derived from the storage upgrade level, not stored.
package stock

import "github.com/deridev/minimercado/internal/catalog"

// Ledger holds the current quantity of every stocked item, keyed by item
// name. An absent entry and an entry at zero mean the same thing.
type Ledger struct {
	quantities map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{quantities: make(map[string]int)}
}

// Restore builds a ledger from persisted quantities. Non-positive
// quantities are dropped.
func Restore(quantities map[string]int) *Ledger {
	l := NewLedger()
	for name, qty := range quantities {
		if qty > 0 {
			l.quantities[name] = qty
		}
	}
	return l
}

// Quantity returns the stored amount for an item, zero if absent.
func (l *Ledger) Quantity(it catalog.Item) int {
	return l.quantities[it.Name]
}

// Capacity is the maximum storable amount for an item at the given
// storage level.
func Capacity(it catalog.Item, storageLevel int) int {
	return it.StockUnitCost * storageLevel
}

// Add increases an item's quantity, creating the entry if absent.
// Capacity is not enforced here; callers check it before buying stock.
func (l *Ledger) Add(it catalog.Item, amount int) {
	l.quantities[it.Name] += amount
}

// Remove decreases an item's quantity. The entry is deleted once it
// reaches zero, so quantities never go negative.
func (l *Ledger) Remove(it catalog.Item, amount int) {
	qty, ok := l.quantities[it.Name]
	if !ok {
		return
	}
	qty -= amount
	if qty <= 0 {
		delete(l.quantities, it.Name)
		return
	}
	l.quantities[it.Name] = qty
}

// Entries returns a copy of all positive quantities, for persistence and
// snapshots.
func (l *Ledger) Entries() map[string]int {
	out := make(map[string]int, len(l.quantities))
	for name, qty := range l.quantities {
		out[name] = qty
	}
	return out
}
