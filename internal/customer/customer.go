// Package customer provides the shopper data model: the customer itself,
// its behavioral state, and the procedural factory that spawns new ones.
package customer

import (
	"github.com/google/uuid"
	"golang.org/x/exp/constraints"

	"github.com/deridev/minimercado/internal/catalog"
)

// StateKind enumerates the behavioral states a customer moves through.
// Leaving is the only terminal state; every other state can reach it.
type StateKind uint8

const (
	StateEntered StateKind = iota
	StateWandering
	StateSearching
	StateLookingForCashier
	StateWaitingInLine
	StatePaying
	StateLeaving
)

// String returns the stable identifier used in snapshots and persistence.
func (k StateKind) String() string {
	switch k {
	case StateEntered:
		return "entered"
	case StateWandering:
		return "wandering"
	case StateSearching:
		return "searching"
	case StateLookingForCashier:
		return "looking_for_a_cashier"
	case StateWaitingInLine:
		return "waiting_in_line"
	case StatePaying:
		return "paying"
	case StateLeaving:
		return "leaving"
	}
	return "unknown"
}

// State is the tagged behavioral value. TickCounter measures dwell time
// in the current state and resets on every transition. Target is only
// set while searching.
type State struct {
	Kind        StateKind
	TickCounter int
	Target      *catalog.Item
}

// TransitionTo switches state, resetting the dwell counter and clearing
// any search target.
func (s *State) TransitionTo(kind StateKind) {
	s.Kind = kind
	s.TickCounter = 0
	s.Target = nil
}

// Describe renders the state for the customer list.
func (s State) Describe() string {
	switch s.Kind {
	case StateEntered:
		return "Just walked in"
	case StateWandering:
		return "Browsing the aisles"
	case StateSearching:
		if s.Target != nil {
			return "Looking for " + s.Target.Name
		}
		return "Looking around"
	case StateLookingForCashier:
		return "Heading to a cashier"
	case StateWaitingInLine:
		return "Waiting in line"
	case StatePaying:
		return "Paying for the goods"
	case StateLeaving:
		return "Leaving the store"
	}
	return ""
}

// Customer is one simulated shopper. Customers live only for the span of
// a session; they are never persisted.
type Customer struct {
	ID           uuid.UUID
	Name         string
	Wallet       float64
	Satisfaction float64 // 0.0 to 1.0
	ItemsBought  int
	ToBuy        []catalog.Item
	State        State
}

// AddSatisfaction applies a delta, clamped to [0, 1].
func (c *Customer) AddSatisfaction(delta float64) {
	c.Satisfaction = clamp(c.Satisfaction+delta, 0, 1)
}

// DropFromList removes an item from the wanted list once it has been
// evaluated, whether or not the purchase happened.
func (c *Customer) DropFromList(name string) {
	kept := c.ToBuy[:0]
	for _, it := range c.ToBuy {
		if it.Name != name {
			kept = append(kept, it)
		}
	}
	c.ToBuy = kept
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
