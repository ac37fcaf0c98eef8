// Customer lifecycle state machine. Each customer is stepped once per
// population tick; dwell-time thresholds are jittered per customer so
// the crowd does not transition in lockstep.
package engine

import (
	"fmt"
	"math"

	"github.com/deridev/minimercado/internal/catalog"
	"github.com/deridev/minimercado/internal/customer"
	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/upgrade"
)

// stepCustomer advances one customer by one tick. It returns true when
// the customer has completed the leaving state and must be removed.
//
// Cashier contention is resolved by iteration order: the occupied count
// on the store is read and written as customers are stepped, so the
// earliest customer in the list wins a freed slot.
func (s *Simulation) stepCustomer(c *customer.Customer) bool {
	st := &c.State
	st.TickCounter++
	extra := st.TickCounter%2 + s.rng.Intn(2)

	switch st.Kind {
	case customer.StateEntered:
		if st.TickCounter > 1+extra {
			st.TransitionTo(customer.StateWandering)
		}

	case customer.StateWandering:
		wander := 1 + s.rng.Intn(3)
		if st.TickCounter <= wander+extra {
			break
		}
		target := s.pickTarget(c)
		if target.SellPrice > c.Wallet {
			// Can't afford it. Sometimes the customer gives up on the
			// trip; otherwise keep wandering without resetting dwell,
			// so another pick happens soon.
			if s.rng.Float64() < 0.3 {
				if c.ItemsBought == 0 {
					st.TransitionTo(customer.StateLeaving)
				} else {
					st.TransitionTo(customer.StateLookingForCashier)
				}
			}
			break
		}
		st.TransitionTo(customer.StateSearching)
		st.Target = &target

	case customer.StateSearching:
		if st.Target == nil {
			st.TransitionTo(customer.StateWandering)
			break
		}
		if st.TickCounter <= 4+extra {
			break
		}
		wanted := *st.Target
		c.DropFromList(wanted.Name)
		if s.Ledger.Quantity(wanted) > 0 {
			s.completePurchase(c, wanted)
		} else {
			s.failSearch(c, wanted)
		}

	case customer.StateLookingForCashier:
		if st.TickCounter > 1+extra {
			if s.Economy.OccupiedCashiers >= s.Upgrades.Level(upgrade.Cashier) {
				st.TransitionTo(customer.StateWaitingInLine)
			} else {
				s.Economy.OccupiedCashiers++
				c.AddSatisfaction(0.1)
				st.TransitionTo(customer.StatePaying)
			}
		}

	case customer.StateWaitingInLine:
		// No dwell threshold: the transition is purely availability
		// driven, and patience drains every tick spent queued.
		if s.Economy.OccupiedCashiers < s.Upgrades.Level(upgrade.Cashier) {
			s.Economy.OccupiedCashiers++
			st.TransitionTo(customer.StatePaying)
		} else {
			c.AddSatisfaction(-0.025)
		}

	case customer.StatePaying:
		checkout := int(math.Ceil(2 + float64(c.ItemsBought)*1.3/3))
		if st.TickCounter > checkout+extra {
			if s.Economy.OccupiedCashiers > 0 {
				s.Economy.OccupiedCashiers--
			}
			st.TransitionTo(customer.StateLeaving)
		}

	case customer.StateLeaving:
		if st.TickCounter > 1+extra {
			s.farewell(c)
			return true
		}
	}

	return false
}

// pickTarget chooses the next item of interest: a random entry from the
// remaining wanted list, or any catalog item once the list is empty.
func (s *Simulation) pickTarget(c *customer.Customer) catalog.Item {
	if len(c.ToBuy) > 0 {
		return c.ToBuy[s.rng.Intn(len(c.ToBuy))]
	}
	return s.Catalog[s.rng.Intn(len(s.Catalog))]
}

// completePurchase handles a successful search: one unit leaves the
// shelf, the customer pays, the store books the sale.
func (s *Simulation) completePurchase(c *customer.Customer, wanted catalog.Item) {
	s.Ledger.Remove(wanted, 1)
	// The keep-browsing decision reads the wallet before the debit.
	stillShopping := len(c.ToBuy) > 0 || (s.rng.Float64() > 0.6 && c.Wallet > 2.0)
	c.Wallet -= wanted.BuyPrice
	c.AddSatisfaction(0.08)
	c.ItemsBought++
	s.Economy.CreditSale(wanted.SellPrice)
	s.emit(fmt.Sprintf("%s bought %s for $%s", c.Name, wanted.Name, economy.Money(wanted.SellPrice)))
	if stillShopping {
		c.State.TransitionTo(customer.StateWandering)
	} else {
		c.State.TransitionTo(customer.StateLookingForCashier)
	}
}

// failSearch handles an out-of-stock search: satisfaction takes a hit
// and a frustrated customer may cut the trip short.
func (s *Simulation) failSearch(c *customer.Customer, wanted catalog.Item) {
	c.AddSatisfaction(-0.12)
	c.State.TransitionTo(customer.StateWandering)

	if s.rng.Float64() > 0.97 || c.Wallet < 2.0 || c.Satisfaction < 0.2 {
		c.AddSatisfaction(-0.05)
		if c.ItemsBought == 0 {
			c.State.TransitionTo(customer.StateLeaving)
		} else {
			c.State.TransitionTo(customer.StateLookingForCashier)
		}
	}
	s.emit(fmt.Sprintf("%s couldn't find %s", c.Name, wanted.Name))
}

// farewell removes a departing customer's mark on the store: reputation
// shifts by a band keyed to final satisfaction.
func (s *Simulation) farewell(c *customer.Customer) {
	var mood string
	var delta float64
	switch sat := c.Satisfaction; {
	case sat < 0.3:
		mood, delta = "extremely disappointed", -0.01
	case sat < 0.5:
		mood, delta = "unhappy", -0.004
	case sat < 0.55:
		mood, delta = "disappointed", -0.0025
	case sat < 0.6:
		mood, delta = "satisfied", 0.001
	case sat < 0.8:
		mood, delta = "pleased", 0.003
	default:
		mood, delta = "delighted", 0.006
	}
	s.Economy.AdjustReputation(delta)
	s.emit(fmt.Sprintf("%s left the store %s", c.Name, mood))
}
