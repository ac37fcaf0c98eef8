package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deridev/minimercado/internal/catalog"
)

func TestAddSatisfactionClamps(t *testing.T) {
	c := &Customer{Satisfaction: 0.95}
	c.AddSatisfaction(0.2)
	assert.Equal(t, 1.0, c.Satisfaction)

	c.Satisfaction = 0.05
	c.AddSatisfaction(-0.2)
	assert.Equal(t, 0.0, c.Satisfaction)
}

func TestDropFromList(t *testing.T) {
	choc, _ := catalog.ByName("Chocolate")
	banana, _ := catalog.ByName("Banana")

	c := &Customer{ToBuy: []catalog.Item{choc, banana}}
	c.DropFromList("Chocolate")

	assert.Len(t, c.ToBuy, 1)
	assert.Equal(t, "Banana", c.ToBuy[0].Name)

	c.DropFromList("Chocolate") // already gone, no-op
	assert.Len(t, c.ToBuy, 1)
}

func TestTransitionResetsCounterAndTarget(t *testing.T) {
	choc, _ := catalog.ByName("Chocolate")
	st := State{Kind: StateSearching, TickCounter: 6, Target: &choc}

	st.TransitionTo(StateWandering)
	assert.Equal(t, StateWandering, st.Kind)
	assert.Equal(t, 0, st.TickCounter)
	assert.Nil(t, st.Target)
}

func TestDescribe(t *testing.T) {
	choc, _ := catalog.ByName("Chocolate")

	searching := State{Kind: StateSearching, Target: &choc}
	assert.Equal(t, "Looking for Chocolate", searching.Describe())

	queued := State{Kind: StateWaitingInLine}
	assert.Equal(t, "Waiting in line", queued.Describe())
}

func TestStateKindStrings(t *testing.T) {
	kinds := map[StateKind]string{
		StateEntered:           "entered",
		StateWandering:         "wandering",
		StateSearching:         "searching",
		StateLookingForCashier: "looking_for_a_cashier",
		StateWaitingInLine:     "waiting_in_line",
		StatePaying:            "paying",
		StateLeaving:           "leaving",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}
