package customer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededFactory(seed int64) *Factory {
	return NewFactory(rand.New(rand.NewSource(seed)))
}

func TestNewCustomerHasSaneFields(t *testing.T) {
	f := newSeededFactory(7)

	for i := 0; i < 200; i++ {
		c := f.New()
		assert.NotEmpty(t, c.Name)
		assert.GreaterOrEqual(t, c.Wallet, 0.0)
		assert.GreaterOrEqual(t, c.Satisfaction, 0.1)
		assert.Less(t, c.Satisfaction, 0.7)
		assert.Equal(t, StateEntered, c.State.Kind)
		assert.Equal(t, 0, c.State.TickCounter)
		assert.Nil(t, c.State.Target)
		assert.Equal(t, 0, c.ItemsBought)

		require.NotEmpty(t, c.ToBuy)
		assert.LessOrEqual(t, len(c.ToBuy), 12)

		// No duplicate items in a basket: it is a shuffled prefix.
		seen := make(map[string]bool)
		for _, it := range c.ToBuy {
			assert.False(t, seen[it.Name], "duplicate %s", it.Name)
			seen[it.Name] = true
		}
	}
}

func TestFactoryIsDeterministicUnderSeed(t *testing.T) {
	a := newSeededFactory(42)
	b := newSeededFactory(42)

	for i := 0; i < 50; i++ {
		ca, cb := a.New(), b.New()
		assert.Equal(t, ca.Name, cb.Name)
		assert.Equal(t, ca.Wallet, cb.Wallet)
		assert.Equal(t, ca.Satisfaction, cb.Satisfaction)
		require.Equal(t, len(ca.ToBuy), len(cb.ToBuy))
		for j := range ca.ToBuy {
			assert.Equal(t, ca.ToBuy[j].Name, cb.ToBuy[j].Name)
		}
	}
}

func TestBigBasketsShowUp(t *testing.T) {
	f := newSeededFactory(3)

	big := 0
	for i := 0; i < 2000; i++ {
		if len(f.New().ToBuy) > regularBasketMax {
			big++
		}
	}
	// ~10% of customers roll the big basket; with 2000 draws a total
	// absence would mean the branch is dead.
	assert.Greater(t, big, 0)
}
