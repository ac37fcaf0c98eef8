package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deridev/minimercado/internal/catalog"
)

func TestQuantityAbsentIsZero(t *testing.T) {
	l := NewLedger()
	it, ok := catalog.ByName("Chocolate")
	require.True(t, ok)

	assert.Equal(t, 0, l.Quantity(it))
}

func TestAddCreatesAndAccumulates(t *testing.T) {
	l := NewLedger()
	it, _ := catalog.ByName("Chocolate")

	l.Add(it, 2)
	l.Add(it, 3)
	assert.Equal(t, 5, l.Quantity(it))
}

func TestRemoveDeletesAtZero(t *testing.T) {
	l := NewLedger()
	it, _ := catalog.ByName("Banana")

	l.Add(it, 2)
	l.Remove(it, 2)
	assert.Equal(t, 0, l.Quantity(it))
	assert.Empty(t, l.Entries())
}

func TestRemoveNeverGoesNegative(t *testing.T) {
	l := NewLedger()
	it, _ := catalog.ByName("Banana")

	l.Add(it, 1)
	l.Remove(it, 5)
	assert.Equal(t, 0, l.Quantity(it))

	// Removing from an absent entry is a no-op.
	l.Remove(it, 1)
	assert.Equal(t, 0, l.Quantity(it))
}

func TestCapacityScalesWithStorageLevel(t *testing.T) {
	it, _ := catalog.ByName("Chocolate") // stock unit cost 4

	assert.Equal(t, 4, Capacity(it, 1))
	assert.Equal(t, 12, Capacity(it, 3))
}

func TestRestoreDropsNonPositive(t *testing.T) {
	l := Restore(map[string]int{"Chocolate": 3, "Banana": 0, "Uva": -2})
	it, _ := catalog.ByName("Chocolate")

	assert.Equal(t, 3, l.Quantity(it))
	assert.Len(t, l.Entries(), 1)
}
