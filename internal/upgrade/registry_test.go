package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryStartsAtLevelOne(t *testing.T) {
	r := NewRegistry()
	for _, d := range Descriptors() {
		assert.Equal(t, 1, r.Level(d.Kind))
	}
}

func TestCostToAdvanceIsLinear(t *testing.T) {
	r := NewRegistry()

	d, ok := DescriptorFor(Storage)
	require.True(t, ok)
	assert.Equal(t, d.BaseCost, r.CostToAdvance(Storage))

	r.Advance(Storage)
	assert.Equal(t, d.BaseCost*2, r.CostToAdvance(Storage))

	r.Advance(Storage)
	assert.Equal(t, d.BaseCost*3, r.CostToAdvance(Storage))
}

func TestAdvanceOnlyBumpsKnownKinds(t *testing.T) {
	r := NewRegistry()
	r.Advance(Kind("escalator"))
	assert.Equal(t, 1, r.Level(Kind("escalator")))
}

func TestRestoreFloorsAndFilters(t *testing.T) {
	r := Restore(map[Kind]int{
		Storage:           3,
		Parking:           0,
		Kind("escalator"): 7,
	})

	assert.Equal(t, 3, r.Level(Storage))
	assert.Equal(t, 1, r.Level(Parking))
	assert.Equal(t, 1, r.Level(Cashier))

	levels := r.Levels()
	assert.Len(t, levels, 3)
}
