// Package upgrade tracks the store's upgrade levels and their linear
// cost curve. The registry is a pure state holder; affordability checks
// and debits belong to the economy controller.
package upgrade

// Kind identifies one upgrade track.
type Kind string

const (
	Storage Kind = "storage"       // shelf capacity multiplier
	Parking Kind = "parking_slots" // customer capacity (level + 1)
	Cashier Kind = "cashier"       // parallel checkout slots
)

// Descriptor is the static definition of one upgrade track.
type Descriptor struct {
	Kind     Kind    `json:"kind"`
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	BaseCost float64 `json:"base_cost"`
}

var descriptors = []Descriptor{
	{Kind: Storage, Name: "Armazenamento", Emoji: "📦", BaseCost: 100},
	{Kind: Parking, Name: "Estacionamento", Emoji: "🚗", BaseCost: 40},
	{Kind: Cashier, Name: "Caixa", Emoji: "🛒", BaseCost: 100},
}

// Descriptors returns all upgrade tracks in display order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)
	return out
}

// DescriptorFor looks up the static definition for a kind.
func DescriptorFor(k Kind) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Kind == k {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Registry holds the current level of every upgrade track.
type Registry struct {
	levels map[Kind]int
}

// NewRegistry returns a registry with every track at level 1.
func NewRegistry() *Registry {
	r := &Registry{levels: make(map[Kind]int, len(descriptors))}
	for _, d := range descriptors {
		r.levels[d.Kind] = 1
	}
	return r
}

// Restore builds a registry from persisted levels. Unknown kinds are
// ignored and levels below 1 are raised to 1.
func Restore(levels map[Kind]int) *Registry {
	r := NewRegistry()
	for k, lvl := range levels {
		if _, ok := r.levels[k]; !ok {
			continue
		}
		if lvl < 1 {
			lvl = 1
		}
		r.levels[k] = lvl
	}
	return r
}

// Level returns the current level of a track, 1 for unknown kinds.
func (r *Registry) Level(k Kind) int {
	if lvl, ok := r.levels[k]; ok {
		return lvl
	}
	return 1
}

// CostToAdvance is the price of the next level: baseCost * currentLevel.
func (r *Registry) CostToAdvance(k Kind) float64 {
	d, ok := DescriptorFor(k)
	if !ok {
		return 0
	}
	return d.BaseCost * float64(r.Level(k))
}

// Advance bumps a track by one level. The caller must already have
// verified and debited the cost.
func (r *Registry) Advance(k Kind) {
	if _, ok := r.levels[k]; ok {
		r.levels[k]++
	}
}

// Levels returns a copy of all current levels, for persistence and
// snapshots.
func (r *Registry) Levels() map[Kind]int {
	out := make(map[Kind]int, len(r.levels))
	for k, lvl := range r.levels {
		out[k] = lvl
	}
	return out
}
