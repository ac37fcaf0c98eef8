// Customer spawning. Names, baskets and wallets are all drawn from the
// injected generator so runs are reproducible under a fixed seed.
package customer

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/deridev/minimercado/internal/catalog"
)

// Basket size bounds: most customers want up to 5 items, a few come in
// with a big shopping list.
const (
	regularBasketMax = 5
	bigBasketMax     = 12
	bigBasketChance  = 0.10
)

// Factory procedurally creates customers.
type Factory struct {
	rng *rand.Rand
}

// NewFactory returns a factory drawing from the given generator.
func NewFactory(rng *rand.Rand) *Factory {
	return &Factory{rng: rng}
}

// New creates a customer at the store entrance: a fresh name, a shuffled
// prefix of the catalog as the wanted list, and a wallet sized to the
// list with a wide random spread.
func (f *Factory) New() *Customer {
	toBuy := f.basket()

	// Base allowance plus 90% of the list's buy prices, scaled by a
	// multiplier in [0.5, 1.5).
	wallet := float64(f.rng.Intn(30))
	for _, it := range toBuy {
		wallet += it.BuyPrice * 0.9
	}
	wallet *= f.rng.Float64() + 0.5

	return &Customer{
		ID:           uuid.New(),
		Name:         f.name(),
		Wallet:       wallet,
		Satisfaction: 0.1 + f.rng.Float64()*0.6,
		ToBuy:        toBuy,
		State:        State{Kind: StateEntered},
	}
}

func (f *Factory) basket() []catalog.Item {
	items := catalog.Items()
	f.rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	max := regularBasketMax
	if f.rng.Float64() < bigBasketChance {
		max = bigBasketMax
	}
	count := f.rng.Intn(max) + 1
	if count > len(items) {
		count = len(items)
	}
	return items[:count]
}

func (f *Factory) name() string {
	first := firstNames[f.rng.Intn(len(firstNames))]
	surname := surnames[f.rng.Intn(len(surnames))]
	if f.rng.Float64() < 0.35 {
		middle := middleNames[f.rng.Intn(len(middleNames))]
		return strings.Join([]string{first, middle, surname}, " ")
	}
	return first + " " + surname
}

// Name pools for procedural generation.
var firstNames = []string{
	"José", "Maria", "Mark", "John", "Roberto", "Robert", "Lucas", "Lucia",
	"Pedro", "Ana", "Joana", "Francisco", "Carlos", "Luís", "Paulo",
	"Ricardo", "Sérgio", "Daniel", "Bruno", "Marcos", "Bob", "Sofia",
	"Beatriz", "Célia", "Mariana", "Gabriel", "Gabriela", "Ana Maria",
	"Alice", "Alisson", "Carl", "João", "Neide", "Antenor", "Nilce",
}

var surnames = []string{
	"Silva", "da Silva", "Nascimento", "do Nascimento", "Souza", "Pereira",
	"Carvalho", "Costa", "Santos", "Silveira", "Oliveira", "Gomes",
	"Alves", "Monteiro", "Martins", "Dias", "Moreira", "Ramos",
	"Cavalcante", "Johnson", "João", "Paulo",
}

var middleNames = append(append([]string{}, surnames...),
	"D.", "Von", "Tren", "Quin", "John")
