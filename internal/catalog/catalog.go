// Package catalog defines the goods the store can sell. Items are
// process-wide constants; the ledger and the economy only ever reference
// them by name.
package catalog

// Category groups items for display purposes.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	Grocery = Category{ID: "grocery", Name: "Mercearia"}
	Bakery  = Category{ID: "bakery", Name: "Padaria"}
	Butcher = Category{ID: "butcher", Name: "Açougue"}
	Fruits  = Category{ID: "fruits", Name: "Frutas"}
	Drinks  = Category{ID: "drinks", Name: "Bebidas"}
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{Grocery, Bakery, Butcher, Fruits, Drinks}
}

// Item is one purchasable good. BuyPrice is what the store pays to
// restock one unit, SellPrice is what a customer is charged, and
// StockUnitCost is how many units of shelf space one storage level
// grants for this item.
type Item struct {
	Emoji         string   `json:"emoji"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	BuyPrice      float64  `json:"buy_price"`
	SellPrice     float64  `json:"sell_price"`
	StockUnitCost int      `json:"stock_unit_cost"`
}

var items = []Item{
	{Emoji: "🍫", Name: "Chocolate", Category: Grocery, BuyPrice: 4, SellPrice: 7.25, StockUnitCost: 4},
	{Emoji: "🍱", Name: "Arroz", Category: Grocery, BuyPrice: 3, SellPrice: 6.99, StockUnitCost: 2},
	{Emoji: "☕", Name: "Café", Category: Grocery, BuyPrice: 7, SellPrice: 13, StockUnitCost: 3},

	{Emoji: "🍞", Name: "Pão", Category: Bakery, BuyPrice: 5, SellPrice: 8.9, StockUnitCost: 4},
	{Emoji: "🍩", Name: "Rosquinha", Category: Bakery, BuyPrice: 3, SellPrice: 6.23, StockUnitCost: 6},
	{Emoji: "🥪", Name: "Sanduíche", Category: Bakery, BuyPrice: 4, SellPrice: 7.5, StockUnitCost: 3},

	{Emoji: "🥩", Name: "Bife", Category: Butcher, BuyPrice: 15, SellPrice: 23.50, StockUnitCost: 3},
	{Emoji: "🥓", Name: "Bacon", Category: Butcher, BuyPrice: 18, SellPrice: 28.99, StockUnitCost: 3},
	{Emoji: "🍗", Name: "Frango", Category: Butcher, BuyPrice: 16, SellPrice: 25.80, StockUnitCost: 3},

	{Emoji: "🍎", Name: "Maçã", Category: Fruits, BuyPrice: 3, SellPrice: 6.5, StockUnitCost: 5},
	{Emoji: "🍌", Name: "Banana", Category: Fruits, BuyPrice: 2, SellPrice: 4.8, StockUnitCost: 5},
	{Emoji: "🍇", Name: "Uva", Category: Fruits, BuyPrice: 3, SellPrice: 6.5, StockUnitCost: 5},

	{Emoji: "💧", Name: "Água", Category: Drinks, BuyPrice: 1, SellPrice: 2.25, StockUnitCost: 6},
	{Emoji: "🥤", Name: "Refrigerante", Category: Drinks, BuyPrice: 6, SellPrice: 11.99, StockUnitCost: 4},
	{Emoji: "🧃", Name: "Suco", Category: Drinks, BuyPrice: 2, SellPrice: 4.99, StockUnitCost: 4},
}

// Items returns a copy of the full catalog.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// ByName looks up an item by its unique name.
func ByName(name string) (Item, bool) {
	for _, it := range items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// ByCategory returns the items belonging to one category, in catalog order.
func ByCategory(c Category) []Item {
	var out []Item
	for _, it := range items {
		if it.Category.ID == c.ID {
			out = append(out, it)
		}
	}
	return out
}
