package persistence

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/upgrade"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenFailsWhenDirectoryMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "shop.db"))
	assert.Error(t, err)
}

func TestLoadStateFreshDatabase(t *testing.T) {
	db := openTestDB(t)

	st := db.LoadState()
	assert.Equal(t, float64(economy.DefaultBalance), st.Balance)
	assert.Equal(t, economy.DefaultReputation, st.Reputation)
	assert.Equal(t, 1, st.Day)
	assert.Empty(t, st.Stock)
	assert.Empty(t, st.Upgrades)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	saved := State{
		Balance:    84.5,
		Reputation: 0.62,
		Day:        3,
		Stock:      map[string]int{"Chocolate": 4, "Banana": 2},
		Upgrades:   map[upgrade.Kind]int{upgrade.Parking: 2},
	}
	require.NoError(t, db.SaveState(saved))

	got := db.LoadState()
	assert.Equal(t, saved.Balance, got.Balance)
	assert.Equal(t, saved.Reputation, got.Reputation)
	assert.Equal(t, saved.Day, got.Day)
	assert.Equal(t, saved.Stock, got.Stock)
	assert.Equal(t, saved.Upgrades, got.Upgrades)
}

func TestSaveReplacesPreviousRows(t *testing.T) {
	db := openTestDB(t)

	first := DefaultState()
	first.Stock["Chocolate"] = 4
	first.Upgrades[upgrade.Cashier] = 3
	require.NoError(t, db.SaveState(first))

	second := DefaultState()
	second.Stock["Banana"] = 1
	require.NoError(t, db.SaveState(second))

	got := db.LoadState()
	assert.Equal(t, map[string]int{"Banana": 1}, got.Stock)
	assert.Empty(t, got.Upgrades)
}

func TestCorruptMetaFallsBackPerKey(t *testing.T) {
	db := openTestDB(t)

	st := DefaultState()
	st.Balance = 250
	st.Day = 9
	require.NoError(t, db.SaveState(st))

	_, err := db.conn.Exec(
		"UPDATE shop_meta SET value = ? WHERE key = ?", "garbage", "balance")
	require.NoError(t, err)

	got := db.LoadState()
	assert.Equal(t, float64(economy.DefaultBalance), got.Balance)
	// Only the corrupt key resets; the rest survives.
	assert.Equal(t, 9, got.Day)
}

func TestNonPositiveStockRowsDropped(t *testing.T) {
	db := openTestDB(t)

	_, err := db.conn.Exec(
		"INSERT INTO stock (name, quantity) VALUES ('Chocolate', 0), ('Banana', -3), ('Coffee', 2)")
	require.NoError(t, err)

	got := db.LoadState()
	assert.Equal(t, map[string]int{"Coffee": 2}, got.Stock)
}

func TestRecentEventsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.AppendEvent(1, "shop opened"))
	require.NoError(t, db.AppendEvent(1, "Maria entered the store"))
	require.NoError(t, db.AppendEvent(2, "Day 1 is over. Daily upkeep: $10"))

	evts, err := db.RecentEvents(2)
	require.NoError(t, err)
	require.Len(t, evts, 2)
	assert.Equal(t, Event{Day: 2, Description: "Day 1 is over. Daily upkeep: $10"}, evts[0])
	assert.Equal(t, Event{Day: 1, Description: "Maria entered the store"}, evts[1])
}
