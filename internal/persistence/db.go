// Package persistence provides SQLite-based shop state storage.
// Loading never fails the session: any missing or unparsable value
// falls back to its documented default.
package persistence

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/upgrade"
)

// DB wraps a SQLite connection for shop state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS shop_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS stock (
		name TEXT PRIMARY KEY,
		quantity INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS upgrades (
		kind TEXT PRIMARY KEY,
		level INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day INTEGER NOT NULL,
		description TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_day ON events(day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// State is the persisted slice of the simulation: everything that
// survives a session. Customers are deliberately absent.
type State struct {
	Balance    float64
	Reputation float64
	Day        int
	Stock      map[string]int
	Upgrades   map[upgrade.Kind]int
}

// DefaultState returns the documented fresh-shop values.
func DefaultState() State {
	return State{
		Balance:    economy.DefaultBalance,
		Reputation: economy.DefaultReputation,
		Day:        1,
		Stock:      make(map[string]int),
		Upgrades:   make(map[upgrade.Kind]int),
	}
}

// LoadState reads the persisted shop state. Every value falls back to
// its default independently, so one corrupt row never poisons the rest.
func (db *DB) LoadState() State {
	st := DefaultState()

	st.Balance = db.metaFloat("balance", st.Balance)
	st.Reputation = db.metaFloat("reputation", st.Reputation)
	st.Day = db.metaInt("day", st.Day)

	type stockRow struct {
		Name     string `db:"name"`
		Quantity int    `db:"quantity"`
	}
	var stockRows []stockRow
	if err := db.conn.Select(&stockRows, "SELECT name, quantity FROM stock"); err != nil {
		slog.Warn("loading stock failed, starting empty", "error", err)
	}
	for _, row := range stockRows {
		if row.Quantity > 0 {
			st.Stock[row.Name] = row.Quantity
		}
	}

	type upgradeRow struct {
		Kind  string `db:"kind"`
		Level int    `db:"level"`
	}
	var upgradeRows []upgradeRow
	if err := db.conn.Select(&upgradeRows, "SELECT kind, level FROM upgrades"); err != nil {
		slog.Warn("loading upgrades failed, starting at level 1", "error", err)
	}
	for _, row := range upgradeRows {
		st.Upgrades[upgrade.Kind(row.Kind)] = row.Level
	}

	return st
}

// SaveState writes the full shop state in one transaction.
func (db *DB) SaveState(st State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	meta := map[string]string{
		"balance":    strconv.FormatFloat(st.Balance, 'f', -1, 64),
		"reputation": strconv.FormatFloat(st.Reputation, 'f', -1, 64),
		"day":        strconv.Itoa(st.Day),
	}
	for key, value := range meta {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO shop_meta (key, value) VALUES (?, ?)",
			key, value,
		); err != nil {
			return fmt.Errorf("save meta %s: %w", key, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM stock"); err != nil {
		return err
	}
	for name, qty := range st.Stock {
		if _, err := tx.Exec(
			"INSERT INTO stock (name, quantity) VALUES (?, ?)",
			name, qty,
		); err != nil {
			return fmt.Errorf("save stock %s: %w", name, err)
		}
	}

	if _, err := tx.Exec("DELETE FROM upgrades"); err != nil {
		return err
	}
	for kind, level := range st.Upgrades {
		if _, err := tx.Exec(
			"INSERT INTO upgrades (kind, level) VALUES (?, ?)",
			string(kind), level,
		); err != nil {
			return fmt.Errorf("save upgrade %s: %w", kind, err)
		}
	}

	return tx.Commit()
}

// Event is one journaled notification.
type Event struct {
	Day         int    `db:"day" json:"day"`
	Description string `db:"description" json:"description"`
}

// AppendEvent journals one notification.
func (db *DB) AppendEvent(day int, description string) error {
	_, err := db.conn.Exec(
		"INSERT INTO events (day, description) VALUES (?, ?)",
		day, description,
	)
	return err
}

// RecentEvents returns the most recent journaled notifications, newest
// first.
func (db *DB) RecentEvents(limit int) ([]Event, error) {
	var evts []Event
	err := db.conn.Select(&evts,
		"SELECT day, description FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	return evts, err
}

func (db *DB) meta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM shop_meta WHERE key = ?", key)
	return value, err
}

func (db *DB) metaFloat(key string, fallback float64) float64 {
	raw, err := db.meta(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("corrupt stored value, using default", "key", key, "value", raw)
		return fallback
	}
	return v
}

func (db *DB) metaInt(key string, fallback int) int {
	raw, err := db.meta(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("corrupt stored value, using default", "key", key, "value", raw)
		return fallback
	}
	return v
}
