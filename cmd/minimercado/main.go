// Command minimercado runs the shop simulation and its HTTP API.
package main

import (
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/deridev/minimercado/internal/api"
	"github.com/deridev/minimercado/internal/config"
	"github.com/deridev/minimercado/internal/economy"
	"github.com/deridev/minimercado/internal/engine"
	"github.com/deridev/minimercado/internal/persistence"
	"github.com/deridev/minimercado/internal/stock"
	"github.com/deridev/minimercado/internal/upgrade"
)

func main() {
	setupLogging()

	cfgPath := os.Getenv("MINIMERCADO_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("invalid configuration", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	// ── Database ──────────────────────────────────────────────────────
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			slog.Error("failed to create database directory", "dir", dir, "error", err)
			os.Exit(1)
		}
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// ── Shop state (persisted values or documented defaults) ──────────
	st := db.LoadState()
	ledger := stock.Restore(st.Stock)
	upgrades := upgrade.Restore(st.Upgrades)
	store := economy.Restore(st.Balance, st.Reputation, st.Day)
	slog.Info("shop state loaded",
		"balance", store.Balance,
		"reputation", store.Reputation,
		"day", store.Day,
	)

	// ── Simulation ────────────────────────────────────────────────────
	sim := engine.NewSimulation(engine.Params{
		Ledger:      ledger,
		Upgrades:    upgrades,
		Economy:     store,
		Rand:        rand.New(rand.NewSource(cfg.Seed)),
		Seed:        cfg.Seed,
		DayLength:   cfg.DayLength(),
		DailyUpkeep: cfg.DailyUpkeep,
	})
	sim.Journal = func(day int, event string) {
		if err := db.AppendEvent(day, event); err != nil {
			slog.Error("journaling event failed", "error", err)
		}
	}
	saveState := func() {
		if err := db.SaveState(persistence.State{
			Balance:    store.Balance,
			Reputation: store.Reputation,
			Day:        store.Day,
			Stock:      ledger.Entries(),
			Upgrades:   upgrades.Levels(),
		}); err != nil {
			slog.Error("saving shop state failed", "error", err)
		}
	}
	sim.OnSave = saveState

	eng := engine.NewEngine(cfg.PopulationInterval(), engine.DefaultDayCheckInterval)
	eng.OnPopulationTick = sim.TickPopulation
	eng.OnDayCheck = sim.CheckDay

	// ── HTTP API ──────────────────────────────────────────────────────
	adminKey := os.Getenv("MINIMERCADO_ADMIN_KEY")
	if adminKey == "" {
		slog.Warn("MINIMERCADO_ADMIN_KEY not set, player POST endpoints disabled")
	}
	apiServer := &api.Server{
		Sim:      sim,
		DB:       db,
		Port:     cfg.Port,
		AdminKey: adminKey,
	}
	apiServer.Start()

	// ── Run until signal ──────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		eng.Stop()
	}()

	eng.Run()

	// The loop has stopped, so the state is quiescent for a final save.
	slog.Info("final save...")
	saveState()
	slog.Info("shop closed", "day", store.Day, "balance", store.Balance)
}

func setupLogging() {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
