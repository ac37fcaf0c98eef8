// Package api exposes the shop over HTTP. GET endpoints serve read-only
// snapshots; POST endpoints are the player control plane and require a
// bearer token. Mutations never touch simulation state directly, they
// enqueue commands for the engine goroutine.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/deridev/minimercado/internal/engine"
	"github.com/deridev/minimercado/internal/persistence"
	"github.com/deridev/minimercado/internal/upgrade"
)

// Server serves the shop state over HTTP.
type Server struct {
	Sim      *engine.Simulation
	DB       *persistence.DB
	Port     int
	AdminKey string // bearer token for POST endpoints; empty disables them
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/stock", s.handleStock)
		r.Get("/customers", s.handleCustomers)
		r.Get("/upgrades", s.handleUpgrades)
		r.Get("/events", s.handleEvents)
		r.Get("/events/history", s.handleEventHistory)

		r.Group(func(r chi.Router) {
			r.Use(s.adminOnly)
			r.Post("/stock/{name}", s.handleRestock)
			r.Post("/upgrades/{kind}", s.handleUpgrade)
			r.Post("/pause", s.handlePause)
			r.Post("/resume", s.handleResume)
		})
	})

	return r
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, s.Router()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			writeError(w, http.StatusForbidden, "admin endpoints disabled")
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+s.AdminKey {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Sim.Latest()
	writeJSON(w, map[string]any{
		"tick":              snap.Tick,
		"day":               snap.Day,
		"balance":           snap.Balance,
		"balance_display":   snap.BalanceDisplay,
		"reputation":        snap.Reputation,
		"paused":            snap.Paused,
		"customers":         len(snap.Customers),
		"customer_capacity": snap.CustomerCapacity,
		"occupied_cashiers": snap.OccupiedCashiers,
	})
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Latest().Stock)
}

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Latest().Customers)
}

func (s *Server) handleUpgrades(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Latest().Upgrades)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Sim.Latest().Events)
}

// handleEventHistory serves the journaled notifications, newest first.
// Unlike /events this reads past the in-memory feed cap, straight from
// the database.
func (s *Server) handleEventHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			writeError(w, http.StatusBadRequest, "limit must be in 1..500")
			return
		}
		limit = n
	}

	evts, err := s.DB.RecentEvents(limit)
	if err != nil {
		slog.Error("reading event history", "error", err)
		writeError(w, http.StatusInternalServerError, "reading event history")
		return
	}
	if evts == nil {
		evts = []persistence.Event{}
	}
	writeJSON(w, evts)
}

func (s *Server) handleRestock(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.Sim.Do(engine.Command{Kind: engine.CmdRestock, Item: name}) {
		writeError(w, http.StatusServiceUnavailable, "command queue full")
		return
	}
	writeJSON(w, map[string]string{"queued": "restock", "item": name})
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	kind := upgrade.Kind(chi.URLParam(r, "kind"))
	if _, ok := upgrade.DescriptorFor(kind); !ok {
		writeError(w, http.StatusNotFound, "unknown upgrade kind")
		return
	}
	if !s.Sim.Do(engine.Command{Kind: engine.CmdUpgrade, Upgrade: kind}) {
		writeError(w, http.StatusServiceUnavailable, "command queue full")
		return
	}
	writeJSON(w, map[string]string{"queued": "upgrade", "kind": string(kind)})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	s.Sim.Do(engine.Command{Kind: engine.CmdPause})
	writeJSON(w, map[string]string{"queued": "pause"})
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.Sim.Do(engine.Command{Kind: engine.CmdResume})
	writeJSON(w, map[string]string{"queued": "resume"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
