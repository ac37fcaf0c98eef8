// Player commands. The API goroutine never touches simulation state
// directly; it enqueues commands that the engine goroutine drains at the
// top of each population tick.
package engine

import (
	"log/slog"

	"github.com/deridev/minimercado/internal/catalog"
	"github.com/deridev/minimercado/internal/upgrade"
)

// CommandKind enumerates the player actions.
type CommandKind uint8

const (
	CmdRestock CommandKind = iota // buy one unit of stock for Item
	CmdUpgrade                    // buy the next level of Upgrade
	CmdPause
	CmdResume
)

// Command is one queued player action.
type Command struct {
	Kind    CommandKind
	Item    string
	Upgrade upgrade.Kind
}

// Do enqueues a command for the next tick. It never blocks; when the
// queue is full the command is dropped, which is acceptable for game
// input.
func (s *Simulation) Do(cmd Command) bool {
	select {
	case s.commands <- cmd:
		return true
	default:
		slog.Warn("command queue full, dropping", "kind", cmd.Kind)
		return false
	}
}

func (s *Simulation) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *Simulation) apply(cmd Command) {
	switch cmd.Kind {
	case CmdRestock:
		it, ok := catalog.ByName(cmd.Item)
		if !ok {
			slog.Warn("restock for unknown item", "item", cmd.Item)
			return
		}
		if s.Economy.PurchaseStock(s.Ledger, it, 1, s.Upgrades.Level(upgrade.Storage)) {
			s.save()
		}
	case CmdUpgrade:
		if s.Economy.PurchaseUpgrade(s.Upgrades, cmd.Upgrade) {
			s.save()
		}
	case CmdPause:
		if !s.Paused {
			s.Paused = true
			slog.Info("simulation paused", "tick", s.Tick)
		}
	case CmdResume:
		if s.Paused {
			s.Paused = false
			slog.Info("simulation resumed", "tick", s.Tick)
		}
	}
}
