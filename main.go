// ════════════════════════════════════════════════════════════════════════════════════════════════
// Parking Lot Simulator - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Main Entry Point & System Orchestration
//
// Description:
//   System orchestration with phased initialization and clean separation of concerns.
//   Configuration → Roster Bootstrap → Command Stream Processing
//
// Architecture:
//   - Phase 0: Configuration resolution (defaults, JSON file, environment)
//   - Phase 1: Optional park roster bootstrap from a SQLite database
//   - Phase 2: Line protocol processing on stdin until quit or EOF
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	"parksim/command"
	"parksim/config"
	"parksim/debug"
	"parksim/park"
	"parksim/tariff"
	"parksim/utils"

	_ "github.com/mattn/go-sqlite3"
)

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// MAIN ORCHESTRATION
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// main orchestrates the complete simulator lifecycle in distinct phases.
// Each phase has specific responsibilities; only the command stream phase
// touches stdout, so protocol output stays clean.
func main() {
	// PHASE 0: Configuration resolution
	cfg, err := config.Resolve()
	if err != nil {
		panic("Failed to resolve configuration: " + err.Error())
	}

	debug.DropMessage("INIT", "Table size "+utils.Itoa(cfg.InitialTableSize)+
		", park limit "+utils.Itoa(cfg.MaxParks))

	registry := park.NewRegistry(cfg.MaxParks, cfg.TableOptions())

	// PHASE 1: Optional roster bootstrap
	// Preloads parks from a SQLite roster so recurring fleets do not have
	// to recreate their parks on every run.
	if cfg.RosterDB != "" {
		db := openRosterDatabase(cfg.RosterDB)
		loaded := loadParksFromRoster(db, registry)
		db.Close()
		debug.DropMessage("ROSTER", utils.Itoa(loaded)+" parks preloaded")
	}

	setupSignalHandling()

	// PHASE 2: Command stream processing
	// Runs until the quit command or end of input. All protocol output
	// goes to stdout; diagnostics stay on stderr.
	command.NewProcessor(registry, os.Stdout).Run(os.Stdin)

	debug.DropMessage("DONE", "Command stream closed")
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// ROSTER LOADING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// openRosterDatabase opens the roster read-only. The roster is bootstrap
// data; the simulator never writes back to it.
func openRosterDatabase(path string) *sql.DB {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		panic("Failed to open roster database " + path + ": " + err.Error())
	}
	return db
}

// loadParksFromRoster creates one park per roster row, in roster order.
// Rows the registry rejects (duplicates, bad capacities, bad tariffs, the
// park limit) are logged and skipped rather than aborting the bootstrap.
func loadParksFromRoster(db *sql.DB, registry *park.Registry) int {
	rows, err := db.Query(`
		SELECT name, capacity, rate_first, rate_after, rate_daily
		FROM parks
		ORDER BY id`)
	if err != nil {
		panic("Failed to query roster: " + err.Error())
	}
	defer rows.Close()

	loaded := 0
	for rows.Next() {
		var name string
		var capacity int
		var first, after, daily float64
		if err := rows.Scan(&name, &capacity, &first, &after, &daily); err != nil {
			panic("Failed to scan roster row: " + err.Error())
		}

		fee := tariff.Tariff{FirstHourRate: first, AfterHourRate: after, DailyCap: daily}
		if _, err := registry.Add(name, capacity, fee); err != nil {
			debug.DropError("roster: "+name, err)
			continue
		}
		loaded++
	}

	if err := rows.Err(); err != nil {
		panic("Roster iteration error: " + err.Error())
	}
	return loaded
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SIGNAL HANDLING
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// setupSignalHandling configures shutdown on interrupt. The simulator
// holds everything in memory, so there is nothing to flush; exiting at
// once keeps Ctrl-C snappy during interactive use.
func setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		debug.DropMessage("SIGNAL", "Received interrupt, shutting down...")
		os.Exit(0)
	}()
}
