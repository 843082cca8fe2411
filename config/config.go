// ════════════════════════════════════════════════════════════════════════════════════════════════
// ⚡ RUNTIME CONFIGURATION
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Parking Lot Simulator
// Component: Configuration Resolution & Environment Overrides
//
// Description:
//   Resolves the simulator's tunables from three layers, later layers winning: compiled
//   defaults, an optional JSON file, and process environment variables. A .env file in the
//   working directory is folded into the environment before resolution.
//
// Layers:
//   1. Defaults:     constants package values
//   2. File:         parksim.json (or the file PARKSIM_CONFIG points at)
//   3. Environment:  PARKSIM_* variables, including those loaded from .env
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sugawarayuuta/sonnet"

	"parksim/constants"
	"parksim/logidx"
)

// Config carries every tunable of the simulator. The zero value is not
// usable; start from Default or Resolve.
type Config struct {
	InitialTableSize int     `json:"initial_table_size"`
	LoadFactor       float64 `json:"load_factor"`
	MaxParks         int     `json:"max_parks"`
	GrowOnHeadInsert bool    `json:"grow_on_head_insert"`
	RosterDB         string  `json:"roster_db"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		InitialTableSize: constants.InitialTableSize,
		LoadFactor:       constants.LoadFactorThreshold,
		MaxParks:         constants.MaxParks,
		GrowOnHeadInsert: false,
		RosterDB:         "",
	}
}

// Resolve builds the effective configuration. A missing default config
// file is fine; a file named through PARKSIM_CONFIG must exist. Malformed
// JSON is an error, while out-of-range values quietly fall back to the
// defaults so a bad override cannot wedge the simulator.
func Resolve() (Config, error) {
	// Environment first: a .env file may name the config file itself.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: loading .env: %w", err)
	}

	cfg := Default()

	path := os.Getenv(constants.EnvConfigPath)
	explicit := path != ""
	if !explicit {
		path = constants.DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := sonnet.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file, run on defaults.
	default:
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	applyEnv(&cfg)
	sanitize(&cfg)
	return cfg, nil
}

// TableOptions maps the configuration onto hash table options.
func (c Config) TableOptions() logidx.Options {
	return logidx.Options{
		InitialCapacity:  c.InitialTableSize,
		LoadFactor:       c.LoadFactor,
		GrowOnHeadInsert: c.GrowOnHeadInsert,
	}
}

// ═══════════════════════════════════════════════════════════════════════════════════════════════
// OVERRIDE LAYERS
// ═══════════════════════════════════════════════════════════════════════════════════════════════

// applyEnv folds PARKSIM_* variables over cfg. Empty and malformed values
// are ignored, keeping whatever the file layer produced.
func applyEnv(cfg *Config) {
	if v := os.Getenv(constants.EnvRosterDB); v != "" {
		cfg.RosterDB = v
	}
	if v := os.Getenv(constants.EnvTableSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.InitialTableSize = n
		}
	}
	if v := os.Getenv(constants.EnvLoadFactor); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LoadFactor = f
		}
	}
	if v := os.Getenv(constants.EnvMaxParks); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxParks = n
		}
	}
	if v := os.Getenv(constants.EnvGrowOnHeadInsert); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.GrowOnHeadInsert = b
		}
	}
}

// sanitize clamps nonsense back to the defaults. The table rejects bad
// options on its own as well; doing it here keeps the resolved Config
// honest for anyone who logs it.
func sanitize(cfg *Config) {
	if cfg.InitialTableSize <= 0 {
		cfg.InitialTableSize = constants.InitialTableSize
	}
	if cfg.LoadFactor <= 0 {
		cfg.LoadFactor = constants.LoadFactorThreshold
	}
	if cfg.MaxParks <= 0 {
		cfg.MaxParks = constants.MaxParks
	}
}
