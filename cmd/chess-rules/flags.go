// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Configuration
	configFile = flag.String("config", "", "YAML configuration file")

	// Play options
	noBoard   = flag.Bool("noboard", false, "Don't print the board after each move")
	showMoves = flag.Bool("moves", false, "List legal moves after each move")
	prompt    = flag.String("prompt", "> ", "Prompt printed before each command")
	maxUndo   = flag.Int("maxundo", 0, "Maximum number of moves that can be taken back (0 = no limit)")

	// Perft options
	perftDepth = flag.Int("depth", 4, "Perft depth")
	divide     = flag.Bool("divide", false, "Print node counts per root move")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")
	tableSize  = flag.Int("table", 1<<20, "Perft memo table entries (0 = disabled)")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summaries, 2 running commentary")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// setFlags returns the names of the flags given on the command line.
// Only those override values read from a configuration file.
func setFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags copies explicitly set flags into cfg.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyPlayFlags(cfg, set)
	applyPerftFlags(cfg, set)

	if set["l"] {
		cfg.LogPath = *logFile
	}
	if set["L"] {
		cfg.LogPath = *appendLog
	}
	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPlayFlags applies flags for the play command.
func applyPlayFlags(cfg *config.Config, set map[string]bool) {
	if cfg.Play == nil {
		cfg.Play = config.NewPlayConfig()
	}
	if *noBoard {
		cfg.Play.ShowBoard = false
	}
	if set["moves"] {
		cfg.Play.ShowMoves = *showMoves
	}
	if set["prompt"] {
		cfg.Play.Prompt = *prompt
	}
	if set["maxundo"] {
		cfg.Play.MaxUndo = *maxUndo
	}
}

// applyPerftFlags applies flags for the perft command.
func applyPerftFlags(cfg *config.Config, set map[string]bool) {
	if cfg.Perft == nil {
		cfg.Perft = config.NewPerftConfig()
	}
	if set["depth"] {
		cfg.Perft.Depth = *perftDepth
	}
	if set["divide"] {
		cfg.Perft.Divide = *divide
	}
	if set["workers"] {
		cfg.Perft.Workers = *workers
	}
	if set["table"] {
		cfg.Perft.TableSize = *tableSize
	}
}
