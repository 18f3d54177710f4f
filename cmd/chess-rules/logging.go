package main

import (
	"io"
	"log"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

// setupLogFile points cfg.LogFile at the configured log file. -L appends;
// -l and a log_file setting truncate.
func setupLogFile(cfg *config.Config) error {
	if cfg.LogPath == "" {
		return nil
	}

	var file *os.File
	var err error
	if *appendLog != "" && cfg.LogPath == *appendLog {
		file, err = os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	} else {
		file, err = os.Create(cfg.LogPath)
	}
	if err != nil {
		return err
	}
	cfg.LogFile = file
	return nil
}

// newLogger builds the diagnostics logger. Nothing is written at
// verbosity 0.
func newLogger(cfg *config.Config) *log.Logger {
	if cfg.Verbosity < 1 || cfg.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(cfg.LogFile, "chess-rules: ", log.LstdFlags)
}
