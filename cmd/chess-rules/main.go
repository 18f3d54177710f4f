// chess-rules plays chess between two people at a terminal and checks
// move generation with perft.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configFile, setFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, flag.Args(), os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the configuration from defaults, the optional YAML
// file and the command-line flags, in that order.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	applyFlags(cfg, set)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := setupLogFile(cfg); err != nil {
		return nil, errors.Wrap(err, "opening log file")
	}
	return cfg, nil
}

// run dispatches to the command named by args[0]; play is the default.
func run(cfg *config.Config, args []string, in io.Reader) error {
	logger := newLogger(cfg)

	cmd := "play"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "play":
		return runPlay(cfg, in, cfg.OutputFile, logger)
	case "perft":
		if len(args) > 0 {
			depth, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %q", args[0])
			}
			cfg.Perft.Depth = depth
			if err := cfg.Perft.Validate(); err != nil {
				return err
			}
		}
		return runPerft(cfg, cfg.OutputFile, logger)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [play | perft [depth]]\n\n")
	fmt.Fprintf(os.Stderr, "Two-player chess at the terminal, with a perft move-count check.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nPlay commands:\n")
	fmt.Fprint(os.Stderr, playHelp)
}
