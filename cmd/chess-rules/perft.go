package main

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
)

// runPerft counts the legal move tree below the initial position.
func runPerft(cfg *config.Config, out io.Writer, logger *log.Logger) error {
	pcfg := cfg.Perft
	opts := engine.PerftOptions{Workers: pcfg.Workers}
	if pcfg.TableSize > 0 {
		opts.Table = hashing.NewPerftTable(pcfg.TableSize)
	}

	pos := chess.NewPosition()
	start := time.Now()
	result := engine.PerftDivide(&pos, pcfg.Depth, opts)
	elapsed := time.Since(start)

	if pcfg.Divide {
		for _, e := range result.Entries {
			fmt.Fprintf(out, "%v: %d\n", e.Move, e.Nodes)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Nodes searched: %d\n", result.Total)

	logger.Printf("perft depth %d: %d nodes in %v", pcfg.Depth, result.Total, elapsed.Round(time.Millisecond))
	if opts.Table != nil && cfg.Verbosity >= 2 {
		logger.Printf("perft table: %d entries, %d hits", opts.Table.Len(), opts.Table.Hits())
	}
	return nil
}
