// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Position and moves
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard starting position)")
	moveList  = flag.String("moves", "", "Moves to play in long algebraic form, e.g. \"e2e4 e7e5 g1f3\"")
	movesFile = flag.String("f", "", "File of moves to play (whitespace separated, # for comments)")
	promotion = flag.String("promote", "q", "Promotion piece when a move does not name one: q, r, b or n")

	// Queries
	legalFrom = flag.String("legal", "", "List legal moves from this square, or 'all' for the side to move")
	showBoard = flag.Bool("board", false, "Print the final position as a diagram")

	// Perft
	perftDepth    = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divide        = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	workers       = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")
	noCache       = flag.Bool("nocache", false, "Disable the perft transposition cache")
	cacheCapacity = flag.Int("cache-capacity", 1<<20, "Maximum perft cache entries (0 = unlimited)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	quiet      = flag.Bool("s", false, "Silent mode (no diagnostics)")
	commentary = flag.Bool("v", false, "Log every ply as it is played")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *commentary:
		cfg.Verbosity = config.Commentary
	}

	kind, err := parsePromotion(*promotion)
	if err != nil {
		return err
	}
	cfg.DefaultPromotion = kind

	cfg.PerftDepth = *perftDepth
	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.UseCache = !*noCache
	return nil
}

// parsePromotion accepts a piece letter in either case.
func parsePromotion(s string) (chess.PieceKind, error) {
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); chess.IsPromotionKind(kind) {
			return kind, nil
		}
	}
	return chess.NoPiece, fmt.Errorf("-promote %q: %w", s, errors.ErrInvalidPromotion)
}

// runOptions collects the flags that steer a run rather than configure it.
type runOptions struct {
	fen           string
	moves         []string
	legalFrom     string
	showBoard     bool
	divide        bool
	cacheCapacity int
}

func optionsFromFlags() (runOptions, error) {
	opts := runOptions{
		fen:           *fenString,
		moves:         strings.Fields(*moveList),
		legalFrom:     *legalFrom,
		showBoard:     *showBoard,
		divide:        *divide,
		cacheCapacity: *cacheCapacity,
	}
	if *movesFile != "" {
		fileMoves, err := loadMovesFile(*movesFile)
		if err != nil {
			return opts, err
		}
		opts.moves = append(fileMoves, opts.moves...)
	}
	return opts, nil
}
