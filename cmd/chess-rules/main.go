// chess-rules plays moves through the chess rules engine and reports the
// resulting position, its legal moves and perft node counts.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/perft"
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
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logF, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	outF, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeFiles(logF)
		os.Exit(1)
	}

	opts, err := optionsFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeFiles(outF, logF)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, opts)
	stop()
	closeFiles(outF, logF)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
// The returned file is nil when logging goes to stderr.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, chesserrors.Wrapf(err, "creating log file %s", *logFile)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile configures the output file based on command-line flags.
// The returned file is nil when output goes to stdout.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, chesserrors.Wrapf(err, "creating output file %s", *outputFile)
	}
	cfg.OutputFile = file
	return file, nil
}

// closeFiles closes the files opened for -o and -l.
func closeFiles(files ...*os.File) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing %s: %v\n", f.Name(), err)
		}
	}
}

// loadMovesFile reads whitespace separated moves. Text after '#' on a
// line is ignored.
func loadMovesFile(path string) ([]string, error) {
	file, err := os.Open(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, chesserrors.Wrap(err, "opening moves file")
	}
	defer file.Close()

	var moves []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line, _, _ := strings.Cut(scanner.Text(), "#")
		moves = append(moves, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, chesserrors.Wrapf(err, "reading moves file %s", path)
	}
	return moves, nil
}

// run sets up the game, plays the requested moves and writes the report.
func run(ctx context.Context, cfg *config.Config, opts runOptions) error {
	g, err := newGame(cfg, opts.fen)
	if err != nil {
		return err
	}

	for _, m := range opts.moves {
		if _, err := g.PlayText(m); err != nil {
			return err
		}
	}

	out := cfg.OutputFile
	writeReport(out, g, opts.showBoard)

	if opts.legalFrom != "" {
		if err := writeLegalMoves(out, g, opts.legalFrom); err != nil {
			return err
		}
	}

	if cfg.PerftDepth > 0 {
		return runPerft(ctx, cfg, g, opts)
	}
	return nil
}

func newGame(cfg *config.Config, fen string) (*game.Game, error) {
	if fen == "" {
		return game.New(cfg), nil
	}
	return game.NewFromFEN(cfg, fen)
}

// writeReport prints the position and its classification.
func writeReport(w io.Writer, g *game.Game, showBoard bool) {
	if showBoard {
		fmt.Fprintln(w, g.Snapshot().String())
	}
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "To move: %s\n", g.ToMove())
	fmt.Fprintf(w, "State: %s\n", g.State())
	fmt.Fprintf(w, "Plies: %d\n", len(g.History()))
	fmt.Fprintf(w, "Result: %s\n", g.Outcome())
	if g.KingCaptured() {
		fmt.Fprintln(w, "King captured")
	}
	if n := g.Repetitions(); n > 1 {
		fmt.Fprintf(w, "Repetitions: %d\n", n)
	}
	if g.InsufficientMaterial() {
		fmt.Fprintln(w, "Insufficient material")
	}
	if !engine.IsStandardMaterial(g.Snapshot()) {
		fmt.Fprintln(w, "Non-standard material")
	}
}

// writeLegalMoves lists the legal moves from square, or every legal
// move of the side to move when square is "all".
func writeLegalMoves(w io.Writer, g *game.Game, square string) error {
	var moves []chess.Move
	if square == "all" {
		moves = g.LegalMoves()
	} else {
		pos, err := chess.ParseSquare(square)
		if err != nil {
			return err
		}
		if moves, err = g.LegalMovesFrom(pos); err != nil {
			return err
		}
	}

	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(texts, " "))
	return nil
}

// runPerft counts nodes below the current position.
func runPerft(ctx context.Context, cfg *config.Config, g *game.Game, opts runOptions) error {
	board := g.Snapshot()
	popts := []perft.Option{perft.WithWorkers(cfg.Workers)}

	var cache *hashing.ThreadSafePerftCache
	if cfg.UseCache {
		cache = hashing.NewThreadSafePerftCache(opts.cacheCapacity)
		popts = append(popts, perft.WithCache(cache))
	}
	popts = append(popts, perft.WithProgress(func(r perft.Result) {
		cfg.Logf(config.Commentary, "%s", r)
	}))

	start := time.Now()
	results, err := perft.Divide(ctx, board, g.ToMove(), cfg.PerftDepth, popts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	out := cfg.OutputFile
	if opts.divide {
		for _, r := range results {
			fmt.Fprintln(out, r)
		}
	}
	total := perft.Total(results)
	fmt.Fprintf(out, "perft(%d) = %d\n", cfg.PerftDepth, total)

	cfg.Logf(config.Summary, "perft(%d): %d nodes in %v with %d workers", cfg.PerftDepth, total, elapsed.Round(time.Millisecond), cfg.Workers)
	if cache != nil {
		cfg.Logf(config.Summary, "perft cache: %d entries, %d hits", cache.Len(), cache.Hits())
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves through the chess rules engine and reports the result.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMoves are long algebraic: e2e4, e1g1 (castling), e7e8n (promotion).\n")
}
