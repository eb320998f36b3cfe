// Package config provides configuration for the rules engine tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels.
const (
	Silent     = 0 // nothing on the log
	Summary    = 1 // one line per game or perft run
	Commentary = 2 // running commentary, one line per ply
)

// MaxPerftDepth bounds perft runs; node counts grow roughly 30x per ply.
const MaxPerftDepth = 8

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Promotion kind used when a move reaches the last rank without
	// naming one.
	DefaultPromotion chess.PieceKind

	// Perft
	PerftDepth int
	Workers    int
	UseCache   bool

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:        Summary,
		DefaultPromotion: chess.Queen,
		Workers:          runtime.NumCPU(),
		UseCache:         true,
		OutputFile:       os.Stdout,
		LogFile:          os.Stderr,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d out of range: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if !chess.IsPromotionKind(c.DefaultPromotion) {
		return fmt.Errorf("default promotion %v: %w", c.DefaultPromotion, errors.ErrInvalidConfig)
	}
	if c.PerftDepth < 0 || c.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d out of range 0-%d: %w", c.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
