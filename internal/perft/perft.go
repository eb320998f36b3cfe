// Package perft counts move-generation tree leaves, the standard way of
// checking a move generator against known node counts.
package perft

import (
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
	"golang.org/x/exp/slices"
)

// nodeCache is satisfied by hashing.PerftCache and hashing.ThreadSafePerftCache.
type nodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// Result is the node count below one root move.
type Result struct {
	Move      chess.Move
	Promotion chess.PieceKind
	Nodes     uint64
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d", chess.FormatMove(r.Move, r.Promotion), r.Nodes)
}

// Perft returns the number of leaf nodes depth plies below the position.
// A pawn reaching the last rank counts once per promotion kind.
func Perft(board *chess.Board, toMove chess.Colour, depth int) uint64 {
	return count(board, toMove, depth, nil)
}

// PerftCached is Perft with subtree counts memoised in cache.
func PerftCached(board *chess.Board, toMove chess.Colour, depth int, cache *hashing.PerftCache) uint64 {
	if cache == nil {
		return count(board, toMove, depth, nil)
	}
	return count(board, toMove, depth, cache)
}

func count(board *chess.Board, toMove chess.Colour, depth int, cache nodeCache) uint64 {
	if depth <= 0 {
		return 1
	}

	var hash uint64
	if cache != nil && depth > 1 {
		hash = hashing.GenerateZobristHash(board, toMove)
		if nodes, ok := cache.Lookup(hash, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range engine.AllLegalMoves(board, toMove) {
		for _, promo := range promotionsFor(board, m) {
			if depth == 1 {
				nodes++
				continue
			}
			child := board.Clone()
			play(child, m, promo)
			nodes += count(child, toMove.Opposite(), depth-1, cache)
		}
	}

	if cache != nil && depth > 1 {
		cache.Store(hash, depth, nodes)
	}
	return nodes
}

var noPromotion = []chess.PieceKind{chess.NoPiece}

// promotionsFor lists the promotion choices of m: every promotion kind
// for a pawn reaching its last rank, otherwise just NoPiece.
func promotionsFor(board *chess.Board, m chess.Move) []chess.PieceKind {
	p, ok := board.PieceAt(m.From)
	if ok && p.Kind == chess.Pawn && engine.IsPromotionSquare(p.Colour, m.To) {
		return chess.PromotionKinds[:]
	}
	return noPromotion
}

func play(board *chess.Board, m chess.Move, promo chess.PieceKind) {
	if class, _ := engine.ExecuteMove(board, m); class == chess.PromotionMove {
		engine.Promote(board, m.To, promo)
	}
}

// Option configures Divide.
type Option func(*divideOptions)

type divideOptions struct {
	workers  int
	cache    *hashing.ThreadSafePerftCache
	progress func(Result)
}

// WithWorkers sets the number of goroutines counting root moves.
func WithWorkers(n int) Option {
	return func(o *divideOptions) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithCache shares cache between the workers.
func WithCache(cache *hashing.ThreadSafePerftCache) Option {
	return func(o *divideOptions) {
		o.cache = cache
	}
}

// WithProgress registers fn to be called as each root move finishes.
// Calls happen on the goroutine running Divide.
func WithProgress(fn func(Result)) Option {
	return func(o *divideOptions) {
		o.progress = fn
	}
}

// Divide counts the leaves below each root move separately, spreading
// the root moves over a worker pool. Results are sorted by move text.
// Cancelling ctx abandons root moves not yet started and returns the
// context error.
func Divide(ctx context.Context, board *chess.Board, toMove chess.Colour, depth int, opts ...Option) ([]Result, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	o := divideOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	var items []worker.WorkItem
	for _, m := range engine.AllLegalMoves(board, toMove) {
		for _, promo := range promotionsFor(board, m) {
			child := board.Clone()
			play(child, m, promo)
			items = append(items, worker.WorkItem{
				Board:     child,
				ToMove:    toMove.Opposite(),
				Move:      m,
				Promotion: promo,
				Depth:     depth - 1,
				Index:     len(items),
			})
		}
	}

	process := func(_ context.Context, item worker.WorkItem) worker.ProcessResult {
		var cache nodeCache
		if o.cache != nil {
			cache = o.cache
		}
		return worker.ProcessResult{
			Move:      item.Move,
			Promotion: item.Promotion,
			Index:     item.Index,
			Nodes:     count(item.Board, item.ToMove, item.Depth, cache),
		}
	}

	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(o.workers),
		worker.WithBufferSize(len(items)+1),
	)
	pool.Start(ctx)
	for _, item := range items {
		pool.Submit(item)
	}
	go pool.Close()

	results := make([]Result, 0, len(items))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			continue
		}
		res := Result{Move: r.Move, Promotion: r.Promotion, Nodes: r.Nodes}
		if o.progress != nil {
			o.progress(res)
		}
		results = append(results, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	slices.SortFunc(results, func(a, b Result) int {
		return strings.Compare(chess.FormatMove(a.Move, a.Promotion), chess.FormatMove(b.Move, b.Promotion))
	})
	return results, nil
}

// Total sums the node counts of results.
func Total(results []Result) uint64 {
	var total uint64
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
