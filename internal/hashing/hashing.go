// Package hashing provides Zobrist position hashing and a perft node cache.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristKeys holds the random keys XORed together to form a position hash.
type zobristKeys struct {
	pieces    [2][7][chess.BoardSize * chess.BoardSize]uint64 // [colour][kind][square]
	blackMove uint64
	castling  [16]uint64
	enPassant [chess.BoardSize]uint64
}

var keys = newZobristKeys(0x9E3779B97F4A7C15)

// newZobristKeys fills the key table from a splitmix64 sequence so that
// hashes are stable across runs.
func newZobristKeys(seed uint64) *zobristKeys {
	state := seed
	next := func() uint64 {
		state += 0x9E3779B97F4A7C15
		z := state
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	k := &zobristKeys{}
	for c := range k.pieces {
		for p := range k.pieces[c] {
			for sq := range k.pieces[c][p] {
				k.pieces[c][p][sq] = next()
			}
		}
	}
	k.blackMove = next()
	for i := range k.castling {
		k.castling[i] = next()
	}
	for i := range k.enPassant {
		k.enPassant[i] = next()
	}
	return k
}

// GenerateZobristHash hashes everything that determines the legal moves
// of a position: piece placement, side to move, open castling options
// and the en passant file.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var hash uint64
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			sq := p.Position.Rank*chess.BoardSize + p.Position.File
			hash ^= keys.pieces[colour][p.Kind][sq]
		}
	}
	if toMove == chess.Black {
		hash ^= keys.blackMove
	}
	hash ^= keys.castling[engine.CurrentCastlingRights(board)]
	if target, ok := engine.EnPassantTarget(board); ok {
		hash ^= keys.enPassant[target.File]
	}
	return hash
}

// cacheKey identifies a perft subtree.
type cacheKey struct {
	hash  uint64
	depth int
}

// PerftCache remembers node counts of perft subtrees by position hash
// and remaining depth.
type PerftCache struct {
	table map[cacheKey]uint64
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftCache creates a new cache. maxCapacity of 0 means unlimited capacity.
func NewPerftCache(maxCapacity int) *PerftCache {
	return &PerftCache{
		table:       make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored node count for hash at depth.
func (c *PerftCache) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := c.table[cacheKey{hash, depth}]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return nodes, ok
}

// Store records a node count. Once the cache is full new entries are dropped.
func (c *PerftCache) Store(hash uint64, depth int, nodes uint64) {
	key := cacheKey{hash, depth}
	if _, ok := c.table[key]; !ok && c.IsFull() {
		return
	}
	c.table[key] = nodes
}

// Len returns the number of stored entries.
func (c *PerftCache) Len() int {
	return len(c.table)
}

// Hits returns the number of successful lookups.
func (c *PerftCache) Hits() int {
	return c.hits
}

// Misses returns the number of failed lookups.
func (c *PerftCache) Misses() int {
	return c.misses
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *PerftCache) IsFull() bool {
	return c.maxCapacity > 0 && len(c.table) >= c.maxCapacity
}

// Reset clears the cache and its counters.
func (c *PerftCache) Reset() {
	c.table = make(map[cacheKey]uint64)
	c.hits = 0
	c.misses = 0
}
