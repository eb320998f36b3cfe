package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Position is a square address. Rank 0 is Black's back rank and
// file 0 is the a-file.
type Position struct {
	Rank int
	File int
}

// Pos is shorthand for Position{Rank: rank, File: file}.
func Pos(rank, file int) Position {
	return Position{Rank: rank, File: file}
}

// WithinBoard reports whether both coordinates lie in [0, 8).
func (p Position) WithinBoard() bool {
	return p.Rank >= 0 && p.Rank < BoardSize && p.File >= 0 && p.File < BoardSize
}

// Offset returns the position shifted by the given deltas. The result
// may lie off the board.
func (p Position) Offset(dRank, dFile int) Position {
	return Position{Rank: p.Rank + dRank, File: p.File + dFile}
}

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	if !p.WithinBoard() {
		return fmt.Sprintf("(%d,%d)", p.Rank, p.File)
	}
	return string([]byte{byte('a' + p.File), byte('8' - p.Rank)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("%q: want two characters: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return Position{}, fmt.Errorf("%q: file out of range: %w", s, errors.ErrInvalidSquare)
	}
	if rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("%q: rank out of range: %w", s, errors.ErrInvalidSquare)
	}
	return Position{Rank: int('8' - rank), File: int(file - 'a')}, nil
}
