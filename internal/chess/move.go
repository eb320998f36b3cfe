package chess

import (
	"fmt"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a from/to pair. It carries no classification; whether a move
// captures, castles or promotes is decided from board context when it
// is executed.
type Move struct {
	From Position
	To   Position
}

// String returns the move in long algebraic form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// RankDistance returns the absolute rank difference of the move.
func (m Move) RankDistance() int {
	d := m.To.Rank - m.From.Rank
	if d < 0 {
		return -d
	}
	return d
}

// FileDistance returns the absolute file difference of the move.
func (m Move) FileDistance() int {
	d := m.To.File - m.From.File
	if d < 0 {
		return -d
	}
	return d
}

// ParseMove parses long algebraic text such as "e2e4" or "e7e8q".
// The optional fifth character names a promotion kind; NoPiece is
// returned when it is absent.
func ParseMove(s string) (Move, PieceKind, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, NoPiece, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    s,
			Expected: "move like e2e4",
			Got:      fmt.Sprintf("%d characters", len(s)),
		}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, NoPiece, &errors.ParseError{Err: err, Input: s, Column: 1}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, NoPiece, &errors.ParseError{Err: err, Input: s, Column: 3}
	}
	promotion := NoPiece
	if len(s) == 5 {
		promotion = KindFromLetter(s[4])
		if !IsPromotionKind(promotion) {
			return Move{}, NoPiece, &errors.ParseError{
				Err:      errors.ErrInvalidPromotion,
				Input:    s,
				Column:   5,
				Expected: "one of q, r, b, n",
				Got:      string(s[4]),
			}
		}
	}
	return Move{From: from, To: to}, promotion, nil
}

// FormatMove returns m in long algebraic form with a trailing lowercase
// promotion letter when promotion is set, e.g. "e7e8q".
func FormatMove(m Move, promotion PieceKind) string {
	if promotion == NoPiece {
		return m.String()
	}
	return m.String() + string(unicode.ToLower(rune(promotion.Letter())))
}
