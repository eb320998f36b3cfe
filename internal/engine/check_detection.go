package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"golang.org/x/exp/slices"
)

// IsInCheck returns true if the given colour's king is attacked. A
// missing king also counts as check; callers treat it as the end of
// the game.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return true
	}
	return !SquareIsSafe(board, king, colour)
}

// SquareIsSafe returns true if no piece opposing colour attacks pos.
func SquareIsSafe(board *chess.Board, pos chess.Position, colour chess.Colour) bool {
	for _, enemy := range board.Pieces(colour.Opposite()) {
		if Attacks(board, enemy, pos) {
			return false
		}
	}
	return true
}

// Attacks reports whether piece attacks target. Pawns are tested on
// their capture diagonals; every other kind attacks the squares it
// could move to.
func Attacks(board *chess.Board, piece chess.Piece, target chess.Position) bool {
	if piece.Kind == chess.Pawn {
		return pawnAttacks(piece, target)
	}
	return slices.ContainsFunc(PseudoLegalMoves(board, piece), func(m chess.Move) bool {
		return m.To == target
	})
}
