package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates forward steps and diagonal captures. En passant
// depends on the previous move and is handled by EnPassantMove.
func pawnMoves(board *chess.Board, pawn chess.Piece) []chess.Move {
	from := pawn.Position
	dir := pawn.Colour.Forward()
	moves := make([]chess.Move, 0, 4)

	one := from.Offset(dir, 0)
	if board.IsEmpty(one) {
		moves = append(moves, chess.Move{From: from, To: one})
		two := from.Offset(2*dir, 0)
		if !pawn.HasMoved && board.IsEmpty(two) {
			moves = append(moves, chess.Move{From: from, To: two})
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(dir, df)
		if board.IsEnemy(to, pawn.Colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// pawnAttacks reports whether pawn attacks target. A pawn attacks only
// the two squares diagonally in front of it.
func pawnAttacks(pawn chess.Piece, target chess.Position) bool {
	return target.Rank == pawn.Position.Rank+pawn.Colour.Forward() &&
		abs(target.File-pawn.Position.File) == 1
}

// EnPassantMove returns the en passant capture available to pawn, if
// any. The previous move must have been a two-rank advance by an enemy
// pawn that now stands beside this one, and the capture must not leave
// the capturing side in check.
func EnPassantMove(board *chess.Board, pawn chess.Piece) (chess.Move, bool) {
	if pawn.Kind != chess.Pawn {
		return chess.Move{}, false
	}
	last, ok := board.LastMove()
	if !ok || last.RankDistance() != 2 {
		return chess.Move{}, false
	}
	victim, ok := board.PieceAt(last.To)
	if !ok || victim.Kind != chess.Pawn || victim.Colour == pawn.Colour {
		return chess.Move{}, false
	}
	if pawn.Position.Rank != last.To.Rank || abs(pawn.Position.File-last.To.File) != 1 {
		return chess.Move{}, false
	}

	m := chess.Move{
		From: pawn.Position,
		To:   chess.Pos(last.To.Rank+pawn.Colour.Forward(), last.To.File),
	}
	sim := board.Clone()
	sim.ApplyEnPassant(m)
	if IsInCheck(sim, pawn.Colour) {
		return chess.Move{}, false
	}
	return m, true
}

// IsPromotionSquare reports whether a pawn of colour promotes on pos:
// the back rank of the opposing side.
func IsPromotionSquare(colour chess.Colour, pos chess.Position) bool {
	return pos.WithinBoard() && pos.Rank == colour.Opposite().HomeRank()
}

// NeedsPromotion reports whether the piece at pos is a pawn standing on
// its promotion square.
func NeedsPromotion(board *chess.Board, pos chess.Position) bool {
	p, ok := board.PieceAt(pos)
	return ok && p.Kind == chess.Pawn && IsPromotionSquare(p.Colour, pos)
}

// Promote replaces the pawn at pos with a new piece of the given kind
// and the pawn's colour. It does nothing and returns false unless a
// pawn stands on its promotion square and kind is a queen, rook, bishop
// or knight.
func Promote(board *chess.Board, pos chess.Position, kind chess.PieceKind) bool {
	if !chess.IsPromotionKind(kind) || !NeedsPromotion(board, pos) {
		return false
	}
	pawn, _ := board.PieceAt(pos)
	promoted := chess.NewPiece(kind, pawn.Colour, pos)
	promoted.HasMoved = true
	board.SetPieceAt(pos, promoted)
	return true
}

// EnPassantTarget returns the square a pawn just skipped over with a
// two-rank advance, if the previous move was one.
func EnPassantTarget(board *chess.Board) (chess.Position, bool) {
	last, ok := board.LastMove()
	if !ok || last.RankDistance() != 2 || last.FileDistance() != 0 {
		return chess.Position{}, false
	}
	if p, ok := board.PieceAt(last.To); !ok || p.Kind != chess.Pawn {
		return chess.Position{}, false
	}
	return chess.Pos((last.From.Rank+last.To.Rank)/2, last.To.File), true
}
