package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ExecuteMove plays m on board and reports how it was classified along
// with any captured piece. The move is expected to come from the legal
// move set; ExecuteMove does not check it.
//
// A king moving two files castles. A pawn moving diagonally onto an
// empty square captures en passant. A pawn arriving on its last rank is
// reported as PromotionMove and stays a pawn until Promote is called.
func ExecuteMove(board *chess.Board, m chess.Move) (chess.MoveClass, chess.Piece) {
	mover, ok := board.PieceAt(m.From)
	if !ok {
		return chess.StandardMove, chess.Piece{}
	}

	switch {
	case IsCastlingMove(mover, m):
		board.ApplyCastling(m)
		return chess.CastlingMove, chess.Piece{}

	case IsEnPassantCapture(board, mover, m):
		captured, _ := board.ApplyEnPassant(m)
		return chess.EnPassantMove, captured
	}

	captured, _ := board.ApplyMove(m)
	switch {
	case mover.Kind == chess.Pawn && IsPromotionSquare(mover.Colour, m.To):
		return chess.PromotionMove, captured
	case !captured.IsEmpty():
		return chess.CaptureMove, captured
	}
	return chess.StandardMove, captured
}

// IsEnPassantCapture reports whether m, made by piece, is a pawn moving
// diagonally onto an empty square.
func IsEnPassantCapture(board *chess.Board, piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.Pawn && m.FileDistance() == 1 && m.RankDistance() == 1 && board.IsEmpty(m.To)
}
