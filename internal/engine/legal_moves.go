package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the pseudo-legal moves of piece that do not leave
// its own king in check. Each candidate is played on a copy of the
// board. Castling and en passant are not included; see AllLegalMovesForPiece.
func LegalMoves(board *chess.Board, piece chess.Piece) []chess.Move {
	candidates := PseudoLegalMoves(board, piece)
	legal := candidates[:0]
	for _, m := range candidates {
		if tryMove(board, m, piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// tryMove plays m on a copy of board and reports whether colour's king
// is safe afterwards.
func tryMove(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	sim := board.Clone()
	sim.ApplyMove(m)
	return !IsInCheck(sim, colour)
}

// AllLegalMovesForPiece returns every legal move of piece: its standard
// legal moves plus castling for an unmoved king and en passant for an
// eligible pawn.
func AllLegalMovesForPiece(board *chess.Board, piece chess.Piece) []chess.Move {
	moves := LegalMoves(board, piece)
	switch piece.Kind {
	case chess.King:
		moves = append(moves, CastlingMoves(board, piece)...)
	case chess.Pawn:
		if m, ok := EnPassantMove(board, piece); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// LegalMovesFrom returns the legal moves of the piece standing on pos,
// or nil for an empty square.
func LegalMovesFrom(board *chess.Board, pos chess.Position) []chess.Move {
	piece, ok := board.PieceAt(pos)
	if !ok {
		return nil
	}
	return AllLegalMovesForPiece(board, piece)
}

// AllLegalMoves returns the legal moves of every piece of colour.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		moves = append(moves, AllLegalMovesForPiece(board, piece)...)
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, piece := range board.Pieces(colour) {
		if len(AllLegalMovesForPiece(board, piece)) > 0 {
			return true
		}
	}
	return false
}
