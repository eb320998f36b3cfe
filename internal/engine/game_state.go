package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// ComputeGameState classifies the position for the side to move. It
// holds no state and may be called at any time.
func ComputeGameState(board *chess.Board, toMove chess.Colour) chess.GameState {
	inCheck := IsInCheck(board, toMove)
	hasMoves := HasLegalMoves(board, toMove)

	switch {
	case inCheck && !hasMoves:
		return chess.Checkmate
	case !hasMoves:
		return chess.Stalemate
	case inCheck:
		return chess.Check
	}
	return chess.Running
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board, toMove chess.Colour) bool {
	return ComputeGameState(board, toMove) == chess.Checkmate
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board, toMove chess.Colour) bool {
	return ComputeGameState(board, toMove) == chess.Stalemate
}
