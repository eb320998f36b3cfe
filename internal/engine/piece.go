// Package engine provides chess move generation, legality checking and
// game state evaluation over a chess.Board.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// movement describes how a non-pawn piece moves: a set of direction
// vectors, followed either for a single step or until blocked.
type movement struct {
	directions [][2]int // {dRank, dFile}
	slides     bool
}

var (
	orthogonal = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	adjacent   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightJump = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

var movements = [...]movement{
	chess.Knight: {directions: knightJump},
	chess.Bishop: {directions: diagonal, slides: true},
	chess.Rook:   {directions: orthogonal, slides: true},
	chess.Queen:  {directions: adjacent, slides: true},
	chess.King:   {directions: adjacent},
}

// PseudoLegalMoves returns the moves piece could make on board if its
// own king's safety were ignored. Castling and en passant are not
// included.
func PseudoLegalMoves(board *chess.Board, piece chess.Piece) []chess.Move {
	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(board, piece)
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen, chess.King:
		return pieceMoves(board, piece, movements[piece.Kind])
	}
	return nil
}

// pieceMoves walks each direction of mv from the piece's square. A walk
// stops at the board edge or at the first occupied square, which is
// included only when it holds an enemy.
func pieceMoves(board *chess.Board, piece chess.Piece, mv movement) []chess.Move {
	from := piece.Position
	moves := make([]chess.Move, 0, 8)
	for _, d := range mv.directions {
		to := from.Offset(d[0], d[1])
		for to.WithinBoard() {
			occupant, occupied := board.PieceAt(to)
			if occupied {
				if occupant.Colour != piece.Colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break
			}
			moves = append(moves, chess.Move{From: from, To: to})
			if !mv.slides {
				break
			}
			to = to.Offset(d[0], d[1])
		}
	}
	return moves
}
