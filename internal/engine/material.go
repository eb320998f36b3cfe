package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// HasInsufficientMaterial reports whether neither side can possibly
// deliver mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B with both bishops on the same square colour
//
// The result is informational; game state classification does not use it.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [2][]chess.Piece

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			switch p.Kind {
			case chess.King:
				continue
			case chess.Pawn, chess.Rook, chess.Queen:
				return false
			}
			minors[colour] = append(minors[colour], p)
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white)+len(black) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		w, b := white[0], black[0]
		return w.Kind == chess.Bishop && b.Kind == chess.Bishop &&
			isLightSquare(w.Position) == isLightSquare(b.Position)
	}
	return false
}

// isLightSquare reports whether pos is a light square. a8 (rank 0, file 0)
// is light.
func isLightSquare(pos chess.Position) bool {
	return (pos.Rank+pos.File)%2 == 0
}

// startingCount is the number of pieces of each kind a side starts with.
var startingCount = map[chess.PieceKind]int{
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
}

// IsStandardMaterial reports whether both sides have material that a
// game from the starting position could reach: one king, at most 8
// pawns, and no more extra pieces than pawns could have promoted.
func IsStandardMaterial(board *chess.Board) bool {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		count := make(map[chess.PieceKind]int)
		for _, p := range board.Pieces(colour) {
			count[p.Kind]++
		}
		if count[chess.King] != 1 || count[chess.Pawn] > 8 {
			return false
		}
		promoted := 0
		for kind, n := range startingCount {
			if count[kind] > n {
				promoted += count[kind] - n
			}
		}
		if promoted > 8-count[chess.Pawn] {
			return false
		}
	}
	return true
}
