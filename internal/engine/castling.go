package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// KingStartFile is the file both kings start on.
const KingStartFile = 4

// castleSide describes one castling option by file numbers on the
// castling side's back rank.
type castleSide struct {
	rookFile int
	between  []int // must be empty
	transit  []int // must not be attacked; includes the king's landing square
	kingTo   int
}

var castleSides = [...]castleSide{
	{rookFile: 7, between: []int{5, 6}, transit: []int{5, 6}, kingTo: 6},
	{rookFile: 0, between: []int{1, 2, 3}, transit: []int{3, 2}, kingTo: 2},
}

// CastlingMoves returns the castling moves available to king. The king
// must be unmoved on its starting square and not in check. For each
// side the rook must be unmoved in its corner, the squares between them
// empty and the squares the king crosses unattacked.
func CastlingMoves(board *chess.Board, king chess.Piece) []chess.Move {
	if king.Kind != chess.King || king.HasMoved {
		return nil
	}
	home := king.Colour.HomeRank()
	if king.Position != chess.Pos(home, KingStartFile) {
		return nil
	}
	if IsInCheck(board, king.Colour) {
		return nil
	}

	var moves []chess.Move
	for _, side := range castleSides {
		if canCastle(board, king, side) {
			moves = append(moves, chess.Move{From: king.Position, To: chess.Pos(home, side.kingTo)})
		}
	}
	return moves
}

func canCastle(board *chess.Board, king chess.Piece, side castleSide) bool {
	home := king.Position.Rank
	rook, ok := board.PieceAt(chess.Pos(home, side.rookFile))
	if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.HasMoved {
		return false
	}
	for _, file := range side.between {
		if !board.IsEmpty(chess.Pos(home, file)) {
			return false
		}
	}
	for _, file := range side.transit {
		if !SquareIsSafe(board, chess.Pos(home, file), king.Colour) {
			return false
		}
	}
	return true
}

// IsCastlingMove reports whether m, made by piece, is a castling move:
// a king travelling two files.
func IsCastlingMove(piece chess.Piece, m chess.Move) bool {
	return piece.Kind == chess.King && m.FileDistance() == 2 && m.RankDistance() == 0
}

// CastlingRights is a bit set of the castling options still open,
// judged only from unmoved kings and rooks on their starting squares.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

var castlingLetters = []struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// CurrentCastlingRights reports which castling options remain open on board.
func CurrentCastlingRights(board *chess.Board) CastlingRights {
	var rights CastlingRights
	for _, cl := range castlingLetters {
		colour := castlingColour(cl.letter)
		corner := castlingCorners[cl.letter]
		king, ok := board.PieceAt(chess.Pos(corner.Rank, KingStartFile))
		if !ok || king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		rook, ok := board.PieceAt(corner)
		if !ok || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
			continue
		}
		rights |= cl.right
	}
	return rights
}

// String returns the rights in FEN form, e.g. "KQk" or "-".
func (r CastlingRights) String() string {
	var s []byte
	for _, cl := range castlingLetters {
		if r&cl.right != 0 {
			s = append(s, cl.letter)
		}
	}
	if len(s) == 0 {
		return "-"
	}
	return string(s)
}
