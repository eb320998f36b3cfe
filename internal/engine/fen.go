package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingCorners maps each FEN castling letter to the rook square it
// refers to.
var castlingCorners = map[byte]chess.Position{
	'K': chess.Pos(7, 7),
	'Q': chess.Pos(7, 0),
	'k': chess.Pos(0, 7),
	'q': chess.Pos(0, 0),
}

func castlingColour(c byte) chess.Colour {
	if unicode.IsLower(rune(c)) {
		return chess.Black
	}
	return chess.White
}

// NewInitialBoard returns a board in the standard starting position.
func NewInitialBoard() *chess.Board {
	return chess.NewInitialBoard()
}

// NewBoardFromFEN creates a board from a FEN string and returns it with
// the side to move.
//
// The board has no move history, so FEN state is mapped onto piece
// flags: kings and rooks without castling rights are marked as moved,
// as are pawns off their starting rank, and an en passant square
// becomes a synthetic previous move by the side not on move. The clock
// fields are accepted but ignored.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, wrapFEN(fen, err)
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, wrapFEN(fen, err)
	}

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, chess.White, wrapFEN(fen, err)
	}

	if err := parseEnPassant(board, toMove, parts); err != nil {
		return nil, chess.White, wrapFEN(fen, err)
	}

	return board, toMove, nil
}

func wrapFEN(fen string, err error) error {
	return &errors.ParseError{Err: err, Input: fen}
}

// parsePiecePositions parses the piece placement field of a FEN string.
// Pawns away from their starting rank are marked as moved.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for rank, row := range ranks {
		file := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoPiece {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
			}
			if kind == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return fmt.Errorf("pawn on back rank %d: %w", chess.BoardSize-rank, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			piece := chess.NewPiece(kind, colour, chess.Pos(rank, file))
			if kind == chess.Pawn {
				piece.HasMoved = rank != pawnStartRank(colour)
			}
			board.SetPieceAt(piece.Position, piece)
			file++
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

func pawnStartRank(colour chess.Colour) int {
	return colour.HomeRank() + colour.Forward()
}

// parseSideToMove parses the side to move field. White moves when the
// field is absent.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseCastlingRights marks kings and rooks as moved unless a castling
// right keeps them unmoved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	unmoved := map[chess.Position]bool{}
	if len(parts) >= 3 && parts[2] != "-" {
		for i := 0; i < len(parts[2]); i++ {
			c := parts[2][i]
			corner, ok := castlingCorners[c]
			if !ok {
				return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
			}
			unmoved[corner] = true
			unmoved[chess.Pos(castlingColour(c).HomeRank(), KingStartFile)] = true
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(colour) {
			if (p.Kind == chess.King || p.Kind == chess.Rook) && !unmoved[p.Position] {
				p.HasMoved = true
				board.SetPieceAt(p.Position, p)
			}
		}
	}
	return nil
}

// parseEnPassant turns the en passant target square into the double
// pawn advance that produced it.
func parseEnPassant(board *chess.Board, toMove chess.Colour, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square: %v: %w", err, errors.ErrInvalidFEN)
	}

	mover := toMove.Opposite()
	from := target.Offset(-mover.Forward(), 0)
	to := target.Offset(mover.Forward(), 0)
	pawn, ok := board.PieceAt(to)
	if from.Rank != pawnStartRank(mover) || !ok || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return fmt.Errorf("en passant square %s has no pawn behind it: %w", parts[3], errors.ErrInvalidFEN)
	}
	if !board.IsEmpty(target) || !board.IsEmpty(from) {
		return fmt.Errorf("en passant square %s is not clear: %w", parts[3], errors.ErrInvalidFEN)
	}
	board.SetLastMove(chess.Move{From: from, To: to})
	return nil
}

// BoardToFEN converts a board to a FEN string. Castling rights are
// derived from unmoved kings and rooks, the en passant square from the
// previous move. The clock fields are always "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(CurrentCastlingRights(board).String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Pos(rank, file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := EnPassantTarget(board); ok {
		sb.WriteString(target.String())
		return
	}
	sb.WriteByte('-')
}
