package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestExecuteMove(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		move         string
		wantClass    chess.MoveClass
		wantCaptured chess.PieceKind
		wantPieces   map[string]chess.PieceKind // squares checked afterwards; NoPiece means empty
	}{
		{
			name:      "quiet pawn push",
			fen:       engine.InitialFEN,
			move:      "e2e4",
			wantClass: chess.StandardMove,
			wantPieces: map[string]chess.PieceKind{
				"e2": chess.NoPiece,
				"e4": chess.Pawn,
			},
		},
		{
			name:         "capture",
			fen:          "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
			move:         "e4d5",
			wantClass:    chess.CaptureMove,
			wantCaptured: chess.Pawn,
			wantPieces: map[string]chess.PieceKind{
				"e4": chess.NoPiece,
				"d5": chess.Pawn,
			},
		},
		{
			name:      "white castles kingside",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1g1",
			wantClass: chess.CastlingMove,
			wantPieces: map[string]chess.PieceKind{
				"e1": chess.NoPiece,
				"g1": chess.King,
				"f1": chess.Rook,
				"h1": chess.NoPiece,
			},
		},
		{
			name:      "white castles queenside",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:      "e1c1",
			wantClass: chess.CastlingMove,
			wantPieces: map[string]chess.PieceKind{
				"c1": chess.King,
				"d1": chess.Rook,
				"a1": chess.NoPiece,
				"b1": chess.NoPiece,
			},
		},
		{
			name:      "black castles kingside",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move:      "e8g8",
			wantClass: chess.CastlingMove,
			wantPieces: map[string]chess.PieceKind{
				"g8": chess.King,
				"f8": chess.Rook,
				"h8": chess.NoPiece,
			},
		},
		{
			name:         "en passant",
			fen:          "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			move:         "e5d6",
			wantClass:    chess.EnPassantMove,
			wantCaptured: chess.Pawn,
			wantPieces: map[string]chess.PieceKind{
				"d6": chess.Pawn,
				"d5": chess.NoPiece,
				"e5": chess.NoPiece,
			},
		},
		{
			name:      "promotion push stays a pawn",
			fen:       "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:      "a7a8",
			wantClass: chess.PromotionMove,
			wantPieces: map[string]chess.PieceKind{
				"a8": chess.Pawn,
			},
		},
		{
			name:         "promotion with capture",
			fen:          "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:         "a7b8",
			wantClass:    chess.PromotionMove,
			wantCaptured: chess.Rook,
			wantPieces: map[string]chess.PieceKind{
				"b8": chess.Pawn,
				"a7": chess.NoPiece,
			},
		},
		{
			name:      "empty source square",
			fen:       engine.InitialFEN,
			move:      "e4e5",
			wantClass: chess.StandardMove,
			wantPieces: map[string]chess.PieceKind{
				"e5": chess.NoPiece,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			class, captured := engine.ExecuteMove(board, testutil.MustMove(t, tt.move))

			if class != tt.wantClass {
				t.Errorf("ExecuteMove(%s) class = %v, want %v", tt.move, class, tt.wantClass)
			}
			if captured.Kind != tt.wantCaptured {
				t.Errorf("ExecuteMove(%s) captured = %v, want %v", tt.move, captured.Kind, tt.wantCaptured)
			}
			for square, want := range tt.wantPieces {
				piece, _ := board.PieceAt(testutil.MustSquare(t, square))
				if piece.Kind != want {
					t.Errorf("after %s, %s holds %v, want %v", tt.move, square, piece.Kind, want)
				}
			}
		})
	}
}

func TestExecuteMove_MarksPieceMoved(t *testing.T) {
	board := engine.NewInitialBoard()
	engine.ExecuteMove(board, testutil.MustMove(t, "g1f3"))

	knight, ok := board.PieceAt(testutil.MustSquare(t, "f3"))
	if !ok || !knight.HasMoved {
		t.Errorf("knight on f3 = %+v, want HasMoved", knight)
	}
	if knight.Position.String() != "f3" {
		t.Errorf("knight position = %v, want f3", knight.Position)
	}
	last, ok := board.LastMove()
	if !ok || last.String() != "g1f3" {
		t.Errorf("LastMove() = %v, %v, want g1f3", last, ok)
	}
}
