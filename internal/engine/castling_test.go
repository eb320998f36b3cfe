package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCastlingMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		king string
		want []string
	}{
		{"both sides open", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"e1g1", "e1c1"}},
		{"black both sides", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", []string{"e8g8", "e8c8"}},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", "e1", nil},
		{"kingside rook moved", "r3k2r/8/8/8/8/8/8/R3K2R w Q - 0 1", "e1", []string{"e1c1"}},
		{"kingside blocked", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", "e1", []string{"e1c1"}},
		{"b1 occupied blocks queenside", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", "e1", []string{"e1g1"}},
		{"f1 attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1", []string{"e1c1"}},
		{"g1 attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", "e1", []string{"e1c1"}},
		{"d1 attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1", []string{"e1g1"}},
		{"b1 attacked does not matter", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", "e1", []string{"e1g1", "e1c1"}},
		{"rook attacked does not matter", "r3k3/8/8/8/8/8/8/R3K3 w Q - 0 1", "e1", []string{"e1c1"}},
		{"king in check", "4k3/8/8/8/4r3/8/8/R3K2R w KQ - 0 1", "e1", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			king, ok := board.PieceAt(testutil.MustSquare(t, tt.king))
			if !ok || king.Kind != chess.King {
				t.Fatalf("no king on %s", tt.king)
			}
			testutil.AssertMoveSet(t, engine.CastlingMoves(board, king), tt.want)
		})
	}
}

func TestCastlingMoves_NotForOtherPieces(t *testing.T) {
	board, _ := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	rook, _ := board.PieceAt(testutil.MustSquare(t, "h1"))
	if got := engine.CastlingMoves(board, rook); got != nil {
		t.Errorf("CastlingMoves(rook) = %v, want nil", got)
	}
}

func TestCastlingMoves_KingHasMoved(t *testing.T) {
	board, _ := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	board.ApplyMove(testutil.MustMove(t, "e1f1"))
	board.ApplyMove(testutil.MustMove(t, "f1e1"))

	king, _ := board.PieceAt(testutil.MustSquare(t, "e1"))
	if got := engine.CastlingMoves(board, king); got != nil {
		t.Errorf("CastlingMoves after king returned = %v, want nil", got)
	}
}

func TestIsCastlingMove(t *testing.T) {
	board, _ := testutil.MustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	king, _ := board.PieceAt(testutil.MustSquare(t, "e1"))
	rook, _ := board.PieceAt(testutil.MustSquare(t, "h1"))

	tests := []struct {
		name  string
		piece chess.Piece
		move  string
		want  bool
	}{
		{"king two files right", king, "e1g1", true},
		{"king two files left", king, "e1c1", true},
		{"king one file", king, "e1f1", false},
		{"rook two files", rook, "h1f1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := engine.IsCastlingMove(tt.piece, testutil.MustMove(t, tt.move)); got != tt.want {
				t.Errorf("IsCastlingMove(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
	}
}

func TestCurrentCastlingRights(t *testing.T) {
	tests := []struct {
		fen  string
		want string
	}{
		{engine.InitialFEN, "KQkq"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", "Kq"},
		{"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", "-"},
		{"4k3/8/8/8/8/8/8/R3K3 w KQ - 0 1", "Q"}, // no rook on h1
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			if got := engine.CurrentCastlingRights(board).String(); got != tt.want {
				t.Errorf("CurrentCastlingRights() = %q, want %q", got, tt.want)
			}
		})
	}
}
