package engine_test

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPseudoLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "knight in corner",
			fen:    "4k3/8/8/8/8/8/8/N3K3 w - - 0 1",
			square: "a1",
			want:   []string{"a1b3", "a1c2"},
		},
		{
			name:   "rook stops before own pieces",
			fen:    "4k3/8/8/8/8/8/P7/R3K3 w - - 0 1",
			square: "a1",
			want:   []string{"a1b1", "a1c1", "a1d1"},
		},
		{
			name:   "bishop stops on capture",
			fen:    "4k3/8/8/8/8/2p5/8/B3K3 w - - 0 1",
			square: "a1",
			want:   []string{"a1b2", "a1c3"},
		},
		{
			name:   "unmoved pawn steps one or two",
			fen:    "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3", "e2e4"},
		},
		{
			name:   "blocked pawn has no moves",
			fen:    "4k3/8/8/8/8/4p3/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   nil,
		},
		{
			name:   "double step blocked on far square",
			fen:    "4k3/8/8/8/4p3/8/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3"},
		},
		{
			name:   "pawn captures diagonally",
			fen:    "4k3/8/8/8/8/3p1p2/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3", "e2e4", "e2d3", "e2f3"},
		},
		{
			name:   "pawn does not capture own piece",
			fen:    "4k3/8/8/8/8/3N4/4P3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3", "e2e4"},
		},
		{
			name:   "black pawn moves down the board",
			fen:    "4k3/4p3/8/8/8/8/8/4K3 b - - 0 1",
			square: "e7",
			want:   []string{"e7e6", "e7e5"},
		},
		{
			name:   "advanced pawn steps once",
			fen:    "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			square: "e3",
			want:   []string{"e3e4"},
		},
		{
			name:   "king steps without castling",
			fen:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"e1d1", "e1f1", "e1d2", "e1e2", "e1f2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			piece, ok := board.PieceAt(testutil.MustSquare(t, tt.square))
			if !ok {
				t.Fatalf("no piece on %s", tt.square)
			}
			testutil.AssertMoveSet(t, engine.PseudoLegalMoves(board, piece), tt.want)
		})
	}
}

func TestPseudoLegalMoves_QueenCount(t *testing.T) {
	board, _ := testutil.MustBoard(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	queen, _ := board.PieceAt(testutil.MustSquare(t, "d4"))
	if got := len(engine.PseudoLegalMoves(board, queen)); got != 27 {
		t.Errorf("queen on d4 has %d moves, want 27", got)
	}
}

func TestAllLegalMoves_Initial(t *testing.T) {
	board := engine.NewInitialBoard()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if got := len(engine.AllLegalMoves(board, colour)); got != 20 {
			t.Errorf("AllLegalMoves(%v) = %d moves, want 20", colour, got)
		}
	}
}

func TestLegalMoves_Pinned(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{
			name:   "absolutely pinned knight",
			fen:    "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1",
			square: "e2",
			want:   nil,
		},
		{
			name:   "pinned rook slides along the pin",
			fen:    "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1",
			square: "e2",
			want:   []string{"e2e3", "e2e4", "e2e5", "e2e6", "e2e7", "e2e8"},
		},
		{
			name:   "king cannot step into attack",
			fen:    "3r2k1/8/8/8/8/8/8/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"e1e2", "e1f1", "e1f2"},
		},
		{
			name:   "king cannot capture defended piece",
			fen:    "3r2k1/8/8/8/8/8/3q4/4K3 w - - 0 1",
			square: "e1",
			want:   []string{"e1f1"},
		},
		{
			name:   "must block or capture a check",
			fen:    "4r1k1/8/8/8/8/8/8/R3K3 w - - 0 1",
			square: "a1",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _ := testutil.MustBoard(t, tt.fen)
			pos := testutil.MustSquare(t, tt.square)
			testutil.AssertMoveSet(t, engine.LegalMovesFrom(board, pos), tt.want)
		})
	}
}

func TestLegalMovesFrom_EmptySquare(t *testing.T) {
	board := engine.NewInitialBoard()
	if got := engine.LegalMovesFrom(board, testutil.MustSquare(t, "e4")); got != nil {
		t.Errorf("LegalMovesFrom(e4) = %v, want nil", got)
	}
}

func TestLegalMoves_DoNotMutateBoard(t *testing.T) {
	board, toMove := testutil.MustBoard(t, testutil.KiwipeteFEN)
	before := board.String()
	engine.AllLegalMoves(board, toMove)
	if after := board.String(); after != before {
		t.Errorf("board changed by move generation:\n%s\nwant:\n%s", after, before)
	}
}
