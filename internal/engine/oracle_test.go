package engine_test

import (
	"fmt"
	"testing"

	oracle "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// Move generation is cross-checked against two independent generators:
// corentings/chess and dragontoothmg.

var oraclePositions = []struct {
	name string
	fen  string
}{
	{"initial", engine.InitialFEN},
	{"kiwipete", testutil.KiwipeteFEN},
	{"endgame", testutil.EndgameFEN},
	{"promotion", testutil.PromotionFEN},
	{"talkchess", testutil.TalkchessFEN},
	{"en passant pin", "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1"},
	{"en passant evades check", "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1"},
	{"castling through check", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"},
}

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

// uciMoves lists the legal moves of toMove in UCI form, one entry per
// promotion choice.
func uciMoves(board *chess.Board, toMove chess.Colour) []string {
	var out []string
	for _, m := range engine.AllLegalMoves(board, toMove) {
		p, _ := board.PieceAt(m.From)
		if p.Kind == chess.Pawn && engine.IsPromotionSquare(p.Colour, m.To) {
			for _, kind := range chess.PromotionKinds {
				out = append(out, chess.FormatMove(m, kind))
			}
			continue
		}
		out = append(out, m.String())
	}
	return out
}

func corentingsMoves(t *testing.T, fen string) ([]string, oracle.Method) {
	t.Helper()
	opt, err := oracle.FEN(fen)
	if err != nil {
		t.Fatalf("corentings FEN(%q): %v", fen, err)
	}
	g := oracle.NewGame(opt)
	moves := g.ValidMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, oracle.UCINotation{}.Encode(g.Position(), &moves[i]))
	}
	return out, g.Method()
}

func dragontoothMoves(fen string) ([]string, bool) {
	b := dragontoothmg.ParseFen(fen)
	moves := b.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	return out, b.OurKingInCheck()
}

// walk calls visit for the position and every position one ply below it.
func walk(board *chess.Board, toMove chess.Colour, visit func(fen string, board *chess.Board, toMove chess.Colour)) {
	visit(engine.BoardToFEN(board, toMove), board, toMove)
	for _, m := range engine.AllLegalMoves(board, toMove) {
		child := board.Clone()
		if class, _ := engine.ExecuteMove(child, m); class == chess.PromotionMove {
			engine.Promote(child, m.To, chess.Queen)
		}
		visit(engine.BoardToFEN(child, toMove.Opposite()), child, toMove.Opposite())
	}
}

func TestLegalMoves_MatchCorentings(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, pos.fen)
			walk(board, toMove, func(fen string, b *chess.Board, c chess.Colour) {
				want, _ := corentingsMoves(t, fen)
				if diff := cmp.Diff(want, uciMoves(b, c), sortStrings, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: legal moves mismatch (-corentings +engine):\n%s", fen, diff)
				}
			})
		})
	}
}

func TestLegalMoves_MatchDragontooth(t *testing.T) {
	for _, pos := range oraclePositions {
		t.Run(pos.name, func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, pos.fen)
			walk(board, toMove, func(fen string, b *chess.Board, c chess.Colour) {
				want, inCheck := dragontoothMoves(fen)
				if diff := cmp.Diff(want, uciMoves(b, c), sortStrings, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("%s: legal moves mismatch (-dragontoothmg +engine):\n%s", fen, diff)
				}
				if got := engine.IsInCheck(b, c); got != inCheck {
					t.Errorf("%s: IsInCheck() = %v, dragontoothmg says %v", fen, got, inCheck)
				}
			})
		})
	}
}

func TestComputeGameState_MatchCorentings(t *testing.T) {
	fens := []string{
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
		"6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1",
		"7k/5Q2/8/8/8/8/8/6K1 b - - 0 1",
		"5k2/5P2/5K2/8/8/8/8/8 b - - 0 1",
		"4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
		engine.InitialFEN,
	}

	for i, fen := range fens {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			board, toMove := testutil.MustBoard(t, fen)
			_, method := corentingsMoves(t, fen)

			var want chess.GameState
			switch method {
			case oracle.Checkmate:
				want = chess.Checkmate
			case oracle.Stalemate:
				want = chess.Stalemate
			}
			got := engine.ComputeGameState(board, toMove)
			if got == chess.Check {
				got = chess.Running
			}
			if got != want {
				t.Errorf("ComputeGameState(%q) = %v, corentings says %v", fen, got, method)
			}
		})
	}
}
