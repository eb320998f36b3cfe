// Package game drives a single game through the rules engine: it keeps
// the authoritative board, tracks whose turn it is, validates moves
// against the legal move set and records the history of plies.
//
// Input handling, rendering and the turn loop belong to the caller.
package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"golang.org/x/exp/slices"
)

// Outcome is the result of a game.
type Outcome int

const (
	Ongoing Outcome = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the PGN-style result for o.
func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

func winner(c chess.Colour) Outcome {
	if c == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Ply records one executed half-move.
type Ply struct {
	Number    int // 1-based
	Colour    chess.Colour
	Piece     chess.PieceKind
	Move      chess.Move
	Class     chess.MoveClass
	Captured  chess.Piece // zero value when nothing was captured
	Promotion chess.PieceKind
	State     chess.GameState // state of the side to move afterwards
	Hash      uint64          // Zobrist hash of the position afterwards
}

// Text returns the move in long algebraic form, e.g. "e7e8q".
func (p Ply) Text() string {
	return chess.FormatMove(p.Move, p.Promotion)
}

// Game is one game in progress. A Game is not safe for concurrent use.
type Game struct {
	id      uuid.UUID
	cfg     *config.Config
	board   *chess.Board
	toMove  chess.Colour
	state   chess.GameState
	outcome Outcome
	history []Ply
	start   uint64 // hash of the starting position
}

// New starts a game from the standard starting position. A nil cfg
// uses config.NewConfig.
func New(cfg *config.Config) *Game {
	return newGame(cfg, engine.NewInitialBoard(), chess.White)
}

// NewFromFEN starts a game from the position described by fen. Each
// side must have exactly one king.
func NewFromFEN(cfg *config.Config, fen string) (*Game, error) {
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countKings(board, colour); n != 1 {
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidFEN,
				Input:    fen,
				Expected: "one " + colour.String() + " king",
				Got:      fmt.Sprintf("%d", n),
			}
		}
	}
	return newGame(cfg, board, toMove), nil
}

func countKings(board *chess.Board, colour chess.Colour) int {
	n := 0
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.King {
			n++
		}
	}
	return n
}

func newGame(cfg *config.Config, board *chess.Board, toMove chess.Colour) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{
		id:     uuid.New(),
		cfg:    cfg,
		board:  board,
		toMove: toMove,
		start:  hashing.GenerateZobristHash(board, toMove),
	}
	g.evaluate(toMove.Opposite())
	return g
}

// ID returns the unique identifier of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// State returns the state of the side to move.
func (g *Game) State() chess.GameState {
	return g.state
}

// Outcome returns the result so far.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool {
	return g.outcome != Ongoing
}

// Snapshot returns a copy of the board for rendering. Changes to the
// copy do not affect the game.
func (g *Game) Snapshot() *chess.Board {
	return g.board.Clone()
}

// PieceAt returns the piece on pos.
func (g *Game) PieceAt(pos chess.Position) (chess.Piece, bool) {
	return g.board.PieceAt(pos)
}

// FEN describes the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board, g.toMove)
}

// History returns the plies played so far, oldest first.
func (g *Game) History() []Ply {
	return slices.Clone(g.history)
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.toMove)
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	if g.IsOver() {
		return nil
	}
	return engine.AllLegalMoves(g.board, g.toMove)
}

// LegalMovesFrom returns the legal moves of the piece on pos, which
// must belong to the side to move.
func (g *Game) LegalMovesFrom(pos chess.Position) ([]chess.Move, error) {
	if _, err := g.selectPiece(pos); err != nil {
		return nil, g.moveError(err, pos.String())
	}
	return engine.LegalMovesFrom(g.board, pos), nil
}

func (g *Game) selectPiece(pos chess.Position) (chess.Piece, error) {
	if g.IsOver() {
		if g.KingCaptured() {
			return chess.Piece{}, fmt.Errorf("%w: %w", errors.ErrGameOver, errors.ErrKingCaptured)
		}
		return chess.Piece{}, errors.ErrGameOver
	}
	if !pos.WithinBoard() {
		return chess.Piece{}, errors.ErrInvalidSquare
	}
	piece, ok := g.board.PieceAt(pos)
	if !ok {
		return chess.Piece{}, fmt.Errorf("%s: %w", pos, errors.ErrNoPiece)
	}
	if piece.Colour != g.toMove {
		return chess.Piece{}, fmt.Errorf("%s on %s: %w", piece.Colour, pos, errors.ErrWrongTurn)
	}
	return piece, nil
}

// PlayText parses a long algebraic move such as "e2e4" or "e7e8n" and plays it.
func (g *Game) PlayText(text string) (Ply, error) {
	m, promotion, err := chess.ParseMove(text)
	if err != nil {
		return Ply{}, g.moveError(err, text)
	}
	return g.Play(m, promotion)
}

// Play validates m against the legal moves of the side to move and
// executes it. A pawn reaching the last rank becomes promotion, or the
// configured default when promotion is NoPiece. Naming a promotion for
// any other move is an error.
func (g *Game) Play(m chess.Move, promotion chess.PieceKind) (Ply, error) {
	text := chess.FormatMove(m, promotion)

	piece, err := g.selectPiece(m.From)
	if err != nil {
		return Ply{}, g.moveError(err, text)
	}
	if !slices.Contains(engine.AllLegalMovesForPiece(g.board, piece), m) {
		return Ply{}, g.moveError(errors.ErrIllegalMove, text)
	}

	promotes := piece.Kind == chess.Pawn && engine.IsPromotionSquare(piece.Colour, m.To)
	switch {
	case promotion != chess.NoPiece && !promotes:
		return Ply{}, g.moveError(fmt.Errorf("%s does not promote: %w", m, errors.ErrInvalidPromotion), text)
	case promotion != chess.NoPiece && !chess.IsPromotionKind(promotion):
		return Ply{}, g.moveError(fmt.Errorf("%v: %w", promotion, errors.ErrInvalidPromotion), text)
	case promotes && promotion == chess.NoPiece:
		promotion = g.cfg.DefaultPromotion
		if !chess.IsPromotionKind(promotion) {
			promotion = chess.Queen
		}
	}

	class, captured := engine.ExecuteMove(g.board, m)
	if class == chess.PromotionMove {
		engine.Promote(g.board, m.To, promotion)
	}

	mover := g.toMove
	g.toMove = mover.Opposite()
	g.evaluate(mover)

	ply := Ply{
		Number:    len(g.history) + 1,
		Colour:    mover,
		Piece:     piece.Kind,
		Move:      m,
		Class:     class,
		Captured:  captured,
		Promotion: promotion,
		State:     g.state,
		Hash:      hashing.GenerateZobristHash(g.board, g.toMove),
	}
	g.history = append(g.history, ply)

	g.cfg.Logf(config.Commentary, "game %s ply %d: %s %s %s (%s, %s)",
		g.id, ply.Number, mover, piece.Kind, ply.Text(), class, g.state)
	if g.IsOver() {
		g.cfg.Logf(config.Summary, "game %s over after %d plies: %s %s",
			g.id, len(g.history), g.state, g.outcome)
	}
	return ply, nil
}

// evaluate recomputes the state of the side to move. A side without a
// king has lost; lastMover is the opposite of the side to move.
func (g *Game) evaluate(lastMover chess.Colour) {
	for _, colour := range []chess.Colour{g.toMove, lastMover} {
		if _, ok := g.board.FindKing(colour); !ok {
			g.state = chess.Checkmate
			g.outcome = winner(colour.Opposite())
			return
		}
	}

	g.state = engine.ComputeGameState(g.board, g.toMove)
	switch g.state {
	case chess.Checkmate:
		g.outcome = winner(g.toMove.Opposite())
	case chess.Stalemate:
		g.outcome = Draw
	default:
		g.outcome = Ongoing
	}
}

// Repetitions returns how many times the current position has occurred,
// counting the current occurrence.
func (g *Game) Repetitions() int {
	current := g.start
	if len(g.history) > 0 {
		current = g.history[len(g.history)-1].Hash
	}
	n := 0
	if g.start == current {
		n++
	}
	for _, ply := range g.history {
		if ply.Hash == current {
			n++
		}
	}
	return n
}

// InsufficientMaterial reports whether neither side has mating material.
// The game does not end because of it.
func (g *Game) InsufficientMaterial() bool {
	return engine.HasInsufficientMaterial(g.board)
}

// KingCaptured reports whether the game ended because a king left the board.
func (g *Game) KingCaptured() bool {
	_, white := g.board.FindKing(chess.White)
	_, black := g.board.FindKing(chess.Black)
	return !white || !black
}

func (g *Game) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		GameID:   g.id.String(),
		PlyNum:   len(g.history) + 1,
		MoveText: text,
	}
}
