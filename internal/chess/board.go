package chess

import "strings"

// Board is an 8x8 grid of pieces plus the most recently executed move.
// Board is a plain value: copying it copies every square, so a copy is
// fully independent of the original.
type Board struct {
	squares [BoardSize][BoardSize]Piece // squares[rank][file]

	lastMove    Move
	hasLastMove bool
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board set up with the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places both armies on their
// starting squares. Black occupies ranks 0 and 1.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.place(NewPiece(backRank[file], Black, Pos(0, file)))
		b.place(NewPiece(Pawn, Black, Pos(1, file)))
		b.place(NewPiece(Pawn, White, Pos(6, file)))
		b.place(NewPiece(backRank[file], White, Pos(7, file)))
	}
}

func (b *Board) place(p Piece) {
	b.squares[p.Position.Rank][p.Position.File] = p
}

// PieceAt returns the piece at pos. The second result is false for an
// empty or off-board square.
func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.WithinBoard() {
		return Piece{}, false
	}
	p := b.squares[pos.Rank][pos.File]
	return p, p.Kind != NoPiece
}

// SetPieceAt installs p at pos, fixing up its stored position. Passing
// the zero Piece clears the square. Off-board positions are ignored.
func (b *Board) SetPieceAt(pos Position, p Piece) {
	if !pos.WithinBoard() {
		return
	}
	if p.Kind == NoPiece {
		b.squares[pos.Rank][pos.File] = Piece{}
		return
	}
	p.Position = pos
	b.squares[pos.Rank][pos.File] = p
}

// RemovePieceAt clears pos and returns whatever stood there.
func (b *Board) RemovePieceAt(pos Position) Piece {
	p, _ := b.PieceAt(pos)
	b.SetPieceAt(pos, Piece{})
	return p
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	if !pos.WithinBoard() {
		return false
	}
	return b.squares[pos.Rank][pos.File].Kind == NoPiece
}

// IsEnemy reports whether pos holds a piece of the colour opposing colour.
func (b *Board) IsEnemy(pos Position, colour Colour) bool {
	p, ok := b.PieceAt(pos)
	return ok && p.Colour != colour
}

// LastMove returns the most recently applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	return b.lastMove, b.hasLastMove
}

// SetLastMove records m as the previous move without moving anything.
// It is used when reconstructing a position from a setup description.
func (b *Board) SetLastMove(m Move) {
	b.lastMove = m
	b.hasLastMove = true
}

// ClearLastMove forgets the previous move.
func (b *Board) ClearLastMove() {
	b.lastMove = Move{}
	b.hasLastMove = false
}

// ApplyMove moves the piece at m.From to m.To, capturing whatever stood
// there. The moved piece is marked as having moved and m is recorded as
// the last move. With no piece at m.From it does nothing and reports false.
func (b *Board) ApplyMove(m Move) (captured Piece, ok bool) {
	mover, ok := b.PieceAt(m.From)
	if !ok || !m.To.WithinBoard() {
		return Piece{}, false
	}
	captured, _ = b.PieceAt(m.To)
	b.squares[m.From.Rank][m.From.File] = Piece{}
	mover.Position = m.To
	mover.HasMoved = true
	b.squares[m.To.Rank][m.To.File] = mover
	b.lastMove = m
	b.hasLastMove = true
	return captured, true
}

// ApplyEnPassant applies m and removes the pawn standing beside the
// destination, one rank back toward the mover's side.
func (b *Board) ApplyEnPassant(m Move) (captured Piece, ok bool) {
	mover, ok := b.PieceAt(m.From)
	if !ok {
		return Piece{}, false
	}
	if _, ok := b.ApplyMove(m); !ok {
		return Piece{}, false
	}
	victim := m.To.Offset(-mover.Colour.Forward(), 0)
	return b.RemovePieceAt(victim), true
}

// ApplyCastling applies the king move m and brings the rook from the
// corresponding corner to the square the king passed over. A missing
// rook is skipped.
func (b *Board) ApplyCastling(m Move) bool {
	if _, ok := b.ApplyMove(m); !ok {
		return false
	}
	rookFile, rookTo := BoardSize-1, m.To.File-1
	if m.To.File < m.From.File {
		rookFile, rookTo = 0, m.To.File+1
	}
	rookFrom := Pos(m.From.Rank, rookFile)
	rook, ok := b.PieceAt(rookFrom)
	if ok && rook.Kind == Rook {
		b.squares[rookFrom.Rank][rookFrom.File] = Piece{}
		rook.Position = Pos(m.From.Rank, rookTo)
		rook.HasMoved = true
		b.place(rook)
	}
	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Pieces returns every piece of the given colour in rank-major order.
func (b *Board) Pieces(colour Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; p.Kind != NoPiece && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// FindKing returns the position of colour's king.
func (b *Board) FindKing(colour Colour) (Position, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[rank][file]; p.Kind == King && p.Colour == colour {
				return p.Position, true
			}
		}
	}
	return Position{}, false
}

// String renders the board as eight lines of FEN letters, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			sb.WriteByte(b.squares[rank][file].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
