// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn advance.
// White moves toward rank 0, Black toward rank 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the back rank of the given colour.
func (c Colour) HomeRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter maps a piece letter in either case to its kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPiece
}

// PromotionKinds lists the kinds a pawn may become, strongest first.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// IsPromotionKind reports whether a pawn may promote to k.
func IsPromotionKind(k PieceKind) bool {
	return k == Queen || k == Rook || k == Bishop || k == Knight
}

// MoveClass categorizes an executed move.
type MoveClass int

const (
	StandardMove MoveClass = iota
	CaptureMove
	EnPassantMove
	CastlingMove
	PromotionMove // pawn reached the last rank and awaits a promotion choice
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case StandardMove:
		return "Standard"
	case CaptureMove:
		return "Capture"
	case EnPassantMove:
		return "EnPassant"
	case CastlingMove:
		return "Castling"
	case PromotionMove:
		return "Promotion"
	}
	return "Unknown"
}

// GameState is the status of the side to move.
type GameState int

const (
	Running GameState = iota
	Check
	Checkmate
	Stalemate
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Running:
		return "Running"
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Unknown"
}

// IsTerminal reports whether no further moves can be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// BoardSize is the number of ranks and files.
const BoardSize = 8
