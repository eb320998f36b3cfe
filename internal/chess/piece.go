package chess

import "unicode"

// Piece is a piece standing on the board. The zero value (Kind == NoPiece)
// denotes an empty square.
type Piece struct {
	Kind     PieceKind
	Colour   Colour
	Position Position
	HasMoved bool // set on the first move and never cleared
}

// NewPiece creates an unmoved piece at pos.
func NewPiece(kind PieceKind, colour Colour, pos Position) Piece {
	return Piece{Kind: kind, Colour: colour, Position: pos}
}

// IsEmpty reports whether p is the empty-square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoPiece
}

// IsEnemyOf reports whether p is a real piece of the opposite colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return p.Kind != NoPiece && p.Colour != colour
}

// Letter returns the FEN letter of the piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.Kind == NoPiece {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

func (p Piece) String() string {
	if p.Kind == NoPiece {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Position.String()
}
