// Package chess provides the piece, square and board types produced by the
// FEN parser.
package chess

import "fmt"

// Colour represents the colour of a piece.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind identifies which piece occupies a square.
type Kind int

const (
	Empty Kind = iota // No piece; the zero value
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a closed sum over the piece kinds. Every kind except Empty
// carries a colour; only a Pawn may be flagged as an en passant target.
// The zero value is the Empty piece.
type Piece struct {
	Kind            Kind
	Colour          Colour
	EnPassantTarget bool
}

// MakePiece creates a piece of the given colour and kind.
// Use MakePawn to flag a pawn as an en passant target.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == Empty {
		return Piece{}
	}
	return Piece{Kind: kind, Colour: colour}
}

// MakePawn creates a pawn, optionally flagged as an en passant target.
func MakePawn(colour Colour, enPassantTarget bool) Piece {
	return Piece{Kind: Pawn, Colour: colour, EnPassantTarget: enPassantTarget}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is the Empty piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for Empty.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Pawn (en passant target)".
func (p Piece) String() string {
	if p.IsEmpty() {
		return Empty.String()
	}
	s := fmt.Sprintf("%s %s", p.Colour, p.Kind)
	if p.EnPassantTarget {
		s += " (en passant target)"
	}
	return s
}

// Board dimensions and coordinate bases.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
	LastRank = RankBase + BoardSize - 1
	LastFile = FileBase + BoardSize - 1
)

// Square is an algebraic square name such as "e4".
type Square string

// SquareName converts a placement rank index and a file index into an
// algebraic square name. Rank index 0 is the first rank listed in a FEN
// placement section, which is rank 8. Indices outside 0..7 are a
// programming error and panic.
func SquareName(rankIndex, fileIndex int) Square {
	if rankIndex < 0 || rankIndex >= BoardSize {
		panic(fmt.Sprintf("chess: rank index %d out of range", rankIndex))
	}
	if fileIndex < 0 || fileIndex >= BoardSize {
		panic(fmt.Sprintf("chess: file index %d out of range", fileIndex))
	}
	return Square([]byte{byte(FileBase + fileIndex), byte(LastRank - rankIndex)})
}

// File returns the file letter of the square.
func (s Square) File() byte {
	if len(s) != 2 {
		return 0
	}
	return s[0]
}

// Rank returns the rank digit of the square.
func (s Square) Rank() byte {
	if len(s) != 2 {
		return 0
	}
	return s[1]
}

// Valid reports whether s names one of the 64 squares.
func (s Square) Valid() bool {
	return len(s) == 2 &&
		s[0] >= FileBase && s[0] <= LastFile &&
		s[1] >= RankBase && s[1] <= LastRank
}
