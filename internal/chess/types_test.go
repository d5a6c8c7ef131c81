package chess

import "testing"

func TestSquareName(t *testing.T) {
	tests := []struct {
		rankIndex, fileIndex int
		want                 Square
	}{
		{0, 0, "a8"},
		{0, 7, "h8"},
		{3, 4, "e5"},
		{5, 4, "e3"},
		{7, 0, "a1"},
		{7, 7, "h1"},
	}

	for _, tt := range tests {
		if got := SquareName(tt.rankIndex, tt.fileIndex); got != tt.want {
			t.Errorf("SquareName(%d, %d) = %s; want %s", tt.rankIndex, tt.fileIndex, got, tt.want)
		}
	}
}

func TestSquareNamePanics(t *testing.T) {
	tests := []struct {
		name                 string
		rankIndex, fileIndex int
	}{
		{"file 8", 0, 8},
		{"negative file", 0, -1},
		{"rank 8", 8, 0},
		{"negative rank", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("SquareName(%d, %d) did not panic", tt.rankIndex, tt.fileIndex)
				}
			}()
			SquareName(tt.rankIndex, tt.fileIndex)
		})
	}
}

func TestSquare(t *testing.T) {
	tests := []struct {
		sq    Square
		file  byte
		rank  byte
		valid bool
	}{
		{"e4", 'e', '4', true},
		{"a1", 'a', '1', true},
		{"h8", 'h', '8', true},
		{"a0", 'a', '0', false},
		{"i1", 'i', '1', false},
		{"-", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, tt := range tests {
		if got := tt.sq.File(); got != tt.file {
			t.Errorf("%q.File() = %q; want %q", tt.sq, got, tt.file)
		}
		if got := tt.sq.Rank(); got != tt.rank {
			t.Errorf("%q.Rank() = %q; want %q", tt.sq, got, tt.rank)
		}
		if got := tt.sq.Valid(); got != tt.valid {
			t.Errorf("%q.Valid() = %v; want %v", tt.sq, got, tt.valid)
		}
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{B(Pawn), 'p'},
		{MakePawn(Black, true), 'p'},
		{W(Knight), 'N'},
		{B(Bishop), 'b'},
		{W(Rook), 'R'},
		{B(Queen), 'q'},
		{W(King), 'K'},
		{Piece{}, '.'},
	}

	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %c; want %c", tt.piece, got, tt.want)
		}
	}
}

func TestPieceString(t *testing.T) {
	tests := []struct {
		piece Piece
		want  string
	}{
		{W(King), "White King"},
		{B(Knight), "Black Knight"},
		{MakePawn(White, true), "White Pawn (en passant target)"},
		{MakePawn(White, false), "White Pawn"},
		{Piece{}, "Empty"},
		{MakePiece(White, Empty), "Empty"},
	}

	for _, tt := range tests {
		if got := tt.piece.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := Kind(99).String(); got != "Unknown" {
		t.Errorf("Kind(99).String() = %q; want Unknown", got)
	}
	if got := Kind(99).Letter(); got != '?' {
		t.Errorf("Kind(99).Letter() = %c; want ?", got)
	}
	if got := Queen.Letter(); got != 'Q' {
		t.Errorf("Queen.Letter() = %c; want Q", got)
	}
}

func TestColourString(t *testing.T) {
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("Colour strings = %q, %q", White.String(), Black.String())
	}
}
