package chess

import (
	"sort"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/fen-board-go/internal/errors"
)

// Board maps each occupied square to its piece. Empty squares are absent.
type Board map[Square]Piece

// NewBoard creates a new empty board.
func NewBoard() Board {
	return make(Board)
}

// Place puts a piece on a square. Placing onto an occupied square is an
// error and leaves the board unchanged.
func (b Board) Place(sq Square, piece Piece) error {
	if _, ok := b[sq]; ok {
		return &errors.DuplicateSquareError{Square: string(sq)}
	}
	b[sq] = piece
	return nil
}

// Get returns the piece on a square, or the Empty piece.
func (b Board) Get(sq Square) Piece {
	return b[sq]
}

// Squares returns the occupied squares in FEN reading order:
// rank 8 down to rank 1, file a to h within each rank.
func (b Board) Squares() []Square {
	squares := maps.Keys(b)
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank() != squares[j].Rank() {
			return squares[i].Rank() > squares[j].Rank()
		}
		return squares[i].File() < squares[j].File()
	})
	return squares
}

// Count returns the number of pieces matching colour and kind.
func (b Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, p := range b {
		if p.Kind == kind && p.Colour == colour {
			n++
		}
	}
	return n
}

// EnPassantTargets returns the squares holding pawns flagged as en passant
// targets, in FEN reading order.
func (b Board) EnPassantTargets() []Square {
	var targets []Square
	for _, sq := range b.Squares() {
		if b[sq].EnPassantTarget {
			targets = append(targets, sq)
		}
	}
	return targets
}
