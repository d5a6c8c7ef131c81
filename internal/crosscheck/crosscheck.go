// Package crosscheck compares a parsed board against an independent FEN
// decoder, dragontoothmg, which keeps one bitboard per colour and kind.
package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/fen-board-go/internal/chess"
)

// Compare decodes fen with dragontoothmg and returns one line per square on
// which it disagrees with board. En passant flags are not compared since
// dragontoothmg has no per-piece notion of them.
//
// dragontoothmg panics on some malformed input; that is reported as a
// single mismatch instead of crashing the caller.
func Compare(fen string, board chess.Board) (mismatches []string) {
	defer func() {
		if r := recover(); r != nil {
			mismatches = []string{fmt.Sprintf("dragontoothmg could not decode %q: %v", fen, r)}
		}
	}()

	ref := dragontoothmg.ParseFen(fen)
	for index := 0; index < 64; index++ {
		sq := indexToSquare(index)
		want := pieceAt(&ref, index)
		got := board.Get(sq)
		got.EnPassantTarget = false
		if got != want {
			mismatches = append(mismatches, fmt.Sprintf("%s: parsed %v, dragontoothmg %v", sq, got, want))
		}
	}
	return mismatches
}

// indexToSquare maps a dragontoothmg square index (a1 = 0, h8 = 63).
func indexToSquare(index int) chess.Square {
	rankIndex := chess.BoardSize - 1 - index/chess.BoardSize
	return chess.SquareName(rankIndex, index%chess.BoardSize)
}

func pieceAt(b *dragontoothmg.Board, index int) chess.Piece {
	mask := uint64(1) << uint(index)
	if p := kindAt(&b.White, mask); p != chess.Empty {
		return chess.W(p)
	}
	if p := kindAt(&b.Black, mask); p != chess.Empty {
		return chess.B(p)
	}
	return chess.Piece{}
}

func kindAt(bb *dragontoothmg.Bitboards, mask uint64) chess.Kind {
	switch {
	case bb.Pawns&mask != 0:
		return chess.Pawn
	case bb.Knights&mask != 0:
		return chess.Knight
	case bb.Bishops&mask != 0:
		return chess.Bishop
	case bb.Rooks&mask != 0:
		return chess.Rook
	case bb.Queens&mask != 0:
		return chess.Queen
	case bb.Kings&mask != 0:
		return chess.King
	default:
		return chess.Empty
	}
}
