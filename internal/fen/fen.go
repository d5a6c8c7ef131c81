// Package fen parses Forsyth-Edwards Notation into a chess.Board.
package fen

import (
	"strings"
	"unicode"

	"github.com/lgbarn/fen-board-go/internal/chess"
	"github.com/lgbarn/fen-board-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NumSections is the number of space-separated sections in a FEN string.
const NumSections = 6

// Sections holds the six raw sections of a FEN string.
// Only Placement and EnPassant are interpreted by Parse.
type Sections struct {
	Placement  string
	SideToMove string
	Castling   string
	EnPassant  string
	Halfmove   string
	Fullmove   string
}

// SplitSections splits a FEN string on single spaces into its six sections.
func SplitSections(input string) (Sections, error) {
	parts := strings.Split(input, " ")
	if len(parts) != NumSections {
		return Sections{}, &errors.InvalidSectionCountError{Count: len(parts)}
	}
	return Sections{
		Placement:  parts[0],
		SideToMove: parts[1],
		Castling:   parts[2],
		EnPassant:  parts[3],
		Halfmove:   parts[4],
		Fullmove:   parts[5],
	}, nil
}

// Parse parses a FEN string into a board holding every placed piece.
// A pawn standing on the square named by the en passant section is flagged
// as an en passant target. On error no board is returned.
func Parse(input string) (chess.Board, error) {
	sections, err := SplitSections(input)
	if err != nil {
		return nil, err
	}

	ranks := strings.Split(sections.Placement, "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.InvalidRankCountError{Count: len(ranks)}
	}

	board := chess.NewBoard()
	for rankIndex, rank := range ranks {
		if err := expandRank(board, rankIndex, rank, chess.Square(sections.EnPassant)); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// expandRank places the pieces of one rank descriptor. Digits skip empty
// files; every other character is decoded as a piece on the current file.
func expandRank(board chess.Board, rankIndex int, rank string, epTarget chess.Square) error {
	file := 0
	for _, c := range rank {
		if c >= '1' && c <= '8' {
			file += int(c - '0')
			if file > chess.BoardSize {
				return &errors.RankOverflowError{Rank: rank, Files: file}
			}
			continue
		}

		// An unknown character is reported before the overflow.
		if file >= chess.BoardSize {
			if _, err := DecodePiece(c, false); err != nil {
				return err
			}
			return &errors.RankOverflowError{Rank: rank, Files: file + 1}
		}

		sq := chess.SquareName(rankIndex, file)
		piece, err := DecodePiece(c, sq == epTarget)
		if err != nil {
			return err
		}
		if err := board.Place(sq, piece); err != nil {
			return err
		}
		file++
	}
	return nil
}

// DecodePiece converts a placement character into a piece. Uppercase
// letters are White and lowercase letters are Black. isTarget marks a pawn
// as an en passant target and is ignored for other kinds.
func DecodePiece(c rune, isTarget bool) (chess.Piece, error) {
	colour := pieceColour(c)
	switch c {
	case 'P', 'p':
		return chess.MakePawn(colour, isTarget), nil
	case 'N', 'n':
		return chess.MakePiece(colour, chess.Knight), nil
	case 'B', 'b':
		return chess.MakePiece(colour, chess.Bishop), nil
	case 'R', 'r':
		return chess.MakePiece(colour, chess.Rook), nil
	case 'Q', 'q':
		return chess.MakePiece(colour, chess.Queen), nil
	case 'K', 'k':
		return chess.MakePiece(colour, chess.King), nil
	default:
		return chess.Piece{}, &errors.InvalidPieceError{Piece: c}
	}
}

func pieceColour(c rune) chess.Colour {
	if unicode.IsUpper(c) {
		return chess.White
	}
	return chess.Black
}
