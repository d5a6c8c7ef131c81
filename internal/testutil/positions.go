package testutil

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/fen-board-go/internal/chess"
)

// Position is a FEN fixture read from a YAML file.
//
// Pieces maps square names to FEN letters; a trailing '*' marks a pawn
// flagged as an en passant target. Error names the expected failure kind
// (section_count, piece, duplicate, rank_count, rank_overflow) and is empty
// for positions that must parse.
type Position struct {
	Name   string            `yaml:"name"`
	FEN    string            `yaml:"fen"`
	Pieces map[string]string `yaml:"pieces"`
	Error  string            `yaml:"error"`
	Count  int               `yaml:"count"`
	Piece  string            `yaml:"piece"`
}

// LoadPositions reads a YAML list of positions, failing the test on error.
func LoadPositions(t *testing.T, path string) []Position {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var positions []Position
	if err := yaml.Unmarshal(data, &positions); err != nil {
		t.Fatalf("decoding %s: %v", path, err)
	}
	if len(positions) == 0 {
		t.Fatalf("no positions in %s", path)
	}
	return positions
}

// BoardLetters flattens a board into square -> FEN letter, using the same
// '*' suffix as Position.Pieces for en passant targets. An empty board
// yields an empty, non-nil map.
func BoardLetters(board chess.Board) map[string]string {
	letters := make(map[string]string, len(board))
	for sq, p := range board {
		letter := string(p.Letter())
		if p.EnPassantTarget {
			letter += "*"
		}
		letters[string(sq)] = letter
	}
	return letters
}
