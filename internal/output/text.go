package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/fen-board-go/internal/chess"
)

// TextWriter writes each record as an 8x8 diagram, rank 8 at the top.
type TextWriter struct {
	w       io.Writer
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteRecord writes a header line, the diagram and any en passant targets.
// Records are separated by a blank line.
func (tw *TextWriter) WriteRecord(rec Record) error {
	var sb strings.Builder
	if tw.written > 0 {
		sb.WriteByte('\n')
	}
	if rec.Source != "" && rec.Line > 0 {
		fmt.Fprintf(&sb, "%s:%d: ", rec.Source, rec.Line)
	}
	sb.WriteString(rec.FEN)
	sb.WriteByte('\n')
	sb.WriteString(Diagram(rec.Board))
	if targets := rec.Board.EnPassantTargets(); len(targets) > 0 {
		names := make([]string, len(targets))
		for i, sq := range targets {
			names[i] = string(sq)
		}
		fmt.Fprintf(&sb, "en passant target: %s\n", strings.Join(names, " "))
	}

	tw.written++
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Close is a no-op; text is written immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// Diagram renders the board with '.' for empty squares and file letters
// underneath.
func Diagram(board chess.Board) string {
	var sb strings.Builder
	for rankIndex := 0; rankIndex < chess.BoardSize; rankIndex++ {
		for fileIndex := 0; fileIndex < chess.BoardSize; fileIndex++ {
			sq := chess.SquareName(rankIndex, fileIndex)
			if fileIndex == 0 {
				sb.WriteByte(sq.Rank())
			}
			sb.WriteByte(' ')
			sb.WriteByte(board.Get(sq).Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
