// Package output writes parsed boards as text diagrams, JSON or YAML.
package output

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/fen-board-go/internal/chess"
	"github.com/lgbarn/fen-board-go/internal/config"
)

// Record is one parsed FEN ready for output.
type Record struct {
	FEN    string
	Source string // Input file name, "-" for stdin, empty if unknown
	Line   int
	Board  chess.Board
}

// BoardWriter is the interface for writing parsed boards.
type BoardWriter interface {
	// WriteRecord writes a single record to the output.
	WriteRecord(rec Record) error

	// Close flushes any pending output. It does not close the underlying writer.
	Close() error
}

// NewWriter returns the BoardWriter for format.
func NewWriter(w io.Writer, format config.OutputFormat) BoardWriter {
	switch format {
	case config.JSON:
		return NewJSONWriter(w)
	case config.YAML:
		return NewYAMLWriter(w)
	default:
		return NewTextWriter(w)
	}
}

// JSONPiece is a piece in JSON and YAML output.
type JSONPiece struct {
	Square          string `json:"square" yaml:"square"`
	Colour          string `json:"colour" yaml:"colour"`
	Kind            string `json:"kind" yaml:"kind"`
	EnPassantTarget bool   `json:"enPassantTarget,omitempty" yaml:"enPassantTarget,omitempty"`
}

// JSONRecord is a record in JSON and YAML output.
type JSONRecord struct {
	FEN    string      `json:"fen" yaml:"fen"`
	Source string      `json:"source,omitempty" yaml:"source,omitempty"`
	Line   int         `json:"line,omitempty" yaml:"line,omitempty"`
	Pieces []JSONPiece `json:"pieces" yaml:"pieces"`
}

// RecordToJSON converts a record, listing pieces in FEN reading order.
func RecordToJSON(rec Record) *JSONRecord {
	out := &JSONRecord{
		FEN:    rec.FEN,
		Source: rec.Source,
		Line:   rec.Line,
		Pieces: make([]JSONPiece, 0, len(rec.Board)),
	}
	for _, sq := range rec.Board.Squares() {
		p := rec.Board.Get(sq)
		out.Pieces = append(out.Pieces, JSONPiece{
			Square:          string(sq),
			Colour:          p.Colour.String(),
			Kind:            p.Kind.String(),
			EnPassantTarget: p.EnPassantTarget,
		})
	}
	return out
}

// JSONWriter writes one indented JSON object per record.
type JSONWriter struct {
	enc *json.Encoder
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &JSONWriter{enc: enc}
}

// WriteRecord writes a record as JSON.
func (jw *JSONWriter) WriteRecord(rec Record) error {
	return jw.enc.Encode(RecordToJSON(rec))
}

// Close is a no-op; JSON is written immediately.
func (jw *JSONWriter) Close() error {
	return nil
}

// YAMLWriter writes one YAML document per record.
type YAMLWriter struct {
	enc *yaml.Encoder
}

// NewYAMLWriter creates a new YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLWriter{enc: enc}
}

// WriteRecord writes a record as a YAML document.
func (yw *YAMLWriter) WriteRecord(rec Record) error {
	return yw.enc.Encode(RecordToJSON(rec))
}

// Close flushes the YAML encoder.
func (yw *YAMLWriter) Close() error {
	return yw.enc.Close()
}
