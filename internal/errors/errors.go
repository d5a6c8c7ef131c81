// Package errors provides sentinel errors and error types for FEN parsing.
// Every parse failure is a structured type that unwraps to ErrInvalidFEN and
// also matches its own kind sentinel, so callers can use errors.Is() for the
// broad or the specific condition and errors.As() to reach the details.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSectionCount indicates a FEN without exactly six sections.
	ErrInvalidSectionCount = errors.New("invalid section count")

	// ErrInvalidPiece indicates an unrecognised placement character.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrDuplicateSquare indicates two placements on the same square.
	ErrDuplicateSquare = errors.New("duplicate square")

	// ErrInvalidRankCount indicates a placement section without eight ranks.
	ErrInvalidRankCount = errors.New("invalid rank count")

	// ErrRankOverflow indicates a rank describing more than eight files.
	ErrRankOverflow = errors.New("rank overflow")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InvalidSectionCountError reports a FEN that does not split into six
// space-separated sections.
type InvalidSectionCountError struct {
	Count int // Number of sections found
}

func (e *InvalidSectionCountError) Error() string {
	return fmt.Sprintf("Invalid number of sections in FEN statement, expected 6, found %d", e.Count)
}

// Is matches ErrInvalidSectionCount.
func (e *InvalidSectionCountError) Is(target error) bool { return target == ErrInvalidSectionCount }

// Unwrap returns ErrInvalidFEN.
func (e *InvalidSectionCountError) Unwrap() error { return ErrInvalidFEN }

// InvalidPieceError reports a placement character that is neither a piece
// letter nor a digit from 1 to 8.
type InvalidPieceError struct {
	Piece rune
}

func (e *InvalidPieceError) Error() string {
	return fmt.Sprintf("Invalid piece %q", e.Piece)
}

// Is matches ErrInvalidPiece.
func (e *InvalidPieceError) Is(target error) bool { return target == ErrInvalidPiece }

// Unwrap returns ErrInvalidFEN.
func (e *InvalidPieceError) Unwrap() error { return ErrInvalidFEN }

// DuplicateSquareError reports a placement onto an occupied square.
type DuplicateSquareError struct {
	Square string
}

func (e *DuplicateSquareError) Error() string {
	msg := "Incomplete board state - duplicate square inserted during FEN parse"
	if e.Square != "" {
		msg += " (" + e.Square + ")"
	}
	return msg
}

// Is matches ErrDuplicateSquare.
func (e *DuplicateSquareError) Is(target error) bool { return target == ErrDuplicateSquare }

// Unwrap returns ErrInvalidFEN.
func (e *DuplicateSquareError) Unwrap() error { return ErrInvalidFEN }

// InvalidRankCountError reports a placement section that does not split
// into eight ranks.
type InvalidRankCountError struct {
	Count int
}

func (e *InvalidRankCountError) Error() string {
	return fmt.Sprintf("Invalid number of ranks in FEN placement, expected 8, found %d", e.Count)
}

// Is matches ErrInvalidRankCount.
func (e *InvalidRankCountError) Is(target error) bool { return target == ErrInvalidRankCount }

// Unwrap returns ErrInvalidFEN.
func (e *InvalidRankCountError) Unwrap() error { return ErrInvalidFEN }

// RankOverflowError reports a rank whose pieces and skips run past the h-file.
type RankOverflowError struct {
	Rank  string // The rank descriptor as written in the FEN
	Files int    // Files described up to and including the overflow
}

func (e *RankOverflowError) Error() string {
	return fmt.Sprintf("Rank %q describes %d files, expected at most 8", e.Rank, e.Files)
}

// Is matches ErrRankOverflow.
func (e *RankOverflowError) Is(target error) bool { return target == ErrRankOverflow }

// Unwrap returns ErrInvalidFEN.
func (e *RankOverflowError) Unwrap() error { return ErrInvalidFEN }

// ParseError attaches input location to a parse failure.
// The CLI uses it to report which record of which file failed.
type ParseError struct {
	Err    error  // The underlying error
	File   string // Source file name ("-" or empty for stdin)
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
	Got    string // The offending input, if useful
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
