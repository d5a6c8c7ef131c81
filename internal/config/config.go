// Package config provides configuration for the fenboard tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/fen-board-go/internal/errors"
)

// OutputFormat selects how parsed boards are written.
type OutputFormat int

const (
	Text OutputFormat = iota // 8x8 diagram
	JSON                     // One JSON object per record
	YAML                     // One YAML document per record
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("OutputFormat(%d)", int(f))
}

// ParseOutputFormat converts a flag value such as "json" into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text", "board":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return Text, errors.Wrapf(errors.ErrInvalidConfig, "unknown output format %q", s)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=every failure

	// Processing
	Workers     int  // Parallel parsers (1 = sequential)
	StopOnError bool // Stop at the first record that fails to parse
	Verify      bool // Cross-check every parsed board with dragontoothmg

	// Output
	OutputFormat OutputFormat

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:    1,
		Workers:      runtime.NumCPU(),
		OutputFormat: Text,
		OutputFile:   os.Stdout,
		LogFile:      os.Stderr,
	}
}

// Validate reports configuration values that cannot be used.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must not be negative, got %d", c.Verbosity)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log streams must be set")
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
