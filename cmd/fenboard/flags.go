// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/fen-board-go/internal/config"
)

var (
	// Input
	fenArg = flag.String("fen", "", "Parse this FEN string instead of reading input files")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("f", "text", "Output format: text, json, yaml")

	// Processing
	workers     = flag.Int("workers", 0, "Number of parallel parsers (0 = number of CPUs)")
	stopOnError = flag.Bool("stop", false, "Stop at the first record that fails to parse")
	verify      = flag.Bool("verify", false, "Cross-check every parsed board with dragontoothmg")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	quiet     = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose   = flag.Bool("v", false, "Report every record")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg and validates the result.
func applyFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	cfg.OutputFormat = format

	if *workers > 0 {
		cfg.Workers = *workers
	}
	cfg.StopOnError = *stopOnError
	cfg.Verify = *verify

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}

	return cfg.Validate()
}
