// fenboard parses FEN positions and prints the resulting boards.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/fen-board-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("fenboard version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fenboard: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	sources, closeSources := openSources(*fenArg, flag.Args())
	stats, err := processSources(cfg, sources)
	closeSources()

	if err != nil {
		fmt.Fprintf(cfg.LogFile, "fenboard: %v\n", err)
		os.Exit(1)
	}
	if stats.Failed > 0 || stats.Mismatched > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// openSources opens every input file, falling back to stdin when there are
// none. A -fen argument replaces all other input.
func openSources(single string, paths []string) ([]recordSource, func()) {
	if single != "" {
		return []recordSource{{name: "-fen", r: strings.NewReader(single)}}, func() {}
	}
	if len(paths) == 0 {
		return []recordSource{{name: "-", r: os.Stdin}}, func() {}
	}

	sources := make([]recordSource, 0, len(paths))
	var files []io.Closer
	for _, path := range paths {
		file, err := os.Open(path) //nolint:gosec // G304: reading user-specified input is the point
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file %s: %v\n", path, err)
			os.Exit(1)
		}
		files = append(files, file)
		sources = append(sources, recordSource{name: path, r: file})
	}
	return sources, func() {
		for _, f := range files {
			f.Close()
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: fenboard [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Parses FEN positions, one per line, and prints the boards.\n")
	fmt.Fprintf(os.Stderr, "Blank lines and lines starting with '#' are ignored.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nOutput formats (-f):\n")
	fmt.Fprintf(os.Stderr, "  text   8x8 diagram (default)\n")
	fmt.Fprintf(os.Stderr, "  json   one JSON object per position\n")
	fmt.Fprintf(os.Stderr, "  yaml   one YAML document per position\n")
}
