// processor.go - Reading FEN records and driving the parser pool
package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/fen-board-go/internal/config"
	"github.com/lgbarn/fen-board-go/internal/errors"
	"github.com/lgbarn/fen-board-go/internal/output"
	"github.com/lgbarn/fen-board-go/internal/worker"
)

// recordSource is a named stream of FEN records.
type recordSource struct {
	name string
	r    io.Reader
}

// Stats counts what happened to the records of one run.
type Stats struct {
	Records    int // Records read and processed, in input order
	Parsed     int
	Failed     int
	Mismatched int // Parsed boards that disagreed with the cross-check
}

// readRecords submits every FEN line of src, numbering items from *next.
// Surrounding whitespace is trimmed; blank and '#' lines are skipped.
// Reading ends early once the pool is stopped.
func readRecords(src recordSource, next *int, pool *worker.Pool) error {
	scanner := bufio.NewScanner(src.r)
	line := 0
	for scanner.Scan() {
		line++
		if pool.IsStopped() {
			return nil
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pool.Submit(worker.WorkItem{FEN: text, Index: *next, Source: src.name, Line: line})
		*next++
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", src.name)
	}
	return nil
}

// processSources parses every record from sources and writes the boards to
// cfg.OutputFile in input order. Failures are logged to cfg.LogFile as they
// are reached. The returned error is an I/O failure, not a parse failure.
func processSources(cfg *config.Config, sources []recordSource) (Stats, error) {
	pool := worker.NewPool(
		worker.ParseFEN(cfg.Verify),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(cfg.Workers*4),
	)
	pool.Start()

	readErr := make(chan error, 1)
	go func() {
		var err error
		next := 0
		for _, src := range sources {
			if err = readRecords(src, &next, pool); err != nil {
				break
			}
		}
		pool.Close()
		readErr <- err
	}()

	writer := output.NewWriter(cfg.OutputFile, cfg.OutputFormat)
	var stats Stats
	var writeErr error

	stats.Records = pool.InOrder(func(r worker.ProcessResult) bool {
		if r.Error != nil {
			stats.Failed++
			cfg.Logf(1, "%v", &errors.ParseError{
				Err:  r.Error,
				File: r.Item.Source,
				Line: r.Item.Line,
				Got:  r.Item.FEN,
			})
			return !cfg.StopOnError
		}

		stats.Parsed++
		if len(r.Mismatches) > 0 {
			stats.Mismatched++
			cfg.Logf(1, "%s:%d: cross-check disagrees:\n  %s",
				r.Item.Source, r.Item.Line, strings.Join(r.Mismatches, "\n  "))
		}
		cfg.Logf(2, "%s:%d: %d pieces", r.Item.Source, r.Item.Line, len(r.Board))

		writeErr = writer.WriteRecord(output.Record{
			FEN:    r.Item.FEN,
			Source: r.Item.Source,
			Line:   r.Item.Line,
			Board:  r.Board,
		})
		return writeErr == nil
	})

	err := <-readErr
	if closeErr := writer.Close(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return stats, errors.Wrap(writeErr, "writing output")
	}
	if err != nil {
		return stats, err
	}

	cfg.Logf(1, "%d records: %d parsed, %d failed", stats.Records, stats.Parsed, stats.Failed)
	return stats, nil
}
