// Package rerun supervises an external simulation program, re-running it
// until every expected output file contains enough completed battle
// blocks. Completeness is judged by a plain substring count of the block
// end marker; no parsing happens here.
package rerun

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/CheddyG/PWT-Simulation-Tournament/internal/battle"
	"github.com/CheddyG/PWT-Simulation-Tournament/internal/ux"
)

// OutputComplete reports whether the file at path holds at least
// minBattles completed battle blocks. A missing or unreadable file is
// incomplete.
func OutputComplete(path string, minBattles int) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Count(string(data), battle.EndMarker+"\n") >= minBattles
}

// Loop drives the retry supervisor. All bookkeeping lives on the struct;
// nothing is process-global, so independent Loops may run concurrently
// over different output directories.
type Loop struct {
	OutputDir       string
	BaseName        string // output file stem, e.g. "output"
	Extension       string // output file extension, e.g. ".txt"
	ExpectedBattles int
	MaxIterations   int
	MaxAttempts     int // per-file cap, 0 = retry until cancelled
	RetryDelay      time.Duration
	Runner          Runner
}

// Run iterates output files output1.txt, output2.txt, ... re-invoking
// the simulation until each is complete. Files already complete from a
// previous run are skipped. Run returns early on context cancellation
// or when a file exhausts MaxAttempts.
func (l *Loop) Run(ctx context.Context) error {
	if err := os.MkdirAll(l.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	st, err := LoadState(l.OutputDir)
	if err != nil {
		return fmt.Errorf("loading rerun state: %w", err)
	}

	iteration := 0
	for iteration < l.MaxIterations {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := fmt.Sprintf("%s%d%s", l.BaseName, iteration+1, l.Extension)
		path := filepath.Join(l.OutputDir, name)

		if OutputComplete(path, l.ExpectedBattles) {
			ux.IterationComplete(name)
			iteration++
			continue
		}

		if l.MaxAttempts > 0 && st.Attempts[name] >= l.MaxAttempts {
			return fmt.Errorf("output %q still incomplete after %d attempt(s)", name, l.MaxAttempts)
		}
		st.Attempts[name]++
		if err := st.Save(l.OutputDir); err != nil {
			return fmt.Errorf("saving rerun state: %w", err)
		}

		ux.IterationRetry(name, st.Attempts[name], l.ExpectedBattles)
		if err := l.Runner.Run(ctx, path); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			ux.Warning("simulation run for %s failed: %v", name, err)
		}

		// Let the simulation's writes settle before re-checking.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(l.RetryDelay):
		}
	}

	ux.RerunDone(l.MaxIterations)
	return nil
}
