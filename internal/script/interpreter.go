// Package script runs operation scripts against a county.Table.
package script

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/debug"
	"github.com/satishbabariya/countyq/internal/linereader"
)

// DefaultMaxLineBytes is the longest operation line accepted unless configured otherwise.
const DefaultMaxLineBytes = 10000

// Reporter receives per-line failures. A failure never stops the script.
type Reporter interface {
	Error(err error)
	Warn(err error)
}

// Options control how results are printed.
type Options struct {
	Style        Style
	MaxLineBytes int
}

// Stats summarises one script run.
type Stats struct {
	Lines    int
	Skipped  int
	Executed int
	Failed   int
}

// Interpreter applies operations to a table it owns for the duration of a run.
type Interpreter struct {
	table    *county.Table
	out      io.Writer
	reporter Reporter
	opts     Options
}

// New creates an Interpreter writing results to out.
func New(table *county.Table, out io.Writer, reporter Reporter, opts Options) *Interpreter {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return &Interpreter{table: table, out: out, reporter: reporter, opts: opts}
}

// RunFile opens the script at path on fs and runs it. Only a failure to
// open the file is returned.
func (in *Interpreter) RunFile(fs afero.Fs, path string) (Stats, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("error opening operations file: %w", err)
	}
	defer f.Close()

	return in.Run(f), nil
}

// Run executes every line read from r in order.
func (in *Interpreter) Run(r io.Reader) Stats {
	var stats Stats

	lr := linereader.New(r, in.opts.MaxLineBytes)

	for {
		text, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, linereader.ErrTooLong) {
			in.reporter.Error(fmt.Errorf("reading operations after line %d: %w", stats.Lines, err))
			break
		}

		stats.Lines++
		if err != nil {
			stats.Failed++
			in.reporter.Error(&OperationError{Line: stats.Lines, Cause: err})
			continue
		}
		if Skippable(text) {
			stats.Skipped++
			continue
		}

		if err := in.Exec(text); err != nil {
			stats.Failed++
			in.reporter.Error(&OperationError{Line: stats.Lines, Text: text, Cause: err})
			continue
		}
		stats.Executed++
	}

	debug.Debug("script finished",
		"lines", stats.Lines,
		"executed", stats.Executed,
		"failed", stats.Failed,
		"records", in.table.Len(),
	)
	return stats
}

// Skippable reports whether a line is blank or starts with whitespace.
func Skippable(text string) bool {
	if text == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsSpace(r)
}

// Exec parses and applies one operation line.
func (in *Interpreter) Exec(text string) error {
	op, err := Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedOperation, err)
	}
	debug.Dump("parsed operation", op)
	return op.apply(in)
}

func (op *DisplayOp) apply(in *Interpreter) error {
	return in.display()
}

func (op *FilterStateOp) apply(in *Interpreter) error {
	n := in.table.FilterState(op.State)
	fmt.Fprintf(in.out, "Filter: state == %s (%d entries)\n", op.State, n)
	return nil
}

func (op *FilterOp) apply(in *Interpreter) error {
	threshold, err := strconv.ParseFloat(strings.TrimSpace(op.Threshold), 64)
	if err != nil || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("%w: threshold %q is not a number", ErrMalformedOperation, op.Threshold)
	}

	n, err := in.table.FilterByName(op.Field, op.Operator, threshold)
	fmt.Fprintf(in.out, "Filter: %s %s %.6f (%d entries)\n", op.Field, op.Operator, threshold, n)
	return err
}

func (op *PopulationTotalOp) apply(in *Interpreter) error {
	fmt.Fprintf(in.out, "2014 population: %d\n", in.table.TotalPopulation())
	return nil
}

func (op *PopulationOp) apply(in *Interpreter) error {
	sub, err := in.table.SubPopulation(op.Field)
	if err != nil {
		return err
	}
	fmt.Fprintf(in.out, "2014 %s population: %.6f\n", op.Field, sub)
	return nil
}

func (op *PercentOp) apply(in *Interpreter) error {
	pct, err := in.table.Percent(op.Field)
	if err != nil {
		if errors.Is(err, county.ErrZeroPopulation) {
			return fmt.Errorf("percent of %s: %w", op.Field, err)
		}
		return err
	}
	fmt.Fprintf(in.out, "2014 %s percentage: %.6f\n", op.Field, pct)
	return nil
}
