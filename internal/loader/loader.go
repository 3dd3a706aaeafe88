// Package loader reads the county statistics CSV into a county.Table.
package loader

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pierrec/lz4/v4"
	"github.com/spf13/afero"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/debug"
	"github.com/satishbabariya/countyq/internal/linereader"
)

// DefaultMaxLineBytes is the longest input line accepted unless configured otherwise.
const DefaultMaxLineBytes = 10000

// Reporter receives the problems found while loading. None of them stop
// the process.
type Reporter interface {
	Error(err error)
	Warn(err error)
}

// Options control how input is read.
type Options struct {
	// Capacity bounds the table size. Zero selects county.DefaultCapacity.
	Capacity int
	// MaxLineBytes bounds the length of one line. Zero selects DefaultMaxLineBytes.
	MaxLineBytes int
	// QuoteAware keeps delimiters that appear inside double quotes.
	QuoteAware bool
}

// Result is the outcome of a load.
type Result struct {
	Table    *county.Table
	Loaded   int
	Rejected int
	// Truncated is set when reading stopped before the end of input.
	Truncated bool
}

// Loader opens CSV files on a filesystem and parses them.
type Loader struct {
	fs       afero.Fs
	opts     Options
	reporter Reporter
}

// New creates a Loader.
func New(fs afero.Fs, opts Options, reporter Reporter) *Loader {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return &Loader{fs: fs, opts: opts, reporter: reporter}
}

// LoadFile opens path and loads it. Paths ending in ".lz4" are
// decompressed while reading. Only a failure to open the file is returned
// as an error; everything else is reported and loading keeps what it has.
func (l *Loader) LoadFile(path string) (*Result, error) {
	f, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".lz4") {
		r = lz4.NewReader(f)
	}
	return l.Load(r), nil
}

// Load parses CSV text from r. The first line is a header and is only
// checked for its column count.
func (l *Loader) Load(r io.Reader) *Result {
	start := time.Now()
	res := &Result{Table: county.NewTable(l.opts.Capacity)}

	lr := linereader.New(r, l.opts.MaxLineBytes)

	split := splitNaive
	if l.opts.QuoteAware {
		split = splitQuoted
	}

	for {
		text, err := lr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		lineNo := lr.Line()
		if errors.Is(err, linereader.ErrTooLong) {
			if lineNo > 1 {
				res.Rejected++
			}
			l.reporter.Error(&LineError{Line: lineNo, Cause: err})
			continue
		}
		if err != nil {
			res.Truncated = true
			l.reporter.Error(&LineError{Line: lineNo + 1, Cause: err})
			break
		}

		tokens := split(text)

		if lineNo == 1 {
			if len(tokens) < county.MinColumns() {
				l.reporter.Warn(&LineError{
					Line:  lineNo,
					Cause: fmt.Errorf("%w: got %d, want %d", ErrHeaderTooShort, len(tokens), county.MinColumns()),
				})
			}
			continue
		}

		rec := parseRecord(tokens)
		if !rec.Valid() {
			res.Rejected++
			l.reporter.Error(&LineError{Line: lineNo, Cause: ErrMissingIdentity})
			continue
		}

		if err := res.Table.Add(rec); err != nil {
			res.Truncated = true
			l.reporter.Error(fmt.Errorf("too many entries to load: %w", err))
			break
		}
		res.Loaded++
	}

	debug.Debug("csv loaded",
		"records", res.Loaded,
		"rejected", res.Rejected,
		"truncated", res.Truncated,
		"elapsed", time.Since(start),
	)
	return res
}

func parseRecord(tokens []string) county.Record {
	var rec county.Record
	if len(tokens) > county.CountyColumn {
		rec.County = tokens[county.CountyColumn]
	}
	if len(tokens) > county.StateColumn {
		rec.State = tokens[county.StateColumn]
	}
	for _, f := range county.Fields() {
		if f.Column() < len(tokens) {
			f.Set(&rec, parseNumber(tokens[f.Column()]))
		}
	}
	return rec
}

// parseNumber reads a numeric cell. Cells that do not parse count as zero.
func parseNumber(tok string) float64 {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		debug.Debug("non-numeric cell", "value", tok)
		return 0
	}
	return v
}
