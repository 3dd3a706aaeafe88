// Package linereader reads newline-terminated text with a per-line byte limit.
// A line over the limit is consumed and reported, and reading continues with
// the line after it.
package linereader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrTooLong is returned for a line longer than the configured limit.
var ErrTooLong = errors.New("line too long")

// Reader yields one line per call to Next.
type Reader struct {
	r    *bufio.Reader
	max  int
	line int
}

// New creates a Reader that accepts lines of at most max bytes, not
// counting the line terminator.
func New(r io.Reader, max int) *Reader {
	return &Reader{r: bufio.NewReader(r), max: max}
}

// Line returns the number of the line most recently returned by Next.
func (lr *Reader) Line() int { return lr.line }

// Next returns the next line without its "\n" or "\r\n" terminator. It
// returns io.EOF once input is exhausted. A line over the limit is skipped
// in full and returned as an empty string with an error wrapping
// ErrTooLong; the caller may keep calling Next.
func (lr *Reader) Next() (string, error) {
	var (
		buf  []byte
		size int
		seen bool
	)
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if len(chunk) > 0 {
			seen = true
		}
		size += len(chunk)
		// Two extra bytes leave room for the terminator.
		if size <= lr.max+2 {
			buf = append(buf, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		if !seen {
			return "", io.EOF
		}
		break
	}
	lr.line++

	if size > lr.max+2 {
		return "", fmt.Errorf("%w (max %d bytes)", ErrTooLong, lr.max)
	}
	text := trimEOL(buf)
	if len(text) > lr.max {
		return "", fmt.Errorf("%w (max %d bytes)", ErrTooLong, lr.max)
	}
	return string(text), nil
}

func trimEOL(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}
