// Package batch converts a stream of point codes, one per line.
//
// Lines are processed strictly in order with a single reused PointCode: each
// line sets the value and is rendered immediately, so output is produced as
// the input is read. A bad line is either skipped (and reported through
// Options.OnError) or stops the run, depending on Options.FailFast.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/ss7calc/internal/pointcode"
)

// Options controls a batch run.
type Options struct {
	// Mode selects text or CSV output.
	Mode pointcode.DisplayMode

	// Network tags every point code. It persists across lines.
	Network pointcode.NetworkType

	// Input is the notation of each line. Defaults to InputInteger.
	Input pointcode.InputFormat

	// Header prints the banner once before the first record.
	Header bool

	// FailFast stops at the first invalid line instead of skipping it.
	FailFast bool

	// OnError, if set, is called for every invalid line that is skipped.
	OnError func(LineError)
}

// LineError describes an input line that could not be converted.
type LineError struct {
	// Line is the 1-based line number.
	Line int

	// Text is the raw line content.
	Text string

	// Err is the error returned by package pointcode.
	Err error
}

// Error satisfies the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the pointcode error for errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}

// Result summarizes a batch run.
type Result struct {
	// Converted is the number of lines rendered successfully.
	Converted int

	// Failed lists every invalid line, in input order.
	Failed []LineError
}

// Lines returns the total number of lines read.
func (r *Result) Lines() int {
	return r.Converted + len(r.Failed)
}

// MaxLineLength is the longest input line that is parsed. Longer lines are
// reported as invalid and skipped without buffering them whole.
const MaxLineLength = 64 * 1024

// truncatedLength is how much of an oversized line is kept for reporting.
const truncatedLength = 32

// readLine returns the next line without its line terminator. When the line
// is longer than MaxLineLength, only its first truncatedLength bytes are
// returned and tooLong is set; the rest of the line is consumed. io.EOF is
// returned once no data is left.
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong = true
				buf = append(buf, chunk...)[:truncatedLength]
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// Process reads point codes from r and writes rendered records to w.
//
// Each line is trimmed of surrounding whitespace before parsing; blank lines
// and lines longer than MaxLineLength count as invalid. With FailFast the
// first invalid line is returned as a *LineError together with the partial
// Result. Read and write failures are always returned immediately. ctx is
// checked between lines.
func Process(ctx context.Context, r io.Reader, w io.Writer, opts Options) (*Result, error) {
	input := opts.Input
	if input == "" {
		input = pointcode.InputInteger
	}

	result := &Result{}
	pc := pointcode.New()
	pc.SetNetworkType(opts.Network)

	if opts.Header {
		if _, err := io.WriteString(w, pointcode.Header(opts.Mode)); err != nil {
			return result, fmt.Errorf("failed to write header: %w", err)
		}
	}

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, tooLong, readErr := readLine(br)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return result, fmt.Errorf("failed to read input: %w", readErr)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}
		lineNo++

		var err error
		if tooLong {
			err = &pointcode.ParseError{Input: text + "...", Err: bufio.ErrTooLong}
		} else {
			err = pc.Set(input, strings.TrimSpace(text))
		}
		if err != nil {
			lineErr := LineError{Line: lineNo, Text: text, Err: err}
			result.Failed = append(result.Failed, lineErr)
			if opts.FailFast {
				return result, &lineErr
			}
			if opts.OnError != nil {
				opts.OnError(lineErr)
			}
			continue
		}

		if err := pc.Write(w, opts.Mode); err != nil {
			return result, fmt.Errorf("failed to write line %d: %w", lineNo, err)
		}
		result.Converted++
	}
	return result, nil
}
