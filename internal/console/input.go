// Package console reads the player's runs from a line-oriented terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt is written before every read
const Prompt = "Enter your run (1-6): "

// ErrInputClosed is returned when input ends before the game does
var ErrInputClosed = errors.New("input closed")

// InvalidPolicy decides what happens to a line that is not an integer
type InvalidPolicy string

const (
	// PolicyAbort returns the *ParseError and ends the session
	PolicyAbort InvalidPolicy = "abort"
	// PolicyReprompt reports the bad line and asks again
	PolicyReprompt InvalidPolicy = "reprompt"
)

// ParsePolicy validates a policy name
func ParsePolicy(s string) (InvalidPolicy, error) {
	switch p := InvalidPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyAbort, PolicyReprompt:
		return p, nil
	default:
		return "", fmt.Errorf("unknown invalid-input policy %q (want %q or %q)", s, PolicyAbort, PolicyReprompt)
	}
}

// ParseError is returned when a line cannot be read as an integer
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid run %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseRun parses one line of input. Surrounding whitespace is ignored and
// the value is not range checked.
func ParseRun(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: trimmed, Err: err}
	}
	return n, nil
}

// MaxLineLength is the longest line kept for parsing. Longer lines are read to
// the end and reported as a *ParseError wrapping ErrLineTooLong.
const MaxLineLength = 1024

// ErrLineTooLong is the cause of a *ParseError for a line over MaxLineLength
var ErrLineTooLong = errors.New("line too long")

// Prompter asks for one run per call
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	policy InvalidPolicy
}

// NewPrompter reads lines from in and writes prompts to out
func NewPrompter(in io.Reader, out io.Writer, policy InvalidPolicy) *Prompter {
	if policy == "" {
		policy = PolicyAbort
	}
	return &Prompter{
		reader: bufio.NewReader(in),
		out:    out,
		policy: policy,
	}
}

// NextRun prompts and reads until it has a run, input ends, or a bad line
// is seen under PolicyAbort.
func (p *Prompter) NextRun() (int, error) {
	for {
		fmt.Fprint(p.out, Prompt)
		line, truncated, err := p.readLine()
		if errors.Is(err, io.EOF) {
			return 0, ErrInputClosed
		}
		if err != nil {
			return 0, fmt.Errorf("read run: %w", err)
		}

		var run int
		if truncated {
			err = &ParseError{Input: shorten(strings.TrimSpace(line)), Err: ErrLineTooLong}
		} else {
			run, err = ParseRun(line)
		}
		if err == nil {
			return run, nil
		}

		var perr *ParseError
		if p.policy == PolicyReprompt && errors.As(err, &perr) {
			fmt.Fprintf(p.out, "Invalid run %q, enter a whole number.\n", perr.Input)
			continue
		}
		return 0, err
	}
}

// readLine returns the next line without its line ending. At most
// MaxLineLength bytes are kept; truncated reports whether more were dropped.
// A final line without a newline is returned before io.EOF.
func (p *Prompter) readLine() (string, bool, error) {
	var buf []byte
	read, truncated := false, false
	for {
		frag, isPrefix, err := p.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				return string(buf), truncated, nil
			}
			return "", false, err
		}
		read = true
		if room := MaxLineLength - len(buf); len(frag) > room {
			buf = append(buf, frag[:room]...)
			truncated = true
		} else {
			buf = append(buf, frag...)
		}
		if !isPrefix {
			return string(buf), truncated, nil
		}
	}
}

// shorten keeps an over-long line readable in messages
func shorten(s string) string {
	const keep = 32
	if len(s) <= keep {
		return s + "..."
	}
	return s[:keep] + "..."
}
