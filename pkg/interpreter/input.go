package interpreter

import (
	"bufio"
	"io"
	"strings"
)

// InputSource supplies the lines consumed by 뭐먹 expressions, one line per
// evaluation, forward-only.
type InputSource interface {
	// ReadLine returns the next line without its newline, and false once
	// input is exhausted.
	ReadLine() (string, bool)
}

// LineInput is a cursor over a pre-supplied line list, used by embedding
// hosts and tests.
type LineInput struct {
	lines []string
	pos   int
}

// NewLineInput splits newline-delimited text into input lines. A single
// trailing newline does not contribute an empty final line.
func NewLineInput(text string) *LineInput {
	if text == "" {
		return &LineInput{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &LineInput{lines: lines}
}

func (in *LineInput) ReadLine() (string, bool) {
	if in.pos >= len(in.lines) {
		return "", false
	}
	line := in.lines[in.pos]
	in.pos++
	return line, true
}

// ReaderInput reads lines on demand, e.g. from an interactive console.
type ReaderInput struct {
	scanner *bufio.Scanner
}

func NewReaderInput(r io.Reader) *ReaderInput {
	return &ReaderInput{scanner: bufio.NewScanner(r)}
}

func (in *ReaderInput) ReadLine() (string, bool) {
	if !in.scanner.Scan() {
		return "", false
	}
	return in.scanner.Text(), true
}

// InputFunc adapts a function to an InputSource.
type InputFunc func() (string, bool)

func (f InputFunc) ReadLine() (string, bool) { return f() }
