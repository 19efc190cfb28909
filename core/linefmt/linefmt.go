// Package linefmt renders byte streams the way cat(1) does: optionally
// numbering lines, marking line ends, escaping tabs and non-printing bytes
// and squeezing runs of blank lines.
package linefmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Options holds the transformations applied to every line.
type Options struct {
	NumberNonblank  bool
	NumberAll       bool
	ShowEnds        bool
	ShowTabs        bool
	ShowNonprinting bool
	SqueezeBlank    bool

	// Unbuffered is accepted for compatibility and has no effect.
	Unbuffered bool
}

// State is shared between consecutive sources so numbering and squeezing
// continue across file boundaries.
type State struct {
	LineNumber   int
	PrevWasBlank bool
}

// NewState creates the state for a new invocation.
func NewState() *State {
	return &State{LineNumber: 1}
}

// ReadError wraps a failure reading the input stream.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return e.Err.Error() }
func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing the output stream.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write error: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// numbered reports whether a line gets a number prefix.
func (o Options) numbered(blank bool) bool {
	if o.NumberNonblank {
		return !blank
	}
	return o.NumberAll
}

// Format copies r to w line by line applying the options, updating st.
//
// Errors are either a *ReadError or a *WriteError.
func (o Options) Format(w io.Writer, r io.Reader, st *State) error {
	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	var out []byte
	for {
		line, readErr := br.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if err := bw.Flush(); err != nil {
				return &WriteError{err}
			}
			return &ReadError{readErr}
		}

		if len(line) > 0 {
			out = o.render(out[:0], line, st)
			if _, err := bw.Write(out); err != nil {
				return &WriteError{err}
			}
		}

		if readErr != nil || br.Buffered() == 0 {
			if err := bw.Flush(); err != nil {
				return &WriteError{err}
			}
		}

		if readErr != nil {
			return nil
		}
	}
}

// render appends the formatted form of line to dst. A skipped line appends
// nothing.
func (o Options) render(dst, line []byte, st *State) []byte {
	content := line
	newline := false
	if n := len(line); n > 0 && line[n-1] == '\n' {
		content = line[:n-1]
		newline = true
	}
	blank := len(content) == 0

	if o.SqueezeBlank && blank && st.PrevWasBlank {
		return dst
	}
	st.PrevWasBlank = blank

	if o.numbered(blank) {
		dst = fmt.Appendf(dst, "%6d\t", st.LineNumber)
		st.LineNumber++
	}

	for _, c := range content {
		dst = o.appendByte(dst, c)
	}

	if o.ShowEnds {
		dst = append(dst, '$')
	}
	if newline {
		dst = append(dst, '\n')
	}
	return dst
}

func (o Options) appendByte(dst []byte, c byte) []byte {
	switch {
	case c == '\t':
		if o.ShowTabs {
			return append(dst, '^', 'I')
		}
		return append(dst, c)
	case !o.ShowNonprinting:
		return append(dst, c)
	case c >= 0x80:
		return appendControl(append(dst, 'M', '-'), c&0x7f)
	default:
		return appendControl(dst, c)
	}
}

// appendControl writes a 7-bit byte in caret notation if it is a control
// character, otherwise as itself.
func appendControl(dst []byte, c byte) []byte {
	switch {
	case c < 0x20:
		return append(dst, '^', c+0x40)
	case c == 0x7f:
		return append(dst, '^', '?')
	default:
		return append(dst, c)
	}
}
