// Package vostest runs commands against an in-memory OS for tests.
package vostest

import (
	"bytes"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/josephlewis42/gocat/core/vos"
)

// Cmd is similar to exec.Cmd.
type Cmd struct {
	// Process function
	Process vos.ProcessFunc
	// Process arguments, the first argument should be the process name.
	Argv []string
	// Fs is the filesystem the process sees, it starts empty.
	Fs vos.VFS

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives the process's log records, nil discards them.
	Logger *log.Logger

	ExitStatus int
}

// Command creates a command that runs process over an empty in-memory
// filesystem.
func Command(process vos.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Process: process,
		Argv:    append([]string{name}, arg...),
		Fs:      vos.NewMemFs(),
	}
}

// CombinedOutput runs the command and returns its interleaved stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Output runs the command and returns stdout and stderr separately.
func (c *Cmd) Output() (stdout, stderr []byte, err error) {
	outBuf, errBuf := &bytes.Buffer{}, &bytes.Buffer{}
	c.Stdout = outBuf
	c.Stderr = errBuf

	if err := c.Run(); err != nil {
		return nil, nil, err
	}
	return outBuf.Bytes(), errBuf.Bytes(), nil
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	if c.Process == nil {
		return errors.New("vostest: no process to run")
	}

	stdin := c.Stdin
	if stdin == nil {
		// Like exec.Cmd, a nil Stdin reads from the null device.
		stdin = &bytes.Buffer{}
	}

	proc := vos.NewProcess(
		c.Fs,
		vos.NewVIOAdapter(stdin, c.Stdout, c.Stderr),
		c.Argv,
		c.Logger,
	)

	c.ExitStatus = c.Process(proc)
	return nil
}
