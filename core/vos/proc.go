package vos

import "github.com/charmbracelet/log"

// Process is a VOS backed by a filesystem, a set of streams and a logger.
type Process struct {
	VFS
	VIO

	// ProcArgs holds command line arguments, including the command as Args[0].
	ProcArgs []string

	logger *log.Logger
}

var _ VOS = (*Process)(nil)

// NewProcess creates a process, a nil logger discards log records.
func NewProcess(fs VFS, stdio VIO, args []string, logger *log.Logger) *Process {
	if logger == nil {
		logger = log.New(&devNull{})
	}

	return &Process{
		VFS:      fs,
		VIO:      stdio,
		ProcArgs: args,
		logger:   logger,
	}
}

// Args implements VOS.Args.
func (p *Process) Args() []string {
	return p.ProcArgs
}

// LogInvalidInvocation implements VOS.LogInvalidInvocation.
func (p *Process) LogInvalidInvocation(err error) {
	p.logger.Debug("invalid invocation", "args", p.ProcArgs, "err", err)
}
