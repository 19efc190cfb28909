package vos

// VOS provides a virtual OS interface to a single running command.
type VOS interface {
	VIO
	VFS

	// Args holds command line arguments, including the command as Args[0].
	Args() []string

	// LogInvalidInvocation records that the command was called in a way it
	// couldn't understand.
	LogInvalidInvocation(err error)
}

// ProcessFunc is a command that can be run, it returns the exit status.
type ProcessFunc func(VOS) int
