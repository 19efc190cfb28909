package commands

// Exit codes shared by all commands.
const (
	// ExitSuccess indicates every input was processed.
	ExitSuccess = 0

	// ExitFailure indicates invalid usage or that at least one input
	// failed.
	ExitFailure = 1
)
