// Package logger provides leveled diagnostics for commands and the CLI,
// separate from the command output written to stdout and stderr.
package logger
