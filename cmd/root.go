package cmd

import (
	"io"

	"github.com/josephlewis42/gocat/commands"
	"github.com/josephlewis42/gocat/core/logger"
	"github.com/josephlewis42/gocat/core/vos"
	"github.com/spf13/cobra"
)

// newRootCmd creates the command that runs cat over the host filesystem.
//
// Flag parsing is left to cat itself so bundled flags, "-?" and "-" behave
// the way they do for the system cat.
func newRootCmd(fs vos.VFS, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:                "gocat [OPTION]... [FILE]...",
		Short:              "Concatenate files to standard output",
		Long:               `A reimplementation of the UNIX cat utility.`,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := vos.NewProcess(
				fs,
				vos.NewVIOAdapter(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
				append([]string{"cat"}, args...),
				logger.Default(),
			)
			*exitCode = commands.Cat(proc)
			return nil
		},
	}
}

// Run executes the command line args against fs with the given streams and
// returns the exit status.
func Run(fs vos.VFS, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := commands.ExitSuccess

	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(fs, &exitCode)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		logger.Default().Error("command failed", "err", err)
		return commands.ExitFailure
	}

	return exitCode
}

// Execute runs the root command over the host OS.
// This is called by main.main(). It only needs to happen once.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return Run(vos.NewHostFs(), args, stdin, stdout, stderr)
}
