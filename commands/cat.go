package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/josephlewis42/gocat/core/linefmt"
	"github.com/josephlewis42/gocat/core/vos"
)

const catExamples = `  cat f - g  Output f's contents, then standard input, then g's contents.
  cat        Copy standard input to standard output.`

// Cat implements the UNIX cat command.
//
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/cat.html
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:          "cat [OPTION]... [FILE]...",
		Short:        "Concatenate FILE(s) to standard output. With no FILE, or when FILE is -, read standard input.",
		Examples:     catExamples,
		Interspersed: true,
	}

	var opts linefmt.Options
	flags := cmd.Flags()
	flags.FlagLong(&opts.NumberNonblank, "number-nonblank", 'b', "number nonempty output lines, overrides -n")
	flags.FlagLong(&opts.ShowEnds, "show-ends", 'E', "display $ at end of each line")
	flags.Flag(&opts.ShowEnds, 'e', "same as -E")
	flags.FlagLong(&opts.NumberAll, "number", 'n', "number all output lines")
	flags.FlagLong(&opts.SqueezeBlank, "squeeze-blank", 's', "suppress repeated empty output lines")
	flags.FlagLong(&opts.ShowTabs, "show-tabs", 'T', "display TAB characters as ^I")
	flags.Flag(&opts.ShowTabs, 't', "same as -T")
	flags.Flag(&opts.Unbuffered, 'u', "(ignored)")
	flags.FlagLong(&opts.ShowNonprinting, "show-nonprinting", 'v', "use ^ and M- notation, except for LFD and TAB")

	cmd.ShowHelp = flags.BoolLong("help", 'h', "display this help and exit")
	flags.Flag(cmd.ShowHelp, '?', "same as -h")

	return cmd.Run(virtOS, func() int {
		st := linefmt.NewState()
		w := virtOS.Stdout()

		return cmd.RunEachFileOrStdin(virtOS, flags.Args(), func(name string, fd io.Reader) error {
			err := opts.Format(w, fd, st)

			var writeErr *linefmt.WriteError
			switch {
			case err == nil:
				return nil
			case errors.As(err, &writeErr):
				return Fatal(err)
			default:
				return fmt.Errorf("%s: %w", name, err)
			}
		})
	})
}

var _ vos.ProcessFunc = Cat
