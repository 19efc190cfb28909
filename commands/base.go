package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/josephlewis42/gocat/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// ErrIsDirectory is reported for operands that name a directory.
var ErrIsDirectory = errors.New("is a directory")

// OpenError is reported when an input can't be opened for reading.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// fatalError stops RunEachFileOrStdin from moving on to the next file.
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

// Fatal marks err as one that no later file could recover from.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err}
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// Examples holds free-form text shown at the end of the help.
	Examples string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// Interspersed allows options after operands, e.g. "cat a.txt -n".
	// Only valid when no option takes a value.
	Interspersed bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
	if s.Examples != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Examples:")
		fmt.Fprintln(w, s.Examples)
	}
}

// Run the command, if flag parsing was succcessful call the callback.
func (s *SimpleCommand) Run(virtOS vos.VOS, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "display this help and exit")
	}

	args := virtOS.Args()
	if s.Interspersed {
		args = interspersed(args)
	}

	if err := opts.Getopt(args, nil); err != nil {
		virtOS.LogInvalidInvocation(err)

		w := virtOS.Stderr()
		fmt.Fprintf(w, "%s: %s\n", s.name(virtOS), err)
		fmt.Fprintf(w, "usage: %s\n", s.Use)
		fmt.Fprintf(w, "Try '%s --help' for more information.\n", s.name(virtOS))
		return ExitFailure
	}

	if *s.ShowHelp {
		s.PrintHelp(virtOS.Stdout())
		return ExitSuccess
	}

	return callback()
}

// LogProgramError reports an error the way most commands do: prefixed
// with the program name on stderr.
func (s *SimpleCommand) LogProgramError(virtOS vos.VOS, err error) {
	fmt.Fprintf(virtOS.Stderr(), "%s: %v\n", s.name(virtOS), err)
}

// RunEachFileOrStdin calls callback with each named file in order, "-" or an
// empty list means stdin.
//
// Failures are reported and the remaining files are still processed unless
// callback returns an error wrapped with Fatal. The exit status is non-zero
// if any file failed.
func (s *SimpleCommand) RunEachFileOrStdin(virtOS vos.VOS, files []string, callback func(name string, fd io.Reader) error) int {
	if len(files) == 0 {
		files = []string{"-"}
	}

	status := ExitSuccess
	for _, name := range files {
		err := s.withFile(virtOS, name, callback)

		var fatal *fatalError
		switch {
		case err == nil:
			continue
		case errors.As(err, &fatal):
			s.LogProgramError(virtOS, fatal.err)
			return ExitFailure
		default:
			s.LogProgramError(virtOS, err)
			status = ExitFailure
		}
	}

	return status
}

func (s *SimpleCommand) withFile(virtOS vos.VOS, name string, callback func(name string, fd io.Reader) error) error {
	if name == "-" {
		return callback(name, virtOS.Stdin())
	}

	fd, err := virtOS.Open(name)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return &OpenError{Path: name, Err: err}
	}
	defer fd.Close()

	if info, err := fd.Stat(); err == nil && info.IsDir() {
		return &OpenError{Path: name, Err: ErrIsDirectory}
	}

	return callback(name, fd)
}

func (s *SimpleCommand) name(virtOS vos.VOS) string {
	if args := virtOS.Args(); len(args) > 0 {
		return path.Base(args[0])
	}
	return strings.Fields(s.Use)[0]
}

// interspersed moves every option in front of the operands so getopt, which
// stops at the first operand, sees them all. Everything after "--" stays an
// operand.
func interspersed(argv []string) []string {
	if len(argv) == 0 {
		return argv
	}

	options := []string{argv[0]}
	var operands []string
loop:
	for i := 1; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			operands = append(operands, argv[i+1:]...)
			break loop
		case len(arg) > 1 && arg[0] == '-':
			options = append(options, arg)
		default:
			operands = append(operands, arg)
		}
	}

	out := append(options, "--")
	return append(out, operands...)
}
