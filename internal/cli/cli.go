// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/paritygrid/internal/options"
	"github.com/retroenv/paritygrid/internal/writer"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	flags.Usage = (&UsageError{flags: flags}).ShowUsage
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}

	if err := validateArgs(flags, flags.Args()); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage to the output of the flag set, stderr by default.
func (e *UsageError) ShowUsage() {
	if e.flags == nil {
		return
	}
	out := e.flags.Output()
	_, _ = fmt.Fprintf(out, "usage: paritygrid [options]\n\n")
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(out)
}

// validateArgs rejects positional arguments, the grid size is fixed
func validateArgs(flags *flag.FlagSet, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return &UsageError{
		flags: flags,
		msg:   fmt.Sprintf("unexpected argument %s, the program does not accept positional arguments", args[0]),
	}
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	style, err := writer.ParseStyle(opts.Style)
	if err != nil {
		return fmt.Errorf("%w. Valid options: %s", err, strings.Join(writer.StyleNames(), ", "))
	}
	opts.Style = string(style)
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Style, "style", string(writer.Digits), "cell style of the printed grid (digits/board/framed)")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
