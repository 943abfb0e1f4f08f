package main

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/wippyai/numconv/errors"
)

const usageText = `Display numbers in multiple radixes
Version %s

Usage: numconv [options] num [num ...]
  num      decimal, hex, octal, or binary number
  decimal  start with a digit
  hex      start with 0x
  octal    start with 0o
  binary   start with 0b

  A leading + or - sets the sign; _ may separate digits.

Options:
`

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

type options struct {
	color       colorMode
	width       string
	literals    []string
	verbose     bool
	interactive bool
	strict      bool
	version     bool
	help        bool
}

// parseArgs reads flags from args. The usage text goes to stdout when asked
// for or when no literals are given, and to stderr after a flag error.
func parseArgs(args []string, stdout, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("numconv", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	printUsage := func(w io.Writer) {
		fmt.Fprintf(w, usageText, version())
		fs.SetOutput(w)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
	}

	var color string
	fs.BoolVar(&opts.verbose, "v", false, "Log debug output to stderr")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive mode with TUI")
	fs.BoolVar(&opts.strict, "strict", false, "Exit with status 1 if any number fails to parse")
	fs.BoolVar(&opts.version, "version", false, "Print version and exit")
	fs.StringVar(&color, "color", string(colorAuto), "Colorize output: auto, always or never")
	fs.StringVar(&opts.width, "width", "rune", "Column width measure: rune or display")

	literals, err := parseInterleaved(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			printUsage(stdout)
			opts.help = true
			return opts, nil
		}
		printUsage(stderr)
		return nil, errors.Wrap(errors.PhaseCLI, errors.KindUsage, err, "invalid arguments")
	}

	switch colorMode(strings.ToLower(color)) {
	case colorAuto, colorAlways, colorNever:
		opts.color = colorMode(strings.ToLower(color))
	default:
		return nil, errors.New(errors.PhaseCLI, errors.KindUsage).
			Value(color).
			Detail("invalid -color %q: must be auto, always or never", color).
			Build()
	}

	switch opts.width {
	case "rune", "display":
	default:
		return nil, errors.New(errors.PhaseCLI, errors.KindUsage).
			Value(opts.width).
			Detail("invalid -width %q: must be rune or display", opts.width).
			Build()
	}

	opts.literals = literals
	if len(opts.literals) == 0 && !opts.interactive && !opts.version {
		printUsage(stdout)
		opts.help = true
	}
	return opts, nil
}

// parseInterleaved parses flags that may appear between literals, one flag
// at a time, so fs never sees a literal. Negative literals such as -129 are
// not mistaken for flags; everything after "--" is a literal.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var literals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(literals, args[i+1:]...), nil
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") || isNegativeLiteral(arg) {
			literals = append(literals, arg)
			continue
		}

		flagArgs := []string{arg}
		if takesValue(fs, arg) && i+1 < len(args) {
			i++
			flagArgs = append(flagArgs, args[i])
		}
		if err := fs.Parse(flagArgs); err != nil {
			return nil, err
		}
	}
	return literals, nil
}

// takesValue reports whether arg names a defined non-boolean flag whose
// value is the next argument.
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}
	return true
}

func isNegativeLiteral(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg[1] >= '0' && arg[1] <= '9'
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
