package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wippyai/numconv/convtable"
	numerrors "github.com/wippyai/numconv/errors"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(stdout, stderr io.Writer, args []string) error {
	opts, err := parseArgs(args, stdout, stderr)
	if err != nil {
		return err
	}
	if opts.help {
		return nil
	}
	if opts.version {
		fmt.Fprintf(stdout, "numconv %s\n", version())
		return nil
	}

	if opts.verbose {
		logger, err := newLogger(stderr)
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		defer logger.Sync()
		convtable.SetLogger(logger)
		defer convtable.SetLogger(zap.NewNop())
	}

	if opts.interactive {
		return runInteractive(stdout, opts)
	}

	ct := convtable.New(renderOptions(stdout, opts)...)
	for _, lit := range opts.literals {
		ct.Push(lit)
	}
	if _, err := ct.WriteTo(stdout); err != nil {
		return err
	}

	if opts.strict {
		return ct.Err()
	}
	return nil
}

// newLogger builds a development logger that writes to w.
func newLogger(w io.Writer) (*zap.Logger, error) {
	if f, ok := w.(*os.File); ok && f == os.Stderr {
		return zap.NewDevelopment()
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)), nil
}

// exitCode maps an error returned by run to a process exit status.
func exitCode(err error) int {
	usage := &numerrors.Error{Phase: numerrors.PhaseCLI, Kind: numerrors.KindUsage}
	if errors.Is(err, usage) {
		return 2
	}
	return 1
}
