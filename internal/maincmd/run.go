package maincmd

import (
	"context"
	"errors"

	"github.com/jhamby/sharray/lang/array"
	"github.com/jhamby/sharray/lang/scanner"
	"github.com/jhamby/sharray/lang/script"
	"github.com/mna/mainer"
)

func (c *Cmd) Run(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return printError(stdio, err)
	}
	return RunFiles(ctx, stdio, cfg.NewArray, c.Trace, args...)
}

// RunFiles executes the script files in order in a single environment where
// arrays are created with newArray. Nothing is executed if any file fails to
// parse. Results are printed to stdio.Stdout and errors to stdio.Stderr. If
// trace is true, each statement is printed to stdio.Stderr before it is
// executed.
func RunFiles(ctx context.Context, stdio mainer.Stdio, newArray func() *array.Array, trace bool, files ...string) error {
	stmtsByFile, err := script.ParseFiles(ctx, files...)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}

	env := script.NewEnv(newArray, stdio.Stdout)
	if trace {
		env.Trace = stdio.Stderr
	}

	var errs []error
	for _, stmts := range stmtsByFile {
		if err := env.Exec(ctx, stmts); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		scanner.PrintError(stdio.Stderr, err)
		return err
	}
	return nil
}
