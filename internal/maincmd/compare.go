package maincmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jhamby/sharray/internal/config"
	"github.com/jhamby/sharray/lang/array"
	"github.com/jhamby/sharray/lang/scanner"
	"github.com/kylelemons/godebug/diff"
	"github.com/mna/mainer"
	"golang.org/x/sync/errgroup"
)

// ErrStrategiesDiffer is returned by CompareFiles when a script does not
// produce the same results with both strategies.
var ErrStrategiesDiffer = array.ConstError("strategies produce different results")

func (c *Cmd) Compare(ctx context.Context, stdio mainer.Stdio, args []string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return printError(stdio, err)
	}
	return CompareFiles(ctx, stdio, cfg.Dense, args...)
}

// CompareFiles executes each script file twice concurrently, once with
// linked arrays and once with dense arrays configured with dense, and prints
// whether the combined output and errors are the same. When they differ, the
// diff from the linked to the dense results follows. It returns
// ErrStrategiesDiffer if any file produced different results.
func CompareFiles(ctx context.Context, stdio mainer.Stdio, dense config.Dense, files ...string) error {
	linkedCfg := config.Config{Strategy: array.Linked.String()}
	denseCfg := config.Config{Strategy: array.Dense.String(), Dense: dense}

	var differ bool
	for _, file := range files {
		var linkedOut, denseOut string
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			linkedOut, err = runCaptured(gctx, linkedCfg, file)
			return err
		})
		g.Go(func() (err error) {
			denseOut, err = runCaptured(gctx, denseCfg, file)
			return err
		})
		if err := g.Wait(); err != nil {
			return printError(stdio, err)
		}

		if patch := diff.Diff(linkedOut, denseOut); patch != "" {
			differ = true
			fmt.Fprintf(stdio.Stdout, "%s: differ\n%s\n", file, patch)
			continue
		}
		fmt.Fprintf(stdio.Stdout, "%s: same\n", file)
	}
	if differ {
		scanner.PrintError(stdio.Stderr, ErrStrategiesDiffer)
		return ErrStrategiesDiffer
	}
	return nil
}

// runCaptured runs file in a fresh environment and returns the interleaved
// output and errors. Script errors are part of the output, the returned error
// is only set if ctx is done.
func runCaptured(ctx context.Context, cfg config.Config, file string) (string, error) {
	var buf bytes.Buffer
	stdio := mainer.Stdio{Stdout: &buf, Stderr: &buf}
	_ = RunFiles(ctx, stdio, cfg.NewArray, false, file)
	return buf.String(), ctx.Err()
}
