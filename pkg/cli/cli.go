package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"
)

// Version is stamped at release time via -ldflags.
var Version = "dev"

// Run executes the mkproj CLI and maps the outcome to a process exit code:
// 0 on success, 130 when interrupted, 1 otherwise. A nil runtime gets the
// production default.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	return RunWithDeps(ctx, rt, args, nil)
}

// RunWithDeps is Run with preassembled collaborators. Tests use it to inject
// a fake editor.
func RunWithDeps(ctx context.Context, rt *toolkit.Runtime, args []string, deps *Deps) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return 1, err
		}
	}
	if deps == nil {
		deps = &Deps{}
	}
	deps.Runtime = rt
	if deps.Shutdown != nil {
		ctx = context.WithValue(ctx, shutdownKey{}, deps.Shutdown)
	}

	if err := execute(ctx, deps, args); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}

// execute runs one root command instance against args.
func execute(ctx context.Context, deps *Deps, args []string) error {
	cmd := newWiredRoot(deps)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// reinvoke re-enters the CLI with arguments parsed from an edited options
// file. The outer command owns error rendering and the shutdown hook, so the
// inner one stays quiet and the hook fires once.
func reinvoke(ctx context.Context, deps *Deps, args []string) error {
	ctx = context.WithValue(ctx, shutdownKey{}, (func())(nil))
	cmd := newWiredRoot(deps)
	cmd.SilenceErrors = true
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newWiredRoot(deps *Deps) *cobra.Command {
	streams := deps.Runtime.Stream()
	cmd := NewRootCmd(deps)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	return cmd
}
