package cli_test

import (
	"context"
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/mkproj/mkproj/pkg/cli"
	"github.com/mkproj/mkproj/pkg/edit"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

// NewProcess runs the full CLI the way main does, against the sandbox
// runtime.
func NewProcess(t *testing.T, isTTY bool, args ...string) *sandbox.Process {
	return sandbox.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}

// NewEditProcess runs the CLI with a fake editor injected so --edit round
// trips never block on a terminal.
func NewEditProcess(t *testing.T, editor edit.EditFunc, args ...string) *sandbox.Process {
	return sandbox.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.RunWithDeps(ctx, rt, args, &cli.Deps{Editor: editor})
	}, false)
}

// workSandbox sets up a sandbox with an empty working directory for project
// runs and returns it along with the resolved wd.
func workSandbox(t *testing.T, opts ...sandbox.Option) (*sandbox.Sandbox, string) {
	t.Helper()
	sb := NewSandbox(t, opts...)
	require.NoError(t, sb.Runtime().Mkdir("/home/testuser/work", 0o755, true))
	require.NoError(t, sb.Setwd("/home/testuser/work"))
	wd, err := sb.Runtime().Getwd()
	require.NoError(t, err)
	return sb, wd
}

// hermeticArgs keeps CLI runs independent of the host: no user config and an
// explicit identity so neither git nor the environment leaks in.
func hermeticArgs(args ...string) []string {
	return append(args, "--no-config", "-a", "Ada Lovelace", "-e", "ada@example.org")
}
