package scaffold_test

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/mkproj/mkproj/pkg/scaffold"
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

func newScaffold(t *testing.T, sb *sandbox.Sandbox) *scaffold.Scaffold {
	t.Helper()
	s, err := scaffold.New(scaffold.Options{Runtime: sb.Runtime()})
	require.NoError(t, err)
	return s
}

// muteGitConfig points git at empty config files so the ambient user
// identity cannot leak into assertions. Tests calling it must not be
// parallel.
func muteGitConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
}
