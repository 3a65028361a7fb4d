package scaffold_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/stretchr/testify/require"
)

// workSandbox sets up a sandbox with an empty working directory for project
// runs and returns it along with the resolved wd.
func workSandbox(t *testing.T) (*sandbox.Sandbox, string) {
	t.Helper()
	sb := NewSandbox(t)
	require.NoError(t, sb.Runtime().Mkdir("/home/testuser/work", 0o755, true))
	require.NoError(t, sb.Setwd("/home/testuser/work"))
	wd, err := sb.Runtime().Getwd()
	require.NoError(t, err)
	return sb, wd
}

// runOptions keeps runs hermetic: no user config and an explicit identity so
// neither git nor the host environment leaks in.
func runOptions(name string) *scaffold.ProjectOptions {
	return &scaffold.ProjectOptions{
		Name:     name,
		NoConfig: true,
		Author:   "Ada Lovelace",
		Email:    "ada@example.org",
	}
}

func TestRun_CreatesProject(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)

	report, err := s.Run(context.Background(), runOptions("widget"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "widget"), report.Root)
	require.False(t, report.Pretend)
	require.Len(t, report.Operations, 8)
	for _, op := range report.Operations {
		require.Equal(t, scaffold.ActionCreate, op.Action, "path %s", op.Path)
	}

	gomod := sb.MustReadFile(filepath.Join(report.Root, "go.mod"))
	require.Equal(t, "module example.com/widget\n\ngo 1.26.0\n", string(gomod))

	license := sb.MustReadFile(filepath.Join(report.Root, "LICENSE"))
	require.Contains(t, string(license), "Ada Lovelace")

	main := sb.MustReadFile(filepath.Join(report.Root, "cmd", "widget", "main.go"))
	require.Contains(t, string(main), `"example.com/widget/internal/app"`)
}

func TestRun_ReportListsOperationsInOrder(t *testing.T) {
	t.Parallel()
	sb, _ := workSandbox(t)
	s := newScaffold(t, sb)

	report, err := s.Run(context.Background(), runOptions("widget"))
	require.NoError(t, err)

	out := report.String()
	require.Contains(t, out, "create    README.md\n")
	require.Contains(t, out, "create    cmd/widget/main.go\n")

	var paths []string
	for _, op := range report.Operations {
		paths = append(paths, op.Path)
	}
	require.True(t, sort.StringsAreSorted(paths))
}

func TestRun_ExistingDirectoryFails(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)

	require.NoError(t, sb.Runtime().Mkdir("/home/testuser/work/widget", 0o755, true))

	_, err := s.Run(context.Background(), runOptions("widget"))
	require.ErrorIs(t, err, scaffold.ErrDirectoryExists)

	var dirErr *scaffold.DirectoryExistsError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, filepath.Join(wd, "widget"), dirErr.Path)
}

func TestRun_ForceOverwritesExistingFiles(t *testing.T) {
	t.Parallel()
	sb, _ := workSandbox(t)
	s := newScaffold(t, sb)

	report, err := s.Run(context.Background(), runOptions("widget"))
	require.NoError(t, err)

	readmePath := filepath.Join(report.Root, "README.md")
	require.NoError(t, sb.Runtime().WriteFile(readmePath, []byte("scribbles\n"), 0o644))

	opts := runOptions("widget")
	opts.Force = true
	report, err = s.Run(context.Background(), opts)
	require.NoError(t, err)
	for _, op := range report.Operations {
		require.Equal(t, scaffold.ActionOverwrite, op.Action, "path %s", op.Path)
	}

	readme := sb.MustReadFile(readmePath)
	require.Contains(t, string(readme), "# widget")
	require.NotContains(t, string(readme), "scribbles")
}

func TestRun_UpdatePreservesExistingFiles(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)
	rt := sb.Runtime()

	root := filepath.Join(wd, "widget")
	require.NoError(t, rt.Mkdir(root, 0o755, true))
	require.NoError(t, rt.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module github.com/acme/widget\n\ngo 1.25.0\n"), 0o644))
	require.NoError(t, rt.WriteFile(filepath.Join(root, "README.md"),
		[]byte("# widget\n\nHand-written description.\n"), 0o644))

	opts := runOptions("widget")
	opts.Update = true
	report, err := s.Run(context.Background(), opts)
	require.NoError(t, err)

	require.Equal(t, "github.com/acme/widget", opts.Module)
	require.Equal(t, "Hand-written description.", opts.Description)

	byPath := map[string]scaffold.Action{}
	for _, op := range report.Operations {
		byPath[op.Path] = op.Action
	}
	require.Equal(t, scaffold.ActionSkip, byPath["go.mod"])
	require.Equal(t, scaffold.ActionSkip, byPath["README.md"])
	require.Equal(t, scaffold.ActionCreate, byPath["LICENSE"])
	require.Equal(t, scaffold.ActionCreate, byPath["cmd/widget/main.go"])

	gomod := sb.MustReadFile(filepath.Join(root, "go.mod"))
	require.Equal(t, "module github.com/acme/widget\n\ngo 1.25.0\n", string(gomod))

	main := sb.MustReadFile(filepath.Join(root, "cmd", "widget", "main.go"))
	require.Contains(t, string(main), `"github.com/acme/widget/internal/app"`)
}

func TestRun_UpdateRequiresProject(t *testing.T) {
	t.Parallel()
	sb, _ := workSandbox(t)
	s := newScaffold(t, sb)

	require.NoError(t, sb.Runtime().Mkdir("/home/testuser/work/empty", 0o755, true))

	opts := runOptions("empty")
	opts.Update = true
	_, err := s.Run(context.Background(), opts)
	require.ErrorIs(t, err, scaffold.ErrNotProject)
}

func TestRun_PretendWritesNothing(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)

	opts := runOptions("fresh")
	opts.Pretend = true
	report, err := s.Run(context.Background(), opts)
	require.NoError(t, err)
	require.True(t, report.Pretend)
	require.Len(t, report.Operations, 8)

	_, statErr := sb.Runtime().Stat(filepath.Join(wd, "fresh"), false)
	require.True(t, os.IsNotExist(statErr), "pretend run must not create the project directory")
}

func TestRun_EmptyNameFails(t *testing.T) {
	t.Parallel()
	sb, _ := workSandbox(t)
	s := newScaffold(t, sb)

	_, err := s.Run(context.Background(), runOptions("  "))
	require.ErrorIs(t, err, scaffold.ErrInvalidName)
}

func TestRun_ConfiguredExtensionApplies(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t, sandbox.WithFixture("confighome", "/home/testuser"))
	require.NoError(t, sb.Runtime().Mkdir("/home/testuser/work", 0o755, true))
	require.NoError(t, sb.Setwd("/home/testuser/work"))
	s := newScaffold(t, sb)

	opts := &scaffold.ProjectOptions{
		Name:   "widget",
		Author: "Ada Lovelace",
		Email:  "ada@example.org",
	}
	report, err := s.Run(context.Background(), opts)
	require.NoError(t, err)

	precommit := sb.MustReadFile(filepath.Join(report.Root, ".pre-commit-config.yaml"))
	require.Contains(t, string(precommit), "golangci-lint")
}
