package scaffold_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/stretchr/testify/require"
)

func TestModulePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain",
			in:   "module github.com/acme/widget\n\ngo 1.26.0\n",
			want: "github.com/acme/widget",
		},
		{
			name: "comment before directive",
			in:   "// Deprecated: moved to code.example.org.\n\nmodule code.example.org/widget\n",
			want: "code.example.org/widget",
		},
		{
			name: "no directive",
			in:   "go 1.26.0\n",
			want: "",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, scaffold.ModulePath([]byte(tt.in)))
		})
	}
}

func TestReadmeTitleAndLead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantLead  string
	}{
		{
			name:      "title and lead",
			in:        "# widget\n\nA small tool.\n\nMore prose follows.\n",
			wantTitle: "widget",
			wantLead:  "A small tool.",
		},
		{
			name:      "soft wrapped lead",
			in:        "# widget\n\nSpans two\nsource lines.\n",
			wantTitle: "widget",
			wantLead:  "Spans two source lines.",
		},
		{
			name:      "prose before title ignored",
			in:        "badge line\n\n# Title\n\nLead paragraph.\n",
			wantTitle: "Title",
			wantLead:  "Lead paragraph.",
		},
		{
			name:      "inline markup flattened",
			in:        "# My *fancy* tool\n\nUses `code` inline.\n",
			wantTitle: "My fancy tool",
			wantLead:  "Uses code inline.",
		},
		{
			name:      "no h1",
			in:        "## section\n\nbody\n",
			wantTitle: "",
			wantLead:  "",
		},
		{
			name:      "empty",
			in:        "",
			wantTitle: "",
			wantLead:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			title, lead := scaffold.ReadmeTitleAndLead([]byte(tt.in))
			require.Equal(t, tt.wantTitle, title)
			require.Equal(t, tt.wantLead, lead)
		})
	}
}

func TestBootstrap_UpdateAdoptsModuleAndDescription(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)
	rt := sb.Runtime()

	root := filepath.Join(wd, "widget")
	require.NoError(t, rt.Mkdir(root, 0o755, true))
	require.NoError(t, rt.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module github.com/acme/widget\n"), 0o644))
	require.NoError(t, rt.WriteFile(filepath.Join(root, "README.md"),
		[]byte("# widget\n\nAdopted lead.\n"), 0o644))

	opts := runOptions("widget")
	opts.Update = true
	require.NoError(t, s.Bootstrap(context.Background(), opts))

	require.Equal(t, "github.com/acme/widget", opts.Module)
	require.Equal(t, "Adopted lead.", opts.Description)
}

func TestBootstrap_UpdateFlagValuesBeatAdoptedOnes(t *testing.T) {
	t.Parallel()
	sb, wd := workSandbox(t)
	s := newScaffold(t, sb)
	rt := sb.Runtime()

	root := filepath.Join(wd, "widget")
	require.NoError(t, rt.Mkdir(root, 0o755, true))
	require.NoError(t, rt.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module github.com/acme/widget\n"), 0o644))

	opts := runOptions("widget")
	opts.Update = true
	opts.Module = "corp.example.org/widget"
	opts.Description = "Flag description."
	require.NoError(t, s.Bootstrap(context.Background(), opts))

	require.Equal(t, "corp.example.org/widget", opts.Module)
	require.Equal(t, "Flag description.", opts.Description)
}
