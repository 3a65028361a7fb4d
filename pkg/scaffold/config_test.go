package scaffold_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mkproj/mkproj/pkg/internal"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/stretchr/testify/require"
)

func TestUserConfig_WriteReadRoundTrip(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	rt := sb.Runtime()

	clock := internal.NewFixedClock(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC))
	uc := &scaffold.UserConfig{
		Defaults: scaffold.ConfigDefaults{
			Author:       "Ada Lovelace",
			Email:        "ada@example.org",
			License:      "MIT",
			ModulePrefix: "code.example.org",
		},
		Extensions: []string{"pre-commit"},
	}

	path := "/home/testuser/.config/mkproj/config.yaml"
	require.NoError(t, uc.Write(rt, path, clock))

	got, err := scaffold.ReadUserConfigFrom(rt, path)
	require.NoError(t, err)
	require.Equal(t, uc.Defaults, got.Defaults)
	require.Equal(t, []string{"pre-commit"}, got.Extensions)
	require.Equal(t, "2026-03-04T05:06:07Z", got.Updated)
}

func TestUserConfig_WriteRequiresPath(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)

	uc := &scaffold.UserConfig{}
	require.Error(t, uc.Write(sb.Runtime(), "", nil))
}

func TestUserConfigPath_DefaultLivesUnderConfigDir(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	s := newScaffold(t, sb)

	p, err := s.UserConfigPath()
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(p, filepath.FromSlash("mkproj/config.yaml")), "got %q", p)
}

func TestUserConfigPath_ExplicitOverrideWins(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)

	s, err := scaffold.New(scaffold.Options{
		Runtime:    sb.Runtime(),
		ConfigPath: "/home/testuser/custom.yaml",
	})
	require.NoError(t, err)

	p, err := s.UserConfigPath()
	require.NoError(t, err)
	require.Equal(t, "/home/testuser/custom.yaml", p)
}

func TestReadUserConfig_MissingDefaultIsEmpty(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	s := newScaffold(t, sb)

	cfg, err := s.ReadUserConfig()
	require.NoError(t, err)
	require.Equal(t, &scaffold.UserConfig{}, cfg)
}

func TestReadUserConfig_MissingExplicitPathFails(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)

	s, err := scaffold.New(scaffold.Options{
		Runtime:    sb.Runtime(),
		ConfigPath: "/home/testuser/nope.yaml",
	})
	require.NoError(t, err)

	_, err = s.ReadUserConfig()
	require.Error(t, err)
}

func TestReadUserConfigFrom_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	sb := NewSandbox(t)
	rt := sb.Runtime()

	path := "/home/testuser/bad.yaml"
	require.NoError(t, rt.WriteFile(path, []byte("defaults: [nope\n"), 0o644))

	_, err := scaffold.ReadUserConfigFrom(rt, path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to parse user config")
}
