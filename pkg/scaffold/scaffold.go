package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/mkproj/mkproj/pkg/internal"
)

// Scaffold generates Go project skeletons. It owns no per-project state; one
// service can run any number of projects against its runtime.
type Scaffold struct {
	// Runtime carries process-level dependencies.
	Runtime *toolkit.Runtime

	// ConfigPath overrides the user config location when non-empty.
	ConfigPath string

	// Extensions are the installed extensions, in flag registration order.
	// ProjectOptions carry the active subset for a single run.
	Extensions []Extension

	// Clock stamps config writes; tests pin it.
	Clock internal.Clock
}

type Options struct {
	Runtime    *toolkit.Runtime
	ConfigPath string
	Extensions []Extension
	Clock      internal.Clock
}

func New(opts Options) (*Scaffold, error) {
	rt := opts.Runtime
	if rt == nil {
		var err error
		rt, err = toolkit.NewRuntime()
		if err != nil {
			return nil, fmt.Errorf("unable to create runtime: %w", err)
		}
	}
	if err := rt.Validate(); err != nil {
		return nil, fmt.Errorf("invalid runtime: %w", err)
	}
	exts := opts.Extensions
	if exts == nil {
		exts = BuiltinExtensions()
	}
	clk := opts.Clock
	if clk == nil {
		clk = internal.RealClock{}
	}
	return &Scaffold{
		Runtime:    rt,
		ConfigPath: opts.ConfigPath,
		Extensions: exts,
		Clock:      clk,
	}, nil
}

// projectRoot resolves the absolute directory a project named name lives in,
// relative to the runtime working directory.
func (s *Scaffold) projectRoot(name string) (string, error) {
	name = strings.TrimSpace(name)
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	wd, err := s.Runtime.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to determine working directory: %w", err)
	}
	return filepath.Join(wd, name), nil
}
