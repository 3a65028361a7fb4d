package scaffold

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mkproj/mkproj/pkg/log"
)

// Action names what Run did, or would do when pretending, with a planned
// file.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionSkip      Action = "skip"
)

// Operation records the outcome for a single planned path, relative to the
// project root.
type Operation struct {
	Path   string
	Action Action
}

// Report summarizes a scaffold run.
type Report struct {
	// Root is the absolute project directory.
	Root string

	// Pretend is true when no files were written.
	Pretend bool

	Operations []Operation
}

func (r *Report) String() string {
	var b strings.Builder
	for _, op := range r.Operations {
		fmt.Fprintf(&b, "%-9s %s\n", op.Action, op.Path)
	}
	return b.String()
}

// Run bootstraps opts, plans the project tree, and materializes it under the
// project root. Existing directories are rejected unless Force or Update is
// set. With Update, files already on disk are left alone so local edits
// survive; Force overwrites them. With Pretend, Run reports what it would do
// without writing anything.
func (s *Scaffold) Run(ctx context.Context, opts *ProjectOptions) (*Report, error) {
	if err := s.Bootstrap(ctx, opts); err != nil {
		return nil, err
	}
	if opts.Name == "" {
		return nil, NewInvalidNameError(opts.Name)
	}

	root, err := s.projectRoot(opts.Name)
	if err != nil {
		return nil, err
	}
	if _, err := s.Runtime.Stat(root, false); err == nil {
		if !opts.Force && !opts.Update {
			return nil, NewDirectoryExistsError(root)
		}
	}

	tree, err := s.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}

	lg := log.FromContext(ctx)
	report := &Report{Root: root, Pretend: opts.Pretend}
	for _, p := range tree.Paths() {
		spec, _ := tree.Get(p)
		target := filepath.Join(root, filepath.FromSlash(p))

		action := ActionCreate
		if _, err := s.Runtime.Stat(target, false); err == nil {
			action = ActionSkip
			if opts.Force {
				action = ActionOverwrite
			}
		}

		if action != ActionSkip && !opts.Pretend {
			if err := s.Runtime.Mkdir(filepath.Dir(target), 0o755, true); err != nil {
				return nil, fmt.Errorf("unable to create directory for %s: %w", p, err)
			}
			if err := s.Runtime.WriteFile(target, spec.Content, spec.Mode); err != nil {
				return nil, fmt.Errorf("unable to write %s: %w", p, err)
			}
		}

		lg.Debug("scaffold file",
			"path", target,
			"action", string(action),
			"pretend", opts.Pretend,
		)
		report.Operations = append(report.Operations, Operation{Path: p, Action: action})
	}
	return report, nil
}
