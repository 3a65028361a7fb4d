package scaffold

import (
	"context"
	"path"
)

// NoSkeleton drops the example program from the plan, leaving only the
// project metadata files.
type NoSkeleton struct{}

func (e *NoSkeleton) Name() string { return "no-skeleton" }
func (e *NoSkeleton) Flag() string { return "--no-skeleton" }
func (e *NoSkeleton) Help() string { return "omit the example cmd and internal/app skeleton" }

func (e *NoSkeleton) Apply(ctx context.Context, opts *ProjectOptions, tree *Tree) error {
	tree.Remove(path.Join("cmd", opts.Package, "main.go"))
	tree.Remove("internal/app/app.go")
	tree.Remove("internal/app/app_test.go")
	return nil
}
