package cli

import (
	"context"

	"github.com/mkproj/mkproj/pkg/edit"
	"github.com/mkproj/mkproj/pkg/scaffold"
	"github.com/spf13/cobra"
)

// editExtension is the CLI-only extension behind --edit. It never shapes the
// planned tree; RunE intercepts it and reroutes into the edit round trip. It
// is not part of the scaffold registry, so naming "edit" in the user config
// has no effect.
type editExtension struct{}

func (editExtension) Name() string { return "edit" }
func (editExtension) Flag() string { return "--edit" }
func (editExtension) Help() string {
	return "edit the effective options in your editor, then run with the result"
}

func (editExtension) Apply(context.Context, *scaffold.ProjectOptions, *scaffold.Tree) error {
	return nil
}

// EditSuppressions keeps --edit itself out of the rendered options file.
func (editExtension) EditSuppressions() (ignore []string, comment []string) {
	return []string{"--edit"}, nil
}

// installedExtensions returns every extension the root command registers a
// flag for: the CLI-only edit extension first, then the scaffold built-ins.
func installedExtensions() []scaffold.Extension {
	return append([]scaffold.Extension{editExtension{}}, scaffold.BuiltinExtensions()...)
}

// runEditFlow runs the --edit round trip: expand the current invocation into
// fully defaulted values, render them into a temp options file, open the
// editor, parse what survived, and invoke the CLI again with those arguments.
func runEditFlow(cmd *cobra.Command, deps *Deps, opts *scaffold.ProjectOptions, installed []scaffold.Extension) error {
	contributors := make([]any, 0, len(installed))
	for _, ext := range installed {
		contributors = append(contributors, ext)
	}

	flow := &edit.Flow{
		Runtime:      deps.Runtime,
		Descriptors:  optionDescriptors(cmd, installed),
		Suppressions: edit.NewSuppressions(contributors...),
		Expand: func(ctx context.Context) (edit.Values, error) {
			o := *opts
			o.Extensions = append([]scaffold.Extension(nil), opts.Extensions...)
			if err := deps.Scaffold.Bootstrap(ctx, &o); err != nil {
				return nil, err
			}
			return flowValues(&o, deps), nil
		},
		Edit: deps.Editor,
		Invoke: func(ctx context.Context, args []string) error {
			return reinvoke(ctx, deps, args)
		},
	}
	return flow.Run(cmd.Context())
}
