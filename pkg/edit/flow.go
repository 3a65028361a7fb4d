package edit

import (
	"context"
	"fmt"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Header is the fixed banner written at the top of every generated options
// file. Every line is a comment, so an untouched file parses back into an
// empty argument list.
const Header = `# mkproj options file
#
# Each block below shows one command line option. Active lines start at
# column one; everything after a '#' is ignored, and blank lines only
# separate blocks. Remove the leading '#' from an option to turn it on
# and adjust its value. Values follow shell quoting rules.
#
# Save this file and close the editor to run mkproj again with exactly
# the options listed below.`

const (
	tempFilePrefix = "mkproj-"
	tempFileSuffix = ".args.sh"
)

// ExpandFunc resolves the raw invocation into the fully defaulted option
// values the renderer works from.
type ExpandFunc func(ctx context.Context) (Values, error)

// EditFunc opens path in the user's editor and blocks until the editor
// exits. toolkit.Edit satisfies it.
type EditFunc func(ctx context.Context, rt *toolkit.Runtime, path string) error

// InvokeFunc hands the parsed argument list back to the main CLI entry
// point.
type InvokeFunc func(ctx context.Context, args []string) error

// Flow is the interactive round trip: render every option into a temp file,
// let the user edit it, then re-invoke the CLI with whatever survived.
type Flow struct {
	// Runtime provides the filesystem the temp file lives on.
	Runtime *toolkit.Runtime

	// Descriptors is the ordered option list to render.
	Descriptors []Descriptor

	// Suppressions controls which options are hidden or forced commented.
	Suppressions Suppressions

	// Header overrides the default banner when non-empty.
	Header string

	// Expand resolves the current option values before rendering.
	Expand ExpandFunc

	// Edit opens the options file; defaults to toolkit.Edit.
	Edit EditFunc

	// Invoke receives the parsed argument list.
	Invoke InvokeFunc
}

// Run executes the round trip. The steps are strictly sequential and every
// failure is fatal: render, persist, edit, parse, re-invoke. The temp file is
// removed on every exit path once it has been created.
func (f *Flow) Run(ctx context.Context) error {
	if f.Runtime == nil {
		return fmt.Errorf("runtime is required")
	}
	if f.Expand == nil {
		return fmt.Errorf("expand collaborator is required")
	}
	if f.Invoke == nil {
		return fmt.Errorf("invoke collaborator is required")
	}
	editFn := f.Edit
	if editFn == nil {
		editFn = toolkit.Edit
	}
	header := f.Header
	if header == "" {
		header = Header
	}

	vals, err := f.Expand(ctx)
	if err != nil {
		return fmt.Errorf("unable to resolve options: %w", err)
	}
	document := RenderDocument(f.Descriptors, vals, f.Suppressions)
	content := header + "\n\n" + document

	path, err := newArgsTempFilePath(f.Runtime, tempFilePrefix, tempFileSuffix)
	if err != nil {
		return fmt.Errorf("unable to create temp file path: %w", err)
	}
	if err := f.Runtime.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("unable to write options file: %w", err)
	}
	defer func() {
		_ = f.Runtime.Remove(path, false)
	}()

	if err := editFn(ctx, f.Runtime, path); err != nil {
		return fmt.Errorf("unable to edit options file: %w", err)
	}

	raw, err := f.Runtime.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read edited options file: %w", err)
	}
	args, err := SplitArgs(string(raw))
	if err != nil {
		return fmt.Errorf("unable to parse edited options file: %w", err)
	}
	return f.Invoke(ctx, args)
}
