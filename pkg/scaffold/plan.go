package scaffold

import (
	"context"
	"fmt"
	"path"
)

// Plan renders the full project tree for opts without touching the
// filesystem. Extensions run last, in activation order, so later ones see
// earlier mutations. Plan expects bootstrapped options; it fails when the
// package identifier is still unresolved.
func (s *Scaffold) Plan(ctx context.Context, opts *ProjectOptions) (*Tree, error) {
	if opts.Package == "" {
		return nil, NewInvalidNameError(opts.Name)
	}

	license, err := licenseText(opts)
	if err != nil {
		return nil, err
	}

	base := map[string]string{
		"README.md":  "readme.md.tmpl",
		".gitignore": "gitignore.tmpl",
		"go.mod":     "gomod.tmpl",
		"Makefile":   "makefile.tmpl",
		path.Join("cmd", opts.Package, "main.go"): "main.go.tmpl",
		"internal/app/app.go":                     "app.go.tmpl",
		"internal/app/app_test.go":                "app_test.go.tmpl",
	}

	tree := NewTree()
	data := newTemplateData(opts)
	for p, tmpl := range base {
		content, err := renderTemplate(tmpl, data)
		if err != nil {
			return nil, err
		}
		tree.Put(p, content)
	}
	tree.Put("LICENSE", license)

	for _, ext := range opts.Extensions {
		if err := ext.Apply(ctx, opts, tree); err != nil {
			return nil, fmt.Errorf("unable to apply extension %s: %w", ext.Name(), err)
		}
	}
	return tree, nil
}
