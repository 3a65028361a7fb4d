package scaffold

import "context"

// PreCommit adds a pre-commit configuration wired for Go projects.
type PreCommit struct{}

func (e *PreCommit) Name() string { return "pre-commit" }
func (e *PreCommit) Flag() string { return "--pre-commit" }
func (e *PreCommit) Help() string { return "generate a .pre-commit-config.yaml" }

func (e *PreCommit) Apply(ctx context.Context, opts *ProjectOptions, tree *Tree) error {
	content, err := renderTemplate("precommit.yaml.tmpl", newTemplateData(opts))
	if err != nil {
		return err
	}
	tree.Put(".pre-commit-config.yaml", content)
	return nil
}
