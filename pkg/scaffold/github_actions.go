package scaffold

import "context"

// GitHubActions adds a CI workflow that builds and tests the generated
// project on every push and pull request.
type GitHubActions struct{}

func (e *GitHubActions) Name() string { return "github-actions" }
func (e *GitHubActions) Flag() string { return "--github-actions" }
func (e *GitHubActions) Help() string { return "generate a GitHub Actions CI workflow" }

func (e *GitHubActions) Apply(ctx context.Context, opts *ProjectOptions, tree *Tree) error {
	content, err := renderTemplate("github_ci.yaml.tmpl", newTemplateData(opts))
	if err != nil {
		return err
	}
	tree.Put(".github/workflows/ci.yml", content)
	return nil
}
