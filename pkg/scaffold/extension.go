package scaffold

import "context"

// Extension customizes the planned project tree. Extensions surface as one
// boolean CLI flag each and can also be activated by name from the user
// config. An extension that needs to influence the interactive options file
// additionally implements the edit package's Suppressor interface; none of
// the built-ins do.
type Extension interface {
	// Name is the stable identifier used in config files and to derive the
	// CLI flag ("pre-commit").
	Name() string

	// Flag is the long CLI spelling that activates the extension
	// ("--pre-commit").
	Flag() string

	// Help is the one-line usage string for the flag.
	Help() string

	// Apply mutates the planned tree for an active extension.
	Apply(ctx context.Context, opts *ProjectOptions, tree *Tree) error
}

// BuiltinExtensions returns the extensions compiled into mkproj, in flag
// registration order.
func BuiltinExtensions() []Extension {
	return []Extension{
		&GitHubActions{},
		&NoSkeleton{},
		&PreCommit{},
	}
}
