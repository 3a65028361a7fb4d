package edit

// Static suppression base: flags that never make sense in a generated options
// file (ignore) and flags that should stay commented even when currently set
// (comment).
var (
	defaultIgnore  = []string{"--help", "--version"}
	defaultComment = []string{
		"--verbose",
		"--very-verbose",
		"--log-file",
		"--log-level",
		"--log-json",
	}
)

// Suppressions holds the two sets of canonical flag spellings that shape the
// rendered document. It is built once at startup and passed through every
// render call; there is no process-global cache.
type Suppressions struct {
	// Ignore lists flags that are never rendered at all.
	Ignore map[string]bool

	// Comment lists flags that are always rendered commented, even when
	// their current value would otherwise make them active.
	Comment map[string]bool
}

// Suppressor is the optional capability an installed extension implements to
// contribute to the suppression sets. Extensions without the capability
// contribute nothing.
type Suppressor interface {
	EditSuppressions() (ignore []string, comment []string)
}

// NewSuppressions builds the suppression sets from the static base plus the
// contributions of every given extension. Contributors are visited in order;
// anything that does not implement Suppressor is skipped.
func NewSuppressions(contributors ...any) Suppressions {
	s := Suppressions{
		Ignore:  make(map[string]bool, len(defaultIgnore)),
		Comment: make(map[string]bool, len(defaultComment)),
	}
	for _, f := range defaultIgnore {
		s.Ignore[f] = true
	}
	for _, f := range defaultComment {
		s.Comment[f] = true
	}
	for _, c := range contributors {
		sc, ok := c.(Suppressor)
		if !ok {
			continue
		}
		ignore, comment := sc.EditSuppressions()
		for _, f := range ignore {
			s.Ignore[f] = true
		}
		for _, f := range comment {
			s.Comment[f] = true
		}
	}
	return s
}
