// Package edit renders the interactive options file used by `mkproj --edit`
// and parses it back into an argument list after the user's editor exits.
//
// The package is deliberately self contained: descriptors come in from the
// CLI layer, resolved values come in from the bootstrap step, and the result
// of a round trip is handed back to the CLI entry point. Nothing in here
// knows how projects are actually generated.
package edit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/mitchellh/go-wordwrap"
)

const (
	// indentLevel is the indentation used for the commented help lines that
	// follow each example.
	indentLevel = 4

	// helpWidth is the column budget for wrapped help text.
	helpWidth = 70

	// extensionsKey is the reserved destination under which Values carries
	// the flags of currently active extensions.
	extensionsKey = "extensions"
)

// Descriptor describes one recognized command line option. Descriptors are
// produced by the CLI layer from its flag metadata and are never mutated
// here.
type Descriptor struct {
	// Spellings lists every registered spelling, shortest first (for
	// example ["-l", "--license"]). A positional argument has none.
	Spellings []string

	// TakesValue reports the option's arity: false for boolean flags.
	TakesValue bool

	// Dest is the key under which the option's current value is stored in
	// Values. Extension flags share the reserved "extensions" destination.
	Dest string

	// Metavar is the placeholder shown for a value option that is rendered
	// commented, for example "LICENSE".
	Metavar string

	// Help is the flag usage text. May be empty.
	Help string
}

// Canonical returns the option's canonical spelling: the longest registered
// one, with later registrations winning ties. A descriptor without spellings
// (a positional) has the empty canonical spelling.
func (d Descriptor) Canonical() string {
	long := ""
	for _, s := range d.Spellings {
		if len(s) >= len(long) {
			long = s
		}
	}
	return long
}

// alternatives returns every spelling except the canonical one, sorted
// shortest first.
func (d Descriptor) alternatives() []string {
	if len(d.Spellings) < 2 {
		return nil
	}
	alts := make([]string, len(d.Spellings))
	copy(alts, d.Spellings)
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) < len(alts[j]) })
	return alts[:len(alts)-1]
}

// Values maps option destinations to their resolved values for the current
// invocation: strings, bools, ints, or string slices. The reserved
// "extensions" key holds a []string with the flags of the active extensions.
type Values map[string]any

// RenderFlag renders the example line for a zero-arity (boolean) option.
//
// The active form " --flag" is produced when the canonical spelling is not in
// the comment set and the destination holds a truthy value (the shared
// "extensions" destination never counts), or when the flag belongs to a
// currently active extension. Everything else renders commented.
func RenderFlag(d Descriptor, vals Values, sup Suppressions) string {
	long := d.Canonical()
	if (!sup.Comment[long] && d.Dest != extensionsKey && truthy(vals[d.Dest])) ||
		hasActiveExtension(d, vals) {
		return " " + long
	}
	return commentLines(long, 0)
}

// RenderValueOption renders the example line for a value-taking option. The
// current value is normalized to a list, each element shell-quoted so the
// line survives re-tokenization. An absent value, a canonical spelling in the
// comment set, or an empty joined value all produce the commented placeholder
// form instead.
func RenderValueOption(d Descriptor, vals Values, sup Suppressions) string {
	long := d.Canonical()
	raw, ok := vals[d.Dest]
	value := strings.TrimSpace(shellquote.Join(normalizeValue(raw)...))
	if !ok || raw == nil || sup.Comment[long] || value == "" {
		return commentLines(strings.TrimSpace(long+" "+d.Metavar), 0)
	}
	return fmt.Sprintf(" %s %s", long, value)
}

// RenderExample renders the example line for d, dispatching on its arity.
func RenderExample(d Descriptor, vals Values, sup Suppressions) string {
	if d.TakesValue {
		return RenderValueOption(d, vals, sup)
	}
	return RenderFlag(d, vals, sup)
}

// RenderWithHelp renders the full block for one option: the example line,
// a commented list of alternative spellings, and the commented, wrapped help
// text. Blank parts are dropped.
func RenderWithHelp(d Descriptor, vals Values, sup Suppressions) string {
	return joinNonEmpty("\n",
		RenderExample(d, vals, sup),
		commentLines(alternativeFlags(d), indentLevel),
		commentLines(wrapHelp(d.Help), indentLevel),
	)
}

// RenderDocument renders every descriptor whose canonical spelling is not in
// the ignore set, in order, separated by two blank lines.
func RenderDocument(ds []Descriptor, vals Values, sup Suppressions) string {
	blocks := make([]string, 0, len(ds))
	for _, d := range ds {
		if sup.Ignore[d.Canonical()] {
			continue
		}
		blocks = append(blocks, RenderWithHelp(d, vals, sup))
	}
	return joinNonEmpty("\n\n\n", blocks...)
}

// alternativeFlags formats the non-canonical spellings of d, or "" when the
// canonical spelling is the only one.
func alternativeFlags(d Descriptor) string {
	alts := d.alternatives()
	if len(alts) == 0 {
		return ""
	}
	return fmt.Sprintf("(or alternatively: %s)", strings.Join(alts, " "))
}

// hasActiveExtension reports whether any spelling of d is the flag of a
// currently active extension.
func hasActiveExtension(d Descriptor, vals Values) bool {
	flags, _ := vals[extensionsKey].([]string)
	if len(flags) == 0 {
		return false
	}
	for _, s := range d.Spellings {
		for _, f := range flags {
			if s == f {
				return true
			}
		}
	}
	return false
}

// truthy reports whether a resolved value should activate a boolean flag.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case []string:
		return len(x) > 0
	case []any:
		return len(x) > 0
	default:
		return true
	}
}

// normalizeValue turns a resolved value into the list of strings that should
// appear after the flag.
func normalizeValue(v any) []string {
	switch x := v.(type) {
	case nil:
		return nil
	case []string:
		return x
	case []any:
		out := make([]string, 0, len(x))
		for _, e := range x {
			out = append(out, fmt.Sprintf("%v", e))
		}
		return out
	case string:
		return []string{x}
	default:
		return []string{fmt.Sprintf("%v", x)}
	}
}

// commentLines prefixes every non-blank line of text with an optionally
// indented "# " marker. Empty input stays empty so callers can drop it.
func commentLines(text string, indent int) string {
	if text == "" {
		return ""
	}
	prefix := strings.Repeat(" ", indent) + "# "
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// wrapHelp collapses whitespace in text and wraps it at the help column
// budget.
func wrapHelp(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if collapsed == "" {
		return ""
	}
	return wordwrap.WrapString(collapsed, helpWidth)
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
