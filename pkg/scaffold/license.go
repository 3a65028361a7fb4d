package scaffold

import (
	"sort"
	"strings"
)

// licenseTemplates maps canonical license identifiers to bundled templates.
var licenseTemplates = map[string]string{
	"MIT":          "mit.tmpl",
	"Apache-2.0":   "apache-2.0.tmpl",
	"BSD-3-Clause": "bsd-3-clause.tmpl",
	"Unlicense":    "unlicense.tmpl",
}

// licenseAliases folds common spellings onto canonical identifiers. Lookup is
// case-insensitive, so only lower-case keys appear here.
var licenseAliases = map[string]string{
	"mit":          "MIT",
	"apache":       "Apache-2.0",
	"apache2":      "Apache-2.0",
	"apache-2":     "Apache-2.0",
	"apache-2.0":   "Apache-2.0",
	"bsd":          "BSD-3-Clause",
	"bsd3":         "BSD-3-Clause",
	"bsd-3":        "BSD-3-Clause",
	"bsd-3-clause": "BSD-3-Clause",
	"unlicense":    "Unlicense",
	"public":       "Unlicense",
}

// Licenses returns the canonical license identifiers mkproj can generate,
// sorted for stable display.
func Licenses() []string {
	out := make([]string, 0, len(licenseTemplates))
	for id := range licenseTemplates {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// NormalizeLicense resolves user input such as "mit" or "Apache2" to a
// canonical identifier. Unrecognized input yields a typed
// UnknownLicenseError.
func NormalizeLicense(s string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return DefaultLicense, nil
	}
	if id, ok := licenseAliases[key]; ok {
		return id, nil
	}
	return "", NewUnknownLicenseError(s)
}

// licenseText renders the LICENSE body for the canonical identifier carried
// by opts.
func licenseText(opts *ProjectOptions) ([]byte, error) {
	name, ok := licenseTemplates[opts.License]
	if !ok {
		return nil, NewUnknownLicenseError(opts.License)
	}
	return renderTemplate(name, newTemplateData(opts))
}
