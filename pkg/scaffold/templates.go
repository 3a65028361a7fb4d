package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

//go:embed all:templates
var templateFS embed.FS

var templates = template.Must(template.New("scaffold").
	Funcs(sprig.TxtFuncMap()).
	ParseFS(templateFS, "templates/*.tmpl", "templates/licenses/*.tmpl"))

// templateData is what every bundled template sees. ProjectOptions fields are
// promoted, so templates reference {{ .Name }}, {{ .Module }} and friends
// directly.
type templateData struct {
	*ProjectOptions
	Year      int
	GoVersion string
}

func newTemplateData(opts *ProjectOptions) templateData {
	return templateData{
		ProjectOptions: opts,
		Year:           time.Now().Year(),
		GoVersion:      GeneratedGoVersion,
	}
}

func renderTemplate(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("unable to render template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
