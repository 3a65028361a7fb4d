package scaffold

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yuin/goldmark"
	gm_ast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// adoptExisting pulls the module path and README description out of an
// existing project so an update run keeps them unless flags override.
func (s *Scaffold) adoptExisting(ctx context.Context, opts *ProjectOptions) error {
	if opts.Name == "" {
		return NewNotProjectError("")
	}
	root, err := s.projectRoot(opts.Name)
	if err != nil {
		return err
	}

	data, err := s.Runtime.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		if os.IsNotExist(err) {
			return NewNotProjectError(root)
		}
		return fmt.Errorf("unable to read go.mod: %w", err)
	}
	if opts.Module == "" {
		opts.Module = ModulePath(data)
	}

	if readme, err := s.Runtime.ReadFile(filepath.Join(root, "README.md")); err == nil {
		_, lead := ReadmeTitleAndLead(readme)
		if opts.Description == "" && lead != "" {
			opts.Description = lead
		}
	}
	return nil
}

var moduleLineRE = regexp.MustCompile(`(?m)^module\s+(\S+)`)

// ModulePath extracts the module path from go.mod contents, or "" when no
// module directive is present.
func ModulePath(gomod []byte) string {
	m := moduleLineRE.FindSubmatch(gomod)
	if len(m) != 2 {
		return ""
	}
	return string(m[1])
}

// ReadmeTitleAndLead extracts the first H1 title and the first paragraph
// following it from Markdown source.
func ReadmeTitleAndLead(source []byte) (string, string) {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var title, lead string
	_ = gm_ast.Walk(doc, func(n gm_ast.Node, entering bool) (gm_ast.WalkStatus, error) {
		if !entering {
			return gm_ast.WalkContinue, nil
		}
		switch n.Kind() {
		case gm_ast.KindHeading:
			if h, ok := n.(*gm_ast.Heading); ok && h.Level == 1 && title == "" {
				title = inlineText(n, source)
				return gm_ast.WalkSkipChildren, nil
			}
		case gm_ast.KindParagraph:
			if title != "" && lead == "" {
				lead = inlineText(n, source)
				return gm_ast.WalkStop, nil
			}
			return gm_ast.WalkSkipChildren, nil
		}
		return gm_ast.WalkContinue, nil
	})
	return title, lead
}

// inlineText flattens the text content of an inline container, joining soft
// line breaks with single spaces.
func inlineText(n gm_ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gm_ast.Text:
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}
