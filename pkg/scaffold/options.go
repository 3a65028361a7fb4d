package scaffold

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// ProjectOptions carries every setting a scaffold run depends on. Flags fill
// some of it; Bootstrap fills the rest from user config, git, and computed
// defaults.
type ProjectOptions struct {
	// Name is the project directory name. Required to run; may stay empty
	// while options are only being rendered for editing.
	Name string

	Package     string
	Module      string
	Description string
	URL         string
	License     string
	Author      string
	Email       string

	// ModulePrefix hosts the module path when no URL is given. It has no
	// flag; the user config supplies it.
	ModulePrefix string

	Force    bool
	Update   bool
	Pretend  bool
	NoConfig bool

	Verbose     bool
	VeryVerbose bool

	// Extensions holds the active extensions for this run.
	Extensions []Extension
}

// Bootstrap fills every empty option, in order: user config (unless
// NoConfig), adopted values from an existing project (update mode), git
// config, then computed defaults. Explicit values always win. The license is
// normalized to its canonical identifier at the end.
func (s *Scaffold) Bootstrap(ctx context.Context, opts *ProjectOptions) error {
	if opts == nil {
		return fmt.Errorf("options are required")
	}
	opts.Name = strings.TrimSpace(opts.Name)

	if !opts.NoConfig {
		cfg, err := s.ReadUserConfig()
		if err != nil {
			return fmt.Errorf("unable to load user config: %w", err)
		}
		if opts.Author == "" {
			opts.Author = cfg.Defaults.Author
		}
		if opts.Email == "" {
			opts.Email = cfg.Defaults.Email
		}
		if opts.License == "" {
			opts.License = cfg.Defaults.License
		}
		if opts.ModulePrefix == "" {
			opts.ModulePrefix = cfg.Defaults.ModulePrefix
		}
		s.activateConfigured(cfg, opts)
	}

	if opts.Update {
		if err := s.adoptExisting(ctx, opts); err != nil {
			return err
		}
	}

	if opts.Author == "" {
		if v, err := GitConfigValue(ctx, "user.name"); err == nil {
			opts.Author = v
		}
	}
	if opts.Email == "" {
		if v, err := GitConfigValue(ctx, "user.email"); err == nil {
			opts.Email = v
		}
	}

	user, _ := s.Runtime.GetUser()
	if opts.Author == "" {
		opts.Author = user
	}
	if opts.Email == "" && user != "" {
		if host, err := os.Hostname(); err == nil && host != "" {
			opts.Email = user + "@" + host
		}
	}

	if opts.Package == "" && opts.Name != "" {
		pkg, err := PackageFromName(opts.Name)
		if err != nil {
			return err
		}
		opts.Package = pkg
	}
	if opts.Module == "" {
		if m := moduleFromURL(opts.URL); m != "" {
			opts.Module = m
		} else if opts.Package != "" {
			prefix := opts.ModulePrefix
			if prefix == "" {
				prefix = DefaultModulePrefix
			}
			opts.Module = prefix + "/" + opts.Package
		}
	}
	if opts.Description == "" {
		opts.Description = DefaultDescription
	}

	license, err := NormalizeLicense(opts.License)
	if err != nil {
		return err
	}
	opts.License = license
	return nil
}

// activateConfigured appends installed extensions the config names, keeping
// already-active ones and preserving registration order for the additions.
func (s *Scaffold) activateConfigured(cfg *UserConfig, opts *ProjectOptions) {
	if len(cfg.Extensions) == 0 {
		return
	}
	active := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		active[e.Name()] = true
	}
	wanted := make(map[string]bool, len(cfg.Extensions))
	for _, n := range cfg.Extensions {
		wanted[strings.TrimSpace(n)] = true
	}
	for _, e := range s.Extensions {
		if wanted[e.Name()] && !active[e.Name()] {
			opts.Extensions = append(opts.Extensions, e)
		}
	}
}

// PackageFromName derives a Go package identifier from a project name:
// lower-cased, separators folded to underscores, every other invalid rune
// dropped. The result must start with a letter.
func PackageFromName(name string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == '-' || r == ' ' || r == '.':
			b.WriteRune('_')
		}
	}
	pkg := b.String()
	if pkg == "" || pkg[0] < 'a' || pkg[0] > 'z' {
		return "", NewInvalidNameError(name)
	}
	return pkg, nil
}

// moduleFromURL turns a repository URL into a module path:
// https://github.com/acme/widget.git becomes github.com/acme/widget. Input
// without a scheme is accepted. An empty result means no usable URL.
func moduleFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	p := strings.TrimSuffix(strings.Trim(u.EscapedPath(), "/"), ".git")
	if p == "" {
		return u.Host
	}
	return u.Host + "/" + p
}
