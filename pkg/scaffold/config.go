package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/mkproj/mkproj/pkg/internal"
	"gopkg.in/yaml.v3"
)

// UserConfig is the optional user-level mkproj config
// (~/.config/mkproj/config.yaml). Values act as defaults for every run and
// lose to explicit flags.
type UserConfig struct {
	Defaults ConfigDefaults `yaml:"defaults,omitempty"`

	// Extensions lists extension names that are active by default.
	Extensions []string `yaml:"extensions,omitempty"`

	Updated string `yaml:"updated,omitempty"`
}

// ConfigDefaults mirrors the flag values a user most often repeats.
type ConfigDefaults struct {
	Author       string `yaml:"author,omitempty"`
	Email        string `yaml:"email,omitempty"`
	License      string `yaml:"license,omitempty"`
	ModulePrefix string `yaml:"module_prefix,omitempty"`
}

// UserConfigPath resolves where the user config lives for this service.
func (s *Scaffold) UserConfigPath() (string, error) {
	if s.ConfigPath != "" {
		return s.ConfigPath, nil
	}
	dir, err := internal.ConfigDir(s.Runtime, ConfigAppName)
	if err != nil {
		return "", fmt.Errorf("unable to resolve config dir: %w", err)
	}
	return filepath.Join(dir, UserConfigFilename), nil
}

// ReadUserConfig loads the user config through the runtime. A missing file at
// the default location yields an empty config; a missing file at an explicit
// ConfigPath is an error.
func (s *Scaffold) ReadUserConfig() (*UserConfig, error) {
	path, err := s.UserConfigPath()
	if err != nil {
		return nil, err
	}
	uc, err := ReadUserConfigFrom(s.Runtime, path)
	if err != nil && s.ConfigPath == "" && os.IsNotExist(err) {
		return &UserConfig{}, nil
	}
	return uc, err
}

// ReadUserConfigFrom reads and parses a config file at path. The caller
// decides how to treat a missing file.
func ReadUserConfigFrom(rt *toolkit.Runtime, path string) (*UserConfig, error) {
	b, err := rt.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var uc UserConfig
	if err := yaml.Unmarshal(b, &uc); err != nil {
		return nil, fmt.Errorf("unable to parse user config %s: %w", path, err)
	}
	return &uc, nil
}

// Write persists the config atomically, stamping Updated.
func (uc *UserConfig) Write(rt *toolkit.Runtime, path string, clock internal.Clock) error {
	if path == "" {
		return fmt.Errorf("config path required")
	}
	if clock == nil {
		clock = internal.RealClock{}
	}
	uc.Updated = internal.ISO8601(clock)

	b, err := yaml.Marshal(uc)
	if err != nil {
		return fmt.Errorf("unable to marshal user config: %w", err)
	}
	if err := rt.Mkdir(filepath.Dir(path), 0o755, true); err != nil {
		return fmt.Errorf("unable to create config dir: %w", err)
	}
	if err := rt.AtomicWriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("unable to write user config: %w", err)
	}
	return nil
}
