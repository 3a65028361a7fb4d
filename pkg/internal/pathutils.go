package internal

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// ConfigDir returns the configuration directory for the given appName,
// resolved through the runtime so jailed test environments see their own
// config tree.
//
// Behavior:
//   - Windows: %APPDATA%\<appName>; an error when APPDATA is unset.
//   - Unix-like systems: $XDG_CONFIG_HOME/<appName> when set, otherwise
//     <home>/.config/<appName>.
//
// The returned path is a suggested location and is not created here; callers
// create the directory when they need it to exist.
func ConfigDir(rt *toolkit.Runtime, appName string) (string, error) {
	if runtime.GOOS == "windows" {
		if appData := rt.Get("APPDATA"); appData != "" {
			return filepath.Join(appData, appName), nil
		}
		return "", fmt.Errorf("APPDATA environment variable not set")
	}
	if xdg := rt.Get("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := rt.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

