package scaffold

const (
	// ConfigAppName is the base directory name used for mkproj configuration.
	// Helpers use this value to construct platform-specific config paths such as:
	//   $XDG_CONFIG_HOME/mkproj (or ~/.config/mkproj) on Unix-like systems
	//   %APPDATA%\mkproj on Windows
	ConfigAppName = "mkproj"

	// UserConfigFilename is the file name of the user-level config inside the
	// config directory.
	UserConfigFilename = "config.yaml"

	// DefaultLicense is used when neither the flags nor the user config pick one.
	DefaultLicense = "MIT"

	// DefaultDescription seeds generated READMEs until the author replaces it.
	DefaultDescription = "Add a short description here!"

	// DefaultModulePrefix hosts the module path when no repository URL is known.
	DefaultModulePrefix = "example.com"

	// GeneratedGoVersion is the go directive written into generated go.mod files.
	GeneratedGoVersion = "1.26.0"
)
