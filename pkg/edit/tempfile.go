package edit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// argsDir picks the directory the generated options file lives in. Jailed
// runtimes get a cache directory under the user's home so an external editor
// can reach the file through the jail; everywhere else the runtime's temp
// directory wins, with os.TempDir as the final fallback.
func argsDir(rt *toolkit.Runtime) string {
	if strings.TrimSpace(rt.GetJail()) != "" {
		if home, err := rt.GetHome(); err == nil && strings.TrimSpace(home) != "" {
			return filepath.Join(home, ".cache", "mkproj", "tmp")
		}
		return "/tmp"
	}
	if dir := strings.TrimSpace(rt.GetTempDir()); dir != "" {
		return dir
	}
	return os.TempDir()
}

// newArgsTempFilePath allocates a fresh, collision-free path for the
// generated options file under argsDir, creating the directory if needed.
func newArgsTempFilePath(rt *toolkit.Runtime, prefix string, suffix string) (string, error) {
	dir := toolkit.ExpandEnv(rt, argsDir(rt))
	if p, err := toolkit.ExpandPath(rt, dir); err == nil {
		dir = p
	}
	if err := rt.Mkdir(dir, 0o755, true); err != nil {
		return "", err
	}

	for i := 0; i < 64; i++ {
		path := filepath.Join(dir,
			fmt.Sprintf("%s%d-%02d%s", prefix, time.Now().UnixNano(), i, suffix))
		_, err := rt.Stat(path, false)
		switch {
		case err == nil:
			continue
		case os.IsNotExist(err):
			return path, nil
		default:
			return "", err
		}
	}
	return "", fmt.Errorf("unable to allocate temp file path")
}
