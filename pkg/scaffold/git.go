package scaffold

import (
	"bytes"
	"context"
	"os/exec"
)

// GitConfigValue runs `git config --get key` and returns the trimmed value.
// If git isn't present or the key is unset it returns an error; callers that
// use it for defaults treat any failure as "no value".
func GitConfigValue(ctx context.Context, key string) (string, error) {
	if _, err := exec.LookPath("git"); err != nil {
		return "", err
	}
	cmd := exec.CommandContext(ctx, "git", "config", "--get", key)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(out.Bytes())), nil
}
