package edit

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// SplitArgs turns the text of an edited options file back into an argument
// list. Each physical line is trimmed; blank lines and lines starting with
// '#' are dropped; the remaining lines are tokenized with shell quoting rules
// and flattened in order.
//
// Malformed quoting is a fatal error. There is no recovery beyond the
// comment and blank line filtering above.
func SplitArgs(text string) ([]string, error) {
	args := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := shellquote.Split(line)
		if err != nil {
			return nil, fmt.Errorf("unable to tokenize line %q: %w", line, err)
		}
		args = append(args, words...)
	}
	return args, nil
}
