package scaffold

import (
	"io/fs"
	"sort"
)

// FileSpec is one planned file.
type FileSpec struct {
	Content []byte
	Mode    fs.FileMode
}

// Tree is the set of files a scaffold run will materialize, keyed by
// slash-separated path relative to the project root. Extensions mutate the
// tree between planning and writing.
type Tree struct {
	files map[string]FileSpec
}

func NewTree() *Tree {
	return &Tree{files: map[string]FileSpec{}}
}

// Put records content at path with the default file mode, replacing any
// earlier entry.
func (t *Tree) Put(path string, content []byte) {
	t.PutFile(path, FileSpec{Content: content, Mode: 0o644})
}

// PutFile records an entry with an explicit mode.
func (t *Tree) PutFile(path string, spec FileSpec) {
	t.files[path] = spec
}

// Remove drops path from the plan. Removing an absent path is a no-op.
func (t *Tree) Remove(path string) {
	delete(t.files, path)
}

// Get returns the entry at path.
func (t *Tree) Get(path string) (FileSpec, bool) {
	spec, ok := t.files[path]
	return spec, ok
}

// Len reports the number of planned files.
func (t *Tree) Len() int { return len(t.files) }

// Paths returns every planned path in sorted order so runs and reports are
// deterministic.
func (t *Tree) Paths() []string {
	out := make([]string, 0, len(t.files))
	for p := range t.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
