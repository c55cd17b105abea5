// Package scan lists the image files of a flat directory.
//
// The scan is deliberately non-recursive: the organizer only ever looks at
// the immediate children of the target folder, in lexicographic order, and
// that order is what downstream grouping preserves.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultExtensions is the stock extension allowlist.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "webp", "heic"}

// ErrNotADirectory indicates the scan target exists but is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// File is one scanned directory entry.
type File struct {
	// Path is the full path to the file.
	Path string

	// Name is the base filename including its extension.
	Name string

	// Stem is the filename without its extension. This is the only part of
	// the file the inference core ever sees.
	Stem string
}

// Stem returns the filename without its extension.
// A name with no extension is returned unchanged.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ExtensionSet normalizes an extension allowlist into a lookup set:
// lowercased, leading dots stripped, empty entries dropped.
func ExtensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			set[e] = true
		}
	}
	return set
}

// Files lists the regular files of root whose extension is in exts,
// sorted lexicographically by name. Subdirectories are not descended into.
func Files(root string, exts []string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(err, "statting scan root")
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrNotADirectory, "%s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, "reading directory")
	}

	allowed := ExtensionSet(exts)

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Skip sockets, pipes and other oddities, but keep symlinked files.
		if entry.Type()&fs.ModeSymlink == 0 && !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
		if !allowed[ext] {
			continue
		}
		files = append(files, File{
			Path: filepath.Join(root, name),
			Name: name,
			Stem: Stem(name),
		})
	}

	return files, nil
}
