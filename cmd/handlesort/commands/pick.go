package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/organize"
)

// pickGroups lets the user choose interactively which of the selected
// groups to organize. Aborting the finder keeps nothing selected.
func pickGroups(g *organize.Grouping, selected []string) ([]string, error) {
	if len(selected) == 0 {
		return nil, nil
	}

	indices, err := fuzzyfinder.FindMulti(
		selected,
		func(i int) string {
			return fmt.Sprintf("%s (%d files)", selected[i], len(g.Files(selected[i])))
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			files := g.Files(selected[i])
			names := make([]string, 0, len(files))
			for _, f := range files {
				names = append(names, filepath.Base(f.Path))
			}
			return fmt.Sprintf("Handle: %s\nFiles: %d\n\n%s",
				selected[i], len(files), strings.Join(names, "\n"))
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	picked := make([]string, 0, len(indices))
	for _, i := range indices {
		picked = append(picked, selected[i])
	}
	return picked, nil
}
