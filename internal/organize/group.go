package organize

import "github.com/thoreinstein/handlesort/internal/scan"

// InferFunc maps a filename stem to a grouping handle.
// Returning ok == false marks the file as ungrouped.
type InferFunc func(stem string) (string, bool)

// Grouping is the result of one grouping pass: every scanned file is either
// in exactly one handle group or in the ungrouped list. Files within a
// group keep their scan order; Handles records first-appearance order.
type Grouping struct {
	byHandle map[string][]scan.File

	// Handles lists the grouping keys in order of first appearance.
	Handles []string

	// Ungrouped lists the files for which no handle was inferred.
	Ungrouped []scan.File
}

// Group partitions files by inferred handle.
func Group(files []scan.File, infer InferFunc) *Grouping {
	g := &Grouping{byHandle: make(map[string][]scan.File)}
	for _, f := range files {
		h, ok := infer(f.Stem)
		if !ok {
			g.Ungrouped = append(g.Ungrouped, f)
			continue
		}
		if _, seen := g.byHandle[h]; !seen {
			g.Handles = append(g.Handles, h)
		}
		g.byHandle[h] = append(g.byHandle[h], f)
	}
	return g
}

// Files returns the files grouped under handle, in scan order.
func (g *Grouping) Files(handle string) []scan.File {
	return g.byHandle[handle]
}

// Len returns the number of distinct handle groups.
func (g *Grouping) Len() int {
	return len(g.byHandle)
}

// Select returns the handles whose groups should be organized: those with
// at least minCount files, or every group when includeSingletons is set.
// Order follows first appearance.
func (g *Grouping) Select(minCount int, includeSingletons bool) []string {
	var selected []string
	for _, h := range g.Handles {
		if len(g.byHandle[h]) >= minCount || includeSingletons {
			selected = append(selected, h)
		}
	}
	return selected
}
