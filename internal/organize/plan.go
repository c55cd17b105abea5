package organize

import "path/filepath"

// Move is one planned file relocation.
type Move struct {
	// Handle is the group the file belongs to.
	Handle string

	// Src is the current path of the file.
	Src string

	// Dst is the planned destination: <root>/<handle>/<filename>. The
	// actual destination may differ if collision avoidance kicks in.
	Dst string
}

// Plan lays out the moves for the selected handles. Destination folders are
// named with the exact handle text; nothing is created here.
func Plan(root string, g *Grouping, selected []string) []Move {
	var moves []Move
	for _, h := range selected {
		destDir := filepath.Join(root, h)
		for _, f := range g.Files(h) {
			moves = append(moves, Move{
				Handle: h,
				Src:    f.Path,
				Dst:    filepath.Join(destDir, f.Name),
			})
		}
	}
	return moves
}

// Summary holds the counts reported at the end of a run.
type Summary struct {
	Scanned   int `json:"scanned"`
	Groups    int `json:"groups"`
	Selected  int `json:"selected"`
	Planned   int `json:"planned"`
	Ungrouped int `json:"ungrouped"`
}

// Summarize builds the run summary for a grouping and its plan.
func Summarize(g *Grouping, selected []string, moves []Move) Summary {
	scanned := len(g.Ungrouped)
	for _, h := range g.Handles {
		scanned += len(g.Files(h))
	}
	return Summary{
		Scanned:   scanned,
		Groups:    g.Len(),
		Selected:  len(selected),
		Planned:   len(moves),
		Ungrouped: len(g.Ungrouped),
	}
}
