// Package paths provides path resolution utilities for the handlesort CLI.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory Specification compliance. On Linux and macOS, paths follow XDG
// conventions (~/.config, ~/.local/share, ~/.cache).
//
//	paths.ConfigDir()      // ~/.config/handlesort/
//	paths.DefaultLogDir()  // ~/.local/share/handlesort/
//
// User-supplied paths go through [Resolve], which handles "~" expansion and
// absolute-path conversion the way shells do.
package paths
