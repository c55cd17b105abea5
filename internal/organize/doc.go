// Package organize groups scanned files by inferred handle and moves each
// selected group into a subfolder named after the handle.
//
// The package never decides what a handle is; it receives an inference
// function and treats its output as an opaque grouping key. Destination
// folders carry the exact handle text, including leading dots and
// underscores and original casing, so a leading-dot handle produces a
// folder that is hidden on Unix. Case differences create separate folders.
//
// A single run is: group, select, plan, apply. Apply is the only stage that
// touches the filesystem, and it is skipped entirely in dry-run mode.
package organize
