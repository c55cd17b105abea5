// Package cmd holds the build metadata injected at link time.
package cmd

// Set via -ldflags "-X github.com/thoreinstein/handlesort/cmd.Version=...".
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit SHA the build was made from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)
