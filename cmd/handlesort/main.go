// Package main is the entry point for the handlesort CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/handlesort/cmd/handlesort/commands"
	"github.com/thoreinstein/handlesort/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(errors.ExitUser)
	}
}
