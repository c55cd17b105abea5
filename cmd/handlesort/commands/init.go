package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/handlesort/internal/config"
	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/paths"
	"github.com/thoreinstein/handlesort/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize handlesort configuration",
	Long: `Create the handlesort configuration file with default values.

Writes ~/.config/handlesort/config.yaml. Existing configuration is left
untouched unless --force is given.`,
	Example: `  # Create the default config
  handlesort init

  # Overwrite an existing config
  handlesort init --force

  See Also: handlesort rules`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := filepath.Join(paths.ConfigDir(), "config.yaml")

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Printf("Configuration already exists at %s\n", configPath)
		fmt.Println("Use --force to overwrite")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, config.Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Printf("Created %s\n", configPath)
	return nil
}
