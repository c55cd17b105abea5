package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/handlesort/internal/errors"
)

var (
	rulesPath string
	rulesJSON bool
)

func init() {
	rulesCmd.Flags().StringVar(&rulesPath, "rules", "",
		"TOML file overriding the inference rule tables")
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective inference rule table",
	Long: `Print the rule table that inference would run with, after applying
any rules file from the config or the --rules flag.

Handy for checking what a rules override file actually changes.`,
	Example: `  # The built-in defaults
  handlesort rules

  # After applying an override file
  handlesort rules --rules my-rules.toml`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

// effectiveRules is the serialized form of the rule table.
type effectiveRules struct {
	CameraPrefixes   []string `json:"camera_prefixes" yaml:"camera_prefixes"`
	MinLen           int      `json:"min_len" yaml:"min_len"`
	MaxLen           int      `json:"max_len" yaml:"max_len"`
	FallbackMinLen   int      `json:"fallback_min_len" yaml:"fallback_min_len"`
	FallbackMaxLen   int      `json:"fallback_max_len" yaml:"fallback_max_len"`
	HexIDMinLen      int      `json:"hex_id_min_len" yaml:"hex_id_min_len"`
	DigitRatio       int      `json:"digit_ratio" yaml:"digit_ratio"`
	DigitNoiseMinLen int      `json:"digit_noise_min_len" yaml:"digit_noise_min_len"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	return runRulesWithWriter(cmd, os.Stdout)
}

// runRulesWithWriter allows injecting a writer for testing.
func runRulesWithWriter(cmd *cobra.Command, w io.Writer) error {
	cfg := currentConfig()

	path := cfg.RulesFile
	if rulesPath != "" {
		path = rulesPath
	}
	rules, err := loadRules(path)
	if err != nil {
		return err
	}

	out := effectiveRules{
		CameraPrefixes:   rules.CameraPrefixes,
		MinLen:           rules.MinLen,
		MaxLen:           rules.MaxLen,
		FallbackMinLen:   rules.FallbackMinLen,
		FallbackMaxLen:   rules.FallbackMaxLen,
		HexIDMinLen:      rules.HexIDMinLen,
		DigitRatio:       rules.DigitRatio,
		DigitNoiseMinLen: rules.DigitNoiseMinLen,
	}

	if rulesJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "marshaling rules")
	}
	_, err = w.Write(data)
	return err
}
