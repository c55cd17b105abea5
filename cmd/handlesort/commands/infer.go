package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/handlesort/internal/handle"
	"github.com/thoreinstein/handlesort/internal/scan"
)

var (
	inferRulesPath   string
	inferStrictStart bool
	inferNoTrailing  bool
	inferJSON        bool
)

func init() {
	inferCmd.Flags().StringVar(&inferRulesPath, "rules", "",
		"TOML file overriding the inference rule tables")
	inferCmd.Flags().BoolVar(&inferStrictStart, "strict-start", false,
		"only accept handles at the start of the filename")
	inferCmd.Flags().BoolVar(&inferNoTrailing, "no-trailing", false,
		"disable the trailing-token fallback")
	inferCmd.Flags().BoolVar(&inferJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inferCmd)
}

var inferCmd = &cobra.Command{
	Use:   "infer <name>...",
	Short: "Show the handle inferred from filenames",
	Long: `Run the inference pipeline on one or more filenames and print the
result for each. Extensions are stripped before inference, so full
filenames and bare stems both work.

Useful for checking why a file did or did not end up in a group.`,
	Example: `  handlesort infer "johnsmith_20230815_123456789.jpg"

  handlesort infer "IMG_2048" "@cool.guy99 (1)"

  handlesort infer --strict-start "photo by @someone_12345"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfer,
}

func runInfer(cmd *cobra.Command, args []string) error {
	return runInferWithWriter(cmd, os.Stdout, args)
}

type inferResultJSON struct {
	Name   string `json:"name"`
	Handle string `json:"handle,omitempty"`
	Found  bool   `json:"found"`
}

// runInferWithWriter allows injecting a writer for testing.
func runInferWithWriter(cmd *cobra.Command, w io.Writer, names []string) error {
	cfg := currentConfig()

	rulesPath := cfg.RulesFile
	if inferRulesPath != "" {
		rulesPath = inferRulesPath
	}
	rules, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	opts := handle.Options{
		StrictStart:   cfg.StrictStart || inferStrictStart,
		AllowTrailing: cfg.AllowTrailing && !inferNoTrailing,
	}
	inferrer := handle.NewInferrer(rules, opts)

	if inferJSON {
		results := make([]inferResultJSON, 0, len(names))
		for _, name := range names {
			h, ok := inferrer.Infer(scan.Stem(name))
			results = append(results, inferResultJSON{Name: name, Handle: h, Found: ok})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, name := range names {
		h, ok := inferrer.Infer(scan.Stem(name))
		if ok {
			fmt.Fprintf(w, "%s: %s\n", name, h)
		} else {
			fmt.Fprintf(w, "%s: (no handle)\n", name)
		}
	}
	return nil
}
