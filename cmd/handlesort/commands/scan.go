package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/handle"
	"github.com/thoreinstein/handlesort/internal/organize"
	"github.com/thoreinstein/handlesort/internal/paths"
	"github.com/thoreinstein/handlesort/internal/scan"
)

var (
	scanExts        []string
	scanRulesPath   string
	scanStrictStart bool
	scanNoTrailing  bool
	scanJSON        bool
	scanShowFiles   bool
)

func init() {
	scanCmd.Flags().StringSliceVar(&scanExts, "ext", nil,
		"file extensions to consider (default: jpg,jpeg,png,webp,heic)")
	scanCmd.Flags().StringVar(&scanRulesPath, "rules", "",
		"TOML file overriding the inference rule tables")
	scanCmd.Flags().BoolVar(&scanStrictStart, "strict-start", false,
		"only accept handles at the start of the filename")
	scanCmd.Flags().BoolVar(&scanNoTrailing, "no-trailing", false,
		"disable the trailing-token fallback")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output as JSON")
	scanCmd.Flags().BoolVar(&scanShowFiles, "files", false,
		"list the files of each group")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <folder>",
	Short: "Report handle groups without moving anything",
	Long: `Scan a folder and report the handle groups that would be formed,
without moving any files.

This is the read-only counterpart to organize: the same inference
pipeline runs, but the result is a report instead of a move plan.`,
	Example: `  # Show what organize would group
  handlesort scan ~/Downloads/dump

  # Include the files of each group
  handlesort scan ~/Downloads/dump --files

  # Machine-readable output
  handlesort scan ~/Downloads/dump --json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	return runScanWithWriter(cmd, os.Stdout, args[0])
}

// runScanWithWriter allows injecting a writer for testing.
func runScanWithWriter(cmd *cobra.Command, w io.Writer, folder string) error {
	cfg := currentConfig()

	root, err := paths.Resolve(folder)
	if err != nil {
		return errors.NewUserError(err, "Check the folder path")
	}
	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		return errors.NewUserError(errors.Wrapf(errors.ErrFolderNotFound, "%s", root),
			"Check the folder path")
	}

	exts := cfg.Extensions
	if len(scanExts) > 0 {
		exts = scanExts
	}

	rulesPath := cfg.RulesFile
	if scanRulesPath != "" {
		rulesPath = scanRulesPath
	}
	rules, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	opts := handle.Options{
		StrictStart:   cfg.StrictStart || scanStrictStart,
		AllowTrailing: cfg.AllowTrailing && !scanNoTrailing,
	}

	files, err := scan.Files(root, exts)
	if err != nil {
		return errors.NewSystemError(err, "Check folder permissions")
	}

	inferrer := handle.NewInferrer(rules, opts)
	grouping := organize.Group(files, inferrer.Infer)

	if scanJSON {
		return outputScanJSON(w, grouping)
	}
	return outputScanTable(w, grouping, scanShowFiles)
}

type scanJSONOutput struct {
	Groups    []scanGroupJSON `json:"groups"`
	Ungrouped []string        `json:"ungrouped"`
}

type scanGroupJSON struct {
	Handle string   `json:"handle"`
	Count  int      `json:"count"`
	Files  []string `json:"files"`
}

func outputScanJSON(w io.Writer, g *organize.Grouping) error {
	output := scanJSONOutput{
		Groups:    make([]scanGroupJSON, 0, len(g.Handles)),
		Ungrouped: make([]string, 0, len(g.Ungrouped)),
	}
	for _, h := range g.Handles {
		files := g.Files(h)
		names := make([]string, len(files))
		for i, f := range files {
			names[i] = f.Name
		}
		output.Groups = append(output.Groups, scanGroupJSON{
			Handle: h,
			Count:  len(files),
			Files:  names,
		})
	}
	for _, f := range g.Ungrouped {
		output.Ungrouped = append(output.Ungrouped, f.Name)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func outputScanTable(w io.Writer, g *organize.Grouping, showFiles bool) error {
	if len(g.Handles) == 0 {
		fmt.Fprintln(w, "No handle groups found.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "HANDLE\tFILES")
		for _, h := range g.Handles {
			fmt.Fprintf(tw, "%s\t%d\n", h, len(g.Files(h)))
			if showFiles {
				for _, f := range g.Files(h) {
					fmt.Fprintf(tw, "  %s\t\n", f.Name)
				}
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%d ungrouped file(s)\n", len(g.Ungrouped))
	return nil
}
