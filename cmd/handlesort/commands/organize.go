package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/handlesort/internal/errors"
	"github.com/thoreinstein/handlesort/internal/handle"
	"github.com/thoreinstein/handlesort/internal/logging"
	"github.com/thoreinstein/handlesort/internal/organize"
	"github.com/thoreinstein/handlesort/internal/paths"
	"github.com/thoreinstein/handlesort/internal/scan"
)

var (
	organizeMinCount    int
	organizeSingletons  bool
	organizeDryRun      bool
	organizeExts        []string
	organizeLogPath     string
	organizeRulesPath   string
	organizeStrictStart bool
	organizeNoTrailing  bool
	organizePick        bool
	organizeJSON        bool
)

func init() {
	organizeCmd.Flags().IntVar(&organizeMinCount, "min-count", 3,
		"minimum files per handle before a folder is created")
	organizeCmd.Flags().BoolVar(&organizeSingletons, "include-singletons", false,
		"organize every group, regardless of size")
	organizeCmd.Flags().BoolVarP(&organizeDryRun, "dry-run", "n", false,
		"log planned moves without touching the filesystem")
	organizeCmd.Flags().StringSliceVar(&organizeExts, "ext", nil,
		"file extensions to consider (default: jpg,jpeg,png,webp,heic)")
	organizeCmd.Flags().StringVar(&organizeLogPath, "log", "",
		"write a CSV action log to this path")
	organizeCmd.Flags().StringVar(&organizeRulesPath, "rules", "",
		"TOML file overriding the inference rule tables")
	organizeCmd.Flags().BoolVar(&organizeStrictStart, "strict-start", false,
		"only accept handles at the start of the filename")
	organizeCmd.Flags().BoolVar(&organizeNoTrailing, "no-trailing", false,
		"disable the trailing-token fallback")
	organizeCmd.Flags().BoolVar(&organizePick, "pick", false,
		"interactively pick which groups to organize")
	organizeCmd.Flags().BoolVar(&organizeJSON, "json", false,
		"output the run summary as JSON")
	rootCmd.AddCommand(organizeCmd)
}

var organizeCmd = &cobra.Command{
	Use:   "organize <folder>",
	Short: "Move files into per-handle subfolders",
	Long: `Scan a folder, infer the owner handle of each image filename, and
move files into one subfolder per handle.

Only handles with at least --min-count files get a folder; smaller
groups and files without an inferable handle are left in place. Use
--include-singletons to organize every group.

The folder is scanned flat; existing subfolders are never descended
into, so a second run over an organized folder is a no-op.`,
	Example: `  # Preview without moving anything
  handlesort organize ~/Downloads/dump --dry-run

  # Organize groups of 2 or more, keep an audit log
  handlesort organize ~/Downloads/dump --min-count 2 --log actions.csv

  # Choose groups interactively
  handlesort organize ~/Downloads/dump --pick`,
	Args: cobra.ExactArgs(1),
	RunE: runOrganize,
}

func runOrganize(cmd *cobra.Command, args []string) error {
	return runOrganizeWithWriter(cmd, os.Stdout, args[0])
}

// runOrganizeWithWriter allows injecting a writer for testing.
func runOrganizeWithWriter(cmd *cobra.Command, w io.Writer, folder string) error {
	logger := logging.FromContext(cmd.Context())
	cfg := currentConfig()

	root, err := paths.Resolve(folder)
	if err != nil {
		return errors.NewUserError(err, "Check the folder path")
	}
	if info, statErr := os.Stat(root); statErr != nil || !info.IsDir() {
		return errors.NewUserError(errors.Wrapf(errors.ErrFolderNotFound, "%s", root),
			"Check the folder path")
	}

	minCount := cfg.MinCount
	if cmd.Flags().Changed("min-count") {
		minCount = organizeMinCount
	}
	singletons := cfg.IncludeSingletons || organizeSingletons

	exts := cfg.Extensions
	if len(organizeExts) > 0 {
		exts = organizeExts
	}

	rulesPath := cfg.RulesFile
	if organizeRulesPath != "" {
		rulesPath = organizeRulesPath
	}
	rules, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	opts := handle.Options{
		StrictStart:   cfg.StrictStart || organizeStrictStart,
		AllowTrailing: cfg.AllowTrailing && !organizeNoTrailing,
	}

	files, err := scan.Files(root, exts)
	if err != nil {
		return errors.NewSystemError(err, "Check folder permissions")
	}
	logger.Debug("scanned folder", "root", root, "files", len(files))

	inferrer := handle.NewInferrer(rules, opts)
	grouping := organize.Group(files, inferrer.Infer)
	selected := grouping.Select(minCount, singletons)

	if organizePick {
		selected, err = pickGroups(grouping, selected)
		if err != nil {
			return err
		}
	}

	moves := organize.Plan(root, grouping, selected)

	runner := organize.NewRunner(
		organize.WithDryRun(organizeDryRun),
		organize.WithLogger(logger),
	)
	actions, applyErr := runner.Apply(moves)

	// Write the log even on a partial run so completed moves are recorded.
	if organizeLogPath != "" {
		if err := organize.WriteLog(organizeLogPath, actions); err != nil {
			if applyErr != nil {
				logger.Error("writing action log failed", "error", err)
			} else {
				applyErr = err
			}
		}
	}
	if applyErr != nil {
		return errors.NewSystemError(applyErr, "Check disk space and permissions")
	}

	summary := organize.Summarize(grouping, selected, moves)
	if organizeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	printSummary(w, summary, organizeDryRun)
	return nil
}

func printSummary(w io.Writer, s organize.Summary, dryRun bool) {
	verb := "Moved"
	if dryRun {
		verb = "Would move"
	}
	fmt.Fprintf(w, "Scanned %d files: %d groups, %d selected\n", s.Scanned, s.Groups, s.Selected)
	fmt.Fprintf(w, "%s %d files; %d left ungrouped\n", verb, s.Planned, s.Ungrouped)
}
