package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/batch"
	"github.com/jackzampolin/headnum/internal/editor"
)

var (
	generateStdout bool
	generateDryRun bool

	removeStdout       bool
	removeWithPrevious bool

	jobs int
)

// fileReport is the per-file result of generate and remove.
type fileReport struct {
	Path     string `json:"path" yaml:"path"`
	Changed  bool   `json:"changed" yaml:"changed"`
	Headings int    `json:"headings" yaml:"headings"`
	Written  bool   `json:"written" yaml:"written"`
}

// command applies one editor command to a document.
type command func(ed editor.Editor) (editor.Outcome, error)

var generateCmd = &cobra.Command{
	Use:   "generate [FILE...]",
	Short: "Generate heading numbers",
	Long: `Number every heading within the configured level range.

Existing numbering is removed first when remove_existing is on, so running
generate again after editing renumbers the document. With no file, or "-",
the document is read from stdin and written to stdout.

Examples:
  headnum generate README.md           # Rewrite the file in place
  headnum generate --dry-run docs/*.md # Report what would change
  cat notes.md | headnum generate      # Filter stdin to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}
		run := func(ed editor.Editor) (editor.Outcome, error) {
			return editor.Generate(ed, eng)
		}
		return runOnFiles(cmd, args, run, generateStdout, generateDryRun)
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [FILE...]",
	Short: "Remove heading numbers",
	Long: `Strip heading numbers from every heading.

Numbering is recognized by the current settings. With --with-previous, the
settings in effect before the last "headnum config" change are tried as
well, so numbering generated under an older style can still be removed.

Examples:
  headnum remove README.md
  headnum remove --with-previous README.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		if removeWithPrevious {
			store, err := settingsStore()
			if err != nil {
				return err
			}
			prev, err := store.Previous(cmd.Context())
			if err != nil {
				return err
			}
			if prev != nil {
				eng = eng.WithLegacy(*prev)
			} else {
				logger.Info("no previous settings saved")
			}
		}

		run := func(ed editor.Editor) (editor.Outcome, error) {
			return editor.Remove(ed, eng)
		}
		return runOnFiles(cmd, args, run, removeStdout, false)
	},
}

// fileResult carries a report and, for --stdout, the resulting text.
type fileResult struct {
	report fileReport
	text   string
}

// runOnFiles applies run to each file on a worker pool. toStdout prints the
// results in argument order instead of writing the files; dryRun only
// reports.
func runOnFiles(cmd *cobra.Command, args []string, run command, toStdout, dryRun bool) error {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return runOnStdin(cmd, run)
	}

	pool := batch.New(batch.Config{Name: cmd.Name(), Logger: logger, Workers: jobs},
		func(ctx context.Context, path string) (fileResult, error) {
			var ed editor.Editor
			if toStdout || dryRun {
				data, err := os.ReadFile(path)
				if err != nil {
					return fileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
				}
				ed = editor.NewBuffer(string(data))
			} else {
				f, err := editor.OpenFile(path, logger)
				if err != nil {
					return fileResult{}, err
				}
				ed = f
			}

			out, err := run(ed)
			if err != nil {
				return fileResult{}, fmt.Errorf("%s: %w", path, err)
			}
			logger.Debug("processed document", "path", path, "changed", out.Changed, "headings", out.Headings)

			return fileResult{
				report: fileReport{
					Path:     path,
					Changed:  out.Changed,
					Headings: out.Headings,
					Written:  out.Changed && !dryRun && !toStdout,
				},
				text: ed.Text(),
			}, nil
		})

	results := pool.Run(cmd.Context(), args)
	reports := make([]fileReport, 0, len(results))
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		if toStdout {
			if _, err := io.WriteString(cmd.OutOrStdout(), r.Value.text); err != nil {
				return err
			}
			continue
		}
		reports = append(reports, r.Value.report)
	}

	if !toStdout {
		if err := printer.Print(reports); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func runOnStdin(cmd *cobra.Command, run command) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	ed := editor.NewBuffer(string(data))
	if _, err := run(ed); err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), ed.Text())
	return err
}

func init() {
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print the result instead of writing the file")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Report changes without writing")
	removeCmd.Flags().BoolVar(&removeStdout, "stdout", false, "Print the result instead of writing the file")
	for _, c := range []*cobra.Command{generateCmd, removeCmd, checkCmd} {
		c.Flags().IntVarP(&jobs, "jobs", "j", 0, "Documents processed in parallel (default: number of CPUs)")
	}
	removeCmd.Flags().BoolVar(&removeWithPrevious, "with-previous", false, "Also recognize numbering from the previous settings")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(removeCmd)
}
