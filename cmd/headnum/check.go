package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/batch"
)

// errStale is returned by check when a document needs regenerating.
var errStale = errors.New("heading numbers are out of date")

type checkReport struct {
	Path  string `json:"path" yaml:"path"`
	Stale bool   `json:"stale" yaml:"stale"`
	// Lines lists the 1-based lines whose heading would change.
	Lines []int `json:"lines,omitempty" yaml:"lines,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check that heading numbers are up to date",
	Long: `Report documents whose heading numbers differ from what generate would
produce. Exits non-zero when any document is stale, for use in CI.

Example:
  headnum check docs/*.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine()
		if err != nil {
			return err
		}

		pool := batch.New(batch.Config{Name: "check", Logger: logger, Workers: jobs},
			func(ctx context.Context, path string) (checkReport, error) {
				data, err := os.ReadFile(path)
				if err != nil {
					return checkReport{}, fmt.Errorf("failed to read %s: %w", path, err)
				}
				text := string(data)
				res := eng.Generate(text)

				r := checkReport{Path: path, Stale: res.Text != text}
				if r.Stale {
					r.Lines = changedLines(text, res.Text)
				}
				return r, nil
			})

		reports := make([]checkReport, 0, len(args))
		stale := 0
		for _, r := range pool.Run(cmd.Context(), args) {
			if r.Err != nil {
				return r.Err
			}
			if r.Value.Stale {
				stale++
			}
			reports = append(reports, r.Value)
		}

		if err := printer.Print(reports); err != nil {
			return err
		}
		if stale > 0 {
			return fmt.Errorf("%d of %d files: %w", stale, len(args), errStale)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
