package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/numbering"
)

type levelPreview struct {
	Level     int      `json:"level" yaml:"level"`
	Style     string   `json:"style" yaml:"style"`
	Format    string   `json:"display_format" yaml:"display_format"`
	Separator string   `json:"separator" yaml:"separator"`
	Examples  []string `json:"examples" yaml:"examples"`
}

type previewView []levelPreview

func (v previewView) Text() string {
	var b strings.Builder
	for _, p := range v {
		fmt.Fprintf(&b, "H%d  %-14s %s\n", p.Level, p.Style, strings.Join(p.Examples, "  "))
	}
	return b.String()
}

// buildPreview shows the numbering each configured level would produce for
// the first three headings.
func buildPreview(s config.Settings) previewView {
	var view previewView
	for level := s.StartLevel; level <= s.EndLevel(); level++ {
		lc := s.Level(level - s.StartLevel)
		sep, _ := lc.Sep()
		view = append(view, levelPreview{
			Level:     level,
			Style:     lc.Style.Name(),
			Format:    lc.Format(),
			Separator: sep,
			Examples:  numbering.Preview(level, s),
		})
	}
	return view
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the numbering each level produces",
	Long: `Show, for each numbered heading level, the prefix the first three
headings at that level would receive.

Example:
  headnum preview -o text`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return printer.Print(buildPreview(s))
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
