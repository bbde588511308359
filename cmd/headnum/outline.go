package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/outline"
)

var outlineAsIs bool

type outlineView []*outline.Node

func (v outlineView) Text() string {
	var b strings.Builder
	var walk func(nodes []*outline.Node, depth int)
	walk = func(nodes []*outline.Node, depth int) {
		for _, n := range nodes {
			fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", depth), n.Title)
			walk(n.Children, depth+1)
		}
	}
	walk(v, 0)
	return b.String()
}

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the numbered outline of a document",
	Long: `Print the heading tree of a document as it would look after generate.
The file is not modified.

Examples:
  headnum outline README.md -o text
  headnum outline --as-is README.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		if !outlineAsIs {
			eng, err := loadEngine()
			if err != nil {
				return err
			}
			data = []byte(eng.Generate(string(data)).Text)
		}

		return printer.Print(outlineView(outline.Build(outline.Extract(data))))
	},
}

func init() {
	outlineCmd.Flags().BoolVar(&outlineAsIs, "as-is", false, "Show the headings as they are, without generating")
	rootCmd.AddCommand(outlineCmd)
}
