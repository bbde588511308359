package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/output"
	"github.com/jackzampolin/headnum/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string

	printer *output.Printer
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "headnum",
	Short: "Multi-level heading numbers for markdown documents",
	Long: `Headnum inserts and removes multi-level heading numbers such as "1.2.3"
in markdown documents.

Each heading level has its own numeral style (arabic, letters, roman,
chinese, circled), display format and separator. Existing numbering is
recognized and replaced, so generating twice gives the same document.

Settings live in ~/.headnum/settings.yaml; see "headnum config".`,
	Version:      version.GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "settings file (default: ~/.headnum/settings.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "headnum home directory (default: ~/.headnum)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml, json or text",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "warn", "log level: debug, info, warn or error",
	)

	// Set output format and logger before any command runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		printer = output.NewPrinter(cmd.OutOrStdout(), format)

		level, err := parseLogLevel(logLevel)
		if err != nil {
			return err
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	}

	rootCmd.AddCommand(versionCmd)
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", s)
	}
}
