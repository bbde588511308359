package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Renumber headings while a document is edited",
	Long: `Watch a document and regenerate heading numbers after each save that
adds, removes or changes a heading. Bursts of saves are coalesced; the pass
runs once the document has been quiet for the debounce period.

Regeneration only runs while auto_generate is on. Settings are reloaded when
the settings file changes, so it can be switched on without restarting.

Example:
  HEADNUM_AUTO_GENERATE=true headnum watch README.md --log-level info`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cm, err := loadManager()
		if err != nil {
			return err
		}
		if used := cm.FileUsed(); used != "" && fileExists(used) {
			cm.WatchConfig()
			cm.OnChange(func(s *config.Settings) {
				logger.Info("settings reloaded", "auto_generate", s.AutoGenerate, "debounce", s.Debounce)
			})
		}
		if !cm.Settings().AutoGenerate {
			logger.Warn("auto_generate is off; edits are ignored until it is enabled")
		}

		w, err := watch.New(watch.Config{
			Path:     args[0],
			Settings: cm,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		// Blocks until interrupted
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
