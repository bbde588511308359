package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/headnum/internal/config"
	"github.com/jackzampolin/headnum/internal/numeral"
)

var (
	initForce bool

	levelStyle     string
	levelFormat    string
	levelSeparator string
	levelUnsetSep  bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit numbering settings",
	Long: `View and edit numbering settings.

Every change is saved immediately. The settings in effect before the change
are kept as previous.yaml next to the settings file, for "remove
--with-previous".

Examples:
  headnum config init                  # Write the default settings file
  headnum config show                  # Print the effective settings
  headnum config set depth 3           # Number H1-H3 only
  headnum config level 2 --style a --format "({})"`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile != "" {
			return writeDefaultSettings(cmd, cfgFile, fileExists(cfgFile), func() error {
				if err := os.MkdirAll(filepath.Dir(cfgFile), 0o755); err != nil {
					return fmt.Errorf("failed to create settings directory: %w", err)
				}
				return nil
			})
		}
		h, err := getHome()
		if err != nil {
			return err
		}
		return writeDefaultSettings(cmd, h.ConfigPath(), h.ConfigExists(), h.EnsureExists)
	},
}

func writeDefaultSettings(cmd *cobra.Command, path string, exists bool, ensureDir func() error) error {
	if exists && !initForce {
		return fmt.Errorf("settings file %s already exists (use --force to overwrite)", path)
	}
	if err := ensureDir(); err != nil {
		return err
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	if !printer.Structured() {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	}
	return printer.Print(map[string]string{"path": path})
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Long: `Print the effective settings: the settings file merged with defaults
and HEADNUM_* environment overrides.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cm, err := loadManager()
		if err != nil {
			return err
		}
		return printer.Print(cm.Get())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a top-level setting and save it.

Keys:
  start_level            first heading level to number (1-8)
  depth                  number of levels to number (1-8)
  prepend_parent_number  include parent numbers, "1.2" instead of "2"
  remove_existing        strip old numbering before generating
  auto_generate          let "headnum watch" renumber on save
  debounce               quiet period before auto-generation, e.g. 500ms`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return updateSettings(cmd, func(s *config.Settings) error {
			return applySetting(s, args[0], args[1])
		})
	},
}

var configLevelCmd = &cobra.Command{
	Use:   "level HEADING_LEVEL",
	Short: "Change the numbering of one heading level",
	Long: `Change the style, display format or separator of one heading level.
HEADING_LEVEL is the heading level (1 for "#", 2 for "##", ...) and must be
within the numbered range.

Examples:
  headnum config level 1 --style 一 --format "第{}章" --separator ""
  headnum config level 2 --style i --format "({})"
  headnum config level 3 --unset-separator`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid heading level %q", args[0])
		}
		flags := cmd.Flags()
		return updateSettings(cmd, func(s *config.Settings) error {
			if !s.InRange(level) {
				return fmt.Errorf("%w: heading level %d is outside the numbered range %d-%d",
					config.ErrInvalidSettings, level, s.StartLevel, s.EndLevel())
			}
			idx := level - s.StartLevel
			lc := s.Level(idx)
			if flags.Changed("style") {
				st, err := numeral.ParseStyle(levelStyle)
				if err != nil {
					return err
				}
				lc.Style = st
			}
			if flags.Changed("format") {
				lc.DisplayFormat = levelFormat
			}
			switch {
			case levelUnsetSep:
				lc.Separator = nil
			case flags.Changed("separator"):
				lc.Separator = config.Sep(levelSeparator)
			}
			s.SetLevel(idx, lc)
			return nil
		})
	},
}

var configStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List numeral styles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		type styleInfo struct {
			Code  string `json:"code" yaml:"code"`
			Name  string `json:"name" yaml:"name"`
			Label string `json:"label" yaml:"label"`
		}
		var out []styleInfo
		for _, st := range numeral.Styles() {
			out = append(out, styleInfo{Code: string(st), Name: st.Name(), Label: st.Label()})
		}
		return printer.Print(out)
	},
}

// updateSettings loads the persisted settings, applies fn, validates and
// saves the result. Environment overrides are not persisted.
func updateSettings(cmd *cobra.Command, fn func(*config.Settings) error) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}
	s, err := store.Load(cmd.Context())
	if err != nil {
		return err
	}
	if s == nil {
		s = config.DefaultSettings()
	}

	if err := fn(s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if err := store.Save(cmd.Context(), s.Normalize()); err != nil {
		return err
	}
	logger.Info("settings saved", "path", store.Path())
	return printer.Print(s)
}

// applySetting parses value for a top-level key.
func applySetting(s *config.Settings, key, value string) error {
	key = strings.ReplaceAll(strings.ToLower(key), "-", "_")
	switch key {
	case "start_level", "depth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", config.ErrInvalidSettings, key)
		}
		if key == "depth" {
			s.SetDepth(n)
		} else {
			s.StartLevel = n
		}
	case "prepend_parent_number", "remove_existing", "auto_generate":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", config.ErrInvalidSettings, key)
		}
		switch key {
		case "prepend_parent_number":
			s.PrependParentNumber = b
		case "remove_existing":
			s.RemoveExisting = b
		default:
			s.AutoGenerate = b
		}
	case "debounce":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: debounce: %w", config.ErrInvalidSettings, err)
		}
		s.Debounce = d
	case "levels":
		return errors.New(`use "headnum config level" to change levels`)
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing settings file")

	configLevelCmd.Flags().StringVar(&levelStyle, "style", "", "Numeral style code or name (see \"headnum config styles\")")
	configLevelCmd.Flags().StringVar(&levelFormat, "format", "", "Display format; {} is replaced by the numeral")
	configLevelCmd.Flags().StringVar(&levelSeparator, "separator", "", "Text between this level and the next")
	configLevelCmd.Flags().BoolVar(&levelUnsetSep, "unset-separator", false, "Clear the separator")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configLevelCmd)
	configCmd.AddCommand(configStylesCmd)
	rootCmd.AddCommand(configCmd)
}
