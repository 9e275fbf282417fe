package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptsync/internal/config"
	"promptsync/internal/log"
	"promptsync/internal/settings"
	"promptsync/internal/syncer"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Rewrite the settings file list from the local directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return patchSettings(cfg)
	},
}

// patchSettings rewrites the configured settings key with the sorted list
// of instruction files currently present in the prompts directory.
func patchSettings(cfg *config.Config) error {
	path := cfg.SettingsPath
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	if path == "" {
		return fmt.Errorf("no settings path configured and no default available")
	}

	names, err := syncer.ListLocal(cfg.PromptsDir, cfg.Suffix)
	if err != nil {
		return fmt.Errorf("list local files: %w", err)
	}
	sort.Strings(names)

	doc, err := settings.Load(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	doc.SetFileList(cfg.SettingsKey, names)

	if err := settings.Save(path, doc); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	log.Info("settings").
		Str("path", path).
		Str("key", cfg.SettingsKey).
		Int("files", len(names)).
		Msg("Settings file list updated")

	return nil
}
