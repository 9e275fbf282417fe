package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptsync/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "promptsync",
	Short: "Keep local editor instruction files in sync with a remote collection",
	Long: `promptsync updates the instruction files in your editor profile from
the copies hosted in a remote GitHub repository. Only files that already
exist locally are refreshed; local-only files are left alone and nothing
new is ever created.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Running without a subcommand performs a sync.
		return runSync(cmd.Context())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("dir", "", "local instructions directory (default: editor profile prompts folder)")
	flags.String("settings", "", "editor settings.json path (default: next to the prompts folder)")
	flags.String("settings-key", config.DefaultSettingsKey, "settings key holding the instruction file list")
	flags.String("suffix", config.DefaultSuffix, "file name suffix to synchronize")
	flags.String("repo-owner", config.DefaultRepoOwner, "remote repository owner")
	flags.String("repo-name", config.DefaultRepoName, "remote repository name")
	flags.String("repo-dir", config.DefaultRepoDir, "directory inside the remote repository")
	flags.String("token", "", "GitHub token for authenticated API requests")
	flags.Duration("timeout", config.DefaultTimeout, "per-request timeout")
	flags.Int("workers", config.DefaultWorkers, "number of concurrent download workers")
	flags.Bool("dry-run", false, "compute and log the plan without writing anything")
	flags.Bool("update-settings", false, "rewrite the settings file list after syncing")

	viper.SetEnvPrefix("promptsync")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	cobra.CheckErr(viper.BindPFlags(flags))

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(settingsCmd)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
