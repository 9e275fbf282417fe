package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptsync/internal/api"
	"promptsync/internal/config"
	"promptsync/internal/log"
	"promptsync/internal/syncer"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update local instruction files from the remote repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd.Context())
	},
}

func runSync(ctx context.Context) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.PromptsDir, 0755); err != nil {
		return fmt.Errorf("create prompts directory: %w", err)
	}

	log.Info("sync").
		Str("dir", cfg.PromptsDir).
		Str("repo", cfg.RepoOwner+"/"+cfg.RepoName).
		Bool("dry_run", cfg.DryRun).
		Msg("Starting sync")

	client := api.NewClient(api.DefaultBaseURL, cfg.RepoOwner, cfg.RepoName, cfg.RepoDir, cfg.Token, cfg.RequestTimeout)
	remote, err := client.ListInstructionFiles(ctx, cfg.Suffix)
	if err != nil {
		return fmt.Errorf("list remote files: %w", err)
	}

	local, err := syncer.ListLocal(cfg.PromptsDir, cfg.Suffix)
	if err != nil {
		return fmt.Errorf("list local files: %w", err)
	}

	remoteNames := make([]string, len(remote))
	for i, file := range remote {
		remoteNames[i] = file.Name
	}
	plan := syncer.BuildPlan(local, remoteNames)

	log.Info("sync").
		Int("remote", len(remote)).
		Int("local", len(local)).
		Int("update", len(plan.Update)).
		Int("preserve", len(plan.Preserve)).
		Msg("Sync plan computed")

	result := syncer.New(cfg).Run(ctx, plan, remote)

	if cfg.UpdateSettings && !cfg.DryRun {
		if err := patchSettings(cfg); err != nil {
			return err
		}
	}

	log.Info("sync").
		Int("updated", result.Updated).
		Int("failed", result.Failed).
		Int("preserved", result.Preserved).
		Msg("Sync finished")

	return nil
}
