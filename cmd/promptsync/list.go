package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"promptsync/internal/api"
	"promptsync/internal/config"
	"promptsync/internal/syncer"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the sync plan without downloading anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		client := api.NewClient(api.DefaultBaseURL, cfg.RepoOwner, cfg.RepoName, cfg.RepoDir, cfg.Token, cfg.RequestTimeout)
		remote, err := client.ListInstructionFiles(cmd.Context(), cfg.Suffix)
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

		cmd.Printf("Remote files:  %d\n", len(remote))
		cmd.Printf("Local files:   %d\n", len(local))
		cmd.Printf("To update:     %d\n", len(plan.Update))
		cmd.Printf("To preserve:   %d\n", len(plan.Preserve))

		for _, name := range plan.Update {
			cmd.Printf("  update  %s\n", name)
		}
		for _, name := range plan.Preserve {
			cmd.Printf("  keep    %s\n", name)
		}

		return nil
	},
}
