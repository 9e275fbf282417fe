package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Defaults match the upstream instruction collection and the editor's
// expectations; all of them can be overridden per run.
const (
	DefaultRepoOwner   = "github"
	DefaultRepoName    = "awesome-copilot"
	DefaultRepoDir     = "instructions"
	DefaultSuffix      = ".instructions.md"
	DefaultSettingsKey = "chat.instructionsFilesLocations"
	DefaultWorkers     = 4
	DefaultTimeout     = 30 * time.Second
)

// profileDir is the editor profile subtree the prompts folder lives in.
const profileDir = "Code - Insiders"

// Config holds the runtime configuration
type Config struct {
	// PromptsDir is the local directory holding instruction files
	PromptsDir string

	// SettingsPath is the editor settings JSON file; empty disables patching
	SettingsPath string

	// SettingsKey is the settings key holding the instruction file list
	SettingsKey string

	// RepoOwner, RepoName and RepoDir locate the remote instruction listing
	RepoOwner string
	RepoName  string
	RepoDir   string

	// Suffix filters both remote and local file names
	Suffix string

	// Token is an optional GitHub token used to lift API rate limits
	Token string

	// RequestTimeout is the fixed per-request ceiling for all HTTP calls
	RequestTimeout time.Duration

	// WorkerCount is the number of concurrent download workers
	WorkerCount int

	// DryRun computes and logs the plan without writing anything
	DryRun bool

	// UpdateSettings rewrites the settings file list after a sync
	UpdateSettings bool
}

// SetDefaults registers the configuration defaults on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("repo-owner", DefaultRepoOwner)
	v.SetDefault("repo-name", DefaultRepoName)
	v.SetDefault("repo-dir", DefaultRepoDir)
	v.SetDefault("suffix", DefaultSuffix)
	v.SetDefault("settings-key", DefaultSettingsKey)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("timeout", DefaultTimeout)
}

// Load builds the runtime configuration from a viper instance.
// An unset prompts directory falls back to the platform default.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		PromptsDir:     v.GetString("dir"),
		SettingsPath:   v.GetString("settings"),
		SettingsKey:    v.GetString("settings-key"),
		RepoOwner:      v.GetString("repo-owner"),
		RepoName:       v.GetString("repo-name"),
		RepoDir:        v.GetString("repo-dir"),
		Suffix:         v.GetString("suffix"),
		Token:          v.GetString("token"),
		RequestTimeout: v.GetDuration("timeout"),
		WorkerCount:    v.GetInt("workers"),
		DryRun:         v.GetBool("dry-run"),
		UpdateSettings: v.GetBool("update-settings"),
	}

	if cfg.PromptsDir == "" {
		dir, err := DefaultPromptsDir()
		if err != nil {
			return nil, err
		}
		cfg.PromptsDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.PromptsDir == "" {
		return fmt.Errorf("prompts directory is required")
	}
	if c.Suffix == "" {
		return fmt.Errorf("file suffix must not be empty")
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", c.WorkerCount)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.RepoOwner == "" || c.RepoName == "" || c.RepoDir == "" {
		return fmt.Errorf("remote repository owner, name and directory are required")
	}
	return nil
}

// DefaultPromptsDir returns the editor's prompts directory for this platform.
// On Windows this requires APPDATA to be set; elsewhere XDG_CONFIG_HOME is
// used with a ~/.config fallback.
func DefaultPromptsDir() (string, error) {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			return "", fmt.Errorf("APPDATA environment variable is not set")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, profileDir, "User", "prompts"), nil
}

// DefaultSettingsPath returns the settings.json path next to the prompts
// directory, or an empty string if the profile location cannot be resolved.
func DefaultSettingsPath() string {
	promptsDir, err := DefaultPromptsDir()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(promptsDir), "settings.json")
}
