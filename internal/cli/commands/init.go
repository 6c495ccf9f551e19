package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sevenplus-app/sevenplus-cli/internal/cli/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sevenplus.json configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(serverURL)
		},
	}

	cmd.Flags().StringVar(&serverURL, "url", "", "Server URL (defaults to the production API)")

	return cmd
}

func runInit(serverURL string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists in this directory", config.ConfigFileName)
	}

	cfg := config.DefaultConfig()
	if serverURL != "" {
		cfg.Servers[0].URL = serverURL
	}

	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("✓ Created %s\n\n", config.ConfigFileName)
	fmt.Println("Next steps:")
	fmt.Println("  1. Review the server URL in the config file")
	fmt.Println("  2. Run 'sevenplus login' to authenticate")
	return nil
}
