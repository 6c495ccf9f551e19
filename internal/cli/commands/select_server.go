package commands

import (
	"fmt"

	"github.com/sevenplus-app/sevenplus-cli/internal/cli/config"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/serverselect"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/userconfig"
	"github.com/spf13/cobra"
)

// NewSelectServerCmd creates the select-server command
func NewSelectServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select-server [alias-or-url]",
		Short: "Choose the default server for subsequent commands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alias := ""
			if len(args) > 0 {
				alias = args[0]
			}
			return runSelectServer(alias)
		},
	}

	return cmd
}

func runSelectServer(aliasOrURL string) error {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\nRun 'sevenplus init' to create a configuration file", err)
	}

	var server *config.Server
	if aliasOrURL != "" {
		server, err = serverselect.GetServerByURLOrAlias(cfg, aliasOrURL)
	} else {
		server, err = serverselect.PromptServerSelection(cfg)
	}
	if err != nil {
		return err
	}

	if err := userconfig.SetSelectedServer(server.URL); err != nil {
		return fmt.Errorf("failed to save server selection: %w", err)
	}

	fmt.Printf("✓ Default server set to %s (%s)\n", server.Alias, server.URL)
	return nil
}
