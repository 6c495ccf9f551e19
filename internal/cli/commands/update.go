package commands

import (
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/update"
	"github.com/spf13/cobra"
)

// NewUpdateCmd creates the update command
func NewUpdateCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update sevenplus to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return update.SelfUpdate(version)
		},
	}

	return cmd
}
