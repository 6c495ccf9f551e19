package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func runLogout(serverAlias string) error {
	server, err := getSelectedServer(serverAlias)
	if err != nil {
		return err
	}

	a, err := newApp(server)
	if err != nil {
		return err
	}

	// Best effort: even if storage cleanup fails the in-memory session is
	// gone and the next restore starts logged out.
	a.Session.SignOut()

	fmt.Printf("Signed out from %s (%s)\n", server.Alias, server.URL)
	return nil
}
