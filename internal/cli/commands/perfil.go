package commands

import (
	"fmt"
	"os"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/session"
	"github.com/spf13/cobra"
)

// NewPerfilCmd creates the perfil command group
func NewPerfilCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfil",
		Short: "Manage your profile",
	}

	cmd.AddCommand(newPerfilSetPhotoCmd())

	return cmd
}

func newPerfilSetPhotoCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "set-photo <file>",
		Short: "Upload a new profile photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fotoPath := args[0]
			if _, err := os.Stat(fotoPath); err != nil {
				return fmt.Errorf("photo file not found: %s", fotoPath)
			}

			a, sess, err := openScreen(cmd.Context(), serverAlias, access.HomePath)
			if err != nil {
				return err
			}

			photoURL, err := a.Client.UploadProfilePhoto(cmd.Context(), sess.Token, fotoPath)
			if err != nil {
				return fmt.Errorf("failed to upload photo: %w", err)
			}

			// Keep the cached profile in sync so other commands show the
			// new photo without another round trip.
			a.Session.UpdateUser(session.UserPatch{ProfilePhotoURL: &photoURL})

			fmt.Println("✓ Profile photo updated")
			fmt.Printf("  %s/%s\n", a.Client.BaseURL(), photoURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
