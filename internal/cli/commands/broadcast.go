package commands

import (
	"fmt"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewBroadcastCmd creates the broadcast command
func NewBroadcastCmd() *cobra.Command {
	var serverAlias, title, body string

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Send a push notification to all registered devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(broadcastInput{Title: title, Body: body}); err != nil {
				return err
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.ComunicadosPath)
			if err != nil {
				return err
			}

			sent, err := a.Client.Broadcast(cmd.Context(), title, body)
			if err != nil {
				return fmt.Errorf("failed to send broadcast: %w", err)
			}

			fmt.Printf("✓ Notification sent to %d device(s)\n", sent)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&body, "body", "", "Notification body")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

type broadcastInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}
