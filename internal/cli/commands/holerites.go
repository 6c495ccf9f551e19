package commands

import (
	"fmt"
	"strings"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewHoleritesCmd creates the holerites command
func NewHoleritesCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "holerites",
		Short: "List your payslips with download links",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, sess, err := openScreen(cmd.Context(), serverAlias, access.HomePath)
			if err != nil {
				return err
			}

			holerites, err := a.Client.MyHolerites(cmd.Context(), sess.Token)
			if err != nil {
				return fmt.Errorf("failed to fetch payslips: %w", err)
			}

			if len(holerites) == 0 {
				fmt.Println("No payslips available.")
				return nil
			}

			for _, h := range holerites {
				url := h.URLDownload
				if !strings.HasPrefix(url, "http") {
					url = a.Client.BaseURL() + "/" + strings.TrimPrefix(url, "/")
				}
				fmt.Printf("%-15s %s\n", h.MesReferencia, url)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
