package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/client"
	"github.com/spf13/cobra"
)

// NewCopysCmd creates the copys command group
func NewCopysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copys",
		Short: "Manage the marketing copy board",
	}

	cmd.AddCommand(newCopysLsCmd())
	cmd.AddCommand(newCopysSetStatusCmd())
	cmd.AddCommand(newCopysSetRespCmd())
	cmd.AddCommand(newCopysRmCmd())

	return cmd
}

func newCopysLsCmd() *cobra.Command {
	var serverAlias string
	var full bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List copy cards grouped by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openScreen(cmd.Context(), serverAlias, access.CopyHubPath)
			if err != nil {
				return err
			}

			copys, err := a.Client.ListCopys(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list copys: %w", err)
			}

			if len(copys) == 0 {
				fmt.Println("The copy board is empty.")
				return nil
			}

			// Group cards the way the board lays them out
			for _, status := range client.CopyStatuses {
				var group []client.Copy
				for _, cp := range copys {
					if cp.Estado == status {
						group = append(group, cp)
					}
				}
				fmt.Printf("== %s (%d)\n", status, len(group))
				for _, cp := range group {
					fmt.Printf("  [%d] %s", cp.ID, cp.Title)
					if cp.Responsavel != "" {
						fmt.Printf("  (%s)", cp.Responsavel)
					}
					fmt.Println()
					if full {
						printCopyBody(cp)
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show hook, development, CTA and hashtags")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func printCopyBody(cp client.Copy) {
	if cp.Hook != "" {
		fmt.Printf("      Hook: %s\n", cp.Hook)
	}
	if cp.Development != "" {
		fmt.Printf("      Dev:  %s\n", cp.Development)
	}
	if cp.CTA != "" {
		fmt.Printf("      CTA:  %s\n", cp.CTA)
	}
	if cp.Hashtags != "" {
		fmt.Printf("      Tags: %s\n", cp.Hashtags)
	}
}

func newCopysSetStatusCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Move a copy card to another status column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopyUpdate(cmd, serverAlias, args[0], "ESTADO", args[1], client.CopyStatuses)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newCopysSetRespCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "set-resp <id> <name>",
		Short: "Assign a copy card to someone",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopyUpdate(cmd, serverAlias, args[0], "RESPONSAVEL", args[1], client.CopyResponsaveis)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

// runCopyUpdate sends a single-field update for one card. The backend
// expects exactly one of ESTADO or RESPONSAVEL in the request body.
func runCopyUpdate(cmd *cobra.Command, serverAlias, rawID, field, value string, allowed []string) error {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid copy id: %s", rawID)
	}

	valid := false
	for _, v := range allowed {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid value %q, must be one of: %s", value, strings.Join(allowed, ", "))
	}

	a, _, err := openScreen(cmd.Context(), serverAlias, access.CopyHubPath)
	if err != nil {
		return err
	}

	if err := a.Client.UpdateCopyField(cmd.Context(), id, field, value); err != nil {
		return fmt.Errorf("failed to update copy: %w", err)
	}

	fmt.Printf("✓ Copy %d updated\n", id)
	return nil
}

func newCopysRmCmd() *cobra.Command {
	var serverAlias string
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a copy card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid copy id: %s", args[0])
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.CopyHubPath)
			if err != nil {
				return err
			}

			if !force {
				if err := confirm(fmt.Sprintf("Delete copy %d", id)); err != nil {
					return err
				}
			}

			if err := a.Client.DeleteCopy(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete copy: %w", err)
			}

			fmt.Printf("✓ Copy %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
