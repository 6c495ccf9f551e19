package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewAtestadosCmd creates the atestados command group
func NewAtestadosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atestados",
		Short: "Send and review medical certificates",
	}

	cmd.AddCommand(newAtestadosSendCmd())
	cmd.AddCommand(newAtestadosLsCmd())
	cmd.AddCommand(newAtestadosSetStatusCmd())
	cmd.AddCommand(newAtestadosRmCmd())

	return cmd
}

type atestadoInput struct {
	Nome string `validate:"required"`
	Foto string `validate:"required"`
}

func newAtestadosSendCmd() *cobra.Command {
	var serverAlias, nome, foto string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a medical certificate photo",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkInput(atestadoInput{Nome: nome, Foto: foto}); err != nil {
				return err
			}
			if _, err := os.Stat(foto); err != nil {
				return fmt.Errorf("photo file not found: %s", foto)
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.AtestadoPath)
			if err != nil {
				return err
			}

			if err := a.Client.SubmitAtestado(cmd.Context(), nome, foto); err != nil {
				return fmt.Errorf("failed to submit certificate: %w", err)
			}

			fmt.Println("✓ Certificate submitted. HR will review it shortly.")
			return nil
		},
	}

	cmd.Flags().StringVar(&nome, "nome", "", "Full name as it appears on the certificate")
	cmd.Flags().StringVar(&foto, "foto", "", "Path to the certificate photo")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newAtestadosLsCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List submitted certificates (HR only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openScreen(cmd.Context(), serverAlias, access.VerAtestadosPath)
			if err != nil {
				return err
			}

			atestados, err := a.Client.ListAtestados(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list certificates: %w", err)
			}

			if len(atestados) == 0 {
				fmt.Println("No certificates submitted.")
				return nil
			}

			fmt.Printf("%-5s %-30s %-20s %s\n", "ID", "NAME", "SENT", "STATUS")
			for _, at := range atestados {
				fmt.Printf("%-5d %-30s %-20s %s\n", at.ID, at.NomeCompleto, at.DataEnvio, at.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

type atestadoStatusInput struct {
	Status string `validate:"required,oneof=Pendente Visto Aprovado Recusado"`
}

func newAtestadosSetStatusCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Update a certificate's review status (HR only)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid certificate id: %s", args[0])
			}
			if err := checkInput(atestadoStatusInput{Status: args[1]}); err != nil {
				return err
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.VerAtestadosPath)
			if err != nil {
				return err
			}

			if err := a.Client.SetAtestadoStatus(cmd.Context(), id, args[1]); err != nil {
				return fmt.Errorf("failed to update status: %w", err)
			}

			fmt.Printf("✓ Certificate %d marked as %s\n", id, args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newAtestadosRmCmd() *cobra.Command {
	var serverAlias string
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a certificate (HR only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid certificate id: %s", args[0])
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.VerAtestadosPath)
			if err != nil {
				return err
			}

			if !force {
				if err := confirm(fmt.Sprintf("Delete certificate %d", id)); err != nil {
					return err
				}
			}

			if err := a.Client.DeleteAtestado(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete certificate: %w", err)
			}

			fmt.Printf("✓ Certificate %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
