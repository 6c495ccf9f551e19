package commands

import (
	"fmt"
	"strconv"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewFormulariosCmd creates the formularios command group
func NewFormulariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formularios",
		Short: "Review customer form submissions",
	}

	cmd.AddCommand(newFormulariosLsCmd())
	cmd.AddCommand(newFormulariosRmCmd())

	return cmd
}

func newFormulariosLsCmd() *cobra.Command {
	var serverAlias string
	var page int
	var full bool

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List form submissions, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openScreen(cmd.Context(), serverAlias, access.FormulariosPath)
			if err != nil {
				return err
			}

			forms, pagination, err := a.Client.ListFormularios(cmd.Context(), page)
			if err != nil {
				return fmt.Errorf("failed to list forms: %w", err)
			}

			if len(forms) == 0 {
				fmt.Println("No form submissions.")
				return nil
			}

			for _, f := range forms {
				fmt.Printf("[%d] %s  CNPJ %s  %s\n", f.ID, f.ResponsavelLegalNome, f.CNPJ, f.Telefone)
				if full {
					fmt.Printf("    Endereço:     %s\n", f.Endereco)
					fmt.Printf("    Horário:      %s\n", f.HorarioFuncionamento)
					fmt.Printf("    Área:         %s m²\n", f.MetrosQuadrados)
					fmt.Printf("    Funcionários: %d\n", f.QuantFuncionarios)
					fmt.Printf("    Resíduos:     %s\n", f.Residuos)
				}
			}

			fmt.Printf("\nPage %d of %d (%d submissions total)\n",
				pagination.CurrentPage, pagination.TotalPages, pagination.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().BoolVar(&full, "full", false, "Show all submitted fields")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func newFormulariosRmCmd() *cobra.Command {
	var serverAlias string
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a form submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid form id: %s", args[0])
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.FormulariosPath)
			if err != nil {
				return err
			}

			if !force {
				if err := confirm(fmt.Sprintf("Delete form %d", id)); err != nil {
					return err
				}
			}

			if err := a.Client.DeleteFormulario(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete form: %w", err)
			}

			fmt.Printf("✓ Form %d deleted\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
