package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewComunicadosCmd creates the comunicados command group
func NewComunicadosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comunicados",
		Short: "Read and publish company announcements",
	}

	cmd.AddCommand(newComunicadosLsCmd())
	cmd.AddCommand(newComunicadosPostCmd())

	return cmd
}

func newComunicadosLsCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List announcements, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openScreen(cmd.Context(), serverAlias, access.ComunicadosAllPath)
			if err != nil {
				return err
			}

			comunicados, err := a.Client.ListComunicados(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list announcements: %w", err)
			}

			if len(comunicados) == 0 {
				fmt.Println("No announcements yet.")
				return nil
			}

			for _, com := range comunicados {
				fmt.Printf("[%d] %s", com.ID, com.Titulo)
				if com.CreatedAt != "" {
					fmt.Printf("  (%s)", com.CreatedAt)
				}
				fmt.Println()
				for _, line := range strings.Split(com.Corpo, "\n") {
					fmt.Printf("    %s\n", line)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

type comunicadoInput struct {
	Titulo string `yaml:"titulo" validate:"required"`
	Corpo  string `yaml:"corpo"  validate:"required"`
}

func newComunicadosPostCmd() *cobra.Command {
	var serverAlias, titulo, corpo, file string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a new announcement",
		Long: `Publish a new announcement to all employees.

The title and body can be passed as flags or read from a YAML file:

  titulo: Reunião geral
  corpo: |
    Sexta-feira às 14h no galpão.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := comunicadoInput{Titulo: titulo, Corpo: corpo}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read payload file: %w", err)
				}
				if err := yaml.Unmarshal(data, &input); err != nil {
					return fmt.Errorf("failed to parse payload file: %w", err)
				}
			}
			if err := checkInput(input); err != nil {
				return err
			}

			a, _, err := openScreen(cmd.Context(), serverAlias, access.ComunicadosPath)
			if err != nil {
				return err
			}

			created, err := a.Client.CreateComunicado(cmd.Context(), input.Titulo, input.Corpo)
			if err != nil {
				return fmt.Errorf("failed to publish announcement: %w", err)
			}

			fmt.Printf("✓ Announcement published (id %d)\n", created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&titulo, "titulo", "", "Announcement title")
	cmd.Flags().StringVar(&corpo, "corpo", "", "Announcement body")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with titulo and corpo")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}
