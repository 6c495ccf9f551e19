package commands

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/guard"
	"github.com/spf13/cobra"
)

type dashScreen struct {
	Label string
	Route string
}

var dashScreens = []dashScreen{
	{"Comunicados", access.ComunicadosAllPath},
	{"Publicar comunicado", access.ComunicadosPath},
	{"Enviar atestado", access.AtestadoPath},
	{"Ver atestados (RH)", access.VerAtestadosPath},
	{"Copy hub", access.CopyHubPath},
	{"Lista de compras", access.ComprasPath},
	{"Formulários", access.FormulariosPath},
}

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Interactive screen navigator",
		Long: `Navigate the app's screens interactively. Every screen change goes
through the same access rules the mobile app enforces, so a screen your
role cannot open bounces you back to the home menu.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash(cmd, serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func runDash(cmd *cobra.Command, serverAlias string) error {
	server, err := getSelectedServer(serverAlias)
	if err != nil {
		return err
	}
	a, err := newApp(server)
	if err != nil {
		return err
	}

	a.Session.Restore(cmd.Context())

	g := guard.New()
	current := access.HomePath

	for {
		sess := a.Session.Session()
		decision := g.Evaluate(sess, current)

		switch decision.State {
		case guard.StateRedirectToLogin:
			if decision.Redirect {
				fmt.Println("You need to sign in first.")
			}
			return fmt.Errorf("not signed in. Run 'sevenplus login' first")

		case guard.StateRedirectToHome:
			if decision.Redirect {
				fmt.Println("Your role cannot open that screen.")
			}
			current = decision.Target
			continue

		case guard.StateAllow:
			if current == access.HomePath {
				next, err := promptHomeMenu(sess.User.Name)
				if err != nil || next == "" {
					return nil
				}
				current = next
				continue
			}
			if err := renderScreen(cmd, a, current); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			current = access.HomePath
		}
	}
}

func promptHomeMenu(userName string) (string, error) {
	items := make([]string, 0, len(dashScreens)+1)
	for _, s := range dashScreens {
		items = append(items, s.Label)
	}
	items = append(items, "Sair")

	prompt := promptui.Select{
		Label: fmt.Sprintf("Olá, %s", userName),
		Items: items,
		Size:  len(items),
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if idx >= len(dashScreens) {
		return "", nil
	}
	return dashScreens[idx].Route, nil
}

// renderScreen shows a read-only view of the selected screen. Mutations
// stay on the dedicated subcommands.
func renderScreen(cmd *cobra.Command, a *app, route string) error {
	ctx := cmd.Context()

	switch route {
	case access.ComunicadosAllPath, access.ComunicadosPath:
		comunicados, err := a.Client.ListComunicados(ctx)
		if err != nil {
			return err
		}
		if len(comunicados) == 0 {
			fmt.Println("No announcements yet.")
		}
		for _, com := range comunicados {
			fmt.Printf("[%d] %s\n", com.ID, com.Titulo)
		}
		if route == access.ComunicadosPath {
			fmt.Println("\nUse 'sevenplus comunicados post' to publish.")
		}

	case access.AtestadoPath:
		fmt.Println("Use 'sevenplus atestados send --nome <name> --foto <file>' to submit a certificate.")

	case access.VerAtestadosPath:
		atestados, err := a.Client.ListAtestados(ctx)
		if err != nil {
			return err
		}
		if len(atestados) == 0 {
			fmt.Println("No certificates submitted.")
		}
		for _, at := range atestados {
			fmt.Printf("[%d] %s  %s\n", at.ID, at.NomeCompleto, at.Status)
		}

	case access.CopyHubPath:
		copys, err := a.Client.ListCopys(ctx)
		if err != nil {
			return err
		}
		if len(copys) == 0 {
			fmt.Println("The copy board is empty.")
		}
		for _, cp := range copys {
			fmt.Printf("[%d] %-30s %s\n", cp.ID, cp.Title, cp.Estado)
		}

	case access.ComprasPath:
		fmt.Println("Use 'sevenplus compras ls --all' to browse the shopping lists.")

	case access.FormulariosPath:
		forms, pagination, err := a.Client.ListFormularios(ctx, 1)
		if err != nil {
			return err
		}
		for _, f := range forms {
			fmt.Printf("[%d] %s  CNPJ %s\n", f.ID, f.ResponsavelLegalNome, f.CNPJ)
		}
		fmt.Printf("Page 1 of %d (%d submissions total)\n", pagination.TotalPages, pagination.TotalItems)
	}

	fmt.Println()
	return nil
}
