package commands

import (
	"fmt"
	"time"

	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewFeriasCmd creates the ferias command
func NewFeriasCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "ferias",
		Short: "Show your vacation periods",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, sess, err := openScreen(cmd.Context(), serverAlias, access.HomePath)
			if err != nil {
				return err
			}

			periods, err := a.Client.MyFerias(cmd.Context(), sess.Token)
			if err != nil {
				return fmt.Errorf("failed to fetch vacation periods: %w", err)
			}

			if len(periods) == 0 {
				fmt.Println("No vacation periods registered.")
				return nil
			}

			for _, p := range periods {
				fmt.Printf("Período aquisitivo: %s a %s\n",
					formatDay(p.PeriodoAquisitivoInicio), formatDay(p.PeriodoAquisitivoFim))
				fmt.Printf("Período de gozo:    %s a %s\n",
					formatDay(p.PeriodoGozoInicio), formatDay(p.PeriodoGozoFim))
				if back := returnDate(p.PeriodoGozoFim); back != "" {
					fmt.Printf("Retorno ao trabalho: %s\n", back)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func formatDay(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

// returnDate is the first working day after the vacation ends.
func returnDate(gozoFim string) string {
	t, err := time.Parse("2006-01-02", gozoFim)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format("02/01/2006")
}
