package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/commands"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/update"
	"github.com/sevenplus-app/sevenplus-cli/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev" // Will be set during build

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "sevenplus",
	Short: "SevenPlus - Company operations from the terminal",
	Long: `SevenPlus CLI - The company's HR and operations companion.

Read announcements, send medical certificates, manage the marketing copy
board and the shopping lists, and check your vacations and payslips,
all without leaving the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env can hold SEVENPLUS_EMAIL and SEVENPLUS_PASSWORD
		_ = godotenv.Load()

		logger.Init(logLevel, logFormat)

		// Skip update check for the update and version commands
		if cmd.Name() == "update" || cmd.Name() == "version" {
			return
		}
		update.PrintUpdateNotification(version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format (console, json)")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sevenplus version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewInitCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewSelectServerCmd())
	rootCmd.AddCommand(commands.NewComunicadosCmd())
	rootCmd.AddCommand(commands.NewAtestadosCmd())
	rootCmd.AddCommand(commands.NewCopysCmd())
	rootCmd.AddCommand(commands.NewFormulariosCmd())
	rootCmd.AddCommand(commands.NewComprasCmd())
	rootCmd.AddCommand(commands.NewFeriasCmd())
	rootCmd.AddCommand(commands.NewHoleritesCmd())
	rootCmd.AddCommand(commands.NewPerfilCmd())
	rootCmd.AddCommand(commands.NewBroadcastCmd())
	rootCmd.AddCommand(commands.NewWatchCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
	rootCmd.AddCommand(commands.NewUpdateCmd(version))
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
