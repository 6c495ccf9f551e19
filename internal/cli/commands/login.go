package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, serverAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a SevenPlus server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd.Context(), email, password, serverAlias)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set SEVENPLUS_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set SEVENPLUS_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func runLogin(ctx context.Context, email, password, serverAlias string) error {
	// Environment variables are useful for CI and scripted runs
	if email == "" {
		email = os.Getenv("SEVENPLUS_EMAIL")
	}
	if password == "" {
		password = os.Getenv("SEVENPLUS_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or SEVENPLUS_EMAIL env var)")
	}

	server, err := getSelectedServer(serverAlias)
	if err != nil {
		return err
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or SEVENPLUS_PASSWORD env var)")
		}
	}

	if err := checkInput(loginInput{Email: email, Password: password}); err != nil {
		return err
	}

	a, err := newApp(server)
	if err != nil {
		return err
	}

	fmt.Printf("Logging in to %s (%s)...\n", server.Alias, server.URL)

	if err := a.Session.SignIn(ctx, email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	sess := a.Session.Session()
	fmt.Println("✓ Login successful!")
	fmt.Printf("  User: %s (%s)\n", sess.User.Name, sess.User.Email)
	if sess.User.Role != "" {
		fmt.Printf("  Role: %s\n", sess.User.Role)
	}

	return nil
}
