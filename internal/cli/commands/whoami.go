package commands

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd, serverAlias)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func runWhoami(cmd *cobra.Command, serverAlias string) error {
	a, sess, err := openScreen(cmd.Context(), serverAlias, access.HomePath)
	if err != nil {
		return err
	}

	fmt.Printf("Signed in to %s (%s)\n\n", a.Server.Alias, a.Server.URL)
	fmt.Printf("  ID:    %d\n", sess.User.ID)
	fmt.Printf("  Name:  %s\n", sess.User.Name)
	if sess.User.Email != "" {
		fmt.Printf("  Email: %s\n", sess.User.Email)
	}
	if sess.User.Role != "" {
		fmt.Printf("  Role:  %s\n", sess.User.Role)
	}
	if sess.User.ProfilePhotoURL != "" {
		fmt.Printf("  Photo: %s/%s\n", a.Client.BaseURL(), sess.User.ProfilePhotoURL)
	}

	// The token is opaque to us, but when it happens to be a JWT we can
	// show its expiry as a convenience.
	if exp := tokenExpiry(sess.Token); !exp.IsZero() {
		fmt.Printf("\nToken expires %s\n", exp.Local().Format(time.RFC1123))
	}

	return nil
}

// tokenExpiry parses the token without verification, for display only.
// Returns the zero time when the token isn't a JWT or carries no expiry.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
