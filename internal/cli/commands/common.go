package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/manifoldco/promptui"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/client"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/config"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/guard"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/serverselect"
	"github.com/sevenplus-app/sevenplus-cli/internal/cli/session"
	"github.com/sevenplus-app/sevenplus-cli/internal/logger"
)

var validate = validator.New()

// checkInput runs struct validation and converts failures into a single
// user-facing error, before any network call is made.
func checkInput(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "email":
			fields = append(fields, fmt.Sprintf("%s is not a valid email address", strings.ToLower(fe.Field())))
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s must be one of: %s", strings.ToLower(fe.Field()), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field())))
		}
	}
	return fmt.Errorf("invalid input: %s", strings.Join(fields, "; "))
}

// confirm asks the user to confirm a destructive action.
func confirm(label string) error {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return fmt.Errorf("aborted")
	}
	return nil
}

// getSelectedServer loads the config and resolves the server to talk to.
func getSelectedServer(serverAlias string) (*config.Server, error) {
	cfg, err := config.LoadFromCurrentDir()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w\nRun 'sevenplus init' to create a configuration file", err)
	}

	server, err := serverselect.ResolveServer(cfg, serverAlias)
	if err != nil {
		return nil, err
	}

	if server.URL == "" {
		return nil, fmt.Errorf("server URL is empty. Please edit %s and add a valid URL", config.ConfigFileName)
	}

	return server, nil
}

// app bundles everything a screen-backed command needs.
type app struct {
	Server  *config.Server
	Client  *client.Client
	Session *session.Manager
}

// newApp wires the API client and session manager for server.
func newApp(server *config.Server) (*app, error) {
	apiClient := client.New(server.URL)
	userStore, err := session.NewFileUserStore(server.URL)
	if err != nil {
		return nil, err
	}
	manager := session.NewManager(
		apiClient,
		session.NewKeyringTokenStore(server.URL),
		userStore,
		logger.GetLogger(),
	)
	return &app{Server: server, Client: apiClient, Session: manager}, nil
}

// openScreen restores the session and gates route through the guard,
// mirroring what the mobile app does before rendering a screen.
func openScreen(ctx context.Context, serverAlias, route string) (*app, session.Session, error) {
	server, err := getSelectedServer(serverAlias)
	if err != nil {
		return nil, session.Session{}, err
	}
	a, err := newApp(server)
	if err != nil {
		return nil, session.Session{}, err
	}

	a.Session.Restore(ctx)
	sess := a.Session.Session()

	g := guard.New()
	decision := g.Evaluate(sess, route)
	switch decision.State {
	case guard.StateRedirectToLogin:
		return nil, sess, fmt.Errorf("not signed in. Run 'sevenplus login' first")
	case guard.StateRedirectToHome:
		return nil, sess, fmt.Errorf("your role does not have access to %s", route)
	}

	return a, sess, nil
}
