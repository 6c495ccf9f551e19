package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/sevenplus-app/sevenplus-cli/internal/access"
	"github.com/sevenplus-app/sevenplus-cli/internal/logger"
	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var serverAlias, schedule, pushToken, platform string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll for new announcements and print them as they arrive",
		Long: `Poll the server on a schedule and print announcements published since the
watch started. This is the desktop stand-in for the mobile push channel.

With --push-token the device token is also registered with the server so the
backend can reach this user through the regular push pipeline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, serverAlias, schedule, pushToken, platform)
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "@every 5m", "Poll schedule in cron syntax")
	cmd.Flags().StringVar(&pushToken, "push-token", "", "Expo push token to register for this user")
	cmd.Flags().StringVar(&platform, "platform", "cli", "Platform reported when registering the push token")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from sevenplus.json")

	return cmd
}

func runWatch(cmd *cobra.Command, serverAlias, schedule, pushToken, platform string) error {
	a, sess, err := openScreen(cmd.Context(), serverAlias, access.ComunicadosAllPath)
	if err != nil {
		return err
	}
	log := logger.GetLogger()

	if pushToken != "" {
		if err := a.Client.RegisterPushToken(cmd.Context(), sess.User.ID, pushToken, platform); err != nil {
			return fmt.Errorf("failed to register push token: %w", err)
		}
		fmt.Println("✓ Push token registered")
	}

	// Seed the seen set so only announcements published after startup
	// are reported.
	seen := map[int]bool{}
	initial, err := a.Client.ListComunicados(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch announcements: %w", err)
	}
	for _, com := range initial {
		seen[com.ID] = true
	}

	fmt.Printf("Watching %s for new announcements (%s). Press Ctrl+C to stop.\n", a.Server.URL, schedule)

	c := cron.New()
	_, err = c.AddFunc(schedule, func() {
		comunicados, err := a.Client.ListComunicados(cmd.Context())
		if err != nil {
			log.Warn().Err(err).Msg("announcement poll failed")
			return
		}
		for i := len(comunicados) - 1; i >= 0; i-- {
			com := comunicados[i]
			if seen[com.ID] {
				continue
			}
			seen[com.ID] = true
			fmt.Printf("\n[%d] %s\n", com.ID, com.Titulo)
			for _, line := range strings.Split(com.Corpo, "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	c.Start()
	defer c.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-cmd.Context().Done():
	}

	fmt.Println("\nStopped watching.")
	return nil
}
