package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/m-kupiec/music-app/internal/adapters/driving/oauth"
	"github.com/m-kupiec/music-app/internal/adapters/driving/tui"
	"github.com/m-kupiec/music-app/internal/adapters/driving/tui/messages"
	"github.com/m-kupiec/music-app/internal/core/domain"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect your music service account",
	Long: `Connect your music service account using OAuth authorization.

The command opens the provider's authorization page in your browser and waits
for the redirect on a local callback server. After you approve access, it
exchanges the authorization code for tokens, stores them locally, and fetches
your account profile.

If valid credentials are already stored, the authorization step is skipped.`,
	RunE: runConnect,
}

// Flags for connect.
var (
	connectNoBrowser bool
	connectPlain     bool
)

func init() {
	connectCmd.Flags().BoolVar(
		&connectNoBrowser, "no-browser", false, "Print the authorization URL instead of opening a browser")
	connectCmd.Flags().BoolVar(
		&connectPlain, "plain", false, "Use plain text output instead of the interactive screen")
	rootCmd.AddCommand(connectCmd)
}

func runConnect(cmd *cobra.Command, _ []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	if connectPlain {
		return runConnectPlain(cmd)
	}
	return runConnectTUI(cmd)
}

// runConnectPlain drives the connection flow with line-based output.
func runConnectPlain(cmd *cobra.Command) error {
	ctx := context.Background()

	status := connectionService.Resume()
	if status != domain.StatusValidated {
		if err := authorize(ctx, cmd, func(tea.Msg) {}); err != nil {
			return err
		}
		if connectionService.Status() == domain.StatusUnauthorized {
			return reportOutcome(cmd, domain.StatusUnauthorized)
		}
	} else {
		cmd.Println("Stored credentials are still valid.")
	}

	cmd.Println("Connecting your account...")
	return reportOutcome(cmd, connectionService.Continue(ctx))
}

// runConnectTUI drives the connection flow behind the interactive screen.
func runConnectTUI(cmd *cobra.Command) error {
	app, err := tui.NewApp(&tui.Ports{Connection: connectionService})
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	p := tea.NewProgram(app)

	go func() {
		ctx := context.Background()

		status := connectionService.Resume()
		p.Send(messages.StatusChanged{Status: status})

		if status != domain.StatusValidated {
			if err := authorize(ctx, cmd, p.Send); err != nil {
				p.Send(messages.ErrorOccurred{Err: err})
				return
			}
			if connectionService.Status() == domain.StatusUnauthorized {
				p.Send(messages.FlowFinished{
					Status:  domain.StatusUnauthorized,
					Details: connectionService.LastErrorDetails(),
				})
				return
			}
		}

		final := connectionService.Continue(ctx)
		if profile := connectionService.Profile(); profile != nil {
			p.Send(messages.ProfileLoaded{Profile: profile})
		}
		p.Send(messages.FlowFinished{
			Status:  final,
			Details: connectionService.LastErrorDetails(),
		})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("screen error: %w", err)
	}

	if status := connectionService.Status(); status != domain.StatusOK {
		return fmt.Errorf("connection did not complete: %s", status)
	}
	return nil
}

// authorize runs the authorization phase: it opens the provider page and
// waits for the callback on the loopback server, then folds the response
// into the connection status.
func authorize(ctx context.Context, cmd *cobra.Command, emit func(tea.Msg)) error {
	authURL, err := connectionService.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start authorization: %w", err)
	}
	emit(messages.StatusChanged{Status: connectionService.Status()})

	server := oauth.NewCallbackServer(redirectPort, connectionService.State())
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start callback server: %w", err)
	}
	defer server.Stop() //nolint:errcheck // shutdown on exit is best effort

	if connectNoBrowser || browserOpener == nil {
		cmd.Println("Open this URL in your browser to authorize:")
		cmd.Println(authURL)
	} else if err := browserOpener.Open(authURL); err != nil {
		cmd.Println("Could not open a browser. Open this URL to authorize:")
		cmd.Println(authURL)
	}
	emit(messages.AuthPageOpened{URL: authURL})

	rawQuery, err := server.WaitForQuery(callbackTimeout)
	if err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	if err := connectionService.StageCallback(rawQuery); err != nil {
		return fmt.Errorf("failed to record authorization response: %w", err)
	}
	status := connectionService.ConsumeCallback()
	emit(messages.StatusChanged{Status: status})

	return nil
}

// reportOutcome prints the outcome of the flow and maps failures to a
// command error.
func reportOutcome(cmd *cobra.Command, status domain.Status) error {
	if message := domain.Message(status); message != "" {
		cmd.Println(message)
	}

	switch status {
	case domain.StatusOK:
		if profile := connectionService.Profile(); profile != nil {
			cmd.Printf("Signed in as %s (%s)\n", profile.DisplayName, profile.ID)
		}
		return nil
	default:
		if details := connectionService.LastErrorDetails(); details != "" {
			cmd.Println(details)
		}
		return fmt.Errorf("connection did not complete: %s", status)
	}
}
