// Package cli implements the command-line interface.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/m-kupiec/music-app/internal/core/ports/driven"
	"github.com/m-kupiec/music-app/internal/core/ports/driving"
	"github.com/m-kupiec/music-app/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired into the CLI by the composition root.
var (
	connectionService driving.ConnectionService
	browserOpener     driven.Browser
	redirectPort      int
	callbackTimeout   = 5 * time.Minute
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "music-app",
	Short: "Connect and browse your music service account",
	Long: `music-app connects your music service account over OAuth and shows
your account profile in the terminal.

Run 'music-app connect' to authorize the application in your browser.
Credentials are stored locally; no secret is required for a public client.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services carries the wired core services and settings for the CLI.
type Services struct {
	Connection   driving.ConnectionService
	Browser      driven.Browser
	RedirectPort int
}

// SetServices wires core services into the CLI commands.
func SetServices(s *Services) {
	connectionService = s.Connection
	browserOpener = s.Browser
	redirectPort = s.RedirectPort
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
