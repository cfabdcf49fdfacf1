package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the account connection status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	switch connectionService.Resume() {
	case domain.StatusValidated:
		cmd.Println("Connected: stored credentials are valid.")
	case domain.StatusPending:
		cmd.Println("Connected: stored credentials have expired. Run 'music-app connect' to reauthorize.")
	default:
		cmd.Println("Not connected. Run 'music-app connect' to get started.")
	}
	return nil
}
