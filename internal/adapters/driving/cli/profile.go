package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-kupiec/music-app/internal/core/domain"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the connected account's profile",
	Long: `Fetch and display the profile of the connected account.

Requires valid stored credentials; run 'music-app connect' first.`,
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	if connectionService == nil {
		return errors.New("connection service not configured")
	}

	if connectionService.Resume() != domain.StatusValidated {
		return errors.New("not connected; run 'music-app connect' first")
	}

	status := connectionService.Continue(context.Background())
	if status != domain.StatusOK {
		if details := connectionService.LastErrorDetails(); details != "" {
			cmd.Println(details)
		}
		return fmt.Errorf("failed to fetch profile: %s", status)
	}

	profile := connectionService.Profile()
	if profile == nil {
		return errors.New("no profile available")
	}

	cmd.Printf("Display name: %s\n", profile.DisplayName)
	cmd.Printf("ID:           %s\n", profile.ID)
	if len(profile.Images) > 0 {
		cmd.Printf("Image:        %s\n", profile.Images[0].URL)
	}
	return nil
}
