// Command music-app connects a music service account over OAuth and shows
// the account profile in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/m-kupiec/music-app/internal/adapters/driven/browser"
	"github.com/m-kupiec/music-app/internal/adapters/driven/config/file"
	"github.com/m-kupiec/music-app/internal/adapters/driven/spotify"
	"github.com/m-kupiec/music-app/internal/adapters/driven/storage/sqlite"
	"github.com/m-kupiec/music-app/internal/adapters/driving/cli"
	"github.com/m-kupiec/music-app/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	cfg, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.ClientID == "" {
		return fmt.Errorf("client_id is not set; add it to %s", configStore.Path())
	}

	store, err := sqlite.NewStateStore("")
	if err != nil {
		return fmt.Errorf("opening state store: %w", err)
	}
	defer store.Close() //nolint:errcheck // close on exit is best effort

	connection := services.NewConnection(
		services.Config{
			ClientID:     cfg.ClientID,
			RedirectURI:  cfg.RedirectURI(),
			Scopes:       cfg.Scopes,
			AuthEndpoint: cfg.AuthURL,
		},
		store,
		spotify.NewTokenClient(cfg.TokenURL),
		spotify.NewWebAPIClient(cfg.WebAPIURL),
	)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Connection:   connection,
		Browser:      browser.NewOpener(),
		RedirectPort: cfg.RedirectPort,
	})

	return cli.Execute()
}
