// Package file provides the TOML-backed application configuration.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/oauth2/spotify"
)

// webAPIBaseURL is the provider's Web API root.
const webAPIBaseURL = "https://api.spotify.com/v1"

// Config holds the account-connection settings. The client id has no secret
// companion: the app is a public PKCE client.
type Config struct {
	ClientID     string   `toml:"client_id"`
	RedirectPort int      `toml:"redirect_port"`
	Scopes       []string `toml:"scopes"`
	AuthURL      string   `toml:"auth_url"`
	TokenURL     string   `toml:"token_url"`
	WebAPIURL    string   `toml:"web_api_url"`
}

// RedirectURI returns the loopback redirect URI registered with the
// provider.
func (c *Config) RedirectURI() string {
	return fmt.Sprintf("http://127.0.0.1:%d/callback", c.RedirectPort)
}

// DefaultConfig returns a config with provider endpoint defaults filled in.
func DefaultConfig() Config {
	return Config{
		RedirectPort: 8080,
		AuthURL:      spotify.Endpoint.AuthURL,
		TokenURL:     spotify.Endpoint.TokenURL,
		WebAPIURL:    webAPIBaseURL,
	}
}

// ConfigStore loads and saves the configuration file.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.music-app.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".music-app")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Load reads the configuration, applying defaults for any field the file
// leaves unset. A missing file yields the defaults.
func (s *ConfigStore) Load() (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration with restrictive permissions.
func (s *ConfigStore) Save(cfg Config) error {
	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(s.filePath, raw, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
