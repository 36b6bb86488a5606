package auth

import (
	"fmt"
	"net/url"

	"maua-esports-backend/internal/config"

	"golang.org/x/oauth2"
)

// Discord OAuth2 endpoints
const (
	DiscordAuthURL    = "https://discord.com/api/oauth2/authorize"
	DiscordTokenURL   = "https://discord.com/api/oauth2/token"
	DiscordAPIBaseURL = "https://discord.com/api"
)

// DiscordConfig holds the Discord application credentials and the URLs of the linking flow
type DiscordConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	FrontendURL  string

	// Overridable for tests
	AuthURL    string
	TokenURL   string
	APIBaseURL string
}

// NewDiscordConfig builds the Discord configuration from the application config
func NewDiscordConfig(cfg *config.Config) *DiscordConfig {
	return &DiscordConfig{
		ClientID:     cfg.DiscordClientID,
		ClientSecret: cfg.DiscordClientSecret,
		RedirectURL:  cfg.DiscordRedirectURI,
		FrontendURL:  cfg.FrontendURL,
		AuthURL:      DiscordAuthURL,
		TokenURL:     DiscordTokenURL,
		APIBaseURL:   DiscordAPIBaseURL,
	}
}

// Configured reports whether application credentials are present
func (c *DiscordConfig) Configured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// ValidateConfig validates the Discord configuration
func (c *DiscordConfig) ValidateConfig() error {
	if c.ClientID == "" {
		return fmt.Errorf("discord client id is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("discord client secret is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("discord redirect URL is required")
	}
	if _, err := url.ParseRequestURI(c.RedirectURL); err != nil {
		return fmt.Errorf("invalid discord redirect URL: %w", err)
	}
	if c.FrontendURL == "" {
		return fmt.Errorf("frontend URL is required")
	}
	return nil
}

// OAuth2Config returns the OAuth2 configuration for the identify scope
func (c *DiscordConfig) OAuth2Config() *oauth2.Config {
	authURL, tokenURL := c.AuthURL, c.TokenURL
	if authURL == "" {
		authURL = DiscordAuthURL
	}
	if tokenURL == "" {
		tokenURL = DiscordTokenURL
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       []string{"identify"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   authURL,
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}
