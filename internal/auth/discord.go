package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

// DiscordProfile is the subset of /users/@me used for linking
type DiscordProfile struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
}

// DiscordClient talks to the Discord OAuth2 and user APIs
type DiscordClient struct {
	oauth      *oauth2.Config
	apiBaseURL string
}

// NewDiscordClient creates a new Discord API client
func NewDiscordClient(config *DiscordConfig) *DiscordClient {
	base := config.APIBaseURL
	if base == "" {
		base = DiscordAPIBaseURL
	}
	return &DiscordClient{
		oauth:      config.OAuth2Config(),
		apiBaseURL: strings.TrimRight(base, "/"),
	}
}

// AuthCodeURL returns the Discord consent page for state
func (c *DiscordClient) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for an access token
func (c *DiscordClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetUserProfile fetches the profile of the token owner
func (c *DiscordClient) GetUserProfile(ctx context.Context, token *oauth2.Token) (*DiscordProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/users/@me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build profile request: %w", err)
	}

	resp, err := c.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user profile: status %d", resp.StatusCode)
	}

	var profile DiscordProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode user profile: %w", err)
	}
	if profile.ID == "" {
		return nil, fmt.Errorf("user profile without id")
	}
	return &profile, nil
}
