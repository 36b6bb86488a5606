package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	apperrors "maua-esports-backend/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/errgroup"
)

// Twitch endpoints
const (
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token"
	DefaultHelixURL = "https://api.twitch.tv/helix"
)

const helixService = "twitch helix"

// ClientConfig holds the app credentials and endpoint overrides
type ClientConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	HelixURL     string
}

// Client reads channel numbers from the Helix API with an app access token
type Client struct {
	httpClient  *http.Client
	credentials *clientcredentials.Config
	clientID    string
	helixURL    string

	mu    sync.Mutex
	token *oauth2.Token
}

// NewClient creates a Helix client
func NewClient(httpClient *http.Client, cfg ClientConfig) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	helixURL := cfg.HelixURL
	if helixURL == "" {
		helixURL = DefaultHelixURL
	}
	return &Client{
		httpClient: httpClient,
		credentials: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		clientID: cfg.ClientID,
		helixURL: strings.TrimRight(helixURL, "/"),
	}
}

type helixUsers struct {
	Data []struct {
		ID    string `json:"id"`
		Login string `json:"login"`
	} `json:"data"`
}

type helixFollowers struct {
	Total int `json:"total"`
}

type helixStreams struct {
	Data []struct {
		ViewerCount int `json:"viewer_count"`
	} `json:"data"`
}

// ChannelStats returns the follower count and live status of login.
// LastUpdated is left for the caller to stamp.
func (c *Client) ChannelStats(ctx context.Context, login string) (*Stats, error) {
	var users helixUsers
	if err := c.get(ctx, "/users", url.Values{"login": {login}}, &users); err != nil {
		return nil, err
	}
	if len(users.Data) == 0 {
		return nil, apperrors.ErrChannelNotFound
	}
	id := users.Data[0].ID

	var (
		followers helixFollowers
		streams   helixStreams
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.get(gctx, "/channels/followers", url.Values{"broadcaster_id": {id}}, &followers)
	})
	g.Go(func() error {
		return c.get(gctx, "/streams", url.Values{"user_id": {id}}, &streams)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{
		Followers: followers.Total,
		IsLive:    len(streams.Data) > 0,
	}
	if stats.IsLive {
		stats.Viewers = streams.Data[0].ViewerCount
	}
	return stats, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.helixURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build helix request: %w", err)
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(helixService, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.resetToken()
		return apperrors.NewUpstreamError(helixService, resp.StatusCode, nil)
	}
	if resp.StatusCode != http.StatusOK {
		return apperrors.NewUpstreamError(helixService, resp.StatusCode, nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstreamError(helixService, resp.StatusCode, fmt.Errorf("failed to decode %s: %w", path, err))
	}
	return nil
}

// accessToken returns the cached app token, fetching a new one when it is
// missing or expired
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.Valid() {
		return c.token.AccessToken, nil
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return "", apperrors.NewUpstreamError("twitch oauth", 0, fmt.Errorf("failed to get app token: %w", err))
	}
	c.token = token
	return token.AccessToken, nil
}

// resetToken drops the cached token so the next call authenticates again
func (c *Client) resetToken() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}
