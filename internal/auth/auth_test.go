package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"maua-esports-backend/internal/config"
	apperrors "maua-esports-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type fakeProvider struct {
	exchangeErr error
	profileErr  error
	profile     *DiscordProfile
	codes       []string
}

func (f *fakeProvider) AuthCodeURL(state string) string {
	return "https://discord.example/authorize?state=" + url.QueryEscape(state)
}

func (f *fakeProvider) Exchange(_ context.Context, code string) (*oauth2.Token, error) {
	f.codes = append(f.codes, code)
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return &oauth2.Token{AccessToken: "access"}, nil
}

func (f *fakeProvider) GetUserProfile(context.Context, *oauth2.Token) (*DiscordProfile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

type fakeLinker struct {
	err    error
	linked map[uuid.UUID]string
}

func (f *fakeLinker) LinkDiscord(id uuid.UUID, discordID string) error {
	if f.err != nil {
		return f.err
	}
	if f.linked == nil {
		f.linked = map[uuid.UUID]string{}
	}
	f.linked[id] = discordID
	return nil
}

func newTestRouter(svc *LinkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(svc)
	r.GET("/auth/discord/login", h.Login)
	r.GET("/auth/discord/callback", h.Callback)
	return r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestDiscordConfig(t *testing.T) {
	t.Run("built from application config", func(t *testing.T) {
		cfg := NewDiscordConfig(&config.Config{
			DiscordClientID:     "id",
			DiscordClientSecret: "secret",
			DiscordRedirectURI:  "http://localhost:3000/auth/discord/callback",
			FrontendURL:         "http://localhost:5173",
		})
		require.NoError(t, cfg.ValidateConfig())
		assert.True(t, cfg.Configured())

		oauthCfg := cfg.OAuth2Config()
		assert.Equal(t, []string{"identify"}, oauthCfg.Scopes)
		assert.Equal(t, DiscordTokenURL, oauthCfg.Endpoint.TokenURL)
	})

	t.Run("missing client id", func(t *testing.T) {
		cfg := &DiscordConfig{ClientSecret: "s", RedirectURL: "http://x/cb", FrontendURL: "http://x"}
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client id is required")
		assert.False(t, cfg.Configured())
	})

	t.Run("missing redirect url", func(t *testing.T) {
		cfg := &DiscordConfig{ClientID: "i", ClientSecret: "s", FrontendURL: "http://x"}
		err := cfg.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})
}

func TestParseState(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		state, err := ParseState(`{"userId":"abc","returnUrl":"/perfil"}`)
		require.NoError(t, err)
		assert.Equal(t, "abc", state.UserID)
		assert.Equal(t, "/perfil", state.ReturnURL)
	})

	t.Run("base64url json", func(t *testing.T) {
		state, err := ParseState("eyJ1c2VySWQiOiJhYmMifQ")
		require.NoError(t, err)
		assert.Equal(t, "abc", state.UserID)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := ParseState("")
		assert.ErrorIs(t, err, errStateMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseState("{not json")
		assert.ErrorIs(t, err, errStateInvalid)
	})

	t.Run("without user id", func(t *testing.T) {
		_, err := ParseState(`{"returnUrl":"/"}`)
		assert.ErrorIs(t, err, errUserIDMissing)
	})
}

func TestCallbackValidation(t *testing.T) {
	r := newTestRouter(NewLinkService(&fakeProvider{}, &fakeLinker{}, "http://localhost:5173"))

	tests := []struct {
		name  string
		query url.Values
		want  string
	}{
		{"missing code", url.Values{"state": {`{"userId":"123","returnUrl":"/"}`}}, "Código de autorização não fornecido"},
		{"provider error without code", url.Values{"error": {"access_denied"}, "state": {`{"userId":"123","returnUrl":"/"}`}}, "Código de autorização não fornecido"},
		{"missing state", url.Values{"code": {"fakeCode"}}, "State não fornecido"},
		{"invalid state", url.Values{"code": {"fakeCode"}, "state": {"%%%"}}, "State inválido"},
		{"state without user", url.Values{"code": {"fakeCode"}, "state": {`{"returnUrl":"/"}`}}, "UserId não fornecido"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, "/auth/discord/callback?"+tt.query.Encode())
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, w.Body.String())
		})
	}
}

func TestCallbackLinksAccount(t *testing.T) {
	userID := uuid.New()
	provider := &fakeProvider{profile: &DiscordProfile{ID: "123456789012345678"}}
	linker := &fakeLinker{}
	r := newTestRouter(NewLinkService(provider, linker, "http://localhost:5173"))

	state := `{"userId":"` + userID.String() + `","returnUrl":"/horas-pae"}`
	w := get(r, "/auth/discord/callback?"+url.Values{"code": {"good"}, "state": {state}}.Encode())

	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:5173", loc.Host)
	assert.Equal(t, "/horas-pae", loc.Path)
	assert.Equal(t, "true", loc.Query().Get("discordLinked"))
	assert.Equal(t, "123456789012345678", linker.linked[userID])
	assert.Equal(t, []string{"good"}, provider.codes)
}

func TestCallbackFailures(t *testing.T) {
	userID := uuid.New().String()
	state := `{"userId":"` + userID + `"}`
	target := "/auth/discord/callback?" + url.Values{"code": {"c"}, "state": {state}}.Encode()

	t.Run("exchange failure", func(t *testing.T) {
		r := newTestRouter(NewLinkService(&fakeProvider{exchangeErr: errors.New("bad code")}, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, target)
		require.Equal(t, http.StatusFound, w.Code)
		loc, _ := url.Parse(w.Header().Get("Location"))
		assert.Equal(t, "false", loc.Query().Get("discordLinked"))
		assert.Equal(t, reasonExchange, loc.Query().Get("error"))
	})

	t.Run("unknown user", func(t *testing.T) {
		provider := &fakeProvider{profile: &DiscordProfile{ID: "123456789012345678"}}
		r := newTestRouter(NewLinkService(provider, &fakeLinker{err: apperrors.ErrUserNotFound}, "http://localhost:5173"))
		w := get(r, target)
		loc, _ := url.Parse(w.Header().Get("Location"))
		assert.Equal(t, "false", loc.Query().Get("discordLinked"))
		assert.Equal(t, reasonUserNotFound, loc.Query().Get("error"))
	})

	t.Run("provider error with code", func(t *testing.T) {
		provider := &fakeProvider{}
		r := newTestRouter(NewLinkService(provider, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, "/auth/discord/callback?"+url.Values{"code": {"c"}, "error": {"access_denied"}, "state": {`{"userId":"123","returnUrl":"/horas-pae"}`}}.Encode())
		require.Equal(t, http.StatusFound, w.Code)
		loc, _ := url.Parse(w.Header().Get("Location"))
		assert.Equal(t, "/horas-pae", loc.Path)
		assert.Equal(t, "false", loc.Query().Get("discordLinked"))
		assert.Empty(t, provider.codes)
	})

	t.Run("user id is not a uuid", func(t *testing.T) {
		r := newTestRouter(NewLinkService(&fakeProvider{}, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, "/auth/discord/callback?"+url.Values{"code": {"c"}, "state": {`{"userId":"123"}`}}.Encode())
		loc, _ := url.Parse(w.Header().Get("Location"))
		assert.Equal(t, "false", loc.Query().Get("discordLinked"))
	})
}

func TestResultURL(t *testing.T) {
	svc := NewLinkService(&fakeProvider{}, &fakeLinker{}, "http://localhost:5173")

	t.Run("defaults to the frontend", func(t *testing.T) {
		assert.Equal(t, "http://localhost:5173?discordLinked=true", svc.ResultURL("", true, ""))
	})

	t.Run("foreign hosts fall back to the frontend", func(t *testing.T) {
		got, _ := url.Parse(svc.ResultURL("https://evil.example/steal", true, ""))
		assert.Equal(t, "localhost:5173", got.Host)
		got, _ = url.Parse(svc.ResultURL("//evil.example", true, ""))
		assert.Equal(t, "localhost:5173", got.Host)
	})

	t.Run("same host absolute url is kept", func(t *testing.T) {
		got, _ := url.Parse(svc.ResultURL("http://localhost:5173/perfil?tab=1", false, "x"))
		assert.Equal(t, "/perfil", got.Path)
		assert.Equal(t, "1", got.Query().Get("tab"))
		assert.Equal(t, "x", got.Query().Get("error"))
	})
}

func TestLogin(t *testing.T) {
	t.Run("redirects with state", func(t *testing.T) {
		r := newTestRouter(NewLinkService(&fakeProvider{}, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, "/auth/discord/login?userId=abc&returnUrl=/perfil")
		require.Equal(t, http.StatusFound, w.Code)
		loc, _ := url.Parse(w.Header().Get("Location"))
		assert.JSONEq(t, `{"userId":"abc","returnUrl":"/perfil"}`, loc.Query().Get("state"))
	})

	t.Run("requires user id", func(t *testing.T) {
		r := newTestRouter(NewLinkService(&fakeProvider{}, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, "/auth/discord/login")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "UserId não fornecido", w.Body.String())
	})

	t.Run("not configured", func(t *testing.T) {
		r := newTestRouter(NewLinkService(nil, &fakeLinker{}, "http://localhost:5173"))
		w := get(r, "/auth/discord/login?userId=abc")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestTokenMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/trains/all", NewTokenMiddleware("frontendmauaesports").RequireToken(), func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"missing scheme", "frontendmauaesports", http.StatusUnauthorized},
		{"valid token", "Bearer frontendmauaesports", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/trains/all", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestDiscordClientProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth2/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"tok","token_type":"Bearer","expires_in":3600}`))
		case "/users/@me":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_, _ = w.Write([]byte(`{"id":"123456789012345678","username":"maua"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewDiscordClient(&DiscordConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/auth/discord/callback",
		AuthURL:      server.URL + "/oauth2/authorize",
		TokenURL:     server.URL + "/oauth2/token",
		APIBaseURL:   server.URL,
	})

	ctx := context.Background()
	token, err := client.Exchange(ctx, "code")
	require.NoError(t, err)

	profile, err := client.GetUserProfile(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", profile.ID)
	assert.Equal(t, "maua", profile.Username)

	authURL, err := url.Parse(client.AuthCodeURL("s"))
	require.NoError(t, err)
	assert.Equal(t, "identify", authURL.Query().Get("scope"))
	assert.Equal(t, "s", authURL.Query().Get("state"))
}
