package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Callback messages, sent as plain text
const (
	msgCodeMissing   = "Código de autorização não fornecido"
	msgStateMissing  = "State não fornecido"
	msgStateInvalid  = "State inválido"
	msgUserIDMissing = "UserId não fornecido"
)

// Failure reasons appended to the frontend redirect
const (
	reasonNotConfigured = "Integração com o Discord não configurada"
	reasonExchange      = "Falha ao autenticar com o Discord"
	reasonUserNotFound  = "Usuário não encontrado"
	reasonLink          = "Erro ao vincular conta do Discord"
)

var (
	errCodeMissing   = apperrors.NewValidationError("code", msgCodeMissing)
	errStateMissing  = apperrors.NewValidationError("state", msgStateMissing)
	errStateInvalid  = apperrors.NewValidationError("state", msgStateInvalid)
	errUserIDMissing = apperrors.NewValidationError("userId", msgUserIDMissing)
)

// AccountLinker stores a Discord id on a club user
type AccountLinker interface {
	LinkDiscord(id uuid.UUID, discordID string) error
}

// DiscordProvider is the OAuth2 side of the linking flow
type DiscordProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserProfile(ctx context.Context, token *oauth2.Token) (*DiscordProfile, error)
}

// LinkState travels through Discord in the OAuth2 state parameter
type LinkState struct {
	UserID    string `json:"userId"`
	ReturnURL string `json:"returnUrl,omitempty"`
}

// LinkService links club accounts to Discord accounts
type LinkService struct {
	provider    DiscordProvider
	accounts    AccountLinker
	frontendURL string
	configured  bool
}

// NewLinkService creates a new linking service. A nil provider disables the flow.
func NewLinkService(provider DiscordProvider, accounts AccountLinker, frontendURL string) *LinkService {
	return &LinkService{
		provider:    provider,
		accounts:    accounts,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		configured:  provider != nil,
	}
}

// LoginURL returns the Discord consent URL carrying userID and returnURL
func (s *LinkService) LoginURL(userID, returnURL string) (string, error) {
	if !s.configured {
		return "", apperrors.ErrDiscordNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return "", errUserIDMissing
	}
	state, err := json.Marshal(LinkState{UserID: userID, ReturnURL: returnURL})
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return s.provider.AuthCodeURL(string(state)), nil
}

// ParseState decodes the state parameter. Plain JSON and base64url JSON are accepted.
func ParseState(raw string) (*LinkState, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errStateMissing
	}

	data := []byte(raw)
	if !strings.HasPrefix(raw, "{") {
		decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
		if err != nil {
			return nil, errStateInvalid
		}
		data = decoded
	}

	var state LinkState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, errStateInvalid
	}
	if strings.TrimSpace(state.UserID) == "" {
		return nil, errUserIDMissing
	}
	return &state, nil
}

// Complete exchanges code, reads the Discord profile and links it to the user in state.
// It returns the frontend URL to redirect to, flagged with the outcome.
func (s *LinkService) Complete(ctx context.Context, code string, state *LinkState) string {
	log := logger.WithContext(ctx).WithField("user_id", state.UserID)

	if !s.configured {
		return s.ResultURL(state.ReturnURL, false, reasonNotConfigured)
	}

	userID, err := uuid.Parse(state.UserID)
	if err != nil {
		log.Warn("Discord link requested for an invalid user id")
		return s.ResultURL(state.ReturnURL, false, reasonUserNotFound)
	}

	token, err := s.provider.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Discord code exchange failed")
		return s.ResultURL(state.ReturnURL, false, reasonExchange)
	}

	profile, err := s.provider.GetUserProfile(ctx, token)
	if err != nil {
		log.WithError(err).Warn("Discord profile lookup failed")
		return s.ResultURL(state.ReturnURL, false, reasonExchange)
	}

	if err := s.accounts.LinkDiscord(userID, profile.ID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return s.ResultURL(state.ReturnURL, false, reasonUserNotFound)
		}
		log.WithError(err).Error("Failed to store discord id")
		return s.ResultURL(state.ReturnURL, false, reasonLink)
	}

	log.WithField("discord_id", profile.ID).Info("Discord account linked")
	return s.ResultURL(state.ReturnURL, true, "")
}

// ResultURL resolves returnURL against the frontend and appends the outcome.
// Return URLs pointing to another host fall back to the frontend.
func (s *LinkService) ResultURL(returnURL string, linked bool, reason string) string {
	target := s.safeReturnURL(returnURL)
	q := target.Query()
	q.Set("discordLinked", fmt.Sprintf("%t", linked))
	if !linked && reason != "" {
		q.Set("error", reason)
	}
	target.RawQuery = q.Encode()
	return target.String()
}

func (s *LinkService) safeReturnURL(returnURL string) *url.URL {
	base, err := url.Parse(s.frontendURL)
	if err != nil || s.frontendURL == "" {
		base = &url.URL{Path: "/"}
	}

	returnURL = strings.TrimSpace(returnURL)
	if returnURL == "" {
		return base
	}
	ref, err := url.Parse(returnURL)
	if err != nil {
		return base
	}
	if !ref.IsAbs() && ref.Host == "" {
		return base.ResolveReference(ref)
	}
	if ref.Scheme == base.Scheme && ref.Host == base.Host {
		return ref
	}
	return base
}
