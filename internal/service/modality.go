package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"
)

const modalityServiceName = "modality api"

// emptyList is returned for every read while no upstream is configured
var emptyList = json.RawMessage("[]")

// Modality is a game modality as reported by the training provider
type Modality struct {
	ID   string `json:"_id"`
	Name string `json:"Name"`
	Tag  string `json:"Tag"`
}

// Attendance is one player's presence in a training session. Timestamps are epoch milliseconds.
type Attendance struct {
	PlayerID          string   `json:"PlayerId"`
	EntranceTimestamp *float64 `json:"EntranceTimestamp"`
	ExitTimestamp     *float64 `json:"ExitTimestamp"`
}

// Train is a training session of a modality
type Train struct {
	ModalityID      string       `json:"ModalityId"`
	Status          string       `json:"Status"`
	StartTimestamp  float64      `json:"StartTimestamp"`
	AttendedPlayers []Attendance `json:"AttendedPlayers"`
}

// TrainStatusEnded marks a finished session
const TrainStatusEnded = "ENDED"

// ModalityService proxies the external modality and training provider
type ModalityService struct {
	client  *http.Client
	baseURL string
	token   string
}

// Ensure ModalityService implements ModalityServiceInterface
var _ ModalityServiceInterface = (*ModalityService)(nil)

// NewModalityService creates a client for the provider at baseURL.
// An empty baseURL serves placeholder empty lists.
func NewModalityService(client *http.Client, baseURL, token string) *ModalityService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ModalityService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// Configured reports whether an upstream is set
func (s *ModalityService) Configured() bool {
	return s.baseURL != ""
}

// Trains returns the raw training session list
func (s *ModalityService) Trains(ctx context.Context) (json.RawMessage, error) {
	if !s.Configured() {
		return emptyList, nil
	}
	return s.do(ctx, http.MethodGet, "/trains/all", nil)
}

// Modalities returns the raw modality list
func (s *ModalityService) Modalities(ctx context.Context) (json.RawMessage, error) {
	if !s.Configured() {
		return emptyList, nil
	}
	return s.do(ctx, http.MethodGet, "/modality/all", nil)
}

// UpdateModality forwards a modality patch; without upstream the payload is echoed
func (s *ModalityService) UpdateModality(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(payload) {
		return nil, apperrors.NewValidationError("body", "JSON inválido")
	}
	if !s.Configured() {
		return payload, nil
	}
	return s.do(ctx, http.MethodPatch, "/modality", payload)
}

// ListTrains fetches and decodes the training sessions
func (s *ModalityService) ListTrains(ctx context.Context) ([]Train, error) {
	raw, err := s.Trains(ctx)
	if err != nil {
		return nil, err
	}
	var trains []Train
	if err := json.Unmarshal(raw, &trains); err != nil {
		return nil, apperrors.NewUpstreamError(modalityServiceName, 0, fmt.Errorf("failed to decode trains: %w", err))
	}
	return trains, nil
}

// ListModalities fetches the modalities keyed by id.
// The provider answers either a list or an object keyed by id.
func (s *ModalityService) ListModalities(ctx context.Context) (map[string]Modality, error) {
	raw, err := s.Modalities(ctx)
	if err != nil {
		return nil, err
	}
	mods, err := decodeModalities(raw)
	if err != nil {
		return nil, apperrors.NewUpstreamError(modalityServiceName, 0, err)
	}
	return mods, nil
}

func decodeModalities(raw json.RawMessage) (map[string]Modality, error) {
	raw = bytes.TrimSpace(raw)
	mods := make(map[string]Modality)
	if len(raw) > 0 && raw[0] == '{' {
		var keyed map[string]Modality
		if err := json.Unmarshal(raw, &keyed); err != nil {
			return nil, fmt.Errorf("failed to decode modalities: %w", err)
		}
		for id, m := range keyed {
			if m.ID == "" {
				m.ID = id
			}
			mods[m.ID] = m
		}
		return mods, nil
	}

	var list []Modality
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode modalities: %w", err)
	}
	for _, m := range list {
		mods[m.ID] = m
	}
	return mods, nil
}

// sortedModalities orders modalities by name, then id
func sortedModalities(mods map[string]Modality) []Modality {
	list := make([]Modality, 0, len(mods))
	for _, m := range mods {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func (s *ModalityService) do(ctx context.Context, method, path string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build modality request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(modalityServiceName, 0, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(modalityServiceName, resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Modality provider returned an error")
		return nil, apperrors.NewUpstreamError(modalityServiceName, resp.StatusCode, nil)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyList, nil
	}
	if !json.Valid(data) {
		return nil, apperrors.NewUpstreamError(modalityServiceName, resp.StatusCode, fmt.Errorf("invalid JSON body"))
	}
	return data, nil
}
