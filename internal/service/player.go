package service

import (
	"errors"
	"fmt"
	"strings"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerService handles business logic for roster players
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the data needed to create a player
type CreatePlayerRequest struct {
	Name        string        `json:"nome" form:"nome" validate:"required,max=100"`
	Title       string        `json:"titulo" form:"titulo" validate:"max=100"`
	Description string        `json:"descricao" form:"descricao"`
	TeamID      int           `json:"time" form:"time" validate:"required,min=1"`
	Instagram   string        `json:"insta" form:"insta" validate:"max=255"`
	Twitter     string        `json:"twitter" form:"twitter" validate:"max=255"`
	Twitch      string        `json:"twitch" form:"twitch" validate:"max=255"`
	Photo       *models.Image `json:"-" form:"-"`
}

// UpdatePlayerRequest represents a partial player update
type UpdatePlayerRequest struct {
	Name        *string       `json:"nome" form:"nome" validate:"omitempty,max=100"`
	Title       *string       `json:"titulo" form:"titulo" validate:"omitempty,max=100"`
	Description *string       `json:"descricao" form:"descricao"`
	TeamID      *int          `json:"time" form:"time" validate:"omitempty,min=1"`
	Instagram   *string       `json:"insta" form:"insta" validate:"omitempty,max=255"`
	Twitter     *string       `json:"twitter" form:"twitter" validate:"omitempty,max=255"`
	Twitch      *string       `json:"twitch" form:"twitch" validate:"omitempty,max=255"`
	Photo       *models.Image `json:"-" form:"-"`
}

// PlayerResponse represents a player in API responses
type PlayerResponse struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"nome"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	TeamID      int       `json:"time"`
	Instagram   string    `json:"insta"`
	Twitter     string    `json:"twitter"`
	Twitch      string    `json:"twitch"`
	Photo       *string   `json:"foto"`
}

// CreatePlayer creates a new player on an existing team
func (s *PlayerService) CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := s.ensureTeam(req.TeamID); err != nil {
		return nil, err
	}

	player := &models.Player{
		Name:        strings.TrimSpace(req.Name),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		TeamID:      req.TeamID,
		Instagram:   strings.TrimSpace(req.Instagram),
		Twitter:     strings.TrimSpace(req.Twitter),
		Twitch:      strings.TrimSpace(req.Twitch),
	}
	replaceImage(&player.Photo, req.Photo)

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return toPlayerResponse(player), nil
}

// GetAllPlayers retrieves players, optionally restricted to one team
func (s *PlayerService) GetAllPlayers(teamID *int) ([]PlayerResponse, error) {
	var (
		players []models.Player
		err     error
	)
	if teamID != nil {
		players, err = s.repo.GetByTeamID(*teamID)
	} else {
		players, err = s.repo.GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	return toPlayerResponses(players), nil
}

// GetPlayerByID retrieves a player by id
func (s *PlayerService) GetPlayerByID(id uuid.UUID) (*PlayerResponse, error) {
	player, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return toPlayerResponse(player), nil
}

// UpdatePlayer applies a partial update
func (s *PlayerService) UpdatePlayer(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := requireText(req.Name, fieldMessages["nome.required"]); err != nil {
		return nil, err
	}

	player, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.TeamID != nil && *req.TeamID != player.TeamID {
		if err := s.ensureTeam(*req.TeamID); err != nil {
			return nil, err
		}
		player.TeamID = *req.TeamID
	}
	setText(&player.Name, req.Name)
	setText(&player.Title, req.Title)
	setText(&player.Description, req.Description)
	setText(&player.Instagram, req.Instagram)
	setText(&player.Twitter, req.Twitter)
	setText(&player.Twitch, req.Twitch)
	player.Name = strings.TrimSpace(player.Name)
	replaceImage(&player.Photo, req.Photo)

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return toPlayerResponse(player), nil
}

// DeletePlayer deletes a player
func (s *PlayerService) DeletePlayer(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}

// GetPlayerPhoto returns the stored photo of a player
func (s *PlayerService) GetPlayerPhoto(id uuid.UUID) (*models.Image, error) {
	player, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return storedImage(player.Photo)
}

func (s *PlayerService) find(id uuid.UUID) (*models.Player, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

// ensureTeam reports a validation error when the referenced team is missing
func (s *PlayerService) ensureTeam(teamID int) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("time", fmt.Sprintf("O time %d não existe", teamID))
		}
		return fmt.Errorf("failed to get team: %w", err)
	}
	return nil
}

func toPlayerResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:          player.ID,
		Name:        player.Name,
		Title:       player.Title,
		Description: player.Description,
		TeamID:      player.TeamID,
		Instagram:   player.Instagram,
		Twitter:     player.Twitter,
		Twitch:      player.Twitch,
		Photo:       imageURL(player.Photo, "/jogadores/%s/imagem", player.ID),
	}
}

func toPlayerResponses(players []models.Player) []PlayerResponse {
	responses := make([]PlayerResponse, len(players))
	for i := range players {
		responses[i] = *toPlayerResponse(&players[i])
	}
	return responses
}
