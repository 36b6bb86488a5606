package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Team image fields served by GetTeamImage
const (
	TeamImagePhoto    = "foto"
	TeamImageGameLogo = "jogo"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	ID       int           `json:"id" form:"id" validate:"required,min=1"`
	Name     string        `json:"nome" form:"nome" validate:"required,max=100"`
	Photo    *models.Image `json:"-" form:"-"`
	GameLogo *models.Image `json:"-" form:"-"`
}

// UpdateTeamRequest represents a partial team update. The id is immutable.
type UpdateTeamRequest struct {
	Name     *string       `json:"nome" form:"nome" validate:"omitempty,max=100"`
	Photo    *models.Image `json:"-" form:"-"`
	GameLogo *models.Image `json:"-" form:"-"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID       int     `json:"id"`
	Name     string  `json:"nome"`
	Photo    *string `json:"foto"`
	GameLogo *string `json:"jogo"`
}

// CreateTeam creates a team with a client chosen id
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	name := strings.TrimSpace(req.Name)
	if _, err := s.repo.GetByID(req.ID); err == nil {
		return nil, apperrors.NewAlreadyExistsError("team", "ID", strconv.Itoa(req.ID))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check team id: %w", err)
	}
	if err := s.ensureNameFree(name, 0); err != nil {
		return nil, err
	}

	team := &models.Team{ID: req.ID, Name: name}
	replaceImage(&team.Photo, req.Photo)
	replaceImage(&team.GameLogo, req.GameLogo)

	if err := s.repo.Create(team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, s.duplicateFromConstraint(err, team)
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetAllTeams retrieves every team
func (s *TeamService) GetAllTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses, nil
}

// GetTeamByID retrieves a team by id
func (s *TeamService) GetTeamByID(id int) (*TeamResponse, error) {
	team, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// UpdateTeam applies a partial update
func (s *TeamService) UpdateTeam(id int, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := requireText(req.Name, fieldMessages["nome.required"]); err != nil {
		return nil, err
	}

	team, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if !strings.EqualFold(name, team.Name) {
			if err := s.ensureNameFree(name, team.ID); err != nil {
				return nil, err
			}
		}
		team.Name = name
	}
	replaceImage(&team.Photo, req.Photo)
	replaceImage(&team.GameLogo, req.GameLogo)

	if err := s.repo.Update(team); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("team", "nome", team.Name)
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// DeleteTeam deletes a team that no player references
func (s *TeamService) DeleteTeam(id int) error {
	if _, err := s.find(id); err != nil {
		return err
	}

	count, err := s.playerRepo.CountByTeamID(id)
	if err != nil {
		return fmt.Errorf("failed to count team players: %w", err)
	}
	if count > 0 {
		return apperrors.ErrTeamHasPlayers
	}

	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return apperrors.ErrTeamHasPlayers
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// GetTeamImage returns the photo or the game logo of a team
func (s *TeamService) GetTeamImage(id int, field string) (*models.Image, error) {
	team, err := s.find(id)
	if err != nil {
		return nil, err
	}
	switch field {
	case TeamImagePhoto:
		return storedImage(team.Photo)
	case TeamImageGameLogo:
		return storedImage(team.GameLogo)
	}
	return nil, apperrors.ErrImageNotFound
}

// GetTeamPlayers lists the players of a team
func (s *TeamService) GetTeamPlayers(id int) ([]PlayerResponse, error) {
	if _, err := s.find(id); err != nil {
		return nil, err
	}
	players, err := s.playerRepo.GetByTeamID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team players: %w", err)
	}
	return toPlayerResponses(players), nil
}

func (s *TeamService) find(id int) (*models.Team, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) ensureNameFree(name string, self int) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check team name: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.NewAlreadyExistsError("team", "nome", name)
	}
	return nil
}

// duplicateFromConstraint picks the field message for a unique violation
// raised by a concurrent insert
func (s *TeamService) duplicateFromConstraint(err error, team *models.Team) error {
	if strings.Contains(repository.ViolatedConstraint(err), "name") {
		return apperrors.NewAlreadyExistsError("team", "nome", team.Name)
	}
	return apperrors.NewAlreadyExistsError("team", "ID", strconv.Itoa(team.ID))
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:       team.ID,
		Name:     team.Name,
		Photo:    imageURL(team.Photo, "/times/%d/foto", team.ID),
		GameLogo: imageURL(team.GameLogo, "/times/%d/jogo", team.ID),
	}
}
