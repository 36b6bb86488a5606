package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tournament image fields served by GetTournamentImage
const (
	TournamentImageBanner    = "image"
	TournamentImageGameIcon  = "gameIcon"
	TournamentImageOrganizer = "organizerImage"
)

// accepted startDate layouts, tried in order
var startDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02", "02/01/2006"}

// TournamentService handles business logic for tournaments
type TournamentService struct {
	repo      repository.TournamentRepositoryInterface
	validator *validator.Validate
}

// Ensure TournamentService implements TournamentServiceInterface
var _ TournamentServiceInterface = (*TournamentService)(nil)

// NewTournamentService creates a new tournament service
func NewTournamentService(repo repository.TournamentRepositoryInterface, validator *validator.Validate) *TournamentService {
	return &TournamentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTournamentRequest represents the data needed to create a tournament
type CreateTournamentRequest struct {
	Name                   string        `json:"name" form:"name" validate:"required,max=200"`
	Description            string        `json:"description" form:"description"`
	Price                  string        `json:"price" form:"price" validate:"max=100"`
	GameName               string        `json:"gameName" form:"gameName" validate:"max=100"`
	StartDate              string        `json:"startDate" form:"startDate"`
	FirstPrize             string        `json:"firstPrize" form:"firstPrize" validate:"max=200"`
	SecondPrize            string        `json:"secondPrize" form:"secondPrize" validate:"max=200"`
	ThirdPrize             string        `json:"thirdPrize" form:"thirdPrize" validate:"max=200"`
	RegistrationLink       string        `json:"registrationLink" form:"registrationLink" validate:"max=500"`
	TeamPosition           string        `json:"teamPosition" form:"teamPosition" validate:"max=100"`
	PerformanceDescription string        `json:"performanceDescription" form:"performanceDescription"`
	Status                 string        `json:"status" form:"status" validate:"omitempty,tournamentstatus" example:"campeonatos"`
	Image                  *models.Image `json:"-" form:"-"`
	GameIcon               *models.Image `json:"-" form:"-"`
	OrganizerImage         *models.Image `json:"-" form:"-"`
}

// UpdateTournamentRequest represents a partial tournament update
type UpdateTournamentRequest struct {
	Name                   *string       `json:"name" form:"name" validate:"omitempty,max=200"`
	Description            *string       `json:"description" form:"description"`
	Price                  *string       `json:"price" form:"price" validate:"omitempty,max=100"`
	GameName               *string       `json:"gameName" form:"gameName" validate:"omitempty,max=100"`
	StartDate              *string       `json:"startDate" form:"startDate"`
	FirstPrize             *string       `json:"firstPrize" form:"firstPrize" validate:"omitempty,max=200"`
	SecondPrize            *string       `json:"secondPrize" form:"secondPrize" validate:"omitempty,max=200"`
	ThirdPrize             *string       `json:"thirdPrize" form:"thirdPrize" validate:"omitempty,max=200"`
	RegistrationLink       *string       `json:"registrationLink" form:"registrationLink" validate:"omitempty,max=500"`
	TeamPosition           *string       `json:"teamPosition" form:"teamPosition" validate:"omitempty,max=100"`
	PerformanceDescription *string       `json:"performanceDescription" form:"performanceDescription"`
	Status                 *string       `json:"status" form:"status" validate:"omitempty,tournamentstatus"`
	Image                  *models.Image `json:"-" form:"-"`
	GameIcon               *models.Image `json:"-" form:"-"`
	OrganizerImage         *models.Image `json:"-" form:"-"`
}

// MoveTournamentRequest moves a tournament to another board
type MoveTournamentRequest struct {
	Status string `json:"status" validate:"required,tournamentstatus" example:"passados"`
}

// TournamentResponse represents a tournament in API responses
type TournamentResponse struct {
	ID                     uuid.UUID  `json:"_id"`
	Name                   string     `json:"name"`
	Description            string     `json:"description"`
	Price                  string     `json:"price"`
	GameName               string     `json:"gameName"`
	StartDate              *time.Time `json:"startDate"`
	FirstPrize             string     `json:"firstPrize"`
	SecondPrize            string     `json:"secondPrize"`
	ThirdPrize             string     `json:"thirdPrize"`
	RegistrationLink       string     `json:"registrationLink"`
	TeamPosition           string     `json:"teamPosition"`
	PerformanceDescription string     `json:"performanceDescription"`
	Status                 string     `json:"status"`
	Image                  *string    `json:"image"`
	GameIcon               *string    `json:"gameIcon"`
	OrganizerImage         *string    `json:"organizerImage"`
	CreatedAt              time.Time  `json:"createdAt"`
	UpdatedAt              time.Time  `json:"updatedAt"`
}

// TournamentListResponse wraps the tournament list
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"campeonatos"`
}

// CreateTournament creates a new tournament
func (s *TournamentService) CreateTournament(req *CreateTournamentRequest) (*TournamentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	startDate, err := parseStartDate(req.StartDate)
	if err != nil {
		return nil, err
	}

	status := models.TournamentStatusOpen
	if req.Status != "" {
		status = models.TournamentStatus(req.Status)
	}

	tournament := &models.Tournament{
		Name:                   strings.TrimSpace(req.Name),
		Description:            req.Description,
		Price:                  req.Price,
		GameName:               req.GameName,
		StartDate:              startDate,
		FirstPrize:             req.FirstPrize,
		SecondPrize:            req.SecondPrize,
		ThirdPrize:             req.ThirdPrize,
		RegistrationLink:       strings.TrimSpace(req.RegistrationLink),
		TeamPosition:           req.TeamPosition,
		PerformanceDescription: req.PerformanceDescription,
		Status:                 status,
	}
	replaceImage(&tournament.Image, req.Image)
	replaceImage(&tournament.GameIcon, req.GameIcon)
	replaceImage(&tournament.OrganizerImage, req.OrganizerImage)

	if err := s.repo.Create(tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return toTournamentResponse(tournament), nil
}

// GetAllTournaments lists tournaments, optionally for a single board
func (s *TournamentService) GetAllTournaments(status string) (*TournamentListResponse, error) {
	if status != "" && !models.TournamentStatus(status).IsValid() {
		return nil, apperrors.NewValidationErrors(fmt.Sprintf("`%s` is not a valid enum value for path `status`.", status))
	}

	tournaments, err := s.repo.GetAll(models.TournamentStatus(status))
	if err != nil {
		return nil, fmt.Errorf("failed to get tournaments: %w", err)
	}

	responses := make([]TournamentResponse, len(tournaments))
	for i := range tournaments {
		responses[i] = *toTournamentResponse(&tournaments[i])
	}
	return &TournamentListResponse{Tournaments: responses}, nil
}

// GetTournamentByID retrieves a tournament by id
func (s *TournamentService) GetTournamentByID(id uuid.UUID) (*TournamentResponse, error) {
	tournament, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return toTournamentResponse(tournament), nil
}

// UpdateTournament applies a partial update
func (s *TournamentService) UpdateTournament(id uuid.UUID, req *UpdateTournamentRequest) (*TournamentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := requireText(req.Name, fieldMessages["name.required"]); err != nil {
		return nil, err
	}

	tournament, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		tournament.StartDate = startDate
	}
	if req.Status != nil && *req.Status != "" {
		tournament.Status = models.TournamentStatus(*req.Status)
	}
	setText(&tournament.Name, req.Name)
	setText(&tournament.Description, req.Description)
	setText(&tournament.Price, req.Price)
	setText(&tournament.GameName, req.GameName)
	setText(&tournament.FirstPrize, req.FirstPrize)
	setText(&tournament.SecondPrize, req.SecondPrize)
	setText(&tournament.ThirdPrize, req.ThirdPrize)
	setText(&tournament.RegistrationLink, req.RegistrationLink)
	setText(&tournament.TeamPosition, req.TeamPosition)
	setText(&tournament.PerformanceDescription, req.PerformanceDescription)
	tournament.Name = strings.TrimSpace(tournament.Name)
	replaceImage(&tournament.Image, req.Image)
	replaceImage(&tournament.GameIcon, req.GameIcon)
	replaceImage(&tournament.OrganizerImage, req.OrganizerImage)

	if err := s.repo.Update(tournament); err != nil {
		return nil, fmt.Errorf("failed to update tournament: %w", err)
	}
	return toTournamentResponse(tournament), nil
}

// MoveTournament changes the board a tournament is listed on
func (s *TournamentService) MoveTournament(id uuid.UUID, req *MoveTournamentRequest) (*TournamentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if err := s.repo.UpdateStatus(id, models.TournamentStatus(req.Status)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to move tournament: %w", err)
	}
	return s.GetTournamentByID(id)
}

// DeleteTournament deletes a tournament
func (s *TournamentService) DeleteTournament(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return nil
}

// GetTournamentImage returns one of the tournament images
func (s *TournamentService) GetTournamentImage(id uuid.UUID, field string) (*models.Image, error) {
	tournament, err := s.find(id)
	if err != nil {
		return nil, err
	}
	switch field {
	case TournamentImageBanner:
		return storedImage(tournament.Image)
	case TournamentImageGameIcon:
		return storedImage(tournament.GameIcon)
	case TournamentImageOrganizer:
		return storedImage(tournament.OrganizerImage)
	}
	return nil, apperrors.ErrImageNotFound
}

func (s *TournamentService) find(id uuid.UUID) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return tournament, nil
}

// parseStartDate accepts the layouts sent by the admin forms; blank clears the date
func parseStartDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.NewValidationError("startDate", fmt.Sprintf("Data de início inválida: %s", value))
}

func toTournamentResponse(t *models.Tournament) *TournamentResponse {
	return &TournamentResponse{
		ID:                     t.ID,
		Name:                   t.Name,
		Description:            t.Description,
		Price:                  t.Price,
		GameName:               t.GameName,
		StartDate:              t.StartDate,
		FirstPrize:             t.FirstPrize,
		SecondPrize:            t.SecondPrize,
		ThirdPrize:             t.ThirdPrize,
		RegistrationLink:       t.RegistrationLink,
		TeamPosition:           t.TeamPosition,
		PerformanceDescription: t.PerformanceDescription,
		Status:                 string(t.Status),
		Image:                  imageURL(t.Image, "/campeonatos/%s/image", t.ID),
		GameIcon:               imageURL(t.GameIcon, "/campeonatos/%s/gameIcon", t.ID),
		OrganizerImage:         imageURL(t.OrganizerImage, "/campeonatos/%s/organizerImage", t.ID),
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}
