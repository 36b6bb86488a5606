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

// RankingService handles rank badges
type RankingService struct {
	repo      repository.RankingRepositoryInterface
	validator *validator.Validate
}

// Ensure RankingService implements RankingServiceInterface
var _ RankingServiceInterface = (*RankingService)(nil)

// NewRankingService creates a new ranking service
func NewRankingService(repo repository.RankingRepositoryInterface, validator *validator.Validate) *RankingService {
	return &RankingService{
		repo:      repo,
		validator: validator,
	}
}

// SaveRankingRequest creates or updates a ranking; Name is optional on update
type SaveRankingRequest struct {
	Name  string        `json:"nome" form:"nome" validate:"max=100"`
	Image *models.Image `json:"-" form:"-"`
}

// RankingResponse represents a ranking in API responses
type RankingResponse struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"nome"`
	Image *string   `json:"imagem"`
}

// CreateRanking creates a new ranking
func (s *RankingService) CreateRanking(req *SaveRankingRequest) (*RankingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewValidationErrors(fieldMessages["nome.required"])
	}

	ranking := &models.Ranking{Name: strings.TrimSpace(req.Name)}
	replaceImage(&ranking.Image, req.Image)

	if err := s.repo.Create(ranking); err != nil {
		return nil, fmt.Errorf("failed to create ranking: %w", err)
	}
	return toRankingResponse(ranking), nil
}

// GetAllRankings retrieves every ranking
func (s *RankingService) GetAllRankings() ([]RankingResponse, error) {
	rankings, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get rankings: %w", err)
	}
	responses := make([]RankingResponse, len(rankings))
	for i := range rankings {
		responses[i] = *toRankingResponse(&rankings[i])
	}
	return responses, nil
}

// UpdateRanking renames a ranking and/or replaces its image
func (s *RankingService) UpdateRanking(id uuid.UUID, req *SaveRankingRequest) (*RankingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	ranking, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		ranking.Name = name
	}
	replaceImage(&ranking.Image, req.Image)

	if err := s.repo.Update(ranking); err != nil {
		return nil, fmt.Errorf("failed to update ranking: %w", err)
	}
	return toRankingResponse(ranking), nil
}

// DeleteRanking deletes a ranking
func (s *RankingService) DeleteRanking(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete ranking: %w", err)
	}
	return nil
}

// GetRankingImage returns the stored badge image
func (s *RankingService) GetRankingImage(id uuid.UUID) (*models.Image, error) {
	ranking, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return storedImage(ranking.Image)
}

func (s *RankingService) find(id uuid.UUID) (*models.Ranking, error) {
	ranking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRankingNotFound
		}
		return nil, fmt.Errorf("failed to get ranking: %w", err)
	}
	return ranking, nil
}

func toRankingResponse(ranking *models.Ranking) *RankingResponse {
	return &RankingResponse{
		ID:    ranking.ID,
		Name:  ranking.Name,
		Image: imageURL(ranking.Image, "/rankings/%s/imagem", ranking.ID),
	}
}
