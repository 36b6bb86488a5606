package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RankingRepository handles database operations for rankings
type RankingRepository struct {
	db *gorm.DB
}

// Ensure RankingRepository implements RankingRepositoryInterface
var _ RankingRepositoryInterface = (*RankingRepository)(nil)

// NewRankingRepository creates a new ranking repository
func NewRankingRepository(db *gorm.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

// Create creates a new ranking
func (r *RankingRepository) Create(ranking *models.Ranking) error {
	return r.db.Create(ranking).Error
}

// GetByID retrieves a ranking by its UUID
func (r *RankingRepository) GetByID(id uuid.UUID) (*models.Ranking, error) {
	var ranking models.Ranking
	if err := r.db.First(&ranking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ranking, nil
}

// GetAll retrieves all rankings in creation order
func (r *RankingRepository) GetAll() ([]models.Ranking, error) {
	var rankings []models.Ranking
	err := withoutBlobs(r.db, "imagem_").Order("created_at ASC").Find(&rankings).Error
	return rankings, err
}

// Update saves all ranking fields
func (r *RankingRepository) Update(ranking *models.Ranking) error {
	return r.db.Save(ranking).Error
}

// Delete deletes a ranking
func (r *RankingRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Ranking{}, "id = ?", id).Error
}
