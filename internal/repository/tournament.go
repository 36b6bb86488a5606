package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TournamentRepository handles database operations for tournaments
type TournamentRepository struct {
	db *gorm.DB
}

// Ensure TournamentRepository implements TournamentRepositoryInterface
var _ TournamentRepositoryInterface = (*TournamentRepository)(nil)

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *gorm.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

// Create creates a new tournament
func (r *TournamentRepository) Create(tournament *models.Tournament) error {
	return r.db.Create(tournament).Error
}

// GetByID retrieves a tournament by its UUID
func (r *TournamentRepository) GetByID(id uuid.UUID) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := r.db.First(&tournament, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tournament, nil
}

// GetAll retrieves tournaments, newest first. An empty status returns every board.
func (r *TournamentRepository) GetAll(status models.TournamentStatus) ([]models.Tournament, error) {
	var tournaments []models.Tournament
	query := withoutBlobs(r.db, "image_", "game_icon_", "organizer_image_")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&tournaments).Error
	return tournaments, err
}

// Update saves all tournament fields
func (r *TournamentRepository) Update(tournament *models.Tournament) error {
	return r.db.Save(tournament).Error
}

// UpdateStatus moves a tournament to another board
func (r *TournamentRepository) UpdateStatus(id uuid.UUID, status models.TournamentStatus) error {
	result := r.db.Model(&models.Tournament{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a tournament
func (r *TournamentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Tournament{}, "id = ?", id).Error
}
