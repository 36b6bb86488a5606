package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const playerPhotoPrefix = "foto_"

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// Ensure PlayerRepository implements PlayerRepositoryInterface
var _ PlayerRepositoryInterface = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Omit("Team").Create(player).Error
}

// GetByID retrieves a player by its UUID
func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	if err := r.db.First(&player, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

// GetAll retrieves all players ordered by name
func (r *PlayerRepository) GetAll() ([]models.Player, error) {
	var players []models.Player
	err := withoutBlobs(r.db, playerPhotoPrefix).Order("name ASC").Find(&players).Error
	return players, err
}

// GetByTeamID retrieves the players of a team
func (r *PlayerRepository) GetByTeamID(teamID int) ([]models.Player, error) {
	var players []models.Player
	err := withoutBlobs(r.db, playerPhotoPrefix).
		Where("team_id = ?", teamID).
		Order("name ASC").
		Find(&players).Error
	return players, err
}

// CountByTeamID counts players referencing a team
func (r *PlayerRepository) CountByTeamID(teamID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Player{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Update saves all player fields
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Omit("Team").Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
