package repository

import (
	"strings"

	"maua-esports-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by its numeric id
func (r *TeamRepository) GetByID(id int) (*models.Team, error) {
	var team models.Team
	if err := r.db.First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by name, ignoring case
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := withoutBlobs(r.db, "foto_", "jogo_").
		First(&team, "LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams ordered by id
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := withoutBlobs(r.db, "foto_", "jogo_").Order("id ASC").Find(&teams).Error
	return teams, err
}

// Update saves all team fields
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id int) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
