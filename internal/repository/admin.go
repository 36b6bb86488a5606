package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *gorm.DB
}

// Ensure AdminRepository implements AdminRepositoryInterface
var _ AdminRepositoryInterface = (*AdminRepository)(nil)

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// GetByID retrieves an admin by its UUID
func (r *AdminRepository) GetByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetAll retrieves all admins in creation order
func (r *AdminRepository) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	err := withoutBlobs(r.db, "foto_").Order("created_at ASC").Find(&admins).Error
	return admins, err
}

// Update saves all admin fields
func (r *AdminRepository) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// Delete deletes an admin
func (r *AdminRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Admin{}, "id = ?", id).Error
}
