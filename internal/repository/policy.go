package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PolicyRepository handles database operations for policy sections
type PolicyRepository struct {
	db *gorm.DB
}

// Ensure PolicyRepository implements PolicyRepositoryInterface
var _ PolicyRepositoryInterface = (*PolicyRepository)(nil)

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Create creates a new policy
func (r *PolicyRepository) Create(policy *models.Policy) error {
	return r.db.Create(policy).Error
}

// GetByID retrieves a policy by its UUID
func (r *PolicyRepository) GetByID(id uuid.UUID) (*models.Policy, error) {
	var policy models.Policy
	if err := r.db.First(&policy, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}

// GetAll retrieves all policies in page order
func (r *PolicyRepository) GetAll() ([]models.Policy, error) {
	var policies []models.Policy
	err := r.db.Order("created_at ASC").Find(&policies).Error
	return policies, err
}

// Update saves all policy fields
func (r *PolicyRepository) Update(policy *models.Policy) error {
	return r.db.Save(policy).Error
}

// Delete deletes a policy
func (r *PolicyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Policy{}, "id = ?", id).Error
}
