package repository

import (
	"strings"

	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const userPhotoPrefix = "foto_perfil_"

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by its UUID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := withoutBlobs(r.db, userPhotoPrefix).
		First(&user, "LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByDiscordIDs retrieves the users linked to any of the given Discord ids
func (r *UserRepository) GetByDiscordIDs(discordIDs []string) ([]models.User, error) {
	var users []models.User
	if len(discordIDs) == 0 {
		return users, nil
	}
	err := withoutBlobs(r.db, userPhotoPrefix).
		Where("discord_id IN ?", discordIDs).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

// GetAll retrieves all users ordered by creation date
func (r *UserRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := withoutBlobs(r.db, userPhotoPrefix).Order("created_at DESC").Find(&users).Error
	return users, err
}

// Update saves all user fields
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// UpdateDiscordID links a Discord account to the user
func (r *UserRepository) UpdateDiscordID(id uuid.UUID, discordID string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("discord_id", discordID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a user
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
