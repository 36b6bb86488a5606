package repository

import (
	"maua-esports-backend/internal/database/models"

	"gorm.io/gorm"
)

// NewsItemRepository stores the single home page news item
type NewsItemRepository struct {
	db *gorm.DB
}

// Ensure NewsItemRepository implements NewsItemRepositoryInterface
var _ NewsItemRepositoryInterface = (*NewsItemRepository)(nil)

// NewNewsItemRepository creates a new news item repository
func NewNewsItemRepository(db *gorm.DB) *NewsItemRepository {
	return &NewsItemRepository{db: db}
}

// Get returns the most recently saved news item
func (r *NewsItemRepository) Get() (*models.NewsItem, error) {
	var item models.NewsItem
	if err := r.db.Order("updated_at DESC").First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Save inserts the item, or updates it when it already has an id
func (r *NewsItemRepository) Save(item *models.NewsItem) error {
	return r.db.Save(item).Error
}

// PresentationRepository stores the single home page presentation
type PresentationRepository struct {
	db *gorm.DB
}

// Ensure PresentationRepository implements PresentationRepositoryInterface
var _ PresentationRepositoryInterface = (*PresentationRepository)(nil)

// NewPresentationRepository creates a new presentation repository
func NewPresentationRepository(db *gorm.DB) *PresentationRepository {
	return &PresentationRepository{db: db}
}

// Get returns the most recently saved presentation
func (r *PresentationRepository) Get() (*models.Presentation, error) {
	var presentation models.Presentation
	if err := r.db.Order("updated_at DESC").First(&presentation).Error; err != nil {
		return nil, err
	}
	return &presentation, nil
}

// Save inserts the presentation, or updates it when it already has an id
func (r *PresentationRepository) Save(presentation *models.Presentation) error {
	return r.db.Save(presentation).Error
}
