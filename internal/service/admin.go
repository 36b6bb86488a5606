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

// AdminService handles business logic for staff profiles
type AdminService struct {
	repo      repository.AdminRepositoryInterface
	validator *validator.Validate
}

// Ensure AdminService implements AdminServiceInterface
var _ AdminServiceInterface = (*AdminService)(nil)

// NewAdminService creates a new admin service
func NewAdminService(repo repository.AdminRepositoryInterface, validator *validator.Validate) *AdminService {
	return &AdminService{
		repo:      repo,
		validator: validator,
	}
}

// CreateAdminRequest represents the data needed to create an admin profile
type CreateAdminRequest struct {
	Name        string        `json:"nome" form:"nome" validate:"required,max=100"`
	Title       string        `json:"titulo" form:"titulo" validate:"max=100"`
	Description string        `json:"descricao" form:"descricao"`
	Instagram   string        `json:"insta" form:"insta" validate:"max=255"`
	Twitter     string        `json:"twitter" form:"twitter" validate:"max=255"`
	Twitch      string        `json:"twitch" form:"twitch" validate:"max=255"`
	Photo       *models.Image `json:"-" form:"-"`
}

// UpdateAdminRequest represents a partial admin update
type UpdateAdminRequest struct {
	Name        *string       `json:"nome" form:"nome" validate:"omitempty,max=100"`
	Title       *string       `json:"titulo" form:"titulo" validate:"omitempty,max=100"`
	Description *string       `json:"descricao" form:"descricao"`
	Instagram   *string       `json:"insta" form:"insta" validate:"omitempty,max=255"`
	Twitter     *string       `json:"twitter" form:"twitter" validate:"omitempty,max=255"`
	Twitch      *string       `json:"twitch" form:"twitch" validate:"omitempty,max=255"`
	Photo       *models.Image `json:"-" form:"-"`
}

// AdminResponse represents an admin in API responses
type AdminResponse struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"nome"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	Instagram   string    `json:"insta"`
	Twitter     string    `json:"twitter"`
	Twitch      string    `json:"twitch"`
	Photo       *string   `json:"foto"`
}

// CreateAdmin creates a new admin profile
func (s *AdminService) CreateAdmin(req *CreateAdminRequest) (*AdminResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	admin := &models.Admin{
		Name:        strings.TrimSpace(req.Name),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Instagram:   strings.TrimSpace(req.Instagram),
		Twitter:     strings.TrimSpace(req.Twitter),
		Twitch:      strings.TrimSpace(req.Twitch),
	}
	replaceImage(&admin.Photo, req.Photo)

	if err := s.repo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return toAdminResponse(admin), nil
}

// GetAllAdmins retrieves every admin profile
func (s *AdminService) GetAllAdmins() ([]AdminResponse, error) {
	admins, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get admins: %w", err)
	}
	responses := make([]AdminResponse, len(admins))
	for i := range admins {
		responses[i] = *toAdminResponse(&admins[i])
	}
	return responses, nil
}

// GetAdminByID retrieves an admin profile by id
func (s *AdminService) GetAdminByID(id uuid.UUID) (*AdminResponse, error) {
	admin, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

// UpdateAdmin applies a partial update
func (s *AdminService) UpdateAdmin(id uuid.UUID, req *UpdateAdminRequest) (*AdminResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := requireText(req.Name, fieldMessages["nome.required"]); err != nil {
		return nil, err
	}

	admin, err := s.find(id)
	if err != nil {
		return nil, err
	}

	setText(&admin.Name, req.Name)
	setText(&admin.Title, req.Title)
	setText(&admin.Description, req.Description)
	setText(&admin.Instagram, req.Instagram)
	setText(&admin.Twitter, req.Twitter)
	setText(&admin.Twitch, req.Twitch)
	admin.Name = strings.TrimSpace(admin.Name)
	replaceImage(&admin.Photo, req.Photo)

	if err := s.repo.Update(admin); err != nil {
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}
	return toAdminResponse(admin), nil
}

// DeleteAdmin deletes an admin profile
func (s *AdminService) DeleteAdmin(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	return nil
}

// GetAdminPhoto returns the stored photo of an admin
func (s *AdminService) GetAdminPhoto(id uuid.UUID) (*models.Image, error) {
	admin, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return storedImage(admin.Photo)
}

func (s *AdminService) find(id uuid.UUID) (*models.Admin, error) {
	admin, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return admin, nil
}

func toAdminResponse(admin *models.Admin) *AdminResponse {
	return &AdminResponse{
		ID:          admin.ID,
		Name:        admin.Name,
		Title:       admin.Title,
		Description: admin.Description,
		Instagram:   admin.Instagram,
		Twitter:     admin.Twitter,
		Twitch:      admin.Twitch,
		Photo:       imageURL(admin.Photo, "/admins/%s/foto", admin.ID),
	}
}
