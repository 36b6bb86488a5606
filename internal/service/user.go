package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for club users
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// CreateUserRequest represents the data needed to create a user
type CreateUserRequest struct {
	Email     string        `json:"email" form:"email" validate:"required,mauaemail"`
	Role      string        `json:"tipoUsuario" form:"tipoUsuario" validate:"omitempty,usertype" example:"Jogador"`
	DiscordID *string       `json:"discordID" form:"discordID" validate:"omitempty,discordid"`
	Team      string        `json:"time" form:"time" validate:"max=100"`
	Photo     *models.Image `json:"-" form:"-"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Email     *string       `json:"email" form:"email" validate:"omitempty,mauaemail"`
	Role      *string       `json:"tipoUsuario" form:"tipoUsuario" validate:"omitempty,usertype"`
	DiscordID *string       `json:"discordID" form:"discordID" validate:"omitempty,discordid"`
	Team      *string       `json:"time" form:"time" validate:"omitempty,max=100"`
	Photo     *models.Image `json:"-" form:"-"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uuid.UUID `json:"_id"`
	Email        string    `json:"email"`
	Role         string    `json:"tipoUsuario"`
	DiscordID    *string   `json:"discordID"`
	Team         string    `json:"time"`
	ProfilePhoto *string   `json:"fotoPerfil"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateUser creates a new user
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	email := normalizeEmail(req.Email)
	if err := s.ensureEmailFree(email, uuid.Nil); err != nil {
		return nil, err
	}

	role := models.UserRolePlayer
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := &models.User{
		Email:     email,
		Role:      role,
		DiscordID: normalizeDiscordID(req.DiscordID),
		Team:      strings.TrimSpace(req.Team),
	}
	replaceImage(&user.ProfilePhoto, req.Photo)

	if err := s.repo.Create(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("user", "email", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// GetAllUsers retrieves every user
func (s *UserService) GetAllUsers() ([]UserResponse, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return s.toResponses(users), nil
}

// GetUserByID retrieves a user by id
func (s *UserService) GetUserByID(id uuid.UUID) (*UserResponse, error) {
	user, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*UserResponse, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email", "O email é obrigatório")
	}
	user, err := s.repo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return s.toResponse(user), nil
}

// GetUsersByDiscordIDs retrieves the users linked to the given Discord ids.
// Unknown ids are ignored.
func (s *UserService) GetUsersByDiscordIDs(discordIDs []string) ([]UserResponse, error) {
	ids := make([]string, 0, len(discordIDs))
	seen := make(map[string]struct{}, len(discordIDs))
	for _, id := range discordIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	users, err := s.repo.GetByDiscordIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get users by discord ids: %w", err)
	}
	return s.toResponses(users), nil
}

// UpdateUser applies a partial update
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.find(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(email, user.ID); err != nil {
				return nil, err
			}
			user.Email = email
		}
	}
	if req.Role != nil && *req.Role != "" {
		user.Role = models.UserRole(*req.Role)
	}
	if req.DiscordID != nil {
		user.DiscordID = normalizeDiscordID(req.DiscordID)
	}
	if req.Team != nil {
		user.Team = strings.TrimSpace(*req.Team)
	}
	replaceImage(&user.ProfilePhoto, req.Photo)

	if err := s.repo.Update(user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.NewAlreadyExistsError("user", "email", user.Email)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// GetProfilePhoto returns the stored profile photo of a user
func (s *UserService) GetProfilePhoto(id uuid.UUID) (*models.Image, error) {
	user, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return storedImage(user.ProfilePhoto)
}

// LinkDiscord stores the Discord account id on the user
func (s *UserService) LinkDiscord(id uuid.UUID, discordID string) error {
	if !discordIDPattern.MatchString(discordID) {
		return apperrors.NewValidationError("discordID", fieldMessages["discordID.discordid"])
	}
	if err := s.repo.UpdateDiscordID(id, discordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to link discord account: %w", err)
	}
	return nil
}

func (s *UserService) find(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ensureEmailFree fails when another user than self already owns email
func (s *UserService) ensureEmailFree(email string, self uuid.UUID) error {
	existing, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID != self {
		return apperrors.NewAlreadyExistsError("user", "email", email)
	}
	return nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		Role:         string(user.Role),
		DiscordID:    user.DiscordID,
		Team:         user.Team,
		ProfilePhoto: imageURL(user.ProfilePhoto, "/usuarios/%s/foto", user.ID),
		CreatedAt:    user.CreatedAt,
	}
}

func (s *UserService) toResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = *s.toResponse(&users[i])
	}
	return responses
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeDiscordID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
