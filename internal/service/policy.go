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

// PolicyService handles the sections of the policies page
type PolicyService struct {
	repo      repository.PolicyRepositoryInterface
	validator *validator.Validate
}

// Ensure PolicyService implements PolicyServiceInterface
var _ PolicyServiceInterface = (*PolicyService)(nil)

// NewPolicyService creates a new policy service
func NewPolicyService(repo repository.PolicyRepositoryInterface, validator *validator.Validate) *PolicyService {
	return &PolicyService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePolicyRequest represents the data needed to create a policy section
type CreatePolicyRequest struct {
	Title       string `json:"titulo" validate:"required,max=200"`
	Description string `json:"descricao" validate:"required"`
}

// UpdatePolicyRequest represents a partial policy update
type UpdatePolicyRequest struct {
	Title       *string `json:"titulo" validate:"omitempty,max=200"`
	Description *string `json:"descricao"`
}

// PolicyResponse represents a policy section in API responses
type PolicyResponse struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descricao"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreatePolicy creates a policy section
func (s *PolicyService) CreatePolicy(req *CreatePolicyRequest) (*PolicyResponse, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	policy := &models.Policy{Title: req.Title, Description: req.Description}
	if err := s.repo.Create(policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return toPolicyResponse(policy), nil
}

// GetAllPolicies lists the policy sections in page order
func (s *PolicyService) GetAllPolicies() ([]PolicyResponse, error) {
	policies, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get policies: %w", err)
	}
	responses := make([]PolicyResponse, len(policies))
	for i := range policies {
		responses[i] = *toPolicyResponse(&policies[i])
	}
	return responses, nil
}

// UpdatePolicy applies a partial update
func (s *PolicyService) UpdatePolicy(id uuid.UUID, req *UpdatePolicyRequest) (*PolicyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if err := requireText(req.Title, fieldMessages["titulo.required"]); err != nil {
		return nil, err
	}
	if err := requireText(req.Description, fieldMessages["descricao.required"]); err != nil {
		return nil, err
	}

	policy, err := s.find(id)
	if err != nil {
		return nil, err
	}
	setText(&policy.Title, req.Title)
	setText(&policy.Description, req.Description)
	policy.Title = strings.TrimSpace(policy.Title)

	if err := s.repo.Update(policy); err != nil {
		return nil, fmt.Errorf("failed to update policy: %w", err)
	}
	return toPolicyResponse(policy), nil
}

// DeletePolicy deletes a policy section
func (s *PolicyService) DeletePolicy(id uuid.UUID) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete policy: %w", err)
	}
	return nil
}

func (s *PolicyService) find(id uuid.UUID) (*models.Policy, error) {
	policy, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPolicyNotFound
		}
		return nil, fmt.Errorf("failed to get policy: %w", err)
	}
	return policy, nil
}

func toPolicyResponse(policy *models.Policy) *PolicyResponse {
	return &PolicyResponse{
		ID:          policy.ID,
		Title:       policy.Title,
		Description: policy.Description,
		CreatedAt:   policy.CreatedAt,
		UpdatedAt:   policy.UpdatedAt,
	}
}
