package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("Error message prefers user facing text", func(t *testing.T) {
		assert.Equal(t, "Política não encontrada", ErrPolicyNotFound.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team", Message: "Time não encontrado"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "player"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get user: %w", ErrUserNotFound)
		assert.True(t, errors.Is(wrapped, ErrUserNotFound))
		assert.False(t, errors.Is(wrapped, ErrTeamNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrTeamHasPlayers))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewAlreadyExistsError("user", "email", "22.00000-0@maua.br")
		assert.Equal(t, "O email 22.00000-0@maua.br já está em uso.", err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		assert.Equal(t, "O nome informado já está em uso.", ErrTeamNameExists.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is matches sentinel by entity and field", func(t *testing.T) {
		err := NewAlreadyExistsError("team", "nome", "Valorant")
		assert.True(t, errors.Is(err, ErrTeamNameExists))
		assert.False(t, errors.Is(err, ErrTeamIDExists))
		assert.False(t, errors.Is(err, ErrUserExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message single", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "Email inválido"}
		assert.Equal(t, "Email inválido", err.Error())
	})

	t.Run("Error message joined", func(t *testing.T) {
		err := NewValidationErrors("O nome é obrigatório", "O time é obrigatório")
		assert.Equal(t, "O nome é obrigatório; O time é obrigatório", err.Error())
	})

	t.Run("First returns the first message", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"a", "b"}}
		assert.Equal(t, "a", err.First())
		assert.Equal(t, "ID inválido", ErrInvalidID.First())
	})

	t.Run("ValidationMessages unwraps", func(t *testing.T) {
		wrapped := fmt.Errorf("validation failed: %w", NewValidationErrors("x", "y"))
		assert.Equal(t, []string{"x", "y"}, ValidationMessages(wrapped))
		assert.Nil(t, ValidationMessages(ErrTeamNotFound))
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsConflict", func(t *testing.T) {
		assert.True(t, IsConflict(ErrTeamHasPlayers))
		assert.False(t, IsConflict(ErrUnauthorized))
	})

	t.Run("IsAuthentication", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUnauthorized))
		assert.True(t, IsAuthentication(NewAuthenticationError("token expired")))
		assert.False(t, IsAuthentication(NewAuthorizationError("forbidden")))
	})

	t.Run("IsAuthorization", func(t *testing.T) {
		assert.True(t, IsAuthorization(NewAuthorizationError("forbidden")))
		assert.False(t, IsAuthorization(ErrUnauthorized))
	})

	t.Run("IsUpstream unwraps the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := fmt.Errorf("failed to list trains: %w", NewUpstreamError("modality api", 0, cause))
		assert.True(t, IsUpstream(err))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, "modality api responded with status 500", NewUpstreamError("modality api", 500, nil).Error())
	})

	t.Run("IsConfiguration", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrDiscordNotConfigured))
		assert.False(t, IsConfiguration(ErrTeamNotFound))
	})

	t.Run("IsUnavailable", func(t *testing.T) {
		assert.True(t, IsUnavailable(ErrStatsNotReady))
		assert.True(t, IsUnavailable(fmt.Errorf("channel mauaesports: %w", ErrStatsNotReady)))
		assert.False(t, IsUnavailable(ErrChannelNotFound))
		assert.False(t, IsNotFound(ErrStatsNotReady))
	})
}
