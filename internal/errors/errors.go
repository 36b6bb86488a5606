package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string // user facing message, optional
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when a unique field is already taken
type AlreadyExistsError struct {
	Entity string
	Field  string // label used in the message, e.g. "email"
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("O %s %s já está em uso.", e.Field, e.Value)
	}
	if e.Field != "" {
		return fmt.Sprintf("O %s informado já está em uso.", e.Field)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity && (t.Field == "" || e.Field == t.Field)
}

// ValidationError represents a validation error. Messages holds one entry per
// failed rule, in declaration order.
type ValidationError struct {
	Field    string
	Message  string
	Messages []string
}

func (e *ValidationError) Error() string {
	if len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}
	return e.Message
}

// First returns the first failed rule message
func (e *ValidationError) First() string {
	if len(e.Messages) > 0 {
		return e.Messages[0]
	}
	return e.Message
}

// ConflictError represents an operation rejected because of related data
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UpstreamError represents a failed call to an external service
type UpstreamError struct {
	Service    string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UnavailableError represents data that exists but cannot be served yet
type UnavailableError struct {
	Message string
}

func (e *UnavailableError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user", Message: "Usuário não encontrado"}
	ErrPlayerNotFound       = &NotFoundError{Entity: "player", Message: "Jogador não encontrado"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team", Message: "Time não encontrado"}
	ErrTournamentNotFound   = &NotFoundError{Entity: "tournament", Message: "Campeonato não encontrado"}
	ErrAdminNotFound        = &NotFoundError{Entity: "admin", Message: "Admin não encontrado"}
	ErrRankingNotFound      = &NotFoundError{Entity: "ranking", Message: "Ranking não encontrado"}
	ErrNewsItemNotFound     = &NotFoundError{Entity: "news item", Message: "Nenhuma novidade encontrada"}
	ErrPresentationNotFound = &NotFoundError{Entity: "presentation", Message: "Nenhuma apresentação encontrada"}
	ErrPolicyNotFound       = &NotFoundError{Entity: "policy", Message: "Política não encontrada"}
	ErrImageNotFound        = &NotFoundError{Entity: "image", Message: "Imagem não encontrada"}
	ErrChannelNotFound      = &NotFoundError{Entity: "channel", Message: "Canal não encontrado"}
)

// Already Exists Errors
var (
	ErrUserExists     = &AlreadyExistsError{Entity: "user", Field: "email"}
	ErrTeamNameExists = &AlreadyExistsError{Entity: "team", Field: "nome"}
	ErrTeamIDExists   = &AlreadyExistsError{Entity: "team", Field: "ID"}
)

// Business Logic Errors
var (
	ErrTeamHasPlayers      = &ConflictError{Message: "Não é possível remover o time: existem jogadores vinculados a ele"}
	ErrInvalidID           = &ValidationError{Field: "id", Message: "ID inválido"}
	ErrInvalidReportFormat = &ValidationError{Field: "format", Message: "Formato de relatório inválido"}
	ErrMissingTeam         = &ValidationError{Field: "team", Message: "Missing team parameter"}
)

// Authentication Errors
var (
	ErrUnauthorized          = &AuthenticationError{Message: "Unauthorized"}
	ErrDiscordExchangeFailed = &AuthenticationError{Message: "discord code exchange failed"}
)

// Configuration Errors
var (
	ErrDiscordNotConfigured = &ConfigurationError{Message: "discord oauth is not configured: DISCORD_CLIENT_ID or DISCORD_CLIENT_SECRET missing"}
	ErrReportNotConfigured  = &ConfigurationError{Message: "report service is not configured: REPORT_SERVICE_URL missing"}
	ErrTwitchNotConfigured  = &ConfigurationError{Message: "twitch credentials missing: TWITCH_CLIENT_ID or TWITCH_CLIENT_SECRET"}
)

// Availability Errors
var (
	ErrStatsNotReady = &UnavailableError{Message: "Dados ainda não disponíveis, tente novamente em alguns segundos"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUnavailable checks if an error is an UnavailableError
func IsUnavailable(err error) bool {
	var unavailableErr *UnavailableError
	return errors.As(err, &unavailableErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError naming the taken value
func NewAlreadyExistsError(entity, field, value string) error {
	return &AlreadyExistsError{Entity: entity, Field: field, Value: value}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrors creates a ValidationError holding several messages
func NewValidationErrors(messages ...string) error {
	return &ValidationError{Messages: messages}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(service string, statusCode int, err error) error {
	return &UpstreamError{Service: service, StatusCode: statusCode, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// ValidationMessages returns the individual messages of a ValidationError
// found in err's chain, or nil
func ValidationMessages(err error) []string {
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		return nil
	}
	if len(validationErr.Messages) > 0 {
		return validationErr.Messages
	}
	return []string{validationErr.Message}
}
