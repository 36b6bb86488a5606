package repository

import (
	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByDiscordIDs(discordIDs []string) ([]models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	UpdateDiscordID(id uuid.UUID, discordID string) error
	Delete(id uuid.UUID) error
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uuid.UUID) (*models.Player, error)
	GetAll() ([]models.Player, error)
	GetByTeamID(teamID int) ([]models.Player, error)
	CountByTeamID(teamID int) (int64, error)
	Update(player *models.Player) error
	Delete(id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id int) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id int) error
}

// TournamentRepositoryInterface defines the interface for tournament repository operations
type TournamentRepositoryInterface interface {
	Create(tournament *models.Tournament) error
	GetByID(id uuid.UUID) (*models.Tournament, error)
	GetAll(status models.TournamentStatus) ([]models.Tournament, error)
	Update(tournament *models.Tournament) error
	UpdateStatus(id uuid.UUID, status models.TournamentStatus) error
	Delete(id uuid.UUID) error
}

// AdminRepositoryInterface defines the interface for admin repository operations
type AdminRepositoryInterface interface {
	Create(admin *models.Admin) error
	GetByID(id uuid.UUID) (*models.Admin, error)
	GetAll() ([]models.Admin, error)
	Update(admin *models.Admin) error
	Delete(id uuid.UUID) error
}

// RankingRepositoryInterface defines the interface for ranking repository operations
type RankingRepositoryInterface interface {
	Create(ranking *models.Ranking) error
	GetByID(id uuid.UUID) (*models.Ranking, error)
	GetAll() ([]models.Ranking, error)
	Update(ranking *models.Ranking) error
	Delete(id uuid.UUID) error
}

// PolicyRepositoryInterface defines the interface for policy repository operations
type PolicyRepositoryInterface interface {
	Create(policy *models.Policy) error
	GetByID(id uuid.UUID) (*models.Policy, error)
	GetAll() ([]models.Policy, error)
	Update(policy *models.Policy) error
	Delete(id uuid.UUID) error
}

// NewsItemRepositoryInterface defines the interface for the home news item
type NewsItemRepositoryInterface interface {
	Get() (*models.NewsItem, error)
	Save(item *models.NewsItem) error
}

// PresentationRepositoryInterface defines the interface for the home presentation
type PresentationRepositoryInterface interface {
	Get() (*models.Presentation, error)
	Save(presentation *models.Presentation) error
}
