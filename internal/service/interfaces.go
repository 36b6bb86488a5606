package service

import (
	"context"
	"encoding/json"

	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetAllUsers() ([]UserResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*UserResponse, error)
	GetUsersByDiscordIDs(discordIDs []string) ([]UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
	GetProfilePhoto(id uuid.UUID) (*models.Image, error)
	LinkDiscord(id uuid.UUID, discordID string) error
}

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	CreatePlayer(req *CreatePlayerRequest) (*PlayerResponse, error)
	GetAllPlayers(teamID *int) ([]PlayerResponse, error)
	GetPlayerByID(id uuid.UUID) (*PlayerResponse, error)
	UpdatePlayer(id uuid.UUID, req *UpdatePlayerRequest) (*PlayerResponse, error)
	DeletePlayer(id uuid.UUID) error
	GetPlayerPhoto(id uuid.UUID) (*models.Image, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	GetAllTeams() ([]TeamResponse, error)
	GetTeamByID(id int) (*TeamResponse, error)
	UpdateTeam(id int, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(id int) error
	GetTeamImage(id int, field string) (*models.Image, error)
	GetTeamPlayers(id int) ([]PlayerResponse, error)
}

// TournamentServiceInterface defines the interface for tournament service
type TournamentServiceInterface interface {
	CreateTournament(req *CreateTournamentRequest) (*TournamentResponse, error)
	GetAllTournaments(status string) (*TournamentListResponse, error)
	GetTournamentByID(id uuid.UUID) (*TournamentResponse, error)
	UpdateTournament(id uuid.UUID, req *UpdateTournamentRequest) (*TournamentResponse, error)
	MoveTournament(id uuid.UUID, req *MoveTournamentRequest) (*TournamentResponse, error)
	DeleteTournament(id uuid.UUID) error
	GetTournamentImage(id uuid.UUID, field string) (*models.Image, error)
}

// AdminServiceInterface defines the interface for admin service
type AdminServiceInterface interface {
	CreateAdmin(req *CreateAdminRequest) (*AdminResponse, error)
	GetAllAdmins() ([]AdminResponse, error)
	GetAdminByID(id uuid.UUID) (*AdminResponse, error)
	UpdateAdmin(id uuid.UUID, req *UpdateAdminRequest) (*AdminResponse, error)
	DeleteAdmin(id uuid.UUID) error
	GetAdminPhoto(id uuid.UUID) (*models.Image, error)
}

// RankingServiceInterface defines the interface for ranking service
type RankingServiceInterface interface {
	CreateRanking(req *SaveRankingRequest) (*RankingResponse, error)
	GetAllRankings() ([]RankingResponse, error)
	UpdateRanking(id uuid.UUID, req *SaveRankingRequest) (*RankingResponse, error)
	DeleteRanking(id uuid.UUID) error
	GetRankingImage(id uuid.UUID) (*models.Image, error)
}

// PolicyServiceInterface defines the interface for policy service
type PolicyServiceInterface interface {
	CreatePolicy(req *CreatePolicyRequest) (*PolicyResponse, error)
	GetAllPolicies() ([]PolicyResponse, error)
	UpdatePolicy(id uuid.UUID, req *UpdatePolicyRequest) (*PolicyResponse, error)
	DeletePolicy(id uuid.UUID) error
}

// NewsItemServiceInterface defines the interface for the home news block
type NewsItemServiceInterface interface {
	GetNewsItem() (*NewsItemResponse, error)
	SaveNewsItem(req *SaveNewsItemRequest) (*NewsItemResponse, error)
}

// PresentationServiceInterface defines the interface for the home presentation
type PresentationServiceInterface interface {
	GetPresentation() (*PresentationResponse, error)
	SavePresentation(req *SavePresentationRequest) (*PresentationResponse, error)
}

// ModalityServiceInterface defines the interface for the training provider proxy
type ModalityServiceInterface interface {
	Trains(ctx context.Context) (json.RawMessage, error)
	Modalities(ctx context.Context) (json.RawMessage, error)
	UpdateModality(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)
	ListTrains(ctx context.Context) ([]Train, error)
	ListModalities(ctx context.Context) (map[string]Modality, error)
}

// PAEServiceInterface defines the interface for semester hours aggregation
type PAEServiceInterface interface {
	GetHours(ctx context.Context, viewerEmail string) (*HoursReport, error)
}

// ReportServiceInterface defines the interface for the report generator proxy
type ReportServiceInterface interface {
	Generate(ctx context.Context, format string, req *ReportRequest) (*Report, error)
}
