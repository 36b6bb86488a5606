package testutils

import (
	"fmt"
	"time"

	"maua-esports-backend/internal/database/models"

	"github.com/google/uuid"
)

// PNGHeader is the signature of a PNG file, enough for content sniffing
var PNGHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

// TestImage returns a small PNG image
func TestImage() models.Image {
	return models.Image{Data: append([]byte(nil), PNGHeader...), ContentType: "image/png", OriginalName: "test.png"}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: fmt.Sprintf("%s@maua.br", uuid.NewString()[:8]),
		Role:  models.UserRolePlayer,
		Team:  "Valorant",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithDiscordID links the user to a Discord account
func (f *UserFactory) WithDiscordID(discordID string) *models.User {
	user := f.Create()
	user.DiscordID = &discordID
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	next int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a fresh numeric id
func (f *TeamFactory) Create() *models.Team {
	f.next++
	return &models.Team{
		ID:        f.next,
		Name:      fmt.Sprintf("Time %d", f.next),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithPhoto gives the team a stored photo
func (f *TeamFactory) WithPhoto() *models.Team {
	team := f.Create()
	team.Photo = TestImage()
	return team
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player on team 1
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Player",
		Title:       "Capitão",
		Description: "A test player",
		TeamID:      1,
		Instagram:   "https://instagram.com/test",
	}
}

// WithTeam places the player on teamID
func (f *PlayerFactory) WithTeam(teamID int) *models.Player {
	player := f.Create()
	player.TeamID = teamID
	return player
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(name string) *models.Player {
	player := f.Create()
	player.Name = name
	return player
}

// TournamentFactory provides methods to create test Tournament data
type TournamentFactory struct{}

// NewTournamentFactory creates a new TournamentFactory
func NewTournamentFactory() *TournamentFactory {
	return &TournamentFactory{}
}

// Create creates a test Tournament on the open board
func (f *TournamentFactory) Create() *models.Tournament {
	start := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	return &models.Tournament{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Copa Mauá",
		Description: "A test tournament",
		GameName:    "Valorant",
		StartDate:   &start,
		FirstPrize:  "R$ 500",
		Status:      models.TournamentStatusOpen,
	}
}

// WithStatus puts the tournament on another board
func (f *TournamentFactory) WithStatus(status models.TournamentStatus) *models.Tournament {
	tournament := f.Create()
	tournament.Status = status
	return tournament
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin with default values
func (f *AdminFactory) Create() *models.Admin {
	return &models.Admin{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:  "Test Admin",
		Title: "Presidente",
	}
}

// PolicyFactory provides methods to create test Policy data
type PolicyFactory struct{}

// NewPolicyFactory creates a new PolicyFactory
func NewPolicyFactory() *PolicyFactory {
	return &PolicyFactory{}
}

// Create creates a test Policy with default values
func (f *PolicyFactory) Create() *models.Policy {
	return &models.Policy{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Regras de conduta",
		Description: "Respeite os colegas.",
	}
}

// WithTitle sets a custom title for the policy
func (f *PolicyFactory) WithTitle(title string) *models.Policy {
	policy := f.Create()
	policy.Title = title
	return policy
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	Player     *PlayerFactory
	Tournament *TournamentFactory
	Admin      *AdminFactory
	Policy     *PolicyFactory
}

// NewFactorySet creates a new set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		Player:     NewPlayerFactory(),
		Tournament: NewTournamentFactory(),
		Admin:      NewAdminFactory(),
		Policy:     NewPolicyFactory(),
	}
}

// CreateRoster creates a team and n players on it
func (fs *FactorySet) CreateRoster(n int) (*models.Team, []*models.Player) {
	team := fs.Team.Create()
	players := make([]*models.Player, n)
	for i := range players {
		players[i] = fs.Player.WithTeam(team.ID)
		players[i].Name = fmt.Sprintf("Jogador %d", i+1)
	}
	return team, players
}
