package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/database"
	"maua-esports-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type PlayerData struct {
	Name        string `yaml:"name"`
	TeamName    string `yaml:"team_name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Instagram   string `yaml:"instagram,omitempty"`
	Twitter     string `yaml:"twitter,omitempty"`
	Twitch      string `yaml:"twitch,omitempty"`
}

type UserData struct {
	Email     string `yaml:"email"`
	Role      string `yaml:"role"`
	DiscordID string `yaml:"discord_id,omitempty"`
	Team      string `yaml:"team,omitempty"`
}

type AdminData struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Instagram   string `yaml:"instagram,omitempty"`
	Twitter     string `yaml:"twitter,omitempty"`
	Twitch      string `yaml:"twitch,omitempty"`
}

type PolicyData struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type AdminsFile struct {
	Admins []AdminData `yaml:"admins"`
}

type PoliciesFile struct {
	Policies []PolicyData `yaml:"policies"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var (
		teams    TeamsFile
		players  PlayersFile
		users    UsersFile
		admins   AdminsFile
		policies PoliciesFile
	)
	for name, target := range map[string]interface{}{
		"teams":    &teams,
		"players":  &players,
		"users":    &users,
		"admins":   &admins,
		"policies": &policies,
	} {
		if err := readYAMLFiles(dataDir, name, target); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	// Create teams first, players reference them by id
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams.Teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[strings.ToLower(teamData.Name)] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams.Teams))

	playerCreated := 0
	for _, playerData := range players.Players {
		created, err := createPlayer(db, playerData, teamMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create player %s: %v", playerData.Name, err)
			continue
		}
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(players.Players))

	userCreated := 0
	for _, userData := range users.Users {
		created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users.Users))

	adminCreated := 0
	for _, adminData := range admins.Admins {
		admin := models.Admin{
			Name:        adminData.Name,
			Title:       adminData.Title,
			Description: adminData.Description,
			Instagram:   adminData.Instagram,
			Twitter:     adminData.Twitter,
			Twitch:      adminData.Twitch,
		}
		created, err := createIfMissing(db, &admin, "name = ?", adminData.Name)
		if err != nil {
			return fmt.Errorf("failed to create admin %s: %w", adminData.Name, err)
		}
		if created {
			adminCreated++
		}
	}
	log.Printf("📋 Admins: %d created, %d total", adminCreated, len(admins.Admins))

	policyCreated := 0
	for _, policyData := range policies.Policies {
		policy := models.Policy{Title: policyData.Title, Description: policyData.Description}
		created, err := createIfMissing(db, &policy, "title = ?", policyData.Title)
		if err != nil {
			return fmt.Errorf("failed to create policy %s: %w", policyData.Title, err)
		}
		if created {
			policyCreated++
		}
	}
	log.Printf("📋 Policies: %d created, %d total", policyCreated, len(policies.Policies))

	return nil
}

// readYAMLFiles decodes every .yaml file under dataDir whose path contains
// kind into target. Entries from several files are appended.
func readYAMLFiles(dataDir, kind string, target interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || !strings.Contains(filepath.Base(path), kind) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, target)
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	err := db.Where("id = ?", teamData.ID).First(&team).Error
	if err == nil {
		return &team, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	team = models.Team{ID: teamData.ID, Name: teamData.Name}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createPlayer(db *gorm.DB, playerData PlayerData, teamMap map[string]*models.Team) (bool, error) {
	team, ok := teamMap[strings.ToLower(playerData.TeamName)]
	if !ok {
		return false, fmt.Errorf("team %q not found", playerData.TeamName)
	}

	player := models.Player{
		Name:        playerData.Name,
		Title:       playerData.Title,
		Description: playerData.Description,
		TeamID:      team.ID,
		Instagram:   playerData.Instagram,
		Twitter:     playerData.Twitter,
		Twitch:      playerData.Twitch,
	}
	return createIfMissing(db, &player, "name = ? AND team_id = ?", playerData.Name, team.ID)
}

func createUser(db *gorm.DB, userData UserData) (bool, error) {
	role := models.UserRole(userData.Role)
	if role == "" {
		role = models.UserRolePlayer
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", userData.Role)
	}

	user := models.User{
		Email: strings.ToLower(strings.TrimSpace(userData.Email)),
		Role:  role,
		Team:  userData.Team,
	}
	if userData.DiscordID != "" {
		user.DiscordID = &userData.DiscordID
	}
	return createIfMissing(db, &user, "LOWER(email) = ?", user.Email)
}

// createIfMissing inserts row unless a row matching the query already exists
func createIfMissing[T any](db *gorm.DB, row *T, query string, args ...interface{}) (bool, error) {
	var existing T
	err := db.Where(query, args...).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err := db.Create(row).Error; err != nil {
		return false, err
	}
	return true, nil
}
