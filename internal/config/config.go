package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// DefaultFrontendToken is the bearer token the club frontend ships with
const DefaultFrontendToken = "frontendmauaesports"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	FrontendURL    string   `mapstructure:"FRONTEND_URL"`

	// Static token expected from the frontend on gated routes
	FrontendToken string `mapstructure:"FRONTEND_TOKEN"`

	// Modality/training provider
	ModalityAPIURL   string `mapstructure:"MODALITY_API_URL"`
	ModalityAPIToken string `mapstructure:"MODALITY_API_TOKEN"`

	// PAE report generator
	ReportServiceURL   string `mapstructure:"REPORT_SERVICE_URL"`
	ReportServiceToken string `mapstructure:"REPORT_SERVICE_TOKEN"`

	// Discord OAuth
	DiscordClientID     string `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret string `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURI  string `mapstructure:"DISCORD_REDIRECT_URI"`

	Timezone       string `mapstructure:"TIMEZONE"`
	MaxUploadMB    int64  `mapstructure:"MAX_UPLOAD_MB"`
	HTTPTimeoutSec int    `mapstructure:"HTTP_TIMEOUT_SEC"`

	// Twitch stats service
	TwitchPort         string        `mapstructure:"TWITCH_PORT"`
	TwitchClientID     string        `mapstructure:"TWITCH_CLIENT_ID"`
	TwitchClientSecret string        `mapstructure:"TWITCH_CLIENT_SECRET"`
	TwitchChannels     []string      `mapstructure:"TWITCH_CHANNELS"`
	TwitchPollInterval time.Duration `mapstructure:"TWITCH_POLL_INTERVAL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Env vars arrive as a single comma separated string
	config.AllowedOrigins = splitList(config.AllowedOrigins)
	config.TwitchChannels = splitList(config.TwitchChannels)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "maua_esports")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:5173"})
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")

	viper.SetDefault("FRONTEND_TOKEN", DefaultFrontendToken)

	// Upstreams are optional; empty means placeholder data
	viper.SetDefault("MODALITY_API_URL", "")
	viper.SetDefault("MODALITY_API_TOKEN", "")
	viper.SetDefault("REPORT_SERVICE_URL", "http://localhost:5000")
	viper.SetDefault("REPORT_SERVICE_TOKEN", DefaultFrontendToken)

	viper.SetDefault("DISCORD_CLIENT_ID", "")
	viper.SetDefault("DISCORD_CLIENT_SECRET", "")
	viper.SetDefault("DISCORD_REDIRECT_URI", "http://localhost:3000/auth/discord/callback")

	viper.SetDefault("TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("MAX_UPLOAD_MB", 10)
	viper.SetDefault("HTTP_TIMEOUT_SEC", 15)

	// Twitch defaults
	viper.SetDefault("TWITCH_PORT", "3009")
	viper.SetDefault("TWITCH_CLIENT_ID", "")
	viper.SetDefault("TWITCH_CLIENT_SECRET", "")
	viper.SetDefault("TWITCH_CHANNELS", []string{"mauaesports"})
	viper.SetDefault("TWITCH_POLL_INTERVAL", 5*time.Minute)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, strings.ToLower(p))
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.FrontendToken == DefaultFrontendToken {
			return fmt.Errorf("FRONTEND_TOKEN must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", config.Timezone, err)
	}

	if config.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location returns the configured time zone, UTC when it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// HTTPTimeout is the timeout applied to outbound upstream calls
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}
