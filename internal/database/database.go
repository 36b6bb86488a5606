package database

import (
	"context"
	"fmt"
	"time"

	"maua-esports-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool and schema handling
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

func (o *Options) withDefaults() Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.LogLevel == 0 {
		out.LogLevel = logger.Error
	}
	if out.MaxOpenConns == 0 {
		out.MaxOpenConns = 20
	}
	if out.MaxIdleConns == 0 {
		out.MaxIdleConns = 10
	}
	if out.ConnMaxLifetime == 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime == 0 {
		out.ConnMaxIdleTime = 10 * time.Minute
	}
	return out
}

// Models lists every persisted model in migration order.
// Teams come before players so the players.team_id foreign key resolves.
func Models() []interface{} {
	return []interface{}{
		&models.Team{},
		&models.Player{},
		&models.User{},
		&models.Tournament{},
		&models.Admin{},
		&models.Ranking{},
		&models.NewsItem{},
		&models.Presentation{},
		&models.Policy{},
	}
}

// Initialize opens a Postgres connection and, when asked, creates the schema
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := opts.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}
	return db, nil
}

// Migrate creates or updates the tables of every model
func Migrate(db *gorm.DB) error {
	// gen_random_uuid() backs the BaseModel id default on older Postgres
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// Ping checks that the database answers within the context deadline
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TableNames returns the table of every model, in migration order
func TableNames(db *gorm.DB) ([]string, error) {
	all := Models()
	names := make([]string, 0, len(all))
	for _, m := range all {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		names = append(names, stmt.Schema.Table)
	}
	return names, nil
}
