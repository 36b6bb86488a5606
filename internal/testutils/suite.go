package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"
)

// externalDSNEnv points the integration tests at an existing database
// instead of starting a container
const externalDSNEnv = "TEST_DATABASE_URL"

const (
	pgImage    = "postgres"
	pgTag      = "15-alpine"
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// testEnv is the database shared by every integration suite of a test binary
type testEnv struct {
	once     sync.Once
	err      error
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	tables   []string
	config   *config.Config
}

var shared testEnv

// BaseTestSuite gives a suite access to the shared database
type BaseTestSuite struct {
	DB     *gorm.DB
	Config *config.Config
	tables []string
}

// SetupTestSuite starts the shared database on first use and returns a
// per-suite handle to it
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	shared.once.Do(func() { shared.err = shared.start() })
	if shared.err != nil {
		t.Fatalf("failed to initialize shared test database: %v", shared.err)
	}
	return &BaseTestSuite{
		DB:     shared.db,
		Config: shared.config,
		tables: shared.tables,
	}
}

// CleanupSharedContainer closes the shared connection and purges the
// container. RunIntegration calls it when the test binary exits.
func CleanupSharedContainer() {
	if shared.db != nil {
		_ = database.Close(shared.db)
		shared.db = nil
	}
	if shared.pool == nil || shared.resource == nil {
		return
	}
	log.Printf("Purging Docker container: %s", shared.resource.Container.Name)
	if err := shared.pool.Purge(shared.resource); err != nil {
		log.Printf("WARN: could not purge shared resource: %v", err)
	}
	shared.pool, shared.resource = nil, nil
}

// SetupTest empties every table before a test
func (s *BaseTestSuite) SetupTest() { s.CleanTestDB() }

// TearDownTest empties every table after a test
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite leaves the database empty. The container is kept for
// the next suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates the tables of every migrated model
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil || len(s.tables) == 0 {
		return
	}
	quoted := make([]string, len(s.tables))
	for i, t := range s.tables {
		quoted[i] = `"` + t + `"`
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(quoted, ", ") + ` RESTART IDENTITY CASCADE`).Error; err != nil {
		log.Printf("WARN: could not truncate test tables: %v", err)
	}
}

func (e *testEnv) start() error {
	dsn := os.Getenv(externalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = e.runContainer(); err != nil {
			return err
		}
	}

	if err := e.connect(dsn); err != nil {
		return err
	}

	tables, err := database.TableNames(e.db)
	if err != nil {
		return err
	}
	e.tables = tables
	e.config = &config.Config{
		Environment:    "test",
		Port:           "3000",
		LogLevel:       "debug",
		DatabaseURL:    dsn,
		FrontendToken:  config.DefaultFrontendToken,
		Timezone:       "America/Sao_Paulo",
		MaxUploadMB:    10,
		HTTPTimeoutSec: 5,
	}
	log.Printf("Test database ready with tables %v", tables)
	return nil
}

// runContainer starts Postgres in Docker and returns its DSN
func (e *testEnv) runContainer() (string, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	e.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: pgImage,
		Tag:        pgTag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return "", fmt.Errorf("could not start postgres: %w", err)
	}
	e.resource = resource
	// Reap the container even if the binary is killed before cleanup runs
	_ = resource.Expire(600)

	return fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase), nil
}

// connect waits until Postgres accepts connections, then migrates the schema
func (e *testEnv) connect(dsn string) error {
	wait := func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	}

	if e.pool != nil {
		if err := e.pool.Retry(wait); err != nil {
			return fmt.Errorf("postgres not ready: %w", err)
		}
	} else if err := wait(); err != nil {
		return fmt.Errorf("could not reach %s: %w", externalDSNEnv, err)
	}

	db, err := database.Initialize(dsn, &database.Options{AutoMigrate: true})
	if err != nil {
		return err
	}
	e.db = db
	return nil
}
