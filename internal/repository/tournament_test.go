//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"maua-esports-backend/internal/database/models"
	"maua-esports-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TournamentRepositoryTestSuite tests the TournamentRepository
type TournamentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TournamentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TournamentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTournamentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TournamentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TournamentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TournamentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetAllByStatus tests the board filter and newest-first order
func (suite *TournamentRepositoryTestSuite) TestGetAllByStatus() {
	older := suite.factories.Tournament.WithStatus(models.TournamentStatusSignup)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := suite.factories.Tournament.WithStatus(models.TournamentStatusSignup)
	suite.Require().NoError(suite.repo.Create(older))
	suite.Require().NoError(suite.repo.Create(newer))
	suite.Require().NoError(suite.repo.Create(suite.factories.Tournament.WithStatus(models.TournamentStatusFinished)))

	signup, err := suite.repo.GetAll(models.TournamentStatusSignup)
	suite.Require().NoError(err)
	suite.Require().Len(signup, 2)
	suite.Equal(newer.ID, signup[0].ID)
	suite.Equal(older.ID, signup[1].ID)

	all, err := suite.repo.GetAll("")
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

// TestUpdateStatus tests moving a tournament between boards
func (suite *TournamentRepositoryTestSuite) TestUpdateStatus() {
	tournament := suite.factories.Tournament.Create()
	suite.Require().NoError(suite.repo.Create(tournament))

	suite.NoError(suite.repo.UpdateStatus(tournament.ID, models.TournamentStatusFinished))

	found, err := suite.repo.GetByID(tournament.ID)
	suite.Require().NoError(err)
	suite.Equal(models.TournamentStatusFinished, found.Status)

	suite.ErrorIs(suite.repo.UpdateStatus(uuid.New(), models.TournamentStatusOpen), gorm.ErrRecordNotFound)
}

// TestListSkipsImageBytes tests that board listings do not load image bytes
func (suite *TournamentRepositoryTestSuite) TestListSkipsImageBytes() {
	tournament := suite.factories.Tournament.Create()
	tournament.Image = testutils.TestImage()
	suite.Require().NoError(suite.repo.Create(tournament))

	list, err := suite.repo.GetAll(tournament.Status)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Empty(list[0].Image.Data)
	suite.Equal("image/png", list[0].Image.ContentType)
}

// TestDelete tests deleting a tournament
func (suite *TournamentRepositoryTestSuite) TestDelete() {
	tournament := suite.factories.Tournament.Create()
	suite.Require().NoError(suite.repo.Create(tournament))

	suite.NoError(suite.repo.Delete(tournament.ID))
	_, err := suite.repo.GetByID(tournament.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTournamentRepositoryTestSuite runs the test suite
func TestTournamentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TournamentRepositoryTestSuite))
}
