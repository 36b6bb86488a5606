//go:build integration
// +build integration

package repository

import (
	"testing"

	"maua-esports-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository and PlayerRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	playerRepo    *PlayerRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.playerRepo = NewPlayerRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.factories = testutils.NewFactorySet()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a team with a client chosen id
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.WithPhoto()

	suite.Require().NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByID(team.ID)
	suite.Require().NoError(err)
	suite.Equal(team.Name, found.Name)
	suite.Equal(testutils.PNGHeader, found.Photo.Data)
}

// TestCreateDuplicateName tests the unique name index
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.Require().NoError(suite.repo.Create(suite.factories.Team.WithName("Valorant")))

	err := suite.repo.Create(suite.factories.Team.WithName("Valorant"))
	suite.Error(err)
	suite.True(IsUniqueViolation(err))
	suite.Contains(ViolatedConstraint(err), "name")
}

// TestGetByName tests the case-insensitive name lookup
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("League of Legends")
	suite.Require().NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName("  league of legends ")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByName("CS2")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAllOrdersByID tests the listing order
func (suite *TeamRepositoryTestSuite) TestGetAllOrdersByID() {
	first := suite.factories.Team.Create()
	second := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(second))
	suite.Require().NoError(suite.repo.Create(first))

	teams, err := suite.repo.GetAll()
	suite.Require().NoError(err)
	suite.Require().Len(teams, 2)
	suite.Equal(first.ID, teams[0].ID)
	suite.Equal(second.ID, teams[1].ID)
}

// TestDeleteWithPlayers tests the restricted foreign key
func (suite *TeamRepositoryTestSuite) TestDeleteWithPlayers() {
	team, players := suite.factories.CreateRoster(2)
	suite.Require().NoError(suite.repo.Create(team))
	for _, p := range players {
		suite.Require().NoError(suite.playerRepo.Create(p))
	}

	err := suite.repo.Delete(team.ID)
	suite.Error(err)
	suite.True(IsForeignKeyViolation(err))

	count, err := suite.playerRepo.CountByTeamID(team.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestPlayersByTeam tests the roster queries
func (suite *TeamRepositoryTestSuite) TestPlayersByTeam() {
	team, players := suite.factories.CreateRoster(3)
	other := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))
	suite.Require().NoError(suite.repo.Create(other))
	for _, p := range players {
		suite.Require().NoError(suite.playerRepo.Create(p))
	}
	suite.Require().NoError(suite.playerRepo.Create(suite.factories.Player.WithTeam(other.ID)))

	roster, err := suite.playerRepo.GetByTeamID(team.ID)
	suite.Require().NoError(err)
	suite.Len(roster, 3)

	all, err := suite.playerRepo.GetAll()
	suite.Require().NoError(err)
	suite.Len(all, 4)
}

// TestPlayerUnknownTeam tests that a player cannot reference a missing team
func (suite *TeamRepositoryTestSuite) TestPlayerUnknownTeam() {
	err := suite.playerRepo.Create(suite.factories.Player.WithTeam(99))
	suite.Error(err)
	suite.True(IsForeignKeyViolation(err))
}

// TestPlayerUpdateAndDelete tests moving and deleting a player
func (suite *TeamRepositoryTestSuite) TestPlayerUpdateAndDelete() {
	from := suite.factories.Team.Create()
	to := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(from))
	suite.Require().NoError(suite.repo.Create(to))
	player := suite.factories.Player.WithTeam(from.ID)
	suite.Require().NoError(suite.playerRepo.Create(player))

	player.TeamID = to.ID
	suite.Require().NoError(suite.playerRepo.Update(player))

	found, err := suite.playerRepo.GetByID(player.ID)
	suite.Require().NoError(err)
	suite.Equal(to.ID, found.TeamID)

	suite.NoError(suite.playerRepo.Delete(player.ID))
	_, err = suite.playerRepo.GetByID(player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.NoError(suite.repo.Delete(from.ID))
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
