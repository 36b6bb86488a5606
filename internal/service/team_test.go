package service_test

import (
	"testing"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/mocks"
	"maua-esports-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// TeamServiceTestSuite defines the test suite for TeamService and PlayerService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockTeamRepo   *mocks.MockTeamRepositoryInterface
	mockPlayerRepo *mocks.MockPlayerRepositoryInterface
	teamService    *service.TeamService
	playerService  *service.PlayerService
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockPlayerRepo = mocks.NewMockPlayerRepositoryInterface(suite.ctrl)
	v := service.NewValidator()
	suite.teamService = service.NewTeamService(suite.mockTeamRepo, suite.mockPlayerRepo, v)
	suite.playerService = service.NewPlayerService(suite.mockPlayerRepo, suite.mockTeamRepo, v)
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests creating a team with a chosen id
func (suite *TeamServiceTestSuite) TestCreateTeam() {
	img := models.Image{Data: []byte{1, 2, 3}, ContentType: "image/png"}

	suite.mockTeamRepo.EXPECT().GetByID(4).Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockTeamRepo.EXPECT().GetByName("Valorant").Return(nil, gorm.ErrRecordNotFound).Times(1)
	suite.mockTeamRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{ID: 4, Name: " Valorant ", Photo: &img})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, response.ID)
	assert.Equal(suite.T(), "Valorant", response.Name)
	require.NotNil(suite.T(), response.Photo)
	assert.Equal(suite.T(), "/times/4/foto", *response.Photo)
	assert.Nil(suite.T(), response.GameLogo)
}

// TestCreateTeamConflicts tests the id and name rules
func (suite *TeamServiceTestSuite) TestCreateTeamConflicts() {
	suite.T().Run("Taken id", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByID(1).Return(&models.Team{ID: 1, Name: "LoL"}, nil).Times(1)

		_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{ID: 1, Name: "CS"})
		assert.ErrorIs(t, err, apperrors.ErrTeamIDExists)
	})

	suite.T().Run("Taken name", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByID(2).Return(nil, gorm.ErrRecordNotFound).Times(1)
		suite.mockTeamRepo.EXPECT().GetByName("LoL").Return(&models.Team{ID: 1, Name: "LoL"}, nil).Times(1)

		_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{ID: 2, Name: "LoL"})
		assert.ErrorIs(t, err, apperrors.ErrTeamNameExists)
	})

	suite.T().Run("Invalid id", func(t *testing.T) {
		_, err := suite.teamService.CreateTeam(&service.CreateTeamRequest{ID: 0, Name: "CS"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "O ID do time é obrigatório")
	})
}

// TestUpdateTeamRejectsBlankName tests partial updates with an empty name
func (suite *TeamServiceTestSuite) TestUpdateTeamRejectsBlankName() {
	_, err := suite.teamService.UpdateTeam(1, &service.UpdateTeamRequest{Name: strPtr("  ")})

	require.Error(suite.T(), err)
	assert.Equal(suite.T(), "O nome é obrigatório", err.Error())
}

// TestDeleteTeam tests that teams with players cannot be removed
func (suite *TeamServiceTestSuite) TestDeleteTeam() {
	suite.T().Run("Has players", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByID(1).Return(&models.Team{ID: 1}, nil).Times(1)
		suite.mockPlayerRepo.EXPECT().CountByTeamID(1).Return(int64(5), nil).Times(1)

		err := suite.teamService.DeleteTeam(1)
		assert.ErrorIs(t, err, apperrors.ErrTeamHasPlayers)
	})

	suite.T().Run("Empty team", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByID(2).Return(&models.Team{ID: 2}, nil).Times(1)
		suite.mockPlayerRepo.EXPECT().CountByTeamID(2).Return(int64(0), nil).Times(1)
		suite.mockTeamRepo.EXPECT().Delete(2).Return(nil).Times(1)

		assert.NoError(t, suite.teamService.DeleteTeam(2))
	})

	suite.T().Run("Missing team", func(t *testing.T) {
		suite.mockTeamRepo.EXPECT().GetByID(3).Return(nil, gorm.ErrRecordNotFound).Times(1)

		assert.ErrorIs(t, suite.teamService.DeleteTeam(3), apperrors.ErrTeamNotFound)
	})
}

// TestGetTeamImage tests the image field switch
func (suite *TeamServiceTestSuite) TestGetTeamImage() {
	team := &models.Team{ID: 1, GameLogo: models.Image{Data: []byte{9}, ContentType: "image/webp"}}
	suite.mockTeamRepo.EXPECT().GetByID(1).Return(team, nil).Times(2)

	img, err := suite.teamService.GetTeamImage(1, service.TeamImageGameLogo)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "image/webp", img.MimeType())

	_, err = suite.teamService.GetTeamImage(1, service.TeamImagePhoto)
	assert.ErrorIs(suite.T(), err, apperrors.ErrImageNotFound)
}

// TestCreatePlayerRequiresTeam tests the team reference check
func (suite *TeamServiceTestSuite) TestCreatePlayerRequiresTeam() {
	suite.mockTeamRepo.EXPECT().GetByID(9).Return(nil, gorm.ErrRecordNotFound).Times(1)

	_, err := suite.playerService.CreatePlayer(&service.CreatePlayerRequest{Name: "Faker", TeamID: 9})

	require.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Equal(suite.T(), "O time 9 não existe", err.Error())
}

// TestUpdatePlayerMovesTeam tests moving a player between teams
func (suite *TeamServiceTestSuite) TestUpdatePlayerMovesTeam() {
	id := uuid.New()
	newTeam := 3
	player := &models.Player{BaseModel: models.BaseModel{ID: id}, Name: "Faker", TeamID: 1}

	suite.mockPlayerRepo.EXPECT().GetByID(id).Return(player, nil).Times(1)
	suite.mockTeamRepo.EXPECT().GetByID(newTeam).Return(&models.Team{ID: newTeam}, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	response, err := suite.playerService.UpdatePlayer(id, &service.UpdatePlayerRequest{TeamID: &newTeam, Twitch: strPtr("faker")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), newTeam, response.TeamID)
	assert.Equal(suite.T(), "faker", response.Twitch)
	assert.Equal(suite.T(), "Faker", response.Name)
}

// TestGetAllPlayersFilter tests the optional team filter
func (suite *TeamServiceTestSuite) TestGetAllPlayersFilter() {
	teamID := 2
	suite.mockPlayerRepo.EXPECT().GetByTeamID(teamID).Return([]models.Player{{Name: "A", TeamID: 2}}, nil).Times(1)
	suite.mockPlayerRepo.EXPECT().GetAll().Return([]models.Player{{Name: "A"}, {Name: "B"}}, nil).Times(1)

	filtered, err := suite.playerService.GetAllPlayers(&teamID)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), filtered, 1)

	all, err := suite.playerService.GetAllPlayers(nil)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), all, 2)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
