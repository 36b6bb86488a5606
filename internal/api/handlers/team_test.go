package handlers_test

import (
	"net/http"
	"testing"

	"maua-esports-backend/internal/api/handlers"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/mocks"
	"maua-esports-backend/internal/service"
	"maua-esports-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewTeamHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	teams := suite.httpSuite.Router.Group("/times")
	{
		teams.GET("", suite.handler.ListTeams)
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.PUT("/:id", suite.handler.UpdateTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
		teams.GET("/:id/foto", suite.handler.GetTeamPhoto)
		teams.GET("/:id/jogo", suite.handler.GetTeamGameLogo)
		teams.GET("/:id/jogadores", suite.handler.GetTeamPlayers)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success with multipart images", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any()).
			DoAndReturn(func(req *service.CreateTeamRequest) (*service.TeamResponse, error) {
				assert.Equal(t, 7, req.ID)
				assert.Equal(t, "Valorant", req.Name)
				require.NotNil(t, req.Photo)
				assert.Equal(t, "image/png", req.Photo.ContentType)
				assert.Nil(t, req.GameLogo)
				photo := "/times/7/foto"
				return &service.TeamResponse{ID: 7, Name: "Valorant", Photo: &photo}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/times",
			map[string]string{"id": "7", "nome": "Valorant"},
			[]testutils.FormFile{{Field: "foto", Filename: "logo.png", ContentType: "image/png", Data: testutils.PNGHeader}},
		)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 7, response.ID)
		require.NotNil(t, response.Photo)
		assert.Equal(t, "/times/7/foto", *response.Photo)
		assert.Nil(t, response.GameLogo)
	})

	suite.T().Run("Rejects non image uploads", func(t *testing.T) {
		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/times",
			map[string]string{"id": "8", "nome": "CS"},
			[]testutils.FormFile{{Field: "foto", Filename: "notes.txt", ContentType: "text/plain", Data: []byte("hello")}},
		)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Apenas arquivos de imagem")
	})

	suite.T().Run("Duplicate name", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateTeam(gomock.Any()).
			Return(nil, apperrors.NewAlreadyExistsError("team", "nome", "Valorant")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/times", map[string]interface{}{"id": 9, "nome": "Valorant"})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "O nome Valorant já está em uso.")
	})
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "ID inválido")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeamByID(3).Return(nil, apperrors.ErrTeamNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/3", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Time não encontrado")
	})

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeamByID(3).Return(&service.TeamResponse{ID: 3, Name: "LoL"}, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/3", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"id":3,"nome":"LoL","foto":null,"jogo":null}`, recorder.Body.String())
	})
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(4).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/times/4", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Time removido com sucesso"}`, recorder.Body.String())
	})

	suite.T().Run("Team still has players", func(t *testing.T) {
		suite.mockService.EXPECT().DeleteTeam(5).Return(apperrors.ErrTeamHasPlayers).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/times/5", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "existem jogadores vinculados")
	})
}

// TestTeamImages tests the image endpoints
func (suite *TeamHandlerTestSuite) TestTeamImages() {
	suite.T().Run("Serves stored bytes", func(t *testing.T) {
		img := testutils.TestImage()
		suite.mockService.EXPECT().GetTeamImage(2, service.TeamImageGameLogo).Return(&img, nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/2/jogo", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
		assert.Equal(t, testutils.PNGHeader, recorder.Body.Bytes())
	})

	suite.T().Run("Missing image", func(t *testing.T) {
		suite.mockService.EXPECT().GetTeamImage(2, service.TeamImagePhoto).Return(nil, apperrors.ErrImageNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/2/foto", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Imagem não encontrada")
	})
}

// TestGetTeamPlayers tests the roster endpoint
func (suite *TeamHandlerTestSuite) TestGetTeamPlayers() {
	suite.mockService.EXPECT().
		GetTeamPlayers(1).
		Return([]service.PlayerResponse{{Name: "Ana", TeamID: 1}, {Name: "Bia", TeamID: 1}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times/1/jogadores", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var players []service.PlayerResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &players)
	suite.Len(players, 2)
}

// TestUnexpectedError tests that internal errors are not leaked outside debug mode
func (suite *TeamHandlerTestSuite) TestUnexpectedError() {
	suite.mockService.EXPECT().GetAllTeams().Return(nil, assert.AnError).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/times", nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Erro interno do servidor")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
