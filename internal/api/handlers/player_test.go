package handlers_test

import (
	"net/http"
	"testing"

	"maua-esports-backend/internal/api/handlers"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/mocks"
	"maua-esports-backend/internal/service"
	"maua-esports-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlayerServiceInterface
	handler     *handlers.PlayerHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlayerServiceInterface(suite.ctrl)
	suite.handler = handlers.NewPlayerHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	players := suite.httpSuite.Router.Group("/jogadores")
	{
		players.GET("", suite.handler.ListPlayers)
		players.POST("", suite.handler.CreatePlayer)
		players.GET("/:id", suite.handler.GetPlayer)
		players.PUT("/:id", suite.handler.UpdatePlayer)
		players.DELETE("/:id", suite.handler.DeletePlayer)
		players.GET("/:id/imagem", suite.handler.GetPlayerPhoto)
	}
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListPlayers tests the team filter of ListPlayers
func (suite *PlayerHandlerTestSuite) TestListPlayers() {
	teamID := 2
	testCases := []testutils.HTTPTestCase{
		{
			Name:    "All players",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/jogadores"},
			Setup: func() {
				suite.mockService.EXPECT().GetAllPlayers(nil).Return([]service.PlayerResponse{}, nil).Times(1)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK, Body: []interface{}{}},
		},
		{
			Name:    "Filtered by team",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/jogadores?time=2"},
			Setup: func() {
				suite.mockService.EXPECT().GetAllPlayers(&teamID).Return([]service.PlayerResponse{}, nil).Times(1)
			},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusOK},
		},
		{
			Name:             "Invalid team",
			Request:          testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/jogadores?time=abc"},
			ExpectedResponse: testutils.MockHTTPResponse{Status: http.StatusBadRequest, Body: map[string]string{"error": "ID inválido"}},
		},
	}

	suite.httpSuite.RunHTTPTestCases(suite.T(), testCases)
}

// TestCreatePlayer tests the CreatePlayer handler
func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	suite.T().Run("Success with photo", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreatePlayer(gomock.Any()).
			DoAndReturn(func(req *service.CreatePlayerRequest) (*service.PlayerResponse, error) {
				assert.Equal(t, "Faker", req.Name)
				assert.Equal(t, 1, req.TeamID)
				require.NotNil(t, req.Photo)
				return &service.PlayerResponse{ID: uuid.New(), Name: req.Name, TeamID: req.TeamID}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/jogadores",
			map[string]string{"nome": "Faker", "time": "1"},
			[]testutils.FormFile{{Field: "foto", Filename: "faker.png", ContentType: "image/png", Data: testutils.PNGHeader}},
		)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Faker", response.Name)
	})

	suite.T().Run("Unknown team", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreatePlayer(gomock.Any()).
			Return(nil, apperrors.NewValidationError("time", "O time 9 não existe")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/jogadores", map[string]interface{}{"nome": "Faker", "time": 9})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "O time 9 não existe")
	})
}

// TestUpdatePlayer tests the UpdatePlayer handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	id := uuid.New()
	suite.mockService.EXPECT().
		UpdatePlayer(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.UpdatePlayerRequest) (*service.PlayerResponse, error) {
			require.NotNil(suite.T(), req.Title)
			suite.Equal("Mid laner", *req.Title)
			suite.Nil(req.Name)
			return &service.PlayerResponse{ID: id, Title: *req.Title}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/jogadores/"+id.String(), map[string]interface{}{"titulo": "Mid laner"})
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestDeletePlayer tests the DeletePlayer handler
func (suite *PlayerHandlerTestSuite) TestDeletePlayer() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().DeletePlayer(id).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/jogadores/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"message":"Jogador removido com sucesso","id":"`+id.String()+`"}`, recorder.Body.String())
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().DeletePlayer(id).Return(apperrors.ErrPlayerNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/jogadores/"+id.String(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Jogador não encontrado")
	})
}

// TestGetPlayerPhoto tests that stored bytes are served back
func (suite *PlayerHandlerTestSuite) TestGetPlayerPhoto() {
	id := uuid.New()
	img := testutils.TestImage()
	suite.mockService.EXPECT().GetPlayerPhoto(id).Return(&img, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/jogadores/"+id.String()+"/imagem", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("image/png", recorder.Header().Get("Content-Type"))
	suite.Equal(testutils.PNGHeader, recorder.Body.Bytes())
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
