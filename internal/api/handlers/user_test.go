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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	users := suite.httpSuite.Router.Group("/usuarios")
	{
		users.GET("", suite.handler.ListUsers)
		users.GET("/por-email", suite.handler.GetUserByEmail)
		users.GET("/por-discord-ids", suite.handler.GetUsersByDiscordIDs)
		users.POST("", suite.handler.CreateUser)
		users.GET("/:id", suite.handler.GetUser)
		users.PUT("/:id", suite.handler.UpdateUser)
		users.DELETE("/:id", suite.handler.DeleteUser)
		users.GET("/:id/foto", suite.handler.GetProfilePhoto)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests the ListUsers handler
func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockService.EXPECT().
		GetAllUsers().
		Return([]service.UserResponse{{ID: uuid.New(), Email: "a@maua.br"}, {ID: uuid.New(), Email: "b@maua.br"}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/usuarios", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response struct {
		Success bool                   `json:"success"`
		Count   int                    `json:"count"`
		Data    []service.UserResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.True(response.Success)
	suite.Equal(2, response.Count)
	suite.Len(response.Data, 2)
}

// TestGetUser tests the GetUser handler
func (suite *UserHandlerTestSuite) TestGetUser() {
	suite.T().Run("Not found uses the failure envelope", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetUserByID(id).Return(nil, apperrors.ErrUserNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/usuarios/"+id.String(), nil)
		testutils.AssertFailureResponse(t, recorder, http.StatusNotFound, "Usuário não encontrado")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/usuarios/not-a-uuid", nil)
		testutils.AssertFailureResponse(t, recorder, http.StatusBadRequest, "ID inválido")
	})
}

// TestCreateUser tests the CreateUser handler
func (suite *UserHandlerTestSuite) TestCreateUser() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(req *service.CreateUserRequest) (*service.UserResponse, error) {
				assert.Equal(t, "22.00000-0@maua.br", req.Email)
				assert.Equal(t, "Capitão de time", req.Role)
				return &service.UserResponse{ID: id, Email: req.Email, Role: req.Role}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/usuarios", map[string]interface{}{
			"email":       "22.00000-0@maua.br",
			"tipoUsuario": "Capitão de time",
		})

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response map[string]interface{}
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, true, response["success"])
		usuario, ok := response["usuario"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, id.String(), usuario["_id"])
	})

	suite.T().Run("Duplicate email", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateUser(gomock.Any()).
			Return(nil, apperrors.NewAlreadyExistsError("user", "email", "22.00000-0@maua.br")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/usuarios", map[string]interface{}{"email": "22.00000-0@maua.br"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"success":false,"message":"O email 22.00000-0@maua.br já está em uso."}`, recorder.Body.String())
	})

	suite.T().Run("Profile photo upload", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(req *service.CreateUserRequest) (*service.UserResponse, error) {
				require.NotNil(t, req.Photo)
				assert.Equal(t, "image/png", req.Photo.ContentType)
				return &service.UserResponse{ID: uuid.New(), Email: req.Email}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/usuarios",
			map[string]string{"email": "23.11111-1@maua.br"},
			[]testutils.FormFile{{Field: "fotoPerfil", Filename: "me.png", Data: testutils.PNGHeader}},
		)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

// TestGetUserByEmail tests the lookup by email
func (suite *UserHandlerTestSuite) TestGetUserByEmail() {
	suite.mockService.EXPECT().
		GetUserByEmail("a@maua.br").
		Return(&service.UserResponse{Email: "a@maua.br"}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/usuarios/por-email?email=a@maua.br", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response struct {
		Usuario service.UserResponse `json:"usuario"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Equal("a@maua.br", response.Usuario.Email)
}

// TestGetUsersByDiscordIDs tests that csv and repeated ids are both accepted
func (suite *UserHandlerTestSuite) TestGetUsersByDiscordIDs() {
	suite.mockService.EXPECT().
		GetUsersByDiscordIDs([]string{"111", "222", "333"}).
		Return([]service.UserResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/usuarios/por-discord-ids?ids=111,222&ids=333", nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`[]`, recorder.Body.String())
}

// TestDeleteUser tests the DeleteUser handler
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteUser(id).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/usuarios/"+id.String(), nil)
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"success":true,"message":"Usuário removido com sucesso"}`, recorder.Body.String())
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
