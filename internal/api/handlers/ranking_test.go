package handlers_test

import (
	"net/http"
	"testing"

	"maua-esports-backend/internal/api/handlers"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/mocks"
	"maua-esports-backend/internal/service"
	"maua-esports-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupRankingRouter(t *testing.T) (*mocks.MockRankingServiceInterface, *testutils.HTTPTestSuite) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRankingServiceInterface(ctrl)
	handler := handlers.NewRankingHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	registerRankingRoutes(httpSuite.Router, handler)
	return mockService, httpSuite
}

func registerRankingRoutes(r *gin.Engine, handler *handlers.RankingHandler) {
	rankings := r.Group("/rankings")
	rankings.GET("", handler.ListRankings)
	rankings.POST("", handler.CreateRanking)
	rankings.PUT("/:id", handler.UpdateRanking)
	rankings.DELETE("/:id", handler.DeleteRanking)
	rankings.GET("/:id/imagem", handler.GetRankingImage)
}

func TestRankingHandler_Create(t *testing.T) {
	mockService, httpSuite := setupRankingRouter(t)

	mockService.EXPECT().
		CreateRanking(gomock.Any()).
		DoAndReturn(func(req *service.SaveRankingRequest) (*service.RankingResponse, error) {
			assert.Equal(t, "Ouro", req.Name)
			require.NotNil(t, req.Image)
			assert.Equal(t, "ouro.png", req.Image.OriginalName)
			return &service.RankingResponse{ID: uuid.New(), Name: req.Name}, nil
		})

	recorder := httpSuite.MakeMultipartRequest(http.MethodPost, "/rankings",
		map[string]string{"nome": "Ouro"},
		[]testutils.FormFile{{Field: "imagem", Filename: "ouro.png", ContentType: "image/png", Data: testutils.PNGHeader}},
	)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestRankingHandler_RejectsNonImage(t *testing.T) {
	_, httpSuite := setupRankingRouter(t)

	recorder := httpSuite.MakeMultipartRequest(http.MethodPost, "/rankings",
		map[string]string{"nome": "Ouro"},
		[]testutils.FormFile{{Field: "imagem", Filename: "ouro.txt", ContentType: "text/plain", Data: []byte("ouro")}},
	)
	testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Apenas arquivos de imagem são permitidos")
}

func TestRankingHandler_Delete(t *testing.T) {
	mockService, httpSuite := setupRankingRouter(t)
	id := uuid.New()
	missing := uuid.New()

	mockService.EXPECT().DeleteRanking(id).Return(nil)
	mockService.EXPECT().DeleteRanking(missing).Return(apperrors.ErrRankingNotFound)

	recorder := httpSuite.MakeRequest(http.MethodDelete, "/rankings/"+id.String(), nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Ranking removido com sucesso"}`, recorder.Body.String())

	recorder = httpSuite.MakeRequest(http.MethodDelete, "/rankings/"+missing.String(), nil)
	testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "Ranking não encontrado")
}

func TestRankingHandler_Image(t *testing.T) {
	mockService, httpSuite := setupRankingRouter(t)
	id := uuid.New()
	img := testutils.TestImage()
	mockService.EXPECT().GetRankingImage(id).Return(&img, nil)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/rankings/"+id.String()+"/imagem", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, testutils.PNGHeader, recorder.Body.Bytes())
}
