package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"maua-esports-backend/internal/api/handlers"
	"maua-esports-backend/internal/auth"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/mocks"
	"maua-esports-backend/internal/service"
	"maua-esports-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const frontendToken = "frontend-secret"

// GatedHandlerTestSuite covers the endpoints behind the frontend token
type GatedHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockModality *mocks.MockModalityServiceInterface
	mockPAE      *mocks.MockPAEServiceInterface
	mockReport   *mocks.MockReportServiceInterface
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *GatedHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockModality = mocks.NewMockModalityServiceInterface(suite.ctrl)
	suite.mockPAE = mocks.NewMockPAEServiceInterface(suite.ctrl)
	suite.mockReport = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	modalityHandler := handlers.NewModalityHandler(suite.mockModality)
	paeHandler := handlers.NewPAEHandler(suite.mockPAE, suite.mockReport)

	gated := suite.httpSuite.Router.Group("", auth.NewTokenMiddleware(frontendToken).RequireToken())
	{
		gated.GET("/trains/all", modalityHandler.ListTrains)
		gated.GET("/modality/all", modalityHandler.ListModalities)
		gated.PATCH("/modality", modalityHandler.UpdateModality)
		gated.GET("/pae/horas", paeHandler.GetHours)
		gated.POST("/pae/relatorio/:format", paeHandler.GenerateReport)
	}
}

func (suite *GatedHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func (suite *GatedHandlerTestSuite) TestTokenGate() {
	testCases := []struct {
		name    string
		headers map[string]string
	}{
		{name: "No header", headers: nil},
		{name: "Wrong token", headers: bearer("guess")},
		{name: "Missing scheme", headers: map[string]string{"Authorization": frontendToken}},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/trains/all", nil, tc.headers)
			testutils.AssertErrorResponse(t, recorder, http.StatusUnauthorized, "Unauthorized")
		})
	}
}

func (suite *GatedHandlerTestSuite) TestListTrainsPassesBodyThrough() {
	upstream := json.RawMessage(`[{"ModalityId":"m1","StartTimestamp":1700000000000}]`)
	suite.mockModality.EXPECT().Trains(gomock.Any()).Return(upstream, nil).Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/trains/all", nil, bearer(frontendToken))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	suite.Equal(string(upstream), recorder.Body.String())
}

func (suite *GatedHandlerTestSuite) TestUpstreamFailure() {
	suite.mockModality.EXPECT().
		Modalities(gomock.Any()).
		Return(nil, apperrors.NewUpstreamError("modality api", http.StatusInternalServerError, nil)).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/modality/all", nil, bearer(frontendToken))
	suite.Equal(http.StatusBadGateway, recorder.Code)
}

func (suite *GatedHandlerTestSuite) TestUpdateModalityForwardsPayload() {
	suite.mockModality.EXPECT().
		UpdateModality(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload json.RawMessage) (json.RawMessage, error) {
			suite.JSONEq(`{"_id":"m1","ScheduledTrainings":[]}`, string(payload))
			return json.RawMessage(`{"ok":true}`), nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPatch, "/modality",
		map[string]interface{}{"_id": "m1", "ScheduledTrainings": []interface{}{}}, bearer(frontendToken))
	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"ok":true}`, recorder.Body.String())
}

func (suite *GatedHandlerTestSuite) TestGetHours() {
	suite.mockPAE.EXPECT().
		GetHours(gomock.Any(), "22.00000-0@maua.br").
		Return(&service.HoursReport{Semester: "2025-2", Modalities: []service.ModalityHours{}}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/pae/horas?email=22.00000-0@maua.br", nil, bearer(frontendToken))
	suite.Equal(http.StatusOK, recorder.Code)

	var response service.HoursReport
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	suite.Equal("2025-2", response.Semester)
}

func (suite *GatedHandlerTestSuite) TestGenerateReport() {
	suite.T().Run("Passes document through", func(t *testing.T) {
		suite.mockReport.EXPECT().
			Generate(gomock.Any(), "pdf", &service.ReportRequest{Team: []string{"LoL"}}).
			Return(&service.Report{
				Body:               []byte("%PDF-1.4"),
				ContentType:        "application/pdf",
				ContentDisposition: `attachment; filename="relatorio.pdf"`,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/pae/relatorio/pdf",
			map[string]interface{}{"team": []string{"LoL"}}, bearer(frontendToken))
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="relatorio.pdf"`, recorder.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4", recorder.Body.String())
	})

	suite.T().Run("Unknown format", func(t *testing.T) {
		suite.mockReport.EXPECT().
			Generate(gomock.Any(), "docx", gomock.Any()).
			Return(nil, apperrors.ErrInvalidReportFormat).
			Times(1)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/pae/relatorio/docx",
			map[string]interface{}{"team": []string{}}, bearer(frontendToken))
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Formato de relatório inválido")
	})
}

func TestGatedHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GatedHandlerTestSuite))
}
