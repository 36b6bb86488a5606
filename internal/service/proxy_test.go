package service_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalityService_Unconfigured(t *testing.T) {
	svc := service.NewModalityService(nil, "", "")
	ctx := context.Background()

	trains, err := svc.Trains(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(trains))

	mods, err := svc.ListModalities(ctx)
	require.NoError(t, err)
	assert.Empty(t, mods)

	echoed, err := svc.UpdateModality(ctx, json.RawMessage(`{"_id":"m1"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"m1"}`, string(echoed))

	_, err = svc.UpdateModality(ctx, json.RawMessage(`{oops`))
	assert.True(t, apperrors.IsValidation(err))
}

func TestModalityService_Upstream(t *testing.T) {
	var lastAuth, lastBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		lastBody = string(body)
		switch r.Method + " " + r.URL.Path {
		case "GET /trains/all":
			_, _ = w.Write([]byte(`[{"ModalityId":"lol","Status":"ENDED","StartTimestamp":1735700000000,"AttendedPlayers":[{"PlayerId":"111","EntranceTimestamp":1735700000000,"ExitTimestamp":1735703600000}]}]`))
		case "GET /modality/all":
			_, _ = w.Write([]byte(`{"lol":{"Name":"League of Legends","Tag":"LoL"}}`))
		case "PATCH /modality":
			_, _ = w.Write(body)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	svc := service.NewModalityService(server.Client(), server.URL+"/", "upstream-token")
	ctx := context.Background()

	t.Run("Trains are decoded", func(t *testing.T) {
		trains, err := svc.ListTrains(ctx)
		require.NoError(t, err)
		require.Len(t, trains, 1)
		assert.Equal(t, "lol", trains[0].ModalityID)
		require.NotNil(t, trains[0].AttendedPlayers[0].ExitTimestamp)
		assert.Equal(t, 1735703600000.0, *trains[0].AttendedPlayers[0].ExitTimestamp)
		assert.Equal(t, "Bearer upstream-token", lastAuth)
	})

	t.Run("Keyed modalities take their id from the key", func(t *testing.T) {
		mods, err := svc.ListModalities(ctx)
		require.NoError(t, err)
		assert.Equal(t, "lol", mods["lol"].ID)
		assert.Equal(t, "LoL", mods["lol"].Tag)
	})

	t.Run("Patch forwards the body", func(t *testing.T) {
		out, err := svc.UpdateModality(ctx, json.RawMessage(`{"_id":"lol","Name":"LoL"}`))
		require.NoError(t, err)
		assert.JSONEq(t, `{"_id":"lol","Name":"LoL"}`, lastBody)
		assert.JSONEq(t, lastBody, string(out))
	})
}

func TestModalityService_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := service.NewModalityService(server.Client(), server.URL, "")
	_, err := svc.Trains(context.Background())

	var upstream *apperrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
}

func TestReportService_Generate(t *testing.T) {
	var received service.ReportRequest
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&received)
		if r.URL.Path == "/api/generate-excel-report" {
			w.Header().Set("Content-Disposition", `attachment; filename="horas.xlsx"`)
		}
		_, _ = w.Write([]byte("document"))
	}))
	defer server.Close()

	svc := service.NewReportService(server.Client(), server.URL, "")
	ctx := context.Background()

	t.Run("PDF defaults", func(t *testing.T) {
		report, err := svc.Generate(ctx, "PDF", &service.ReportRequest{Team: []string{" Valorant ", ""}})
		require.NoError(t, err)
		assert.Equal(t, "/api/generate-pdf-report", path)
		assert.Equal(t, []string{"Valorant"}, received.Team)
		assert.Equal(t, []byte("document"), report.Body)
		assert.Equal(t, `attachment; filename="relatorio_pae.pdf"`, report.ContentDisposition)
	})

	t.Run("Excel passes upstream headers through", func(t *testing.T) {
		report, err := svc.Generate(ctx, service.ReportFormatExcel, &service.ReportRequest{Team: []string{"LoL"}})
		require.NoError(t, err)
		assert.Equal(t, `attachment; filename="horas.xlsx"`, report.ContentDisposition)
	})

	t.Run("Unknown format", func(t *testing.T) {
		_, err := svc.Generate(ctx, "docx", &service.ReportRequest{Team: []string{"LoL"}})
		assert.ErrorIs(t, err, apperrors.ErrInvalidReportFormat)
	})

	t.Run("Missing team", func(t *testing.T) {
		_, err := svc.Generate(ctx, "pdf", &service.ReportRequest{})
		assert.ErrorIs(t, err, apperrors.ErrMissingTeam)
	})
}

func TestReportService_NotConfigured(t *testing.T) {
	svc := service.NewReportService(nil, "", "")

	_, err := svc.Generate(context.Background(), "pdf", &service.ReportRequest{Team: []string{"LoL"}})
	assert.True(t, apperrors.IsConfiguration(err))
}
