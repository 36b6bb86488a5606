package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"
)

const reportServiceName = "report service"

// Report formats accepted by Generate
const (
	ReportFormatPDF   = "pdf"
	ReportFormatExcel = "excel"
)

var reportPaths = map[string]string{
	ReportFormatPDF:   "/api/generate-pdf-report",
	ReportFormatExcel: "/api/generate-excel-report",
}

var reportDefaults = map[string][2]string{
	ReportFormatPDF:   {"application/pdf", `attachment; filename="relatorio_pae.pdf"`},
	ReportFormatExcel: {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", `attachment; filename="relatorio_pae.xlsx"`},
}

// ReportRequest names the modalities included in a report
type ReportRequest struct {
	Team []string `json:"team"`
}

// Report is a generated document ready to be sent to the client
type Report struct {
	Body               []byte
	ContentType        string
	ContentDisposition string
}

// ReportService forwards report requests to the report generator
type ReportService struct {
	client  *http.Client
	baseURL string
	token   string
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a client for the report generator at baseURL
func NewReportService(client *http.Client, baseURL, token string) *ReportService {
	if client == nil {
		client = http.DefaultClient
	}
	return &ReportService{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

// Configured reports whether a report generator URL was provided
func (s *ReportService) Configured() bool {
	return s.baseURL != ""
}

// Generate renders the report for the given modality names
func (s *ReportService) Generate(ctx context.Context, format string, req *ReportRequest) (*Report, error) {
	path, ok := reportPaths[strings.ToLower(format)]
	if !ok {
		return nil, apperrors.ErrInvalidReportFormat
	}
	team := make([]string, 0, len(req.Team))
	for _, name := range req.Team {
		if name = strings.TrimSpace(name); name != "" {
			team = append(team, name)
		}
	}
	if len(team) == 0 {
		return nil, apperrors.ErrMissingTeam
	}
	if s.baseURL == "" {
		return nil, apperrors.ErrReportNotConfigured
	}

	body, err := json.Marshal(ReportRequest{Team: team})
	if err != nil {
		return nil, fmt.Errorf("failed to encode report request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build report request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.NewUpstreamError(reportServiceName, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"format": format,
			"status": resp.StatusCode,
		}).Warn("Report generator returned an error")
		return nil, apperrors.NewUpstreamError(reportServiceName, resp.StatusCode, nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamError(reportServiceName, resp.StatusCode, err)
	}

	defaults := reportDefaults[strings.ToLower(format)]
	report := &Report{
		Body:               data,
		ContentType:        resp.Header.Get("Content-Type"),
		ContentDisposition: resp.Header.Get("Content-Disposition"),
	}
	if report.ContentType == "" {
		report.ContentType = defaults[0]
	}
	if report.ContentDisposition == "" {
		report.ContentDisposition = defaults[1]
	}
	return report, nil
}
