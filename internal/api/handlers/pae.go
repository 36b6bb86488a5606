package handlers

import (
	"net/http"

	"maua-esports-backend/internal/logger"
	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PAEHandler serves the semester hours used for PAE credit
type PAEHandler struct {
	paeService    service.PAEServiceInterface
	reportService service.ReportServiceInterface
}

// NewPAEHandler creates a new PAE handler
func NewPAEHandler(paeService service.PAEServiceInterface, reportService service.ReportServiceInterface) *PAEHandler {
	return &PAEHandler{
		paeService:    paeService,
		reportService: reportService,
	}
}

// GetHours handles GET /pae/horas
// @Summary Semester training hours per modality
// @Description Players are grouped by the modality where they trained the most. A viewer with role Jogador only sees their own hours.
// @Tags pae
// @Produce json
// @Param email query string false "Viewer email"
// @Success 200 {object} service.HoursReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Usuário não encontrado"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Security BearerAuth
// @Router /pae/horas [get]
func (h *PAEHandler) GetHours(c *gin.Context) {
	email := c.Query("email")
	ctx := c.Request.Context()
	if email != "" {
		c.Set(logger.ViewerKey, email)
		ctx = logger.ContextWith(ctx, logger.ViewerKey, email)
	}

	report, err := h.paeService.GetHours(ctx, email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GenerateReport handles POST /pae/relatorio/:format
// @Summary Generate a PAE report
// @Tags pae
// @Accept json
// @Produce application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format path string true "pdf or excel"
// @Param request body service.ReportRequest true "Modalities to include"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse "Missing team parameter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Failure 503 {object} ErrorResponse "Report service not configured"
// @Security BearerAuth
// @Router /pae/relatorio/{format} [post]
func (h *PAEHandler) GenerateReport(c *gin.Context) {
	var req service.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	report, err := h.reportService.Generate(c.Request.Context(), c.Param("format"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", report.ContentDisposition)
	c.Data(http.StatusOK, report.ContentType, report.Body)
}
