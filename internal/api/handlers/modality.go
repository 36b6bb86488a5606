package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ModalityHandler proxies the training provider for the frontend
type ModalityHandler struct {
	modalityService service.ModalityServiceInterface
}

// NewModalityHandler creates a new modality handler
func NewModalityHandler(modalityService service.ModalityServiceInterface) *ModalityHandler {
	return &ModalityHandler{modalityService: modalityService}
}

// ListTrains handles GET /trains/all
// @Summary List training sessions
// @Tags modalidades
// @Produce json
// @Success 200 {array} service.Train
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Security BearerAuth
// @Router /trains/all [get]
func (h *ModalityHandler) ListTrains(c *gin.Context) {
	body, err := h.modalityService.Trains(c.Request.Context())
	writeRawJSON(c, body, err)
}

// ListModalities handles GET /modality/all
// @Summary List modalities
// @Tags modalidades
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Security BearerAuth
// @Router /modality/all [get]
func (h *ModalityHandler) ListModalities(c *gin.Context) {
	body, err := h.modalityService.Modalities(c.Request.Context())
	writeRawJSON(c, body, err)
}

// UpdateModality handles PATCH /modality
// @Summary Update a modality
// @Tags modalidades
// @Accept json
// @Produce json
// @Param modality body object true "Modality fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Security BearerAuth
// @Router /modality [patch]
func (h *ModalityHandler) UpdateModality(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, bindError(err))
		return
	}
	body, err := h.modalityService.UpdateModality(c.Request.Context(), json.RawMessage(payload))
	writeRawJSON(c, body, err)
}

func writeRawJSON(c *gin.Context, body json.RawMessage, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
