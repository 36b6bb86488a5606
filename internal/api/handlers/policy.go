package handlers

import (
	"net/http"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles HTTP requests for the policies page
type PolicyHandler struct {
	policyService service.PolicyServiceInterface
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyService service.PolicyServiceInterface) *PolicyHandler {
	return &PolicyHandler{policyService: policyService}
}

// PolicyFieldError is one entry of a policy validation failure
type PolicyFieldError struct {
	Msg string `json:"msg" example:"O título é obrigatório"`
}

// ListPolicies handles GET /politicas
// @Summary List policy sections
// @Tags politicas
// @Produce json
// @Success 200 {object} map[string]interface{} "success, politicas"
// @Router /politicas [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	policies, err := h.policyService.GetAllPolicies()
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "politicas": policies})
}

// CreatePolicy handles POST /politicas
// @Summary Create policy section
// @Tags politicas
// @Accept json
// @Produce json
// @Param policy body service.CreatePolicyRequest true "Policy data"
// @Success 201 {object} map[string]interface{} "success, politica"
// @Failure 400 {object} map[string]interface{} "success false, errors"
// @Router /politicas [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var req service.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, bindError(err))
		return
	}
	policy, err := h.policyService.CreatePolicy(&req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "politica": policy})
}

// UpdatePolicy handles PUT /politicas/:id
// @Summary Update policy section
// @Tags politicas
// @Accept json
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Param policy body service.UpdatePolicyRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "success, politica"
// @Failure 400 {object} map[string]interface{} "success false, errors"
// @Failure 404 {object} map[string]interface{} "Política não encontrada"
// @Router /politicas/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.respond(c, err)
		return
	}
	var req service.UpdatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respond(c, bindError(err))
		return
	}
	policy, err := h.policyService.UpdatePolicy(id, &req)
	if err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "politica": policy})
}

// DeletePolicy handles DELETE /politicas/:id
// @Summary Delete policy section
// @Tags politicas
// @Produce json
// @Param id path string true "Policy ID (UUID)"
// @Success 200 {object} map[string]interface{} "success, message"
// @Failure 404 {object} map[string]interface{} "Política não encontrada"
// @Router /politicas/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.respond(c, err)
		return
	}
	if err := h.policyService.DeletePolicy(id); err != nil {
		h.respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Política excluída com sucesso!"})
}

// respond writes validation failures as a list of {msg} entries
func (h *PolicyHandler) respond(c *gin.Context, err error) {
	if messages := apperrors.ValidationMessages(err); messages != nil {
		list := make([]PolicyFieldError, len(messages))
		for i, m := range messages {
			list[i] = PolicyFieldError{Msg: m}
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": list})
		return
	}
	respondFailure(c, err)
}
