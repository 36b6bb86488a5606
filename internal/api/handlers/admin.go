package handlers

import (
	"net/http"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles HTTP requests for staff profiles
type AdminHandler struct {
	adminService service.AdminServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService service.AdminServiceInterface) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// ListAdmins handles GET /admins
// @Summary List admins
// @Tags admins
// @Produce json
// @Success 200 {array} service.AdminResponse
// @Router /admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.GetAllAdmins()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// GetAdmin handles GET /admins/:id
// @Summary Get admin by ID
// @Tags admins
// @Produce json
// @Param id path string true "Admin ID (UUID)"
// @Success 200 {object} service.AdminResponse
// @Failure 404 {object} ErrorResponse "Admin não encontrado"
// @Router /admins/{id} [get]
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	admin, err := h.adminService.GetAdminByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// CreateAdmin handles POST /admins
// @Summary Create admin
// @Tags admins
// @Accept mpfd,json
// @Produce json
// @Param admin body service.CreateAdminRequest true "Admin data"
// @Success 201 {object} map[string]interface{} "admin"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /admins [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req service.CreateAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	photo, err := readImage(c, "foto")
	if err != nil {
		respondError(c, err)
		return
	}
	req.Photo = photo

	admin, err := h.adminService.CreateAdmin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"admin": admin})
}

// UpdateAdmin handles PUT /admins/:id
// @Summary Update admin
// @Tags admins
// @Accept mpfd,json
// @Produce json
// @Param id path string true "Admin ID (UUID)"
// @Param admin body service.UpdateAdminRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "admin"
// @Failure 404 {object} ErrorResponse "Admin não encontrado"
// @Router /admins/{id} [put]
func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	photo, err := readImage(c, "foto")
	if err != nil {
		respondError(c, err)
		return
	}
	req.Photo = photo

	admin, err := h.adminService.UpdateAdmin(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// DeleteAdmin handles DELETE /admins/:id
// @Summary Delete admin
// @Tags admins
// @Produce json
// @Param id path string true "Admin ID (UUID)"
// @Success 200 {object} map[string]interface{} "success"
// @Failure 404 {object} ErrorResponse "Admin não encontrado"
// @Router /admins/{id} [delete]
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.adminService.DeleteAdmin(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAdminPhoto handles GET /admins/:id/foto
// @Summary Get admin photo
// @Tags admins
// @Produce image/png,image/jpeg
// @Param id path string true "Admin ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /admins/{id}/foto [get]
func (h *AdminHandler) GetAdminPhoto(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	img, err := h.adminService.GetAdminPhoto(id)
	if err != nil {
		respondError(c, err)
		return
	}
	serveImage(c, img)
}
