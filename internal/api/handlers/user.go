package handlers

import (
	"net/http"
	"strings"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /usuarios
// @Summary List users
// @Tags usuarios
// @Produce json
// @Success 200 {object} map[string]interface{} "success, count and data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /usuarios [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(users), "data": users})
}

// GetUser handles GET /usuarios/:id
// @Summary Get user by ID
// @Tags usuarios
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "success and data"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "Usuário não encontrado"
// @Router /usuarios/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// GetUserByEmail handles GET /usuarios/por-email
// @Summary Get user by email
// @Tags usuarios
// @Produce json
// @Param email query string true "Institutional email"
// @Success 200 {object} map[string]interface{} "usuario"
// @Failure 400 {object} map[string]interface{} "Email missing"
// @Failure 404 {object} map[string]interface{} "Usuário não encontrado"
// @Router /usuarios/por-email [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userService.GetUserByEmail(c.Query("email"))
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usuario": user})
}

// GetUsersByDiscordIDs handles GET /usuarios/por-discord-ids
// @Summary Get users by Discord ids
// @Tags usuarios
// @Produce json
// @Param ids query string true "Comma separated Discord ids"
// @Success 200 {array} service.UserResponse
// @Router /usuarios/por-discord-ids [get]
func (h *UserHandler) GetUsersByDiscordIDs(c *gin.Context) {
	var ids []string
	for _, raw := range c.QueryArray("ids") {
		ids = append(ids, strings.Split(raw, ",")...)
	}
	users, err := h.userService.GetUsersByDiscordIDs(ids)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles POST /usuarios
// @Summary Create user
// @Tags usuarios
// @Accept json,mpfd
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} map[string]interface{} "success and usuario"
// @Failure 400 {object} map[string]interface{} "Validation error or email in use"
// @Router /usuarios [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondFailure(c, bindError(err))
		return
	}
	photo, err := readImage(c, "fotoPerfil")
	if err != nil {
		respondFailure(c, err)
		return
	}
	req.Photo = photo

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "usuario": user})
}

// UpdateUser handles PUT /usuarios/:id
// @Summary Update user
// @Tags usuarios
// @Accept json,mpfd
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} map[string]interface{} "success and data"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Usuário não encontrado"
// @Router /usuarios/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	var req service.UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondFailure(c, bindError(err))
		return
	}
	photo, err := readImage(c, "fotoPerfil")
	if err != nil {
		respondFailure(c, err)
		return
	}
	req.Photo = photo

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// DeleteUser handles DELETE /usuarios/:id
// @Summary Delete user
// @Tags usuarios
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "success and message"
// @Failure 404 {object} map[string]interface{} "Usuário não encontrado"
// @Router /usuarios/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	if err := h.userService.DeleteUser(id); err != nil {
		respondFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Usuário removido com sucesso"})
}

// GetProfilePhoto handles GET /usuarios/:id/foto
// @Summary Get user profile photo
// @Tags usuarios
// @Produce image/png,image/jpeg
// @Param id path string true "User ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]interface{} "Imagem não encontrada"
// @Router /usuarios/{id}/foto [get]
func (h *UserHandler) GetProfilePhoto(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondFailure(c, err)
		return
	}
	img, err := h.userService.GetProfilePhoto(id)
	if err != nil {
		respondFailure(c, err)
		return
	}
	serveImage(c, img)
}
