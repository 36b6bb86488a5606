package handlers

import (
	"net/http"
	"strconv"

	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for roster players
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /jogadores
// @Summary List players
// @Tags jogadores
// @Produce json
// @Param time query int false "Team id filter"
// @Success 200 {array} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Invalid team id"
// @Router /jogadores [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	var teamID *int
	if raw := c.Query("time"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			respondError(c, apperrors.ErrInvalidID)
			return
		}
		teamID = &id
	}

	players, err := h.playerService.GetAllPlayers(teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

// GetPlayer handles GET /jogadores/:id
// @Summary Get player by ID
// @Tags jogadores
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} service.PlayerResponse
// @Failure 404 {object} ErrorResponse "Jogador não encontrado"
// @Router /jogadores/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	player, err := h.playerService.GetPlayerByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// CreatePlayer handles POST /jogadores
// @Summary Create player
// @Tags jogadores
// @Accept mpfd,json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /jogadores [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
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

	player, err := h.playerService.CreatePlayer(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

// UpdatePlayer handles PUT /jogadores/:id
// @Summary Update player
// @Tags jogadores
// @Accept mpfd,json
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Param player body service.UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} service.PlayerResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Jogador não encontrado"
// @Router /jogadores/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdatePlayerRequest
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

	player, err := h.playerService.UpdatePlayer(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

// DeletePlayer handles DELETE /jogadores/:id
// @Summary Delete player
// @Tags jogadores
// @Produce json
// @Param id path string true "Player ID (UUID)"
// @Success 200 {object} map[string]interface{} "message and id"
// @Failure 404 {object} ErrorResponse "Jogador não encontrado"
// @Router /jogadores/{id} [delete]
func (h *PlayerHandler) DeletePlayer(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.playerService.DeletePlayer(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jogador removido com sucesso", "id": id})
}

// GetPlayerPhoto handles GET /jogadores/:id/imagem
// @Summary Get player photo
// @Tags jogadores
// @Produce image/png,image/jpeg
// @Param id path string true "Player ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /jogadores/{id}/imagem [get]
func (h *PlayerHandler) GetPlayerPhoto(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	img, err := h.playerService.GetPlayerPhoto(id)
	if err != nil {
		respondError(c, err)
		return
	}
	serveImage(c, img)
}
