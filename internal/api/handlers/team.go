package handlers

import (
	"net/http"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /times
// @Summary List teams
// @Tags times
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Router /times [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.GetAllTeams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /times/:id
// @Summary Get team by ID
// @Tags times
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Time não encontrado"
// @Router /times/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	team, err := h.teamService.GetTeamByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// CreateTeam handles POST /times
// @Summary Create team
// @Description Create a team with a chosen numeric id, a photo and a game logo
// @Tags times
// @Accept mpfd,json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Validation error or duplicate id/name"
// @Router /times [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	var err error
	if req.Photo, err = readImage(c, "foto"); err != nil {
		respondError(c, err)
		return
	}
	if req.GameLogo, err = readImage(c, "jogo"); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.CreateTeam(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /times/:id
// @Summary Update team
// @Tags times
// @Accept mpfd,json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Time não encontrado"
// @Router /times/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateTeamRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if req.Photo, err = readImage(c, "foto"); err != nil {
		respondError(c, err)
		return
	}
	if req.GameLogo, err = readImage(c, "jogo"); err != nil {
		respondError(c, err)
		return
	}

	team, err := h.teamService.UpdateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /times/:id
// @Summary Delete team
// @Description Teams referenced by players cannot be deleted
// @Tags times
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Team still has players"
// @Failure 404 {object} ErrorResponse "Time não encontrado"
// @Router /times/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.teamService.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Time removido com sucesso"})
}

// GetTeamPhoto handles GET /times/:id/foto
// @Summary Get team photo
// @Tags times
// @Produce image/png,image/jpeg
// @Param id path int true "Team ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /times/{id}/foto [get]
func (h *TeamHandler) GetTeamPhoto(c *gin.Context) {
	h.serveTeamImage(c, service.TeamImagePhoto)
}

// GetTeamGameLogo handles GET /times/:id/jogo
// @Summary Get team game logo
// @Tags times
// @Produce image/png,image/jpeg
// @Param id path int true "Team ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /times/{id}/jogo [get]
func (h *TeamHandler) GetTeamGameLogo(c *gin.Context) {
	h.serveTeamImage(c, service.TeamImageGameLogo)
}

func (h *TeamHandler) serveTeamImage(c *gin.Context, field string) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	img, err := h.teamService.GetTeamImage(id, field)
	if err != nil {
		respondError(c, err)
		return
	}
	serveImage(c, img)
}

// GetTeamPlayers handles GET /times/:id/jogadores
// @Summary List the players of a team
// @Tags times
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.PlayerResponse
// @Failure 404 {object} ErrorResponse "Time não encontrado"
// @Router /times/{id}/jogadores [get]
func (h *TeamHandler) GetTeamPlayers(c *gin.Context) {
	id, err := parseIntParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	players, err := h.teamService.GetTeamPlayers(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}
