package handlers

import (
	"net/http"

	"maua-esports-backend/internal/database/models"
	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TournamentHandler handles HTTP requests for tournaments
type TournamentHandler struct {
	tournamentService service.TournamentServiceInterface
}

// NewTournamentHandler creates a new tournament handler
func NewTournamentHandler(tournamentService service.TournamentServiceInterface) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
	}
}

// ListTournaments handles GET /campeonatos
// @Summary List tournaments
// @Tags campeonatos
// @Produce json
// @Param status query string false "Board filter (campeonatos, inscricoes, passados)"
// @Success 200 {object} service.TournamentListResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /campeonatos [get]
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	list, err := h.tournamentService.GetAllTournaments(c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetTournament handles GET /campeonatos/:id
// @Summary Get tournament by ID
// @Tags campeonatos
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {object} service.TournamentResponse
// @Failure 404 {object} ErrorResponse "Campeonato não encontrado"
// @Router /campeonatos/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	tournament, err := h.tournamentService.GetTournamentByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// CreateTournament handles POST /campeonatos
// @Summary Create tournament
// @Tags campeonatos
// @Accept mpfd,json
// @Produce json
// @Param tournament body service.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} service.TournamentResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /campeonatos [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req service.CreateTournamentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	var err error
	if req.Image, req.GameIcon, req.OrganizerImage, err = readTournamentImages(c); err != nil {
		respondError(c, err)
		return
	}

	tournament, err := h.tournamentService.CreateTournament(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

// UpdateTournament handles PUT /campeonatos/:id
// @Summary Update tournament
// @Tags campeonatos
// @Accept mpfd,json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Param tournament body service.UpdateTournamentRequest true "Fields to change"
// @Success 200 {object} service.TournamentResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Campeonato não encontrado"
// @Router /campeonatos/{id} [put]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.UpdateTournamentRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindError(err))
		return
	}
	if req.Image, req.GameIcon, req.OrganizerImage, err = readTournamentImages(c); err != nil {
		respondError(c, err)
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// MoveTournament handles PATCH /campeonatos/:id/move
// @Summary Move tournament to another board
// @Tags campeonatos
// @Accept json
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Param move body service.MoveTournamentRequest true "Target status"
// @Success 200 {object} service.TournamentResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Campeonato não encontrado"
// @Router /campeonatos/{id}/move [patch]
func (h *TournamentHandler) MoveTournament(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req service.MoveTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, bindError(err))
		return
	}

	tournament, err := h.tournamentService.MoveTournament(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament handles DELETE /campeonatos/:id
// @Summary Delete tournament
// @Tags campeonatos
// @Produce json
// @Param id path string true "Tournament ID (UUID)"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Campeonato não encontrado"
// @Router /campeonatos/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.tournamentService.DeleteTournament(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campeonato removido com sucesso"})
}

// GetTournamentImage handles GET /campeonatos/:id/image, /gameIcon and /organizerImage
// @Summary Get a tournament image
// @Tags campeonatos
// @Produce image/png,image/jpeg
// @Param id path string true "Tournament ID (UUID)"
// @Param field path string true "image, gameIcon or organizerImage"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /campeonatos/{id}/{field} [get]
func (h *TournamentHandler) GetTournamentImage(field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseUUIDParam(c, "id")
		if err != nil {
			respondError(c, err)
			return
		}
		img, err := h.tournamentService.GetTournamentImage(id, field)
		if err != nil {
			respondError(c, err)
			return
		}
		serveImage(c, img)
	}
}

func readTournamentImages(c *gin.Context) (image, gameIcon, organizer *models.Image, err error) {
	if image, err = readImage(c, service.TournamentImageBanner); err != nil {
		return
	}
	if gameIcon, err = readImage(c, service.TournamentImageGameIcon); err != nil {
		return
	}
	organizer, err = readImage(c, service.TournamentImageOrganizer)
	return
}
