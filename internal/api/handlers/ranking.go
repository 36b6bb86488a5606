package handlers

import (
	"net/http"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RankingHandler handles HTTP requests for rank badges
type RankingHandler struct {
	rankingService service.RankingServiceInterface
}

// NewRankingHandler creates a new ranking handler
func NewRankingHandler(rankingService service.RankingServiceInterface) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// ListRankings handles GET /rankings
// @Summary List rankings
// @Tags rankings
// @Produce json
// @Success 200 {array} service.RankingResponse
// @Router /rankings [get]
func (h *RankingHandler) ListRankings(c *gin.Context) {
	rankings, err := h.rankingService.GetAllRankings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rankings)
}

// CreateRanking handles POST /rankings
// @Summary Create ranking
// @Tags rankings
// @Accept mpfd
// @Produce json
// @Param nome formData string true "Rank name"
// @Param imagem formData file false "Badge image"
// @Success 201 {object} service.RankingResponse
// @Failure 400 {object} ErrorResponse "Validation error"
// @Router /rankings [post]
func (h *RankingHandler) CreateRanking(c *gin.Context) {
	req, err := bindRanking(c)
	if err != nil {
		respondError(c, err)
		return
	}
	ranking, err := h.rankingService.CreateRanking(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ranking)
}

// UpdateRanking handles PUT /rankings/:id
// @Summary Update ranking
// @Tags rankings
// @Accept mpfd
// @Produce json
// @Param id path string true "Ranking ID (UUID)"
// @Param nome formData string false "Rank name"
// @Param imagem formData file false "Badge image"
// @Success 200 {object} service.RankingResponse
// @Failure 404 {object} ErrorResponse "Ranking não encontrado"
// @Router /rankings/{id} [put]
func (h *RankingHandler) UpdateRanking(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	req, err := bindRanking(c)
	if err != nil {
		respondError(c, err)
		return
	}
	ranking, err := h.rankingService.UpdateRanking(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ranking)
}

// DeleteRanking handles DELETE /rankings/:id
// @Summary Delete ranking
// @Tags rankings
// @Produce json
// @Param id path string true "Ranking ID (UUID)"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Ranking não encontrado"
// @Router /rankings/{id} [delete]
func (h *RankingHandler) DeleteRanking(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.rankingService.DeleteRanking(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ranking removido com sucesso"})
}

// GetRankingImage handles GET /rankings/:id/imagem
// @Summary Get ranking badge
// @Tags rankings
// @Produce image/png,image/jpeg
// @Param id path string true "Ranking ID (UUID)"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Imagem não encontrada"
// @Router /rankings/{id}/imagem [get]
func (h *RankingHandler) GetRankingImage(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	img, err := h.rankingService.GetRankingImage(id)
	if err != nil {
		respondError(c, err)
		return
	}
	serveImage(c, img)
}

func bindRanking(c *gin.Context) (*service.SaveRankingRequest, error) {
	var req service.SaveRankingRequest
	if err := c.ShouldBind(&req); err != nil {
		return nil, bindError(err)
	}
	img, err := readImage(c, "imagem")
	if err != nil {
		return nil, err
	}
	req.Image = img
	return &req, nil
}
