package handlers

import (
	"net/http"

	"maua-esports-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContentHandler handles the editable blocks of the home page
type ContentHandler struct {
	newsService         service.NewsItemServiceInterface
	presentationService service.PresentationServiceInterface
}

// NewContentHandler creates a new content handler
func NewContentHandler(newsService service.NewsItemServiceInterface, presentationService service.PresentationServiceInterface) *ContentHandler {
	return &ContentHandler{
		newsService:         newsService,
		presentationService: presentationService,
	}
}

// GetNewsItem handles GET /api/homeNovidade
// @Summary Get the home news block
// @Tags conteudo
// @Produce json
// @Success 200 {object} service.NewsItemResponse
// @Failure 404 {object} MessageResponse "Nenhuma novidade encontrada"
// @Router /api/homeNovidade [get]
func (h *ContentHandler) GetNewsItem(c *gin.Context) {
	item, err := h.newsService.GetNewsItem()
	if err != nil {
		respondMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// SaveNewsItem handles POST /api/homeNovidade
// @Summary Create or replace the home news block
// @Tags conteudo
// @Accept mpfd
// @Produce json
// @Param titulo formData string true "Title"
// @Param subtitulo formData string false "Subtitle"
// @Param descricao formData string true "Description"
// @Param nomeBotao formData string false "Button label"
// @Param urlBotao formData string false "Button link"
// @Param imagem formData file false "Image"
// @Success 200 {object} service.NewsItemResponse
// @Failure 400 {object} MessageResponse "Título e descrição são obrigatórios"
// @Router /api/homeNovidade [post]
func (h *ContentHandler) SaveNewsItem(c *gin.Context) {
	var req service.SaveNewsItemRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, bindError(err))
		return
	}
	img, err := readImage(c, "imagem")
	if err != nil {
		respondMessage(c, err)
		return
	}
	req.Image = img

	item, err := h.newsService.SaveNewsItem(&req)
	if err != nil {
		respondMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetPresentation handles GET /api/apresentacao
// @Summary Get the home presentation block
// @Tags conteudo
// @Produce json
// @Success 200 {object} service.PresentationResponse
// @Failure 404 {object} MessageResponse "Nenhuma apresentação encontrada"
// @Router /api/apresentacao [get]
func (h *ContentHandler) GetPresentation(c *gin.Context) {
	presentation, err := h.presentationService.GetPresentation()
	if err != nil {
		respondMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, presentation)
}

// SavePresentation handles POST /api/apresentacao
// @Summary Create or replace the home presentation block
// @Description Icons are sent as a JSON array in the "icones" field. Files uploaded under "icones" fill, in order, the icons sent without an image.
// @Tags conteudo
// @Accept mpfd
// @Produce json
// @Param titulo1 formData string true "First title"
// @Param titulo2 formData string true "Second title"
// @Param descricao1 formData string true "First description"
// @Param descricao2 formData string true "Second description"
// @Param botao1Nome formData string true "First button label"
// @Param botao1Link formData string true "First button link"
// @Param botao2Nome formData string true "Second button label"
// @Param botao2Link formData string true "Second button link"
// @Param icones formData string false "Icons as JSON [{id, link, imagem}]"
// @Param imagem formData file false "Image"
// @Success 200 {object} service.PresentationResponse
// @Failure 400 {object} MessageResponse "Todos os campos são obrigatórios"
// @Router /api/apresentacao [post]
func (h *ContentHandler) SavePresentation(c *gin.Context) {
	var req service.SavePresentationRequest
	if err := c.ShouldBind(&req); err != nil {
		respondMessage(c, bindError(err))
		return
	}

	icons, err := service.ParseIcons(c.PostForm("icones"))
	if err != nil {
		respondMessage(c, err)
		return
	}
	req.Icons = icons
	if req.IconFiles, err = readImages(c, "icones"); err != nil {
		respondMessage(c, err)
		return
	}
	if req.Image, err = readImage(c, "imagem"); err != nil {
		respondMessage(c, err)
		return
	}

	presentation, err := h.presentationService.SavePresentation(&req)
	if err != nil {
		respondMessage(c, err)
		return
	}
	c.JSON(http.StatusOK, presentation)
}
