package service

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Messages of the home page editors
const (
	newsItemRequiredMessage     = "Título e descrição são obrigatórios"
	presentationRequiredMessage = "Todos os campos são obrigatórios"
)

// NewsItemService manages the home page news block
type NewsItemService struct {
	repo repository.NewsItemRepositoryInterface
}

// Ensure NewsItemService implements NewsItemServiceInterface
var _ NewsItemServiceInterface = (*NewsItemService)(nil)

// NewNewsItemService creates a new news item service
func NewNewsItemService(repo repository.NewsItemRepositoryInterface) *NewsItemService {
	return &NewsItemService{repo: repo}
}

// SaveNewsItemRequest represents the multipart form of the news editor
type SaveNewsItemRequest struct {
	Title       string        `form:"titulo"`
	Subtitle    string        `form:"subtitulo"`
	Description string        `form:"descricao"`
	ButtonName  string        `form:"nomeBotao"`
	ButtonURL   string        `form:"urlBotao"`
	Image       *models.Image `form:"-"`
}

// NewsItemResponse renders the news block with the image inlined
type NewsItemResponse struct {
	ID          uuid.UUID `json:"_id"`
	Title       string    `json:"titulo"`
	Subtitle    string    `json:"subtitulo"`
	Description string    `json:"descricao"`
	ButtonName  string    `json:"nomeBotao"`
	ButtonURL   string    `json:"urlBotao"`
	Image       *string   `json:"imagem"`
}

// GetNewsItem returns the current news block
func (s *NewsItemService) GetNewsItem() (*NewsItemResponse, error) {
	item, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsItemNotFound
		}
		return nil, fmt.Errorf("failed to get news item: %w", err)
	}
	return toNewsItemResponse(item), nil
}

// SaveNewsItem creates the news block or overwrites the current one
func (s *NewsItemService) SaveNewsItem(req *SaveNewsItemRequest) (*NewsItemResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, apperrors.NewValidationErrors(newsItemRequiredMessage)
	}

	item, err := s.repo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get news item: %w", err)
		}
		item = &models.NewsItem{}
	}

	item.Title = strings.TrimSpace(req.Title)
	item.Subtitle = strings.TrimSpace(req.Subtitle)
	item.Description = req.Description
	item.ButtonName = strings.TrimSpace(req.ButtonName)
	item.ButtonURL = strings.TrimSpace(req.ButtonURL)
	replaceImage(&item.Image, req.Image)

	if err := s.repo.Save(item); err != nil {
		return nil, fmt.Errorf("failed to save news item: %w", err)
	}
	return toNewsItemResponse(item), nil
}

func toNewsItemResponse(item *models.NewsItem) *NewsItemResponse {
	return &NewsItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Subtitle:    item.Subtitle,
		Description: item.Description,
		ButtonName:  item.ButtonName,
		ButtonURL:   item.ButtonURL,
		Image:       dataURL(item.Image),
	}
}

// PresentationService manages the home page hero block
type PresentationService struct {
	repo repository.PresentationRepositoryInterface
}

// Ensure PresentationService implements PresentationServiceInterface
var _ PresentationServiceInterface = (*PresentationService)(nil)

// NewPresentationService creates a new presentation service
func NewPresentationService(repo repository.PresentationRepositoryInterface) *PresentationService {
	return &PresentationService{repo: repo}
}

// IconInput is one entry of the "icones" form field
type IconInput struct {
	ID    IconID `json:"id"`
	Link  string `json:"link"`
	Image string `json:"imagem,omitempty"`
}

// IconID accepts both numeric and string ids
type IconID string

// UnmarshalJSON implements json.Unmarshaler
func (id *IconID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = IconID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid icon id %s", data)
	}
	*id = IconID(n.String())
	return nil
}

// SavePresentationRequest represents the multipart form of the presentation editor.
// IconFiles are handed in order to the icons that carry no image of their own.
type SavePresentationRequest struct {
	Title1       string         `form:"titulo1"`
	Title2       string         `form:"titulo2"`
	Description1 string         `form:"descricao1"`
	Description2 string         `form:"descricao2"`
	Button1Name  string         `form:"botao1Nome"`
	Button1Link  string         `form:"botao1Link"`
	Button2Name  string         `form:"botao2Nome"`
	Button2Link  string         `form:"botao2Link"`
	Icons        []IconInput    `form:"-"`
	IconFiles    []models.Image `form:"-"`
	Image        *models.Image  `form:"-"`
}

// ParseIcons decodes the "icones" form field
func ParseIcons(raw string) ([]IconInput, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var icons []IconInput
	if err := json.Unmarshal([]byte(raw), &icons); err != nil {
		return nil, apperrors.NewValidationError("icones", "Formato inválido para os ícones")
	}
	return icons, nil
}

// PresentationIconResponse renders an icon with the image inlined
type PresentationIconResponse struct {
	ID    string  `json:"id"`
	Link  string  `json:"link"`
	Image *string `json:"imagem"`
}

// PresentationResponse renders the hero block with images inlined
type PresentationResponse struct {
	ID           uuid.UUID                  `json:"_id"`
	Title1       string                     `json:"titulo1"`
	Title2       string                     `json:"titulo2"`
	Description1 string                     `json:"descricao1"`
	Description2 string                     `json:"descricao2"`
	Button1Name  string                     `json:"botao1Nome"`
	Button1Link  string                     `json:"botao1Link"`
	Button2Name  string                     `json:"botao2Nome"`
	Button2Link  string                     `json:"botao2Link"`
	Image        *string                    `json:"imagem"`
	Icons        []PresentationIconResponse `json:"icones"`
}

// GetPresentation returns the current presentation
func (s *PresentationService) GetPresentation() (*PresentationResponse, error) {
	p, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPresentationNotFound
		}
		return nil, fmt.Errorf("failed to get presentation: %w", err)
	}
	return toPresentationResponse(p), nil
}

// SavePresentation creates the presentation or overwrites the current one
func (s *PresentationService) SavePresentation(req *SavePresentationRequest) (*PresentationResponse, error) {
	for _, v := range []string{
		req.Title1, req.Title2, req.Description1, req.Description2,
		req.Button1Name, req.Button1Link, req.Button2Name, req.Button2Link,
	} {
		if strings.TrimSpace(v) == "" {
			return nil, apperrors.NewValidationErrors(presentationRequiredMessage)
		}
	}

	p, err := s.repo.Get()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get presentation: %w", err)
		}
		p = &models.Presentation{}
	}

	p.Title1 = strings.TrimSpace(req.Title1)
	p.Title2 = strings.TrimSpace(req.Title2)
	p.Description1 = req.Description1
	p.Description2 = req.Description2
	p.Button1Name = strings.TrimSpace(req.Button1Name)
	p.Button1Link = strings.TrimSpace(req.Button1Link)
	p.Button2Name = strings.TrimSpace(req.Button2Name)
	p.Button2Link = strings.TrimSpace(req.Button2Link)
	replaceImage(&p.Image, req.Image)
	if req.Icons != nil {
		p.Icons = mergeIcons(p.Icons, req.Icons, req.IconFiles)
	}

	if err := s.repo.Save(p); err != nil {
		return nil, fmt.Errorf("failed to save presentation: %w", err)
	}
	return toPresentationResponse(p), nil
}

// mergeIcons builds the new icon list. An icon keeps, in order of preference,
// an inline data URL, the next uploaded file, or the image it had before.
func mergeIcons(current []models.PresentationIcon, inputs []IconInput, files []models.Image) []models.PresentationIcon {
	previous := make(map[string]models.PresentationIcon, len(current))
	for _, icon := range current {
		previous[icon.ID] = icon
	}

	icons := make([]models.PresentationIcon, 0, len(inputs))
	next := 0
	for _, in := range inputs {
		icon := models.PresentationIcon{ID: string(in.ID), Link: strings.TrimSpace(in.Link)}
		if data, mime, ok := decodeDataURL(in.Image); ok {
			icon.Image, icon.ImageType = data, mime
		} else if next < len(files) {
			icon.Image, icon.ImageType = files[next].Data, files[next].MimeType()
			next++
		} else if old, ok := previous[icon.ID]; ok {
			icon.Image, icon.ImageType = old.Image, old.ImageType
		}
		icons = append(icons, icon)
	}
	return icons
}

func decodeDataURL(s string) ([]byte, string, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, "", false
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", false
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return nil, "", false
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, "", false
	}
	return data, mime, true
}

func dataURL(img models.Image) *string {
	if img.IsEmpty() {
		return nil
	}
	url := img.DataURL()
	return &url
}

func toPresentationResponse(p *models.Presentation) *PresentationResponse {
	icons := make([]PresentationIconResponse, len(p.Icons))
	for i, icon := range p.Icons {
		icons[i] = PresentationIconResponse{
			ID:    icon.ID,
			Link:  icon.Link,
			Image: dataURL(models.Image{Data: icon.Image, ContentType: icon.ImageType}),
		}
	}
	return &PresentationResponse{
		ID:           p.ID,
		Title1:       p.Title1,
		Title2:       p.Title2,
		Description1: p.Description1,
		Description2: p.Description2,
		Button1Name:  p.Button1Name,
		Button1Link:  p.Button1Link,
		Button2Name:  p.Button2Name,
		Button2Link:  p.Button2Link,
		Image:        dataURL(p.Image),
		Icons:        icons,
	}
}
