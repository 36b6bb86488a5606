package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"maua-esports-backend/internal/database/models"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const internalErrorMessage = "Erro interno do servidor"

var errNotAnImage = apperrors.NewValidationError("file", "Apenas arquivos de imagem são permitidos")

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// MessageResponse represents a response carrying a single message
type MessageResponse struct {
	Message string `json:"message" example:"Nenhuma novidade encontrada"`
}

// statusFor maps application errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err), apperrors.IsConflict(err), apperrors.IsAlreadyExists(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsUpstream(err):
		return http.StatusBadGateway
	case apperrors.IsConfiguration(err), apperrors.IsUnavailable(err):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// publicMessage returns the client facing text for err.
// Unexpected errors are logged and only shown in debug mode.
func publicMessage(c *gin.Context, err error, status int) string {
	if status != http.StatusInternalServerError {
		return err.Error()
	}
	logger.WithContext(c).WithError(err).Error("Request failed")
	_ = c.Error(err)
	if gin.IsDebugging() {
		return err.Error()
	}
	return internalErrorMessage
}

// respondError writes {"error": message}
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, gin.H{"error": publicMessage(c, err, status)})
}

// respondMessage writes {"message": message}
func respondMessage(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, gin.H{"message": publicMessage(c, err, status)})
}

// respondFailure writes {"success": false, "message": message}
func respondFailure(c *gin.Context, err error) {
	status := statusFor(err)
	c.JSON(status, gin.H{"success": false, "message": publicMessage(c, err, status)})
}

// bindError wraps a binding failure as a validation error
func bindError(err error) error {
	return apperrors.NewValidationError("body", "Dados inválidos: "+err.Error())
}

// parseUUIDParam reads a uuid path parameter
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.ErrInvalidID
	}
	return id, nil
}

// parseIntParam reads a positive integer path parameter
func parseIntParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, apperrors.ErrInvalidID
	}
	return id, nil
}

// isMultipart reports whether the request carries a multipart form
func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// readImage returns the uploaded image in field, or nil when none was sent
func readImage(c *gin.Context, field string) (*models.Image, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, bindError(err)
	}
	return loadImage(fh)
}

// readImages returns every image uploaded under field, in order
func readImages(c *gin.Context, field string) ([]models.Image, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, bindError(err)
	}
	files := form.File[field]
	images := make([]models.Image, 0, len(files))
	for _, fh := range files {
		img, err := loadImage(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, nil
}

func loadImage(fh *multipart.FileHeader) (*models.Image, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, bindError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, bindError(err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errNotAnImage
	}
	return &models.Image{Data: data, ContentType: contentType, OriginalName: fh.Filename}, nil
}

// serveImage writes stored image bytes with their content type
func serveImage(c *gin.Context, img *models.Image) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, img.MimeType(), img.Data)
}
