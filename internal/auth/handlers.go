package auth

import (
	"net/http"

	apperrors "maua-esports-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the Discord linking endpoints
type AuthHandler struct {
	service *LinkService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *LinkService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles GET /auth/discord/login
// @Summary Start Discord linking
// @Description Redirect to the Discord consent page for the given club user
// @Tags authentication
// @Param userId query string true "Club user id"
// @Param returnUrl query string false "Frontend URL to return to"
// @Success 302 {string} string "Redirect to Discord"
// @Failure 400 {string} string "UserId não fornecido"
// @Failure 503 {object} map[string]interface{} "Discord integration not configured"
// @Router /auth/discord/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	authURL, err := h.service.LoginURL(c.Query("userId"), c.Query("returnUrl"))
	if err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": reasonNotConfigured})
			return
		}
		c.String(http.StatusBadRequest, apperrors.ValidationMessages(err)[0])
		return
	}
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /auth/discord/callback
// @Summary Finish Discord linking
// @Description Exchange the authorization code, store the Discord id on the user and return to the frontend
// @Tags authentication
// @Param code query string true "Authorization code"
// @Param state query string true "State created by the login endpoint"
// @Success 302 {string} string "Redirect to the frontend with discordLinked=true|false"
// @Failure 400 {string} string "Missing code or invalid state"
// @Router /auth/discord/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(http.StatusBadRequest, msgCodeMissing)
		return
	}

	state, err := ParseState(c.Query("state"))
	if c.Query("error") != "" {
		returnURL := ""
		if err == nil {
			returnURL = state.ReturnURL
		}
		c.Redirect(http.StatusFound, h.service.ResultURL(returnURL, false, reasonExchange))
		return
	}
	if err != nil {
		c.String(http.StatusBadRequest, apperrors.ValidationMessages(err)[0])
		return
	}

	c.Redirect(http.StatusFound, h.service.Complete(c, code, state))
}
