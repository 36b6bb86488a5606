package twitch

import (
	"net/http"

	"maua-esports-backend/internal/api/middleware"
	"maua-esports-backend/internal/config"
	apperrors "maua-esports-backend/internal/errors"
	"maua-esports-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Server exposes the cache over HTTP and WebSocket
type Server struct {
	cache *Cache
	hub   *Hub
}

// NewServer creates the HTTP side of the stats service
func NewServer(cache *Cache, hub *Hub) *Server {
	return &Server{cache: cache, hub: hub}
}

// Router builds the gin engine of the stats service
func (s *Server) Router(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg))

	router.GET("/api/twitch/stats/:channel", s.GetStats)
	router.GET("/ws", s.ServeWS)
	// The site connects to the bare host
	router.GET("/", s.ServeWS)
	router.GET("/health", s.Health)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
	})
	return router
}

// GetStats handles GET /api/twitch/stats/:channel
// @Summary Cached channel stats
// @Tags twitch
// @Produce json
// @Param channel path string true "Channel login"
// @Success 200 {object} Snapshot
// @Failure 404 {object} map[string]string "Canal não encontrado"
// @Failure 503 {object} map[string]string "Dados ainda não disponíveis"
// @Router /api/twitch/stats/{channel} [get]
func (s *Server) GetStats(c *gin.Context) {
	snapshot, err := s.cache.Get(c.Param("channel"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, snapshot)
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsUnavailable(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
	}
}

// ServeWS upgrades to a WebSocket that receives every changed snapshot
func (s *Server) ServeWS(c *gin.Context) {
	if !websocket.IsWebSocketUpgrade(c.Request) {
		c.JSON(http.StatusOK, gin.H{"service": "twitch-stats", "channels": s.cache.Channels()})
		return
	}
	if err := s.hub.Serve(c.Writer, c.Request, s.cache.Ready()); err != nil {
		// The upgrader already wrote the HTTP error
		logger.WithContext(c).WithError(err).Warn("WebSocket upgrade failed")
	}
}

// Health reports how many channels are warm
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"channels": len(s.cache.Channels()),
		"ready":    len(s.cache.Ready()),
		"clients":  s.hub.Count(),
	})
}
