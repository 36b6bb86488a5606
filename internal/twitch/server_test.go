package twitch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"maua-esports-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	cache  *Cache
	hub    *Hub
	router *gin.Engine
}

func (s *ServerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.cache = NewCache([]string{"mauaesports"})
	s.hub = NewHub(DefaultHubConfig())
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	s.router = NewServer(s.cache, s.hub).Router(cfg)
}

func (s *ServerTestSuite) TearDownTest() {
	s.hub.Close()
}

func (s *ServerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestStatsNotReady() {
	rec := s.get("/api/twitch/stats/mauaesports")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "Dados ainda não disponíveis")
}

func (s *ServerTestSuite) TestStatsUnknownChannel() {
	rec := s.get("/api/twitch/stats/someone")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "Canal não encontrado")
}

func (s *ServerTestSuite) TestStatsReady() {
	now := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	s.cache.Update("mauaesports", Stats{Followers: 99, Viewers: 5, IsLive: true, LastUpdated: &now})

	rec := s.get("/api/twitch/stats/MauaEsports")
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]interface{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(float64(99), body["followers"])
	s.Equal(float64(5), body["viewers"])
	s.Equal(true, body["isLive"])
	s.Equal("mauaesports", body["channel"])
	s.Equal("2025-05-01T12:00:00Z", body["lastUpdated"])
}

func (s *ServerTestSuite) TestRootWithoutUpgrade() {
	rec := s.get("/")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "twitch-stats")
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestWebSocketPush(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cache := NewCache([]string{"mauaesports"})
	hub := NewHub(DefaultHubConfig())
	defer hub.Close()

	now := time.Now().UTC()
	cache.Update("mauaesports", Stats{Followers: 1, LastUpdated: &now})

	srv := httptest.NewServer(NewServer(cache, hub).Router(&config.Config{}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	// current stats arrive on connect
	var first Snapshot
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, 1, first.Followers)
	assert.Equal(t, "mauaesports", first.Channel)

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)
	snap, _ := cache.Update("mauaesports", Stats{Followers: 2, LastUpdated: &now})
	hub.Broadcast(snap)

	var next Snapshot
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, 2, next.Followers)
}
