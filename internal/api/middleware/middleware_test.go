package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"maua-esports-backend/internal/api/middleware"
	"maua-esports-backend/internal/config"
	"maua-esports-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestRequestID(t *testing.T) {
	r := newRouter(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), w.Body.String())
	})

	t.Run("keeps the client id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("reaches the request context", func(t *testing.T) {
		r := newRouter(middleware.RequestID())
		r.GET("/ctx", func(c *gin.Context) {
			id, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
			c.String(http.StatusOK, id)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ctx", nil)
		req.Header.Set(middleware.RequestIDHeader, "ctx-42")
		r.ServeHTTP(w, req)
		assert.Equal(t, "ctx-42", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := newRouter(middleware.Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, w.Body.String())
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:5173"}}
	r := newRouter(middleware.CORS(cfg))
	r.GET("/times", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight answers 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/times", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/times", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin gets no allow header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/times", nil)
		req.Header.Set("Origin", "http://evil.example")
		r.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
