package system_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/database/dbtest"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(dbtest.Open(t), zap.NewNop())
	r := gin.New()
	r.GET("/api/health", h.Health)
	r.NoRoute(h.Echo)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "ok", status.Database)
}

func TestEcho(t *testing.T) {
	r := setupRouter(t)

	t.Run("json body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/settings?tab=general&tab=seo", strings.NewReader(`{"theme":"dark","size":3}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)

		var echo EchoRequest
		require.NoError(t, json.Unmarshal(env.Data, &echo))
		assert.Equal(t, http.MethodPost, echo.Method)
		assert.Equal(t, "/api/admin/settings", echo.Path)
		assert.Equal(t, []string{"general", "seo"}, echo.Query["tab"])
		assert.Equal(t, map[string]any{"theme": "dark", "size": float64(3)}, echo.Body)
	})

	t.Run("text body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/anything", strings.NewReader("plain text")))
		require.Equal(t, http.StatusOK, w.Code)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var echo EchoRequest
		require.NoError(t, json.Unmarshal(env.Data, &echo))
		assert.Equal(t, "plain text", echo.Body)
	})

	t.Run("outside api", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
