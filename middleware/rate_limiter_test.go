package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

func limitedRouter(rdb *redis.Client, limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(rdb, limit, window, zap.NewNop()))
	r.GET("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
	})
	r.POST("/api/products", func(c *gin.Context) {
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "ok", nil))
	})
	return r
}

func hit(r *gin.Engine, method string) (int, models.ApiResponse) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, "/api/products", nil)
	req.RemoteAddr = "10.0.0.7:4242"
	r.ServeHTTP(w, req)
	var resp models.ApiResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func TestRateLimiter_NilClientPassesThrough(t *testing.T) {
	r := limitedRouter(nil, 1, time.Minute)
	for range 3 {
		code, resp := hit(r, http.MethodGet)
		assert.Equal(t, http.StatusOK, code)
		assert.Nil(t, resp.Rate)
	}
}

func TestRateLimiter_UnreachableRedisAllowsRequests(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	r := limitedRouter(rdb, 1, time.Minute)
	for range 2 {
		code, _ := hit(r, http.MethodGet)
		assert.Equal(t, http.StatusOK, code)
	}
}

func TestRateLimiter_Window(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	const window = time.Minute
	r := limitedRouter(rdb, 2, window)

	code, resp := hit(r, http.MethodGet)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 2, resp.Rate.Limit)
	assert.Equal(t, 1, resp.Rate.Remaining)
	assert.InDelta(t, window.Seconds(), float64(resp.Rate.ResetInSeconds), 2)

	key := "rl:10.0.0.7:GET:/api/products"
	assert.Equal(t, window, mr.TTL(key))
	assert.Equal(t, window, mr.TTL(key+":resetAt"))
	firstReset := resp.Rate.ResetAt

	code, resp = hit(r, http.MethodGet)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, resp.Rate.Remaining)
	assert.True(t, firstReset.Equal(resp.Rate.ResetAt), "reset time is fixed for the window")

	code, resp = hit(r, http.MethodGet)
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.True(t, resp.Error)
	assert.Equal(t, "Too many requests", resp.Message)
	require.NotNil(t, resp.Rate)
	assert.Equal(t, 0, resp.Rate.Remaining)

	// Each method and route has its own counter.
	code, _ = hit(r, http.MethodPost)
	assert.Equal(t, http.StatusCreated, code)

	mr.FastForward(window)
	assert.False(t, mr.Exists(key))
	code, resp = hit(r, http.MethodGet)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, resp.Rate.Remaining)
}
