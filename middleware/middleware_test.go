package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/config"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestCORSMiddlewareSetsHeaders(t *testing.T) {
	r := newTestRouter()
	r.Use(CORSMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	r := newTestRouter()
	r.Use(CORSMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestInjectAndGetters(t *testing.T) {
	users := store.NewMemoryStore()
	sessions := store.NewRedisSessions(nil)
	consultations := chat.NewService(nil)

	r := newTestRouter()
	r.Use(Inject(users, sessions, consultations))
	r.GET("/check", func(c *gin.Context) {
		assert.NotNil(t, GetUserStore(c))
		assert.NotNil(t, GetSessions(c))
		assert.NotNil(t, GetChat(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionResolverPrefersBearerToken(t *testing.T) {
	util.SetJWTSecret("test-secret-123")
	sessions := store.NewRedisSessions(nil)
	require.NoError(t, sessions.SetCurrent("pointer@example.com"))

	token, err := util.IssueSessionToken("token@example.com")
	require.NoError(t, err)

	r := newTestRouter()
	r.Use(Inject(store.NewMemoryStore(), sessions, chat.NewService(nil)))
	r.Use(SessionResolver())
	r.GET("/whoami", func(c *gin.Context) {
		email, ok := CurrentEmail(c)
		assert.True(t, ok)
		c.String(http.StatusOK, email)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, "token@example.com", w.Body.String())
}

func TestSessionResolverFallsBackToCurrentPointer(t *testing.T) {
	sessions := store.NewRedisSessions(nil)
	require.NoError(t, sessions.SetCurrent("pointer@example.com"))

	r := newTestRouter()
	r.Use(Inject(store.NewMemoryStore(), sessions, chat.NewService(nil)))
	r.Use(SessionResolver())
	r.GET("/whoami", func(c *gin.Context) {
		email, _ := CurrentEmail(c)
		c.String(http.StatusOK, email)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, "pointer@example.com", w.Body.String())
}

func TestSessionResolverNoSession(t *testing.T) {
	r := newTestRouter()
	r.Use(Inject(store.NewMemoryStore(), store.NewRedisSessions(nil), chat.NewService(nil)))
	r.Use(SessionResolver())
	r.GET("/whoami", func(c *gin.Context) {
		_, ok := CurrentEmail(c)
		assert.False(t, ok)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	config.SetRedisClientForTesting(client)
	t.Cleanup(func() { config.SetRedisClientForTesting(nil) })

	r := newTestRouter()
	r.Use(RateLimiter(RateLimitConfig{Limit: 2, Window: time.Minute}))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimiterAllowsWithoutRedis(t *testing.T) {
	config.SetRedisClientForTesting(nil)

	r := newTestRouter()
	r.Use(RateLimiter(RateLimitConfig{Limit: 1, Window: time.Minute}))
	r.POST("/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
