package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/backoffice/internal/config"
	"github.com/saradorri/backoffice/internal/domain"
	"github.com/saradorri/backoffice/internal/infrastructure/auth"
	"github.com/saradorri/backoffice/internal/infrastructure/logger"
	"github.com/saradorri/backoffice/internal/infrastructure/rbac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		UserID    string `json:"user_id"`
		Path      string `json:"path"`
	} `json:"error"`
	Success bool `json:"success"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestRequestIDMiddleware(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := gin.New()
	router.Use(h.RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		requestID, _ := c.Request.Context().Value(logger.RequestIDKey).(string)
		c.String(http.StatusOK, requestID)
	})

	t.Run("generates", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "trace-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "trace-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "trace-123", w.Body.String())
	})
}

func TestErrorHandlerMiddleware_Panic(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := gin.New()
	router.Use(h.RequestIDMiddleware(), h.ErrorHandlerMiddleware())
	router.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeError(t, w)
	assert.Equal(t, domain.ErrCodeInternal, env.Error.Code)
	assert.NotEmpty(t, env.Error.RequestID)
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestTimeoutMiddleware(t *testing.T) {
	h := NewErrorHandler(logger.NewNop())
	router := gin.New()
	router.Use(h.TimeoutMiddleware(10 * time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.Equal(t, domain.ErrCodeTimeout, decodeError(t, w).Error.Code)
}

func TestAbortWithError_PlainError(t *testing.T) {
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		c.Set(ContextKeyUserID, int64(12))
		AbortWithError(c, errors.New("pq: relation \"users\" does not exist"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decodeError(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "12", env.Error.UserID)
	assert.Equal(t, "/fail", env.Error.Path)
	assert.NotContains(t, w.Body.String(), "relation")
}

func newJWTRouter(t *testing.T) (*gin.Engine, auth.JWTService) {
	t.Helper()
	jwtSvc := auth.NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	enforcer, err := rbac.NewEnforcer()
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(JWTMiddleware(jwtSvc), RBACMiddleware(enforcer, logger.NewNop()))
	api.GET("/games", func(c *gin.Context) {
		actor := ActorFromContext(c)
		c.JSON(http.StatusOK, gin.H{"username": actor.Username, "role": actor.Role, "user_id": actor.UserID})
	})
	api.POST("/agents", func(c *gin.Context) { c.Status(http.StatusCreated) })
	return router, jwtSvc
}

func TestJWTMiddleware(t *testing.T) {
	router, jwtSvc := newJWTRouter(t)

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/games", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, domain.ErrCodeTokenMissing, decodeError(t, w).Error.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
		req.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, domain.ErrCodeTokenInvalid, decodeError(t, w).Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token exposes claims", func(t *testing.T) {
		token, err := jwtSvc.GenerateToken(3, "viewer_one", domain.RoleViewer)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"username":"viewer_one","role":"viewer","user_id":3}`, w.Body.String())
	})
}

func TestRBACMiddleware_Forbidden(t *testing.T) {
	router, jwtSvc := newJWTRouter(t)
	token, err := jwtSvc.GenerateToken(3, "viewer_one", domain.RoleViewer)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agents", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, domain.ErrCodeForbidden, decodeError(t, w).Error.Code)
}

type observed struct {
	method, route string
	status        int
}

type fakeObserver struct {
	calls []observed
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	obs := &fakeObserver{}
	router := gin.New()
	router.Use(MetricsMiddleware(obs))
	router.POST("/api/v1/games/:id/sync-balance", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/games/42/sync-balance", nil))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, obs.calls, 2)
	assert.Equal(t, observed{http.MethodPost, "/api/v1/games/:id/sync-balance", http.StatusAccepted}, obs.calls[0])
	assert.Equal(t, observed{http.MethodGet, "unmatched", http.StatusNotFound}, obs.calls[1])
}
