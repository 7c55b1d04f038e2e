package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruitment_backend/internal/models"
	"recruitment_backend/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := session.NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return session.NewManager(session.NewRedisStore(rdb, time.Hour), "secret", time.Hour, false)
}

// loginCookie выдает cookie для указанной личности.
func loginCookie(t *testing.T, m *session.Manager, identity session.Identity) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Start(c, identity))
	return w.Result().Cookies()[0]
}

func newRouter(m *session.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware(func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "oops")
	}))
	r.Use(RequestIDMiddleware(), LoggingMiddleware(), SessionMiddleware(m))

	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, CurrentIdentity(c))
	})
	r.GET("/seeker/dashboard", RequirePageRole(models.RoleSeeker), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})
	r.POST("/seeker/apply", RequireActionRole(models.RoleSeeker), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware_ResolvesIdentity(t *testing.T) {
	m := newManager(t)
	r := newRouter(m)
	identity := session.Identity{ActingID: 3, Role: models.RoleCompany, Name: "Acme"}

	w := do(r, http.MethodGet, "/whoami", loginCookie(t, m, identity))
	require.Equal(t, http.StatusOK, w.Code)
	var got session.Identity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, identity, got)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/whoami", &http.Cookie{Name: session.CookieName, Value: "forged"})
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.IsAnonymous())
}

func TestRequirePageRole(t *testing.T) {
	m := newManager(t)
	r := newRouter(m)

	w := do(r, http.MethodGet, "/seeker/dashboard", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	company := loginCookie(t, m, session.Identity{ActingID: 1, Role: models.RoleCompany})
	w = do(r, http.MethodGet, "/seeker/dashboard", company)
	assert.Equal(t, http.StatusFound, w.Code)

	seeker := loginCookie(t, m, session.Identity{ActingID: 1, Role: models.RoleSeeker})
	w = do(r, http.MethodGet, "/seeker/dashboard", seeker)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireActionRole(t *testing.T) {
	m := newManager(t)
	r := newRouter(m)

	w := do(r, http.MethodPost, "/seeker/apply", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])

	admin := loginCookie(t, m, session.Identity{ActingID: 1, Role: models.RoleAdmin})
	w = do(r, http.MethodPost, "/seeker/apply", admin)
	assert.Equal(t, http.StatusForbidden, w.Code)

	seeker := loginCookie(t, m, session.Identity{ActingID: 2, Role: models.RoleSeeker})
	w = do(r, http.MethodPost, "/seeker/apply", seeker)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	r := newRouter(newManager(t))
	w := do(r, http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "oops", w.Body.String())
}

func TestRequestIDMiddleware_KeepsValidHeader(t *testing.T) {
	r := newRouter(newManager(t))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "6f1c0b4e-4a5e-4f7a-9d55-1f0f4d1a2b3c")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "6f1c0b4e-4a5e-4f7a-9d55-1f0f4d1a2b3c", w.Header().Get("X-Request-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://jobs.example.com"}))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://jobs.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://jobs.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
