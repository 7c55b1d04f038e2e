package session

import (
	"errors"
	"net/http"
	"time"

	"recruitment_backend/internal/auth"
	"recruitment_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const CookieName = "session"

// Manager связывает cookie с серверной сессией.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl, secure: secure}
}

// Start создает сессию и выставляет cookie.
func (m *Manager) Start(c *gin.Context, identity Identity) error {
	rec, err := m.store.Create(c.Request.Context(), identity)
	if err != nil {
		return err
	}
	token, err := auth.SignSessionToken(m.secret, rec.ID, rec.ExpiresAt)
	if err != nil {
		_ = m.store.Delete(c.Request.Context(), rec.ID)
		return err
	}
	m.setCookie(c, token, int(m.ttl.Seconds()))
	return nil
}

// Resolve возвращает личность по cookie. Любая проблема с cookie
// или хранилищем дает анонима.
func (m *Manager) Resolve(c *gin.Context) Identity {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return Identity{}
	}

	id, err := auth.ParseSessionToken(m.secret, raw)
	if err != nil {
		logger.CtxDebug(c.Request.Context(), "Rejected session cookie", "error", err)
		return Identity{}
	}

	rec, err := m.store.Get(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.CtxWarn(c.Request.Context(), "Session store lookup failed", "error", err)
		}
		return Identity{}
	}
	return rec.Identity
}

// End удаляет серверную сессию и cookie.
func (m *Manager) End(c *gin.Context) {
	if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
		if id, err := auth.ParseSessionToken(m.secret, raw); err == nil {
			if err := m.store.Delete(c.Request.Context(), id); err != nil {
				logger.CtxWarn(c.Request.Context(), "Failed to delete session", "error", err)
			}
		}
	}
	m.setCookie(c, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", m.secure, true)
}
