package middleware

import (
	"net/http"

	"recruitment_backend/internal/logger"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/session"
	"recruitment_backend/pkg/apperrors"
	"recruitment_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware определяет личность по cookie и кладет ее в контекст
// запроса и в gin-контекст. Без cookie запрос считается анонимным.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := manager.Resolve(c)

		ctx := session.WithIdentity(c.Request.Context(), identity)
		if !identity.IsAnonymous() {
			ctx = logger.WithActor(ctx, identity.Actor())
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(contextkeys.IdentityContextKey), identity)

		c.Next()
	}
}

// CurrentIdentity возвращает личность текущего запроса.
func CurrentIdentity(c *gin.Context) session.Identity {
	if v, ok := c.Get(string(contextkeys.IdentityContextKey)); ok {
		if identity, ok := v.(session.Identity); ok {
			return identity
		}
	}
	return session.FromContext(c.Request.Context())
}

// RequirePageRole - для страниц: чужая роль или аноним уходят на /login.
func RequirePageRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentIdentity(c).Is(role) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireActionRole - для асинхронных действий: 401 анониму, 403 чужой роли.
func RequireActionRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := CurrentIdentity(c)
		switch {
		case identity.IsAnonymous():
			apperrors.HandleError(c, apperrors.ErrLoginRequired)
			return
		case !identity.Is(role):
			logger.CtxWarn(c.Request.Context(), "Action rejected for role", "required", role)
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}
