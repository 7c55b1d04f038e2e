// Package session хранит серверное состояние входа: кто действует в запросе
// и под какой ролью.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recruitment_backend/internal/models"
	"recruitment_backend/pkg/contextkeys"
)

var ErrNotFound = errors.New("session not found")

// Identity - личность текущего запроса. Нулевое значение - аноним.
type Identity struct {
	ActingID uint        `json:"acting_id"`
	Role     models.Role `json:"role"`
	Name     string      `json:"user_name"`
}

func (i Identity) IsAnonymous() bool {
	return i.ActingID == 0 || !i.Role.Valid()
}

func (i Identity) Is(role models.Role) bool {
	return !i.IsAnonymous() && i.Role == role
}

// Actor - короткая метка для логов, например "seeker:7".
func (i Identity) Actor() string {
	if i.IsAnonymous() {
		return ""
	}
	return fmt.Sprintf("%s:%d", i.Role, i.ActingID)
}

// Record - сохраненная сессия.
type Record struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store - серверное хранилище сессий.
type Store interface {
	Create(ctx context.Context, identity Identity) (*Record, error)
	// Get возвращает ErrNotFound для отсутствующих и истекших сессий
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

// WithIdentity кладет личность в context запроса.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, contextkeys.IdentityContextKey, identity)
}

// FromContext возвращает личность запроса или анонима.
func FromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Identity{}
	}
	if identity, ok := ctx.Value(contextkeys.IdentityContextKey).(Identity); ok {
		return identity
	}
	return Identity{}
}
