package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims - содержимое cookie сессии. Сама сессия живет на сервере,
// в токене только ее идентификатор (jti).
type SessionClaims struct {
	jwt.RegisteredClaims
}

// SignSessionToken подписывает идентификатор сессии секретом приложения.
func SignSessionToken(secret, sessionID string, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("empty signing secret")
	}
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken проверяет подпись и срок и возвращает идентификатор сессии.
func ParseSessionToken(secret, raw string) (string, error) {
	if raw == "" {
		return "", ErrInvalidSessionToken
	}

	claims := &SessionClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || tok == nil || !tok.Valid {
		return "", ErrInvalidSessionToken
	}
	if claims.ID == "" {
		return "", ErrInvalidSessionToken
	}
	return claims.ID, nil
}
