package auth

import (
	"strings"
	"testing"
	"time"

	"recruitment_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, CheckPasswordHash("p1", hash))
	assert.False(t, CheckPasswordHash("p2", hash))
	assert.False(t, CheckPasswordHash("p1", ""))
	assert.False(t, CheckPasswordHash("p1", "not-a-bcrypt-hash"))
}

func TestSessionToken_RoundTrip(t *testing.T) {
	raw, err := SignSessionToken("secret", "sid-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	id, err := ParseSessionToken("secret", raw)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", id)
}

func TestSessionToken_Rejects(t *testing.T) {
	raw, err := SignSessionToken("secret", "sid-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	// чужой payload с подписью исходного токена
	other, err := SignSessionToken("secret", "sid-2", time.Now().Add(time.Hour))
	require.NoError(t, err)
	rawParts := strings.Split(raw, ".")
	otherParts := strings.Split(other, ".")
	tampered := strings.Join([]string{otherParts[0], otherParts[1], rawParts[2]}, ".")
	_, err = ParseSessionToken("secret", tampered)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	expired, err := SignSessionToken("secret", "sid-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = ParseSessionToken("secret", expired)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, SessionClaims{RegisteredClaims: jwt.RegisteredClaims{ID: "sid-1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseSessionToken("secret", unsigned)
	assert.ErrorIs(t, err, ErrInvalidSessionToken)

	_, err = ParseSessionToken("secret", "")
	assert.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(models.RoleAdmin, PermResumesReadAny))
	assert.False(t, HasPermission(models.RoleCompany, PermResumesReadAny))
	assert.True(t, HasPermission(models.RoleCompany, PermResumesReadApplicants))
	assert.True(t, HasPermission(models.RoleSeeker, PermResumesReadOwn))
	assert.False(t, HasPermission(models.Role(""), PermResumesReadOwn))
}
