package session

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recruitment_backend/database"
	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T, ttl time.Duration) *GormStore {
	t.Helper()
	db, err := database.Open(fmt.Sprintf("sqlite://file:%s?mode=memory&cache=shared", uuid.NewString()), database.Options{Env: "test"})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return NewGormStore(db, repositories.NewSessionRepository(), ttl)
}

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestIdentity(t *testing.T) {
	assert.True(t, Identity{}.IsAnonymous())
	assert.True(t, Identity{ActingID: 3, Role: "ghost"}.IsAnonymous())

	id := Identity{ActingID: 7, Role: models.RoleSeeker, Name: "Ann"}
	assert.False(t, id.IsAnonymous())
	assert.True(t, id.Is(models.RoleSeeker))
	assert.False(t, id.Is(models.RoleCompany))
	assert.Equal(t, "seeker:7", id.Actor())

	ctx := WithIdentity(context.Background(), id)
	assert.Equal(t, id, FromContext(ctx))
	assert.True(t, FromContext(context.Background()).IsAnonymous())
}

func TestStores(t *testing.T) {
	gormStore := newGormStore(t, time.Hour)
	redisStore, _ := newRedisStore(t, time.Hour)

	for name, store := range map[string]Store{"gorm": gormStore, "redis": redisStore} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			identity := Identity{ActingID: 4, Role: models.RoleCompany, Name: "Acme"}

			rec, err := store.Create(ctx, identity)
			require.NoError(t, err)
			require.NotEmpty(t, rec.ID)

			got, err := store.Get(ctx, rec.ID)
			require.NoError(t, err)
			assert.Equal(t, identity, got.Identity)

			require.NoError(t, store.Delete(ctx, rec.ID))
			_, err = store.Get(ctx, rec.ID)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = store.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestGormStore_Expired(t *testing.T) {
	store := newGormStore(t, time.Hour)
	rec, err := store.Create(context.Background(), Identity{ActingID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = store.Get(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	purged, err := store.Purge(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)
}

func TestRedisStore_ExpiredAndCorrupt(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	rec, err := store.Create(ctx, Identity{ActingID: 1, Role: models.RoleSeeker})
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, mr.Set(redisKeyPrefix+"bad", "{not json"))
	_, err = store.Get(ctx, "bad")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(redisKeyPrefix+"bad"))
}

func TestNewRedisClient_PlainAddr(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(context.Background(), mr.Addr())
	require.NoError(t, err)
	defer rdb.Close()
	assert.Equal(t, "PONG", rdb.Ping(context.Background()).Val())

	_, err = NewRedisClient(context.Background(), "")
	assert.Error(t, err)
}

func TestManager_StartResolveEnd(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newGormStore(t, time.Hour)
	m := NewManager(store, "secret", time.Hour, false)
	identity := Identity{ActingID: 9, Role: models.RoleSeeker, Name: "Ann"}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Start(c, identity))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	resolve := func(cookie *http.Cookie) Identity {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(cookie)
		return m.Resolve(c)
	}
	assert.Equal(t, identity, resolve(cookies[0]))

	// cookie, подписанная другим ключом
	other := NewManager(store, "other", time.Hour, false)
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, other.Start(c2, identity))
	assert.True(t, resolve(w2.Result().Cookies()[0]).IsAnonymous())

	// выход удаляет серверную запись: старая cookie больше не работает
	w3 := httptest.NewRecorder()
	c3, _ := gin.CreateTestContext(w3)
	c3.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)
	c3.Request.AddCookie(cookies[0])
	m.End(c3)
	assert.True(t, resolve(cookies[0]).IsAnonymous())
	require.Len(t, w3.Result().Cookies(), 1)
	assert.True(t, w3.Result().Cookies()[0].MaxAge < 0)
}
