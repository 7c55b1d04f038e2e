package session

import (
	"context"
	"errors"
	"time"

	"recruitment_backend/internal/models"
	"recruitment_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormStore хранит сессии в таблице sessions. Время хранится в UTC:
// sqlite сравнивает даты как строки.
type GormStore struct {
	db   *gorm.DB
	repo repositories.SessionRepository
	ttl  time.Duration
	now  func() time.Time
}

func NewGormStore(db *gorm.DB, repo repositories.SessionRepository, ttl time.Duration) *GormStore {
	return &GormStore{db: db, repo: repo, ttl: ttl, now: time.Now}
}

func (s *GormStore) Create(ctx context.Context, identity Identity) (*Record, error) {
	now := s.now().UTC()
	row := &models.Session{
		ID:        uuid.NewString(),
		ActingID:  identity.ActingID,
		Role:      identity.Role,
		Values:    datatypes.JSONMap{"user_name": identity.Name},
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Create(s.db.WithContext(ctx), row); err != nil {
		return nil, err
	}
	return toRecord(row), nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*Record, error) {
	row, err := s.repo.FindActive(s.db.WithContext(ctx), id, s.now().UTC())
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toRecord(row), nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(s.db.WithContext(ctx), id)
}

// Purge удаляет истекшие записи.
func (s *GormStore) Purge(ctx context.Context) (int64, error) {
	return s.repo.DeleteExpired(s.db.WithContext(ctx), s.now().UTC())
}

func toRecord(row *models.Session) *Record {
	name, _ := row.Values["user_name"].(string)
	return &Record{
		ID: row.ID,
		Identity: Identity{
			ActingID: row.ActingID,
			Role:     row.Role,
			Name:     name,
		},
		ExpiresAt: row.ExpiresAt,
	}
}
