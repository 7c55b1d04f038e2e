package workers

import (
	"context"
	"time"

	"recruitment_backend/internal/logger"
)

// Purger удаляет истекшие сессии и возвращает их число.
type Purger interface {
	Purge(ctx context.Context) (int64, error)
}

type SessionWorker struct {
	purger   Purger
	interval time.Duration
}

func NewSessionWorker(purger Purger, interval time.Duration) *SessionWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SessionWorker{purger: purger, interval: interval}
}

// Start запускает фоновую очистку сессий
func (w *SessionWorker) Start(ctx context.Context) {
	go w.purgeExpiredSessions(ctx)
}

func (w *SessionWorker) purgeExpiredSessions(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Session worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce - один проход очистки.
func (w *SessionWorker) RunOnce(ctx context.Context) {
	n, err := w.purger.Purge(ctx)
	if err != nil {
		logger.Error("Error purging expired sessions", "error", err)
		return
	}
	if n > 0 {
		logger.Info("Purged expired sessions", "count", n)
	}
}
