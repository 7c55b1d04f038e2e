package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger направляет логи GORM в slog с полями запроса из context.
type GormLogger struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration
}

// NewGormLogger создает адаптер; в development пишутся все SQL-запросы.
func NewGormLogger(env string) *GormLogger {
	level := gormlogger.Warn
	if env == "development" {
		level = gormlogger.Info
	}
	return &GormLogger{Level: level, SlowThreshold: 200 * time.Millisecond}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *l
	cp.Level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Info {
		CtxInfo(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Warn {
		CtxWarn(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.Level >= gormlogger.Error {
		CtxError(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace логирует каждую операцию БД. ErrRecordNotFound - штатный
// результат поиска и ошибкой не считается.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.Level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	query, rows := fc()
	fields := []any{
		"query", query,
		"rows", rows,
		"duration_ms", elapsed.Milliseconds(),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.Level >= gormlogger.Error:
		fields = append(fields, "error", err.Error())
		FromContext(ctx).Error("database operation failed", fields...)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.Level >= gormlogger.Warn:
		FromContext(ctx).Warn("slow database operation", fields...)
	case l.Level >= gormlogger.Info:
		FromContext(ctx).Debug("database operation", fields...)
	}
}
