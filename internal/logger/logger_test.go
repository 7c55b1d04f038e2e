package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestFromContext_AddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)
	defer Init("test")

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithActor(ctx, "seeker:7")
	CtxInfo(ctx, "application submitted", "job_id", 3)

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "actor=seeker:7")
	assert.Contains(t, out, "job_id=3")
}

func TestWithActor_IgnoresEmpty(t *testing.T) {
	ctx := WithActor(context.Background(), "")
	assert.Equal(t, "", GetActor(ctx))
}

func TestGormLogger_RecordNotFoundIsNotAnError(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("development", &buf)
	defer Init("test")

	l := NewGormLogger("production")
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT 1", 0
	}, gorm.ErrRecordNotFound)
	assert.NotContains(t, buf.String(), "database operation failed")

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT", 0
	}, errors.New("constraint failed"))
	assert.Contains(t, buf.String(), "database operation failed")

	silent := l.LogMode(gormlogger.Silent)
	buf.Reset()
	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT", 0
	}, errors.New("constraint failed"))
	assert.Empty(t, buf.String())
}
