package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) Purge(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	return 2, p.err
}

func TestSessionWorker_RunOnce(t *testing.T) {
	p := &countingPurger{}
	NewSessionWorker(p, time.Minute).RunOnce(context.Background())
	assert.Equal(t, int32(1), p.calls.Load())

	p.err = errors.New("db down")
	NewSessionWorker(p, time.Minute).RunOnce(context.Background())
	assert.Equal(t, int32(2), p.calls.Load())
}

func TestSessionWorker_StopsWithContext(t *testing.T) {
	p := &countingPurger{}
	ctx, cancel := context.WithCancel(context.Background())

	NewSessionWorker(p, 5*time.Millisecond).Start(ctx)
	assert.Eventually(t, func() bool { return p.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	stopped := p.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, p.calls.Load())
}
