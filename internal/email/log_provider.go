package email

import (
	"context"
	"sync"

	"recruitment_backend/internal/logger"
)

// LogProvider только пишет письма в лог. Используется по умолчанию
// и в тестах.
type LogProvider struct {
	mu   sync.Mutex
	sent []Email
}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(ctx context.Context, email *Email) error {
	p.mu.Lock()
	p.sent = append(p.sent, *email)
	p.mu.Unlock()

	logger.CtxInfo(ctx, "Email queued (log provider)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) Validate() error { return nil }

// Sent возвращает копию отправленных писем
func (p *LogProvider) Sent() []Email {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Email, len(p.sent))
	copy(out, p.sent)
	return out
}
