package email

import (
	"context"
	"fmt"
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет email сообщение
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// TemplateRenderer определяет интерфейс для рендеринга шаблонов
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
}

// NewProvider выбирает провайдера по имени: smtp или log.
func NewProvider(kind string, cfg SMTPConfig) (Provider, error) {
	switch kind {
	case "", "log":
		return NewLogProvider(), nil
	case "smtp":
		p := NewSMTPProvider(cfg)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", kind)
	}
}

// Mailer отправляет письма по шаблонам от имени приложения
type Mailer struct {
	provider Provider
	renderer TemplateRenderer
	from     string
}

func NewMailer(provider Provider, renderer TemplateRenderer, from string) *Mailer {
	return &Mailer{provider: provider, renderer: renderer, from: from}
}

// SendTemplate рендерит шаблон и отправляет письмо одному получателю
func (m *Mailer) SendTemplate(ctx context.Context, to, subject, templateName string, data TemplateData) error {
	html, err := m.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return m.provider.Send(ctx, &Email{
		From:     m.from,
		To:       []string{to},
		Subject:  subject,
		HTMLBody: html,
	})
}
