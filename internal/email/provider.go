package email

import (
	"context"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
)

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет одно письмо
	Send(ctx context.Context, email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}

// LogProvider ничего не отправляет, только пишет письмо в лог.
// Используется, когда email.enabled = false.
type LogProvider struct{}

func (LogProvider) Send(ctx context.Context, e *Email) error {
	logger.CtxInfo(ctx, "email suppressed", "to", e.To, "subject", e.Subject)
	return nil
}

func (LogProvider) Validate() error { return nil }
