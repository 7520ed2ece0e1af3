package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send отправляет письмо; каждый получатель получает отдельное сообщение,
// чтобы адреса аудитории не попадали в заголовок To других.
func (p *SMTPProvider) Send(ctx context.Context, e *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(e.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return err
	}

	sender, err := p.dialer.Dial()
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer sender.Close()

	for _, to := range e.To {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := gomail.Send(sender, p.message(to, e)); err != nil {
			return fmt.Errorf("failed to send email to %s: %w", to, err)
		}
	}
	return nil
}

func (p *SMTPProvider) message(to string, e *Email) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", e.Subject)
	m.SetBody("text/plain", e.Body)
	if e.HTMLBody != "" {
		m.AddAlternative("text/html", e.HTMLBody)
	}
	return m
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}
