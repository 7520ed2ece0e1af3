package email

import (
	"fmt"
	"time"
)

const (
	DefaultFromName = "Ambassadors Talent Agency"
	DefaultTimeout  = 10 * time.Second
)

// SMTPConfig - параметры SMTP для писем платформы
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// Timeout ограничивает одну рассылку целиком, от dial до последнего письма
	Timeout time.Duration
}

func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     "localhost",
		Port:     587,
		FromName: DefaultFromName,
		Timeout:  DefaultTimeout,
	}
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("sender address is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid SMTP timeout: %s", c.Timeout)
	}
	return nil
}
