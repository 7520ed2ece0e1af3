package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultFromName, cfg.FromName)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Error(t, cfg.Validate(), "Без адреса отправителя конфиг невалиден")

	cfg.FromEmail = "no-reply@ambassadors.test"
	require.NoError(t, cfg.Validate())

	cfg.Timeout = 0
	assert.Error(t, cfg.Validate(), "Нулевой таймаут недопустим")

	cfg.Timeout = time.Second
	cfg.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestSMTPProvider_CanceledContextSkipsDial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FromEmail = "no-reply@ambassadors.test"
	provider := NewSMTPProvider(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := provider.Send(ctx, &Email{To: []string{"ada@example.com"}, Subject: "Hi", Body: "Hello"})
	assert.ErrorIs(t, err, context.Canceled, "Отмененная рассылка не подключается к SMTP")
}

func TestSMTPProvider_NoRecipients(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FromEmail = "no-reply@ambassadors.test"

	err := NewSMTPProvider(cfg).Send(context.Background(), &Email{Subject: "Hi"})
	assert.Error(t, err)
}
