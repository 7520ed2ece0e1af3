package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
)

func TestRender_AnnouncementTemplate(t *testing.T) {
	tpl := models.DefaultEmailTemplates().Announcement

	msg, err := Render(tpl, TemplateData{"Name": "Ada", "Title": "Maintenance", "Message": "We will be down at noon."})
	require.NoError(t, err)

	assert.Equal(t, "Maintenance", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Ada")
	assert.Contains(t, msg.Body, "We will be down at noon.")
}

func TestRender_InvalidTemplate(t *testing.T) {
	_, err := Render(models.EmailTemplate{Subject: "{{.Broken", Body: "x"}, nil)
	assert.Error(t, err, "сломанный шаблон должен возвращать ошибку")
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587})
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "no-reply@example.com"})
	assert.NoError(t, p.Validate())
}
