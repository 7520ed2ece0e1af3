package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestSettingsService_DefaultsBeforeFirstSave(t *testing.T) {
	db, svc, _ := setup(t)

	settings, err := svc.SettingsService.Get(db)
	require.NoError(t, err)
	assert.Zero(t, settings.Version)
	assert.Equal(t, models.DefaultEmailTemplates(), settings.EmailTemplates.Data())
}

func TestSettingsService_SaveBumpsVersion(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)

	req := &dto.SettingsRequest{
		SiteName:     "Ambassadors",
		SupportEmail: "help@ambassadors.example",
		SocialLinks:  models.SocialLinks{Instagram: "https://instagram.com/ambassadors"},
		EmailTemplates: models.EmailTemplates{
			Welcome: models.EmailTemplate{Subject: "Hello from {{.SiteName}}"},
		},
	}

	first, err := svc.SettingsService.Save(db, admin.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Version)

	second, err := svc.SettingsService.Save(db, admin.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Version, "Каждое сохранение увеличивает версию")

	stored, err := svc.SettingsService.Get(db)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Version)
	templates := stored.EmailTemplates.Data()
	assert.Equal(t, "Hello from {{.SiteName}}", templates.Welcome.Subject)
	assert.Equal(t, models.DefaultEmailTemplates().Welcome.Body, templates.Welcome.Body, "Пустое тело заменено шаблоном по умолчанию")
	assert.Equal(t, models.DefaultEmailTemplates().PayoutRejected, templates.PayoutRejected)

	public, err := svc.SettingsService.GetPublic(db)
	require.NoError(t, err)
	assert.Equal(t, "Ambassadors", public.SiteName)
	assert.Equal(t, "https://instagram.com/ambassadors", public.SocialLinks.Instagram)
}
