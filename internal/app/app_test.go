package app

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/config"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/logger"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestMain(m *testing.M) {
	logger.Init("test")
	auth.Init("app_test_secret", time.Hour)
	os.Exit(m.Run())
}

func TestSeedFirstAdmin_MixedCaseEmail(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	cfg := config.Default()
	cfg.Admin.FirstAdminEmail = "  Admin@Agency.com "
	cfg.Admin.FirstAdminPassword = "admin-password"

	require.NoError(t, seedFirstAdmin(db, cfg))
	// повторный запуск с другим регистром не создает второго админа
	cfg.Admin.FirstAdminEmail = "ADMIN@agency.com"
	require.NoError(t, seedFirstAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error)
	assert.EqualValues(t, 1, count, "Админ создается один раз")

	svc := services.NewServiceContainer(nil, time.Hour)
	resp, err := svc.AuthService.Login(db, &dto.LoginRequest{Email: "Admin@Agency.com", Password: "admin-password"})
	require.NoError(t, err, "Засеянный админ должен входить с email из конфига")
	assert.Equal(t, "admin@agency.com", resp.User.Email)
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)
	assert.Equal(t, "Administrator", resp.User.Name)
}

func TestSeedFirstAdmin_SkipsWithoutCredentials(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	require.NoError(t, seedFirstAdmin(db, config.Default()))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
