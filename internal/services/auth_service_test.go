package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/auth"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func TestAuthService_Register(t *testing.T) {
	db, svc, mail := setup(t)

	resp, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Email:    "  Ada@Example.com ",
		Password: "password123",
		Name:     "Ada Lovelace",
		Role:     models.UserRoleTalent,
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", resp.User.Email, "Email нормализуется")
	assert.NotEmpty(t, resp.Token)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	var profile models.TalentProfile
	require.NoError(t, db.First(&profile, "user_id = ?", resp.User.ID).Error, "Профиль таланта создан при регистрации")
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
	assert.Equal(t, 13, profile.Completion)

	assert.Len(t, mail.SentTo("ada@example.com"), 1, "Приветственное письмо")

	_, err = svc.AuthService.Register(db, &dto.RegisterRequest{
		Email: "ada@example.com", Password: "password123", Name: "Other", Role: models.UserRoleUser,
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = svc.AuthService.Register(db, &dto.RegisterRequest{
		Email: "root@example.com", Password: "password123", Name: "Root", Role: models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole, "ADMIN нельзя зарегистрировать через API")
}

func TestAuthService_RegisterEmployerCreatesCompany(t *testing.T) {
	db, svc, _ := setup(t)

	resp, err := svc.AuthService.Register(db, &dto.RegisterRequest{
		Email: "boss@studio.example", Password: "password123", Name: "Boss", Role: models.UserRoleEmployer,
		CompanyName: "Studio One",
	})
	require.NoError(t, err)

	var company models.EmployerProfile
	require.NoError(t, db.First(&company, "user_id = ?", resp.User.ID).Error)
	assert.Equal(t, "Studio One", company.CompanyName)
	assert.False(t, company.IsVerified)
}

func TestAuthService_Login(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	user, _ := testhelpers.CreateTalent(t, db)

	_, err := svc.AuthService.Login(db, &dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.AuthService.Login(db, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "Неизвестный email не отличается от неверного пароля")

	resp, err := svc.AuthService.Login(db, &dto.LoginRequest{Email: user.Email, Password: testhelpers.DefaultPassword})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	_, err = svc.AdminService.ToggleSuspend(db, admin.ID, user.ID)
	require.NoError(t, err)

	_, err = svc.AuthService.Login(db, &dto.LoginRequest{Email: user.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "Блокировка не раскрывается без верного пароля")

	_, err = svc.AuthService.Login(db, &dto.LoginRequest{Email: user.Email, Password: testhelpers.DefaultPassword})
	assert.ErrorIs(t, err, apperrors.ErrUserSuspended)
}

func TestAuthService_DeleteAccount(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	talent, profile := testhelpers.CreateTalent(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)
	_, err := svc.FavoritesService.ToggleSaved(db, employer.ID, profile.ID)
	require.NoError(t, err)

	require.NoError(t, svc.AuthService.DeleteAccount(db, employer.ID))

	var jobs, apps, saved int64
	db.Model(&models.Job{}).Where("employer_id = ?", employer.ID).Count(&jobs)
	db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&apps)
	db.Model(&models.SavedTalent{}).Where("employer_id = ?", employer.ID).Count(&saved)
	assert.Zero(t, jobs)
	assert.Zero(t, apps)
	assert.Zero(t, saved)

	_, err = svc.AuthService.Me(db, employer.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_DeleteAccountWithPendingPayout(t *testing.T) {
	db, svc, _ := setup(t)
	talent, _ := testhelpers.CreateTalent(t, db)
	testhelpers.SetBalance(t, db, talent.ID, decimal.NewFromInt(5000))
	_, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(5000))
	require.NoError(t, err)

	err = svc.AuthService.DeleteAccount(db, talent.ID)
	assert.Error(t, err, "Нельзя удалить аккаунт с заявкой в ожидании")

	_, err = svc.AuthService.Me(db, talent.ID)
	assert.NoError(t, err, "Пользователь остается после отказа")
}
