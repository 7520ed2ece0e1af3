package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func TestAdminService_ToggleSuspend(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)

	_, err := svc.AdminService.ToggleSuspend(db, admin.ID, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrCannotModifySelf, "Админ не может заблокировать себя")

	once, err := svc.AdminService.ToggleSuspend(db, admin.ID, talent.ID)
	require.NoError(t, err)
	assert.True(t, once.IsSuspended)

	_, err = svc.AuthService.Login(db, &dto.LoginRequest{Email: talent.Email, Password: testhelpers.DefaultPassword})
	assert.ErrorIs(t, err, apperrors.ErrUserSuspended)

	twice, err := svc.AdminService.ToggleSuspend(db, admin.ID, talent.ID)
	require.NoError(t, err)
	assert.False(t, twice.IsSuspended, "Два переключения возвращают исходное состояние")
}

func TestAdminService_ToggleVerify(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)

	user, err := svc.AdminService.ToggleVerify(db, admin.ID, talent.ID)
	require.NoError(t, err)
	require.NotNil(t, user.TalentProfile)
	assert.True(t, user.TalentProfile.IsVerified)

	user, err = svc.AdminService.ToggleVerify(db, admin.ID, talent.ID)
	require.NoError(t, err)
	assert.False(t, user.TalentProfile.IsVerified)

	user, err = svc.AdminService.ToggleVerify(db, admin.ID, employer.ID)
	require.NoError(t, err)
	require.NotNil(t, user.EmployerProfile)
	assert.True(t, user.EmployerProfile.IsVerified)

	_, err = svc.AdminService.ToggleVerify(db, admin.ID, admin.ID)
	assert.Error(t, err, "У админа нет профиля для значка")
}

func TestAdminService_ListUsers(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	testhelpers.CreateTalent(t, db)
	testhelpers.CreateTalent(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)
	_, err := svc.AdminService.ToggleSuspend(db, admin.ID, employer.ID)
	require.NoError(t, err)

	talents, err := svc.AdminService.ListUsers(db, &dto.UserListQuery{Role: models.UserRoleTalent}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, talents.Total)

	suspended := true
	blocked, err := svc.AdminService.ListUsers(db, &dto.UserListQuery{Suspended: &suspended}, 1, 20)
	require.NoError(t, err)
	require.Len(t, blocked.Items, 1)
	assert.Equal(t, employer.ID, blocked.Items[0].ID)
}

func TestAdminService_GetPlatformStats(t *testing.T) {
	db, svc, _ := setup(t)
	testhelpers.CreateAdmin(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)
	testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	testhelpers.CreateJob(t, db, employer.ID, models.JobStatusDraft)
	testhelpers.SetBalance(t, db, talent.ID, decimal.NewFromInt(1000))

	_, err := svc.WalletService.RequestPayout(db, talent.ID, payoutRequest(1000))
	require.NoError(t, err)
	_, err = svc.SupportService.CreateTicket(db, talent.ID, &dto.CreateTicketRequest{Subject: "Help", Message: "Cannot upload"})
	require.NoError(t, err)
	_, err = svc.VerificationService.Submit(db, employer.ID, submission())
	require.NoError(t, err)

	stats, err := svc.AdminService.GetPlatformStats(db)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.UsersByRole[models.UserRoleTalent])
	assert.EqualValues(t, 1, stats.JobsByStatus[models.JobStatusPublished])
	assert.EqualValues(t, 1, stats.JobsByStatus[models.JobStatusDraft])
	assert.EqualValues(t, 1, stats.OpenTickets)
	assert.EqualValues(t, 1, stats.PendingPayouts)
	assert.EqualValues(t, 1, stats.PendingVerifications)
}
