package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/pkg/apperrors"
)

func submission() *dto.SubmitVerificationRequest {
	return &dto.SubmitVerificationRequest{
		BusinessName:       "Acme Studios Ltd",
		RegistrationNumber: "RC-123456",
		DocumentURLs:       []string{"https://files.example.com/cac.pdf"},
	}
}

func TestVerificationService_Lifecycle(t *testing.T) {
	db, svc, mail := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)
	vs := svc.VerificationService

	status, err := vs.GetStatus(db, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStateNew, status.State)

	req, err := vs.Submit(db, employer.ID, submission())
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusPending, req.Status)

	status, err = vs.GetStatus(db, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatePending, status.State, "До решения админа состояние PENDING")

	_, err = vs.Submit(db, employer.ID, submission())
	assert.ErrorIs(t, err, apperrors.ErrVerificationPending)

	_, err = vs.Reject(db, admin.ID, req.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrReasonRequired)

	_, err = vs.Reject(db, admin.ID, req.ID, "Document unreadable")
	require.NoError(t, err)

	status, err = vs.GetStatus(db, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStateRejected, status.State)
	assert.Equal(t, "Document unreadable", status.RejectionReason)

	// Повторная подача перезаписывает ту же заявку
	resubmitted, err := vs.Submit(db, employer.ID, submission())
	require.NoError(t, err)
	assert.Equal(t, req.ID, resubmitted.ID, "У пользователя одна текущая заявка")
	assert.Empty(t, resubmitted.RejectionReason, "Причина очищается при новой подаче")

	approved, err := vs.Approve(db, admin.ID, resubmitted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStatusApproved, approved.Status)

	var profile models.EmployerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", employer.ID).Error)
	assert.True(t, profile.IsVerified, "Одобрение ставит значок на профиль")

	status, err = vs.GetStatus(db, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationStateVerified, status.State)

	_, err = vs.Submit(db, employer.ID, submission())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVerified)

	_, err = vs.Approve(db, admin.ID, resubmitted.ID)
	assert.ErrorIs(t, err, apperrors.ErrVerificationResolved)

	assert.Len(t, mail.SentTo(employer.Email), 2, "Письма об отказе и об одобрении")
}

func TestVerificationService_List(t *testing.T) {
	db, svc, _ := setup(t)
	for i := 0; i < 3; i++ {
		employer, _ := testhelpers.CreateEmployer(t, db)
		_, err := svc.VerificationService.Submit(db, employer.ID, submission())
		require.NoError(t, err)
	}

	pending, err := svc.VerificationService.List(db, models.VerificationStatusPending, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, pending.Total)
	assert.Len(t, pending.Items, 2)
	assert.Equal(t, 2, pending.TotalPages)

	approved, err := svc.VerificationService.List(db, models.VerificationStatusApproved, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, approved.Items)
}
