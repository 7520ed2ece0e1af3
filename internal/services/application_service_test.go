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

func TestApplicationService_Apply(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)

	t.Run("first application is submitted", func(t *testing.T) {
		job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
		app, err := svc.ApplicationService.Apply(db, talent.ID, job.ID, &dto.ApplyRequest{CoverLetter: "Hi"})
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)

		_, err = svc.ApplicationService.Apply(db, talent.ID, job.ID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied, "Повторный отклик должен падать")
	})

	t.Run("job must be published", func(t *testing.T) {
		for _, status := range []models.JobStatus{models.JobStatusDraft, models.JobStatusPending, models.JobStatusClosed} {
			job := testhelpers.CreateJob(t, db, employer.ID, status)
			_, err := svc.ApplicationService.Apply(db, talent.ID, job.ID, &dto.ApplyRequest{})
			assert.ErrorIs(t, err, apperrors.ErrJobNotOpen, "Нельзя откликнуться на %s", status)
		}
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	db, svc, mail := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	other, _ := testhelpers.CreateEmployer(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	app := testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)

	_, err := svc.ApplicationService.UpdateStatus(db, other.ID, app.ID, models.ApplicationStatusHired)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// Переходы не ограничены: из HIRED обратно в REVIEWING
	for _, status := range []models.ApplicationStatus{models.ApplicationStatusHired, models.ApplicationStatusReviewing} {
		updated, err := svc.ApplicationService.UpdateStatus(db, employer.ID, app.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
	assert.Len(t, mail.SentTo(talent.Email), 2, "Талант получает письмо о каждом изменении статуса")
}

func TestApplicationService_BulkUpdateStatus(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	other, _ := testhelpers.CreateEmployer(t, db)

	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	foreignJob := testhelpers.CreateJob(t, db, other.ID, models.JobStatusPublished)

	var selected []string
	for i := 0; i < 3; i++ {
		talent, _ := testhelpers.CreateTalent(t, db)
		app := testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)
		selected = append(selected, app.ID)
	}
	untouchedTalent, _ := testhelpers.CreateTalent(t, db)
	untouched := testhelpers.CreateApplication(t, db, job.ID, untouchedTalent.ID, models.ApplicationStatusSubmitted)
	foreign := testhelpers.CreateApplication(t, db, foreignJob.ID, untouchedTalent.ID, models.ApplicationStatusSubmitted)

	statusOf := func(id string) models.ApplicationStatus {
		var a models.Application
		require.NoError(t, db.First(&a, "id = ?", id).Error)
		return a.Status
	}

	t.Run("foreign id fails the whole batch", func(t *testing.T) {
		ids := append(append([]string{}, selected...), foreign.ID, "missing-id")
		_, err := svc.ApplicationService.BulkUpdateStatus(db, employer.ID, ids, models.ApplicationStatusRejected)
		require.ErrorIs(t, err, apperrors.ErrApplicationsNotOwned)

		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		details, _ := appErr.Details.(map[string]string)
		assert.Contains(t, details["ids"], foreign.ID)
		assert.Contains(t, details["ids"], "missing-id")

		for _, id := range selected {
			assert.Equal(t, models.ApplicationStatusSubmitted, statusOf(id), "Ничего не должно измениться")
		}
	})

	t.Run("updates exactly the given set", func(t *testing.T) {
		resp, err := svc.ApplicationService.BulkUpdateStatus(db, employer.ID, selected, models.ApplicationStatusShortlisted)
		require.NoError(t, err)
		assert.EqualValues(t, len(selected), resp.Updated)

		for _, id := range selected {
			assert.Equal(t, models.ApplicationStatusShortlisted, statusOf(id))
		}
		assert.Equal(t, models.ApplicationStatusSubmitted, statusOf(untouched.ID), "Отклик вне множества не меняется")
		assert.Equal(t, models.ApplicationStatusSubmitted, statusOf(foreign.ID))
	})
}

func TestApplicationService_NotesHiddenFromTalent(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	app := testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)

	saved, err := svc.ApplicationService.SaveNote(db, employer.ID, app.ID, "Strong callback candidate")
	require.NoError(t, err)
	assert.Equal(t, "Strong callback candidate", saved.Notes)
	assert.Equal(t, models.ApplicationStatusSubmitted, saved.Status, "Заметка не меняет статус")

	mine, err := svc.ApplicationService.ListMine(db, talent.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Empty(t, mine[0].Notes, "Таланту заметки не показываются")

	forJob, err := svc.ApplicationService.ListForJob(db, employer.ID, models.UserRoleEmployer, job.ID, "")
	require.NoError(t, err)
	require.Len(t, forJob, 1)
	assert.Equal(t, "Strong callback candidate", forJob[0].Notes)
}
