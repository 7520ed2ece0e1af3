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

func intPtr(v int) *int { return &v }

func TestJobService_CreateJob(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)

	t.Run("draft by default", func(t *testing.T) {
		job, err := svc.JobService.CreateJob(db, employer.ID, &dto.JobRequest{Title: "Extras wanted"})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusDraft, job.Status)
		assert.Nil(t, job.PublishedAt, "У черновика нет даты публикации")
		assert.Equal(t, models.DefaultCurrency, job.Currency)
	})

	t.Run("publish sets published_at", func(t *testing.T) {
		job, err := svc.JobService.CreateJob(db, employer.ID, &dto.JobRequest{Title: "Lead role", Publish: true})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPublished, job.Status)
		assert.NotNil(t, job.PublishedAt)
	})

	t.Run("min_age above max_age is rejected", func(t *testing.T) {
		_, err := svc.JobService.CreateJob(db, employer.ID, &dto.JobRequest{
			Title:  "Kids commercial",
			MinAge: intPtr(30),
			MaxAge: intPtr(18),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidAgeRange)
	})
}

func TestJobService_PublishWithApproval(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)

	_, err := svc.SettingsService.Save(db, admin.ID, &dto.SettingsRequest{
		SiteName:           "Ambassadors",
		RequireJobApproval: true,
	})
	require.NoError(t, err)

	job, err := svc.JobService.CreateJob(db, employer.ID, &dto.JobRequest{Title: "Runway", Publish: true})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status, "При модерации публикация уходит в PENDING")
}

func TestJobService_ModerateJob(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)

	for _, status := range []models.JobStatus{models.JobStatusPublished, models.JobStatusRejected} {
		job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPending)
		moderated, err := svc.JobService.ModerateJob(db, job.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, moderated.Status)
	}

	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPending)
	for _, status := range []models.JobStatus{models.JobStatusDraft, models.JobStatusClosed, models.JobStatusPending} {
		_, err := svc.JobService.ModerateJob(db, job.ID, status)
		assert.ErrorIs(t, err, apperrors.ErrInvalidModerationStatus, "Модерация не может выставить %s", status)
	}

	stored, err := svc.JobService.GetJob(db, job.ID, "", models.UserRoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, stored.Status, "Статус не должен измениться после отказов")
}

func TestJobService_SetStatus(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	other, _ := testhelpers.CreateEmployer(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusDraft)

	_, err := svc.JobService.SetStatus(db, employer.ID, job.ID, models.JobStatusRejected)
	assert.ErrorIs(t, err, apperrors.ErrOwnerStatusNotAllowed)

	_, err = svc.JobService.SetStatus(db, other.ID, job.ID, models.JobStatusClosed)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	closed, err := svc.JobService.SetStatus(db, employer.ID, job.ID, models.JobStatusClosed)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, closed.Status)
}

func TestJobService_ToggleFeatured(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPending)

	once, err := svc.JobService.ToggleFeatured(db, job.ID)
	require.NoError(t, err)
	assert.True(t, once.IsFeatured)
	assert.Equal(t, models.JobStatusPending, once.Status, "Featured не меняет статус модерации")

	twice, err := svc.JobService.ToggleFeatured(db, job.ID)
	require.NoError(t, err)
	assert.False(t, twice.IsFeatured, "Два переключения возвращают исходное значение")
}

func TestJobService_ListPublicJobs(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)

	published := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	testhelpers.CreateJob(t, db, employer.ID, models.JobStatusDraft)
	testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPending)
	testhelpers.CreateJob(t, db, employer.ID, models.JobStatusClosed)

	list, err := svc.JobService.ListPublicJobs(db, &dto.JobListQuery{}, 1, 20)
	require.NoError(t, err)
	require.Len(t, list.Items, 1, "В публичном списке только PUBLISHED")
	assert.Equal(t, published.ID, list.Items[0].ID)
	assert.EqualValues(t, 1, list.Total)
}

func TestJobService_GetJob(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)

	draft := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusDraft)
	_, err := svc.JobService.GetJob(db, draft.ID, talent.ID, models.UserRoleTalent)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound, "Черновик не виден таланту")

	own, err := svc.JobService.GetJob(db, draft.ID, employer.ID, models.UserRoleEmployer)
	require.NoError(t, err)
	assert.True(t, own.IsOwner)

	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)

	detail, err := svc.JobService.GetJob(db, job.ID, talent.ID, models.UserRoleTalent)
	require.NoError(t, err)
	assert.True(t, detail.HasApplied)
	assert.False(t, detail.IsOwner)
}

func TestJobService_DuplicateJob(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	src := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	_, err := svc.JobService.ToggleFeatured(db, src.ID)
	require.NoError(t, err)

	dup, err := svc.JobService.DuplicateJob(db, employer.ID, src.ID)
	require.NoError(t, err)
	assert.NotEqual(t, src.ID, dup.ID)
	assert.Equal(t, src.Title, dup.Title)
	assert.Equal(t, models.JobStatusDraft, dup.Status)
	assert.False(t, dup.IsFeatured)
	assert.Nil(t, dup.PublishedAt)
}

func TestJobService_DeleteJob(t *testing.T) {
	db, svc, _ := setup(t)
	employer, _ := testhelpers.CreateEmployer(t, db)
	talent, _ := testhelpers.CreateTalent(t, db)
	job := testhelpers.CreateJob(t, db, employer.ID, models.JobStatusPublished)
	testhelpers.CreateApplication(t, db, job.ID, talent.ID, models.ApplicationStatusSubmitted)

	err := svc.JobService.DeleteJob(db, talent.ID, models.UserRoleTalent, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	require.NoError(t, svc.JobService.DeleteJob(db, employer.ID, models.UserRoleEmployer, job.ID))

	var count int64
	require.NoError(t, db.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Zero(t, count, "Отклики удаляются вместе с вакансией")
}
