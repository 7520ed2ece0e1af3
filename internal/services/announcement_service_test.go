package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/services/dto"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestAnnouncementService_CreateCountsFailures(t *testing.T) {
	db, svc, mail := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	ok, _ := testhelpers.CreateTalent(t, db)
	bounced, _ := testhelpers.CreateTalent(t, db)
	employer, _ := testhelpers.CreateEmployer(t, db)
	mail.FailFor[bounced.Email] = true

	a, err := svc.AnnouncementService.Create(db, admin.ID, &dto.CreateAnnouncementRequest{
		Title:     "Casting week",
		Message:   "Auditions open on Monday",
		Audience:  models.AudienceTalent,
		SendEmail: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, a.EmailsSent)
	assert.Equal(t, 1, a.EmailsFailed, "Сбой доставки считается, а не прерывает рассылку")

	var stored models.Announcement
	require.NoError(t, db.First(&stored, "id = ?", a.ID).Error, "Объявление сохраняется несмотря на сбои")
	assert.Equal(t, 1, stored.EmailsSent)
	assert.Equal(t, 1, stored.EmailsFailed)

	require.Len(t, mail.SentTo(ok.Email), 1)
	assert.Equal(t, "Casting week", mail.SentTo(ok.Email)[0].Subject)
	assert.Empty(t, mail.SentTo(employer.Email), "Работодатели не входят в аудиторию TALENT")
}

func TestAnnouncementService_WithoutEmail(t *testing.T) {
	db, svc, mail := setup(t)
	admin := testhelpers.CreateAdmin(t, db)
	testhelpers.CreateTalent(t, db)

	a, err := svc.AnnouncementService.Create(db, admin.ID, &dto.CreateAnnouncementRequest{
		Title:    "Maintenance",
		Message:  "Short downtime tonight",
		Audience: models.AudienceAll,
	})
	require.NoError(t, err)
	assert.Zero(t, a.EmailsSent)
	assert.Empty(t, mail.Sent)
}

func TestAnnouncementService_ListForRole(t *testing.T) {
	db, svc, _ := setup(t)
	admin := testhelpers.CreateAdmin(t, db)

	for _, audience := range []models.Audience{models.AudienceAll, models.AudienceTalent, models.AudienceEmployer} {
		_, err := svc.AnnouncementService.Create(db, admin.ID, &dto.CreateAnnouncementRequest{
			Title: "For " + string(audience), Message: "Body", Audience: audience,
		})
		require.NoError(t, err)
	}

	talentFeed, err := svc.AnnouncementService.ListForRole(db, models.UserRoleTalent)
	require.NoError(t, err)
	assert.Len(t, talentFeed, 2, "Талант видит ALL и TALENT")
	for _, a := range talentFeed {
		assert.NotEqual(t, models.AudienceEmployer, a.Audience)
	}

	all, err := svc.AnnouncementService.ListAll(db, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total)
}
