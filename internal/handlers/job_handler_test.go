package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/models"
	"github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/testhelpers"
)

func TestModerateJob(t *testing.T) {
	s := newServer(t)
	employer, _ := testhelpers.CreateEmployer(t, s.db)
	admin := testhelpers.CreateAdmin(t, s.db)
	job := testhelpers.CreateJob(t, s.db, employer.ID, models.JobStatusPending)
	token := testhelpers.Token(t, admin)

	// модерация не закрывает вакансии
	w := s.do(t, http.MethodPut, "/api/v1/admin/jobs/"+job.ID+"/moderate", token, map[string]string{"status": "CLOSED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Moderation can only publish or reject a job", decode(t, w)["error"])

	w = s.do(t, http.MethodPut, "/api/v1/admin/jobs/"+job.ID+"/moderate", token, map[string]string{"status": "PUBLISHED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, "Job published", body["success"])
	assert.Equal(t, "PUBLISHED", body["data"].(map[string]any)["status"])
}

func TestModerateJob_UnknownJob(t *testing.T) {
	s := newServer(t)
	admin := testhelpers.CreateAdmin(t, s.db)

	w := s.do(t, http.MethodPut, "/api/v1/admin/jobs/00000000-0000-0000-0000-000000000000/moderate",
		testhelpers.Token(t, admin), map[string]string{"status": "REJECTED"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Job not found", decode(t, w)["error"])
}

func TestPublicJobs_HideDrafts(t *testing.T) {
	s := newServer(t)
	employer, _ := testhelpers.CreateEmployer(t, s.db)
	draft := testhelpers.CreateJob(t, s.db, employer.ID, models.JobStatusDraft)
	testhelpers.CreateJob(t, s.db, employer.ID, models.JobStatusPublished)

	w := s.do(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["total"])

	// черновик по прямой ссылке виден только владельцу
	w = s.do(t, http.MethodGet, "/api/v1/jobs/"+draft.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/jobs/"+draft.ID, testhelpers.Token(t, employer), nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestToggleFeatured_Involution(t *testing.T) {
	s := newServer(t)
	employer, _ := testhelpers.CreateEmployer(t, s.db)
	admin := testhelpers.CreateAdmin(t, s.db)
	job := testhelpers.CreateJob(t, s.db, employer.ID, models.JobStatusPublished)
	token := testhelpers.Token(t, admin)

	w := s.do(t, http.MethodPost, "/api/v1/admin/jobs/"+job.ID+"/toggle-feature", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Job featured", decode(t, w)["success"])

	w = s.do(t, http.MethodPost, "/api/v1/admin/jobs/"+job.ID+"/toggle-feature", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Job unfeatured", decode(t, w)["success"])
}

func TestApply_Twice(t *testing.T) {
	s := newServer(t)
	employer, _ := testhelpers.CreateEmployer(t, s.db)
	talent, _ := testhelpers.CreateTalent(t, s.db)
	job := testhelpers.CreateJob(t, s.db, employer.ID, models.JobStatusPublished)
	token := testhelpers.Token(t, talent)

	w := s.do(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", token, map[string]string{"cover_letter": "Hello"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Application submitted", decode(t, w)["success"])

	w = s.do(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", token, map[string]string{"cover_letter": "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "You have already applied for this job", decode(t, w)["error"])
}

func TestBulkStatus_OnlyOwnApplications(t *testing.T) {
	s := newServer(t)
	owner, _ := testhelpers.CreateEmployer(t, s.db)
	other, _ := testhelpers.CreateEmployer(t, s.db)
	_, profile := testhelpers.CreateTalent(t, s.db)
	job := testhelpers.CreateJob(t, s.db, owner.ID, models.JobStatusPublished)
	app := testhelpers.CreateApplication(t, s.db, job.ID, profile.UserID, models.ApplicationStatusSubmitted)

	req := map[string]any{"ids": []string{app.ID}, "status": "SHORTLISTED"}

	w := s.do(t, http.MethodPost, "/api/v1/employer/applications/bulk-status", testhelpers.Token(t, other), req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/employer/applications/bulk-status", testhelpers.Token(t, owner), req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, decode(t, w)["data"].(map[string]any)["updated"])
}
