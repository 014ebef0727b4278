package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobnest_backend/internal/models"
	"jobnest_backend/test/helpers"
)

var fakePDF = []byte("%PDF-1.4 test cv content")

func submitApplication(t *testing.T, ts *helpers.TestServer, token string, jobID uint) (*http.Response, string) {
	return ts.SendMultipart(t, http.MethodPost, "/api/applications", token,
		map[string]string{"job_id": fmt.Sprintf("%d", jobID)},
		"cv", "cv.pdf", "application/pdf", fakePDF)
}

func TestSubmitApplication(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, owner, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	seekerToken, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := submitApplication(t, ts, seekerToken, job.ID)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var application models.Application
	assert.NoError(t, json.Unmarshal([]byte(body), &application))
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.NotEmpty(t, application.CVURL)

	// The company owner gets a new_application notification.
	var count int64
	ts.DB.Model(&models.Notification{}).
		Where("user_id = ? AND type = ?", owner.ID, "new_application").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSubmitApplicationTwice(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	seekerToken, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, _ := submitApplication(t, ts, seekerToken, job.ID)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := submitApplication(t, ts, seekerToken, job.ID)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "ALREADY_EXISTS")
}

func TestSubmitApplicationMissingJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	seekerToken, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := submitApplication(t, ts, seekerToken, 9999)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestListJobApplicationsPagination(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	for i := 0; i < 12; i++ {
		seeker := helpers.CreateUser(t, ts.DB, fmt.Sprintf("seeker%d@example.com", i), "password123", models.UserRoleUser)
		application := &models.Application{
			UserID: seeker.ID,
			JobID:  job.ID,
			Status: models.ApplicationStatusPending,
		}
		assert.NoError(t, ts.DB.Create(application).Error)
	}

	res, body := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/%d/applications?page=2&limit=5", job.ID), ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Applications []models.Application `json:"applications"`
		Pagination   struct {
			CurrentPage int   `json:"currentPage"`
			TotalPages  int   `json:"totalPages"`
			TotalCount  int64 `json:"totalCount"`
			HasNextPage bool  `json:"hasNextPage"`
			HasPrevPage bool  `json:"hasPrevPage"`
		} `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp.Applications, 5)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(12), resp.Pagination.TotalCount)
	assert.True(t, resp.Pagination.HasNextPage)
	assert.True(t, resp.Pagination.HasPrevPage)
}

func TestListJobApplicationsOwnership(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	rivalToken, _, _ := helpers.CreateCompanyWithOwner(t, ts, "rival@corp.com", "password123", "Rival")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	res, body := ts.SendRequest(t, http.MethodGet,
		fmt.Sprintf("/api/jobs/%d/applications", job.ID), rivalToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestUpdateApplicationStatusNotifiesApplicant(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	seeker := helpers.CreateUser(t, ts.DB, "seeker@example.com", "password123", models.UserRoleUser)

	application := &models.Application{
		UserID: seeker.ID,
		JobID:  job.ID,
		Status: models.ApplicationStatusPending,
	}
	assert.NoError(t, ts.DB.Create(application).Error)

	res, body := ts.SendRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/applications/%d/status", application.ID), ownerToken,
		map[string]interface{}{"status": "accepted"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Application
	assert.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	var notification models.Notification
	err := ts.DB.Where("user_id = ? AND type = ?", seeker.ID, "application_status").
		First(&notification).Error
	assert.NoError(t, err)
	assert.Equal(t, "Congratulations! Your application has been accepted.", notification.Message)
	assert.False(t, notification.IsRead)
}

func TestUpdateApplicationStatusInvalidValue(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ownerToken, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	seeker := helpers.CreateUser(t, ts.DB, "seeker@example.com", "password123", models.UserRoleUser)

	application := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, ts.DB.Create(application).Error)

	res, body := ts.SendRequest(t, http.MethodPatch,
		fmt.Sprintf("/api/applications/%d/status", application.ID), ownerToken,
		map[string]interface{}{"status": "hired"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestListMyApplications(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	seekerToken, seeker := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	application := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, ts.DB.Create(application).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/applications/my", seekerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Go Developer", "job details ride along")
}
