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

func TestCreateAndGetJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"title":       "Go Developer",
		"description": "Build backend services",
		"job_type":    "full_time",
		"work_mode":   "remote",
		"location":    "Almaty",
		"salary_min":  500000,
		"salary_max":  900000,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var job models.Job
	assert.NoError(t, json.Unmarshal([]byte(body), &job))
	assert.Equal(t, company.ID, job.CompanyID)
	assert.Equal(t, models.JobStatusActive, job.Status, "status defaults to active")

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Go Developer")
}

func TestJobCreateRequiresCompanyRole(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/jobs", token, map[string]interface{}{
		"title":       "Should fail",
		"description": "Seekers cannot post jobs",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestListJobsWithFilters(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")

	backend := helpers.CreateJob(t, ts.DB, company.ID, "Backend Engineer")
	ts.DB.Model(backend).Updates(map[string]interface{}{"location": "Almaty", "work_mode": "remote"})

	frontend := helpers.CreateJob(t, ts.DB, company.ID, "Frontend Developer")
	ts.DB.Model(frontend).Updates(map[string]interface{}{"location": "Astana", "work_mode": "office"})

	type listResp struct {
		Jobs []models.Job `json:"jobs"`
	}

	// No filters: everything, newest first.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/jobs", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var all listResp
	assert.NoError(t, json.Unmarshal([]byte(body), &all))
	assert.Len(t, all.Jobs, 2)

	// Location filter is a case-insensitive substring match.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/jobs?location=alma", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var byLocation listResp
	assert.NoError(t, json.Unmarshal([]byte(body), &byLocation))
	assert.Len(t, byLocation.Jobs, 1)
	assert.Equal(t, "Backend Engineer", byLocation.Jobs[0].Title)

	// work_mode is exact.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/jobs?work_mode=office", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var byMode listResp
	assert.NoError(t, json.Unmarshal([]byte(body), &byMode))
	assert.Len(t, byMode.Jobs, 1)
	assert.Equal(t, "Frontend Developer", byMode.Jobs[0].Title)

	// search covers title and description.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/jobs?search=backend", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	var bySearch listResp
	assert.NoError(t, json.Unmarshal([]byte(body), &bySearch))
	assert.Len(t, bySearch.Jobs, 1)
}

func TestUpdateJobOwnership(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	otherToken, _, _ := helpers.CreateCompanyWithOwner(t, ts, "rival@corp.com", "password123", "Rival")

	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	// A different company cannot touch the job.
	res, body := ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/jobs/%d", job.ID), otherToken,
		map[string]interface{}{"title": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// Sparse update: only the provided field changes.
	ownerToken := helpers.LoginUser(t, ts, "owner@corp.com", "password123")
	res, body = ts.SendRequest(t, http.MethodPut, fmt.Sprintf("/api/jobs/%d", job.ID), ownerToken,
		map[string]interface{}{"title": "Senior Go Developer"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.Job
	assert.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, "Senior Go Developer", updated.Title)
	assert.Equal(t, "Test description", updated.Description, "untouched fields survive")
}

func TestUpdateJobStatus(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	res, body := ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/jobs/%d/status", job.ID), token,
		map[string]interface{}{"status": "closed"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPatch, fmt.Sprintf("/api/jobs/%d/status", job.ID), token,
		map[string]interface{}{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestDeleteJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	res, _ := ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/jobs/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/jobs/%d", job.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestListCompanyJobsPublic(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	helpers.CreateJob(t, ts.DB, company.ID, "Frontend Developer")

	// No token: the company page listing is public.
	res, body := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/companies/%d/jobs", company.ID), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Go Developer")
	assert.Contains(t, body, "Frontend Developer")

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/companies/9999/jobs", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCreateJobValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, _ := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")

	res, body := ts.SendRequest(t, http.MethodPost, "/api/jobs", token,
		map[string]interface{}{"location": "Almaty"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/jobs", token,
		map[string]interface{}{"title": "Go Developer"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected requests insert nothing")
}
