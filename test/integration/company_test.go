package integration_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"jobnest_backend/internal/models"
	"jobnest_backend/internal/repositories"
	"jobnest_backend/test/helpers"
)

func TestCreateCompany(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "owner@corp.com", "password123", models.UserRoleCompany)

	res, body := ts.SendMultipart(t, http.MethodPost, "/api/companies", token,
		map[string]string{
			"name":     "Acme",
			"industry": "IT",
			"location": "Almaty",
		}, "", "", "", nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var company models.Company
	assert.NoError(t, json.Unmarshal([]byte(body), &company))
	assert.Equal(t, "Acme", company.Name)

	// One company per user.
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/companies", token,
		map[string]string{"name": "Acme Again"}, "", "", "", nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestUpdateCompanySparse(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, _ := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/companies/me", token,
		map[string]string{"description": "We build rockets"}, "", "", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var company models.Company
	assert.NoError(t, json.Unmarshal([]byte(body), &company))
	assert.Equal(t, "We build rockets", company.Description)
	assert.Equal(t, "Acme", company.Name, "untouched fields survive")
}

func TestDeleteCompanyCascades(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	seeker := helpers.CreateUser(t, ts.DB, "seeker@example.com", "password123", models.UserRoleUser)
	application := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, ts.DB.Create(application).Error)
	favorite := &models.Favorite{UserID: seeker.ID, JobID: job.ID}
	assert.NoError(t, ts.DB.Create(favorite).Error)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/companies/me", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Everything hanging off the company is gone.
	var count int64
	ts.DB.Model(&models.Company{}).Count(&count)
	assert.Equal(t, int64(0), count)
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(0), count)
	ts.DB.Model(&models.Application{}).Count(&count)
	assert.Equal(t, int64(0), count)
	ts.DB.Model(&models.Favorite{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCompanyAdminRegistration(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/company-admin/register", "", map[string]interface{}{
		"email":        "admin@corp.com",
		"password":     "password123",
		"company_name": "Acme",
		"industry":     "IT",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID        uint   `json:"id"`
			Role      string `json:"role"`
			CompanyID *uint  `json:"company_id"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "company_admin", resp.User.Role)
	assert.NotNil(t, resp.User.CompanyID)

	// User, company and the staff link all exist.
	var linkCount int64
	ts.DB.Model(&models.CompanyAdmin{}).Where("user_id = ?", resp.User.ID).Count(&linkCount)
	assert.Equal(t, int64(1), linkCount)

	// Duplicate email rolls the whole thing back.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/company-admin/register", "", map[string]interface{}{
		"email":        "admin@corp.com",
		"password":     "password123",
		"company_name": "Acme Two",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	var companyCount int64
	ts.DB.Model(&models.Company{}).Count(&companyCount)
	assert.Equal(t, int64(1), companyCount, "failed registration must not leave a second company")
}

func TestStaffRoster(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, body := ts.SendRequest(t, http.MethodPost, "/api/company-admin/register", "", map[string]interface{}{
		"email":        "admin@corp.com",
		"password":     "password123",
		"company_name": "Acme",
	})
	var reg struct {
		Token string `json:"token"`
		User  struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &reg))

	staffUser := helpers.CreateUser(t, ts.DB, "staff@corp.com", "password123", models.UserRoleCompanyStaff)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/company-admin/staff", reg.Token,
		map[string]interface{}{"email": "staff@corp.com", "role_in_company": "recruiter"})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Adding the same person twice is a conflict.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/company-admin/staff", reg.Token,
		map[string]interface{}{"email": "staff@corp.com"})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/company-admin/staff", reg.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "staff@corp.com")

	// Self-removal is rejected.
	res, body = ts.SendRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/company-admin/staff/%d", reg.User.ID), reg.Token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	res, _ = ts.SendRequest(t, http.MethodDelete,
		fmt.Sprintf("/api/company-admin/staff/%d", staffUser.ID), reg.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestDashboard(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job1 := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	helpers.CreateJob(t, ts.DB, company.ID, "Frontend Developer")

	seeker := helpers.CreateUser(t, ts.DB, "seeker@example.com", "password123", models.UserRoleUser)
	application := &models.Application{UserID: seeker.ID, JobID: job1.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, ts.DB.Create(application).Error)

	notification := &models.Notification{UserID: company.UserID, Type: "new_application", Message: "New application received"}
	assert.NoError(t, ts.DB.Create(notification).Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/company-admin/dashboard", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var summary struct {
		TotalJobs           int64 `json:"total_jobs"`
		TotalApplicants     int64 `json:"total_applicants"`
		UnreadNotifications int64 `json:"unread_notifications"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Equal(t, int64(2), summary.TotalJobs)
	assert.Equal(t, int64(1), summary.TotalApplicants)
	assert.Equal(t, int64(1), summary.UnreadNotifications)
}

func TestCreateCompanyLogoUploadFailureAborts(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "owner@corp.com", "password123", models.UserRoleCompany)

	// An executable is not an allowed upload type, so the logo upload fails
	// and the whole create is rejected.
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/companies", token,
		map[string]string{"name": "Acme"},
		"logo", "logo.exe", "application/x-msdownload", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var count int64
	ts.DB.Model(&models.Company{}).Count(&count)
	assert.Equal(t, int64(0), count, "no company row survives a failed logo upload")
}

func TestUpdateCompanyLogoFailureWarns(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _, _ := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")

	res, body := ts.SendMultipart(t, http.MethodPut, "/api/companies/me", token,
		map[string]string{"description": "We build rockets"},
		"logo", "logo.exe", "application/x-msdownload", []byte("MZ"))
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "warning")

	var resp struct {
		Company models.Company `json:"company"`
		Warning string         `json:"warning"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.NotEmpty(t, resp.Warning)
	assert.Equal(t, "We build rockets", resp.Company.Description, "field update commits despite the failed logo")
	assert.Empty(t, resp.Company.LogoURL)
}

func TestDeleteCompanyRollback(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")

	seeker := helpers.CreateUser(t, ts.DB, "seeker@example.com", "password123", models.UserRoleUser)
	application := &models.Application{UserID: seeker.ID, JobID: job.ID, Status: models.ApplicationStatusPending}
	assert.NoError(t, ts.DB.Create(application).Error)

	// Run the cascade and then fail the surrounding transaction: every delete
	// must roll back together.
	forced := errors.New("injected failure")
	err := ts.DB.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewCompanyRepository(tx).DeleteCascade(company.ID); err != nil {
			return err
		}
		return forced
	})
	assert.ErrorIs(t, err, forced)

	var count int64
	ts.DB.Model(&models.Company{}).Count(&count)
	assert.Equal(t, int64(1), count)
	ts.DB.Model(&models.Job{}).Count(&count)
	assert.Equal(t, int64(1), count)
	ts.DB.Model(&models.Application{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
