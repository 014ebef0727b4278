package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobnest_backend/internal/models"
)

// CreateUser inserts a user with a properly hashed password.
func CreateUser(t *testing.T, db *gorm.DB, email, password string, role models.UserRole) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

// LoginUser logs in through the API and returns the token.
func LoginUser(t *testing.T, ts *TestServer, email, password string) string {
	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "login should succeed, got: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	err := json.Unmarshal([]byte(body), &loginResponse)
	assert.NoError(t, err)
	assert.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// CreateAndLoginUser creates a user and returns a valid token for it.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	user := CreateUser(t, ts.DB, email, password, role)
	token := LoginUser(t, ts, email, password)
	return token, user
}

// CreateCompanyWithOwner creates a company-role user, its company row and
// returns the owner's token.
func CreateCompanyWithOwner(t *testing.T, ts *TestServer, email, password, companyName string) (string, *models.User, *models.Company) {
	user := CreateUser(t, ts.DB, email, password, models.UserRoleCompany)

	company := &models.Company{
		UserID:   user.ID,
		Name:     companyName,
		Industry: "IT",
		Location: "Almaty",
	}
	if err := ts.DB.Create(company).Error; err != nil {
		t.Fatalf("failed to create test company: %v", err)
	}

	token := LoginUser(t, ts, email, password)
	return token, user, company
}

// CreateJob inserts a job for a company.
func CreateJob(t *testing.T, db *gorm.DB, companyID uint, title string) *models.Job {
	job := &models.Job{
		CompanyID:   companyID,
		Title:       title,
		Description: "Test description",
		JobType:     "full_time",
		WorkMode:    "remote",
		Location:    "Almaty",
		Status:      models.JobStatusActive,
	}
	if err := db.Create(job).Error; err != nil {
		t.Fatalf("failed to create test job: %v", err)
	}
	return job
}
