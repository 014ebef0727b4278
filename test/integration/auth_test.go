package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var authResp struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	assert.NoError(t, json.Unmarshal([]byte(body), &authResp))
	assert.NotEmpty(t, authResp.Token)
	assert.Equal(t, "seeker@example.com", authResp.User.Email)
	assert.Equal(t, "user", authResp.User.Role, "role defaults to user")

	// The password hash never leaves the server.
	assert.NotContains(t, body, "password_hash")

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	payload := map[string]interface{}{
		"email":    "dup@example.com",
		"password": "password123",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", payload)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", payload)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
	assert.Contains(t, body, "ALREADY_EXISTS")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "password123",
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestCompanyLoginRejectsSeekerAccount(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "password123",
	})

	// Right credentials, wrong role: descriptive 403, not a 401.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/company-login", "", map[string]interface{}{
		"email":    "seeker@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assert.Contains(t, body, "role")
}

func TestRegisterValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]interface{}{
		"email":    "not-an-email",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "VALIDATION_FAILED")
}

func TestMeRequiresAuth(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/users/me", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
