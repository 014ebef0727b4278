package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobnest_backend/internal/models"
	"jobnest_backend/test/helpers"
)

func TestProfileLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"full_name":  "Aigerim Seitova",
		"phone":      "+77001234567",
		"birth_date": "1995-04-12",
		"location":   "Almaty",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Second profile for the same user is a conflict.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"full_name": "Someone Else",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Sparse update leaves other fields alone.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/profile", token, map[string]interface{}{
		"bio": "Backend developer",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var profile models.Profile
	assert.NoError(t, json.Unmarshal([]byte(body), &profile))
	assert.Equal(t, "Backend developer", profile.Bio)
	assert.Equal(t, "Aigerim Seitova", profile.FullName)
	assert.Equal(t, "1995-04-12", profile.BirthDate)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/profile", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestProfileBirthDateFormat(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	for _, bad := range []string{"12-04-1995", "1995/04/12", "1995-4-12", "yesterday"} {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
			"full_name":  "Aigerim Seitova",
			"birth_date": bad,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "birth_date %q should be rejected: %s", bad, body)
	}
}

func TestSkillsAndInterests(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/skill", token, map[string]interface{}{
		"skill_name": "Go",
		"level":      "advanced",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var skill models.Skill
	assert.NoError(t, json.Unmarshal([]byte(body), &skill))

	// Same skill twice is a conflict.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/skill", token, map[string]interface{}{
		"skill_name": "Go",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	// Bogus level fails validation.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/skill", token, map[string]interface{}{
		"skill_name": "Rust",
		"level":      "grandmaster",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/skill", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Go")

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/skill/1", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/interest", token, map[string]interface{}{
		"interest_area": "Machine Learning",
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/interest", token, map[string]interface{}{
		"interest_area": "Machine Learning",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}
