package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jobnest_backend/internal/models"
	"jobnest_backend/test/helpers"
)

func TestFavoriteLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/favorite/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	// Saving the same job twice is a conflict.
	res, body = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/favorite/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/favorite", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Go Developer")

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/favorite/check/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"is_favorite":true`)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/favorite/job/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Removing again is a 404.
	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/favorite/job/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/favorite/check/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"is_favorite":false`)
}

func TestFavoriteRemoveByID(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	_, _, company := helpers.CreateCompanyWithOwner(t, ts, "owner@corp.com", "password123", "Acme")
	job := helpers.CreateJob(t, ts.DB, company.ID, "Go Developer")
	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/favorite/%d", job.ID), token, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var favorite models.Favorite
	err := ts.DB.Where("job_id = ?", job.ID).First(&favorite).Error
	assert.NoError(t, err)

	// Someone else's favorite id is invisible to the caller.
	otherToken, _ := helpers.CreateAndLoginUser(t, ts, "other@example.com", "password123", models.UserRoleUser)
	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/favorite/%d", favorite.ID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodDelete, fmt.Sprintf("/api/favorite/%d", favorite.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Favorite{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestFavoriteMissingJob(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "seeker@example.com", "password123", models.UserRoleUser)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/favorite/9999", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}
