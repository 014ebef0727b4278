package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapAndUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	appErr := ErrNotFound(cause, "jobs", "Job not found")

	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.ErrorIs(t, appErr, cause)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("pq: connection refused"), CodeDatabaseError,
		"jobs", "Job lookup failed", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "connection refused")
	assert.Contains(t, string(raw), "Job lookup failed")
}

func TestAlreadyExistsIsConflict(t *testing.T) {
	appErr := ErrAlreadyExists(nil, "applications", "already applied")
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	appErr := New(CodeForbidden, "auth", "no", http.StatusForbidden)
	wrapped, ok := AsAppError(appErr)
	assert.True(t, ok)
	assert.Equal(t, appErr, wrapped)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}
