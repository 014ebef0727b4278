package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type birthDateProbe struct {
	BirthDate string `json:"birth_date" validate:"omitempty,is-birth-date"`
}

func TestBirthDateRule(t *testing.T) {
	v := New()

	valid := []string{"", "1995-04-12", "2000-01-01", "1999-13-45"} // shape only, not a calendar check
	for _, date := range valid {
		err := v.Validate(birthDateProbe{BirthDate: date})
		assert.NoError(t, err, "birth_date %q should pass", date)
	}

	invalid := []string{"12-04-1995", "1995/04/12", "1995-4-12", "1995-04-12T00:00:00Z", "yesterday"}
	for _, date := range invalid {
		err := v.Validate(birthDateProbe{BirthDate: date})
		assert.Error(t, err, "birth_date %q should fail", date)
	}
}

type statusProbe struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "reviewed", "shortlisted", "interview", "accepted", "rejected"} {
		assert.NoError(t, v.Validate(statusProbe{Status: status}), status)
	}

	err := v.Validate(statusProbe{Status: "hired"})
	assert.Error(t, err)

	valErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Contains(t, valErr.Errors["status"], "pending")
}

type roleProbe struct {
	Role string `json:"role" validate:"omitempty,is-user-role"`
}

func TestUserRoleRule(t *testing.T) {
	v := New()

	for _, role := range []string{"", "user", "company", "company_admin", "company_staff"} {
		assert.NoError(t, v.Validate(roleProbe{Role: role}), role)
	}
	assert.Error(t, v.Validate(roleProbe{Role: "superadmin"}))
}

type jsonNameProbe struct {
	FullName string `json:"full_name" validate:"required"`
}

func TestErrorsUseJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(jsonNameProbe{})
	valErr, ok := err.(*ValidationError)
	assert.True(t, ok)
	_, hasJSONName := valErr.Errors["full_name"]
	assert.True(t, hasJSONName, "errors are keyed by the json tag, not the Go field name")
}
