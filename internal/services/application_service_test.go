package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobnest_backend/internal/models"
)

func TestStatusMessage(t *testing.T) {
	assert.Equal(t,
		"Congratulations! Your application has been accepted.",
		statusMessage(models.ApplicationStatusAccepted, "Go Developer"))

	assert.Equal(t,
		"We regret to inform you that your application has been rejected.",
		statusMessage(models.ApplicationStatusRejected, "Go Developer"))

	assert.Equal(t,
		"You have been shortlisted for Go Developer.",
		statusMessage(models.ApplicationStatusShortlisted, "Go Developer"))

	assert.Equal(t,
		"Your application for Go Developer is now reviewed.",
		statusMessage(models.ApplicationStatusReviewed, "Go Developer"))
}
