package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBuiltinTemplates(t *testing.T) {
	tm := NewTemplateManager()

	html, err := tm.Render(TemplateWelcome, TemplateData{"Email": "seeker@example.com"})
	assert.NoError(t, err)
	assert.Contains(t, html, "seeker@example.com")

	html, err = tm.Render(TemplateApplicationStatus, TemplateData{
		"Message":  "Congratulations! Your application has been accepted.",
		"JobTitle": "Go Developer",
	})
	assert.NoError(t, err)
	assert.Contains(t, html, "Go Developer")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm := NewTemplateManager()
	_, err := tm.Render("nope", TemplateData{})
	assert.Error(t, err)
}

func TestRenderEscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	html, err := tm.Render(TemplateApplicationStatus, TemplateData{
		"Message":  "<script>alert(1)</script>",
		"JobTitle": "x",
	})
	assert.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
