package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in template names.
const (
	TemplateWelcome           = "welcome"
	TemplateApplicationStatus = "application_status"
)

var builtinTemplates = map[string]string{
	TemplateWelcome: `
<h2>Welcome to JobNest, {{.Email}}!</h2>
<p>Your account has been created. You can now browse jobs, save favorites and
apply with your CV.</p>`,

	TemplateApplicationStatus: `
<h2>Application update</h2>
<p>{{.Message}}</p>
<p>Position: <b>{{.JobTitle}}</b></p>`,
}

// TemplateManager parses and renders HTML email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		// Built-ins are compile-time constants; a parse failure is a bug.
		if err := tm.AddTemplate(name, body); err != nil {
			panic(err)
		}
	}
	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
