package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. All calls are best-effort from the
// caller's point of view; a failed email never fails the request.
type Sender interface {
	Send(to, subject, htmlBody string) error
	SendTemplate(to, subject, templateName string, data TemplateData) error
	Close() error
}

// TemplateData carries template variables.
type TemplateData map[string]interface{}

// Config for the SMTP sender.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid smtp port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPSender sends mail over SMTP via gomail.
type SMTPSender struct {
	config    Config
	dialer    *gomail.Dialer
	templates *TemplateManager
}

func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPSender{
		config:    cfg,
		dialer:    gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		templates: NewTemplateManager(),
	}, nil
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func (s *SMTPSender) SendTemplate(to, subject, templateName string, data TemplateData) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return s.Send(to, subject, htmlBody)
}

func (s *SMTPSender) Close() error {
	return nil
}

// NoopSender is used when SMTP is disabled (tests, local development).
type NoopSender struct{}

func (NoopSender) Send(to, subject, htmlBody string) error { return nil }
func (NoopSender) SendTemplate(to, subject, templateName string, data TemplateData) error {
	return nil
}
func (NoopSender) Close() error { return nil }
