package email

import (
	"fmt"
	"net/url"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer *TemplateManager
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	renderer, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	provider := &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}

	if err := provider.Validate(); err != nil {
		return nil, err
	}

	return provider, nil
}

// Send отправляет email сообщение
func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return p.dialer.DialAndSend(m)
}

// SendVerification отправляет письмо со ссылкой подтверждения email
func (p *SMTPProvider) SendVerification(to, name, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email?token=%s", p.config.BaseURL, url.QueryEscape(token))

	htmlBody, err := p.renderer.Render(TemplateVerifyEmail, VerifyEmailData{
		Name:      name,
		VerifyURL: verifyURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(to, "Подтвердите ваш email", htmlBody)
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Close закрывает соединение (gomail открывает его на каждую отправку)
func (p *SMTPProvider) Close() error {
	return nil
}
