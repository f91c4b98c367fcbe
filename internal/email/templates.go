package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Имена встроенных шаблонов
const TemplateVerifyEmail = "verify_email"

const verifyEmailTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
    <h2>Здравствуйте, {{.Name}}!</h2>
    <p>Спасибо за регистрацию на бирже труда. Чтобы подтвердить ваш email,
    перейдите по ссылке:</p>
    <p><a href="{{.VerifyURL}}">Подтвердить email</a></p>
    <p>Ссылка действительна 24 часа. Если вы не регистрировались,
    просто проигнорируйте это письмо.</p>
</body>
</html>`

// VerifyEmailData - данные шаблона письма подтверждения
type VerifyEmailData struct {
	Name      string
	VerifyURL string
}

// TemplateManager управляет html-шаблонами писем
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager создает менеджер с встроенными шаблонами
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	if err := tm.AddTemplate(TemplateVerifyEmail, verifyEmailTemplate); err != nil {
		return nil, err
	}
	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(templateName string, data interface{}) (string, error) {
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

// AddTemplate добавляет шаблон в менеджер
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
