package email

import "jobboard_backend/internal/logger"

// MockProvider используется для тестов и локальной разработки:
// вместо отправки пишет письмо в лог.
type MockProvider struct {
	Sent []MockMessage
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

type MockMessage struct {
	To      string
	Subject string
	Body    string
	Token   string
}

func (m *MockProvider) Send(to, subject, htmlBody string) error {
	m.Sent = append(m.Sent, MockMessage{To: to, Subject: subject, Body: htmlBody})
	logger.Info("mock email sent", "to", to, "subject", subject)
	return nil
}

func (m *MockProvider) SendVerification(to, name, token string) error {
	m.Sent = append(m.Sent, MockMessage{To: to, Subject: "Подтвердите ваш email", Token: token})
	logger.Info("mock verification email sent", "to", to, "name", name)
	return nil
}

func (m *MockProvider) Validate() error { return nil }
func (m *MockProvider) Close() error    { return nil }
