package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, htmlBody string) error

	// SendVerification отправляет письмо подтверждения email
	SendVerification(to, name, token string) error

	// Validate проверяет конфигурацию провайдера
	Validate() error

	// Close закрывает соединение с провайдером
	Close() error
}
