package email

// SMTPConfig содержит конфигурацию SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	// BaseURL публичный адрес сервиса для ссылок в письмах
	BaseURL string
}
