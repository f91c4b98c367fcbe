// @title           Job Board API
// @version         1.0
// @description     API доски вакансий: пользователи, вакансии, аутентификация (документация Swagger).
// @contact.name    Job Board
// @contact.email   support@jobboard.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"jobboard_backend/internal/app"

	_ "jobboard_backend/docs"
)

func main() {
	app.Run()
}
