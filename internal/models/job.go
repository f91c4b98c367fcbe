package models

import "time"

type Job struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int       `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	SalaryFrom  int       `json:"salary_from"`
	SalaryTo    int       `json:"salary_to"`
	Experience  *int      `json:"experience,omitempty"`
	// Без тега default: поле с ним выпадает из INSERT при нулевом
	// значении, и явный false терялся бы. Значение по умолчанию
	// выставляет сервисный слой.
	IsActive bool `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
