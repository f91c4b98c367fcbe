package models

import "time"

type User struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Name           string    `gorm:"uniqueIndex;not null" json:"name"`
	HashedPassword string    `gorm:"not null" json:"-"`
	IsCompany      bool      `gorm:"default:false" json:"is_company"`
	IsVerified     bool      `gorm:"default:false;not null" json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Jobs []Job `gorm:"foreignKey:UserID" json:"-"`
}
