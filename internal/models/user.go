package models

import (
	"time"

	"gorm.io/gorm"
)

// User account table.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	FirstName    string         `gorm:"default:''" json:"first_name"`
	LastName     string         `gorm:"default:''" json:"last_name"`
	Phone        string         `gorm:"default:''" json:"phone"`
	Address      string         `gorm:"default:''" json:"address"`
	Image        string         `gorm:"default:''" json:"image"` // relative path, resolved at read time
	Status       string         `gorm:"default:'active'" json:"status"`
	LastLoginAt  *time.Time     `json:"last_login_at"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
