package models

import (
	"time"

	"gorm.io/gorm"
)

// Chef public chef profile.
type Chef struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Image     string         `gorm:"default:''" json:"image"`
	Specialty string         `gorm:"default:''" json:"specialty"`
	Rating    float64        `gorm:"default:0" json:"rating"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Chef) TableName() string {
	return "chefs"
}
