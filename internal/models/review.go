package models

import (
	"time"

	"gorm.io/gorm"
)

// Review product review. Rating is 1..5. ProductID is nullable so a
// deleted product leaves its reviews behind.
type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ProductID *uint          `gorm:"index" json:"product_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Rating    int            `gorm:"not null" json:"rating"`
	Comment   string         `gorm:"type:text" json:"comment"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Review) TableName() string {
	return "reviews"
}
