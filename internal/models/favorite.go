package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite user product favorite. (user_id, product_id) is unique.
type Favorite struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"user_id"`
	ProductID uint           `gorm:"not null;uniqueIndex:idx_fav_user_product" json:"product_id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (Favorite) TableName() string {
	return "favorites"
}
