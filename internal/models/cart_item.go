package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem a line in a cart. (cart_id, product_id) is unique so repeated
// adds merge into one line.
type CartItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CartID    uint           `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID uint           `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
