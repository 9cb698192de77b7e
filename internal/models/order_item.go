package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem a line in an order. Price is the unit price snapshotted at
// order time; later product edits do not change it.
type OrderItem struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OrderID     uint           `gorm:"not null;index" json:"order_id"`
	ProductID   uint           `gorm:"not null;index" json:"product_id"`
	ProductName string         `gorm:"not null" json:"product_name"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
