package models

import (
	"time"

	"gorm.io/gorm"
)

// Order order table.
type Order struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	OrderNo     string         `gorm:"uniqueIndex;not null" json:"order_no"`
	UserID      uint           `gorm:"index;not null" json:"user_id"`
	Status      string         `gorm:"index;not null" json:"status"`
	TotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	Address     string         `gorm:"default:''" json:"address"`
	Note        string         `gorm:"type:text" json:"note"`
	PaidAt      *time.Time     `gorm:"index" json:"paid_at"`
	CanceledAt  *time.Time     `gorm:"index" json:"canceled_at"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Items   []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payment *Payment    `gorm:"foreignKey:OrderID" json:"payment,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
