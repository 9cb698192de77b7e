package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment payment record. One payment per order.
type Payment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"not null;uniqueIndex" json:"order_id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	Amount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`
	Method    string         `gorm:"type:varchar(20);not null" json:"method"`
	Status    string         `gorm:"type:varchar(20);not null;index" json:"status"`
	PaidAt    *time.Time     `gorm:"index" json:"paid_at"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Payment) TableName() string {
	return "payments"
}
