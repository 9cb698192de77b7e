package models

import (
	"time"

	"gorm.io/gorm"
)

// Ad promotional banner. StartAt/EndAt bound the active window; nil
// means unbounded on that side.
type Ad struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Image       string         `gorm:"default:''" json:"image"`
	TargetURL   string         `gorm:"default:''" json:"target_url"`
	StartAt     *time.Time     `json:"start_at"`
	EndAt       *time.Time     `json:"end_at"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Ad) TableName() string {
	return "ads"
}
