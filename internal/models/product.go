package models

import (
	"time"

	"gorm.io/gorm"
)

// Product menu item table. Category and chef references are nullable so
// removing either leaves the product in place.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CategoryID  *uint          `gorm:"index" json:"category_id"`
	ChefID      *uint          `gorm:"index" json:"chef_id,omitempty"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Text        string         `gorm:"type:text" json:"text"`
	Ingredients string         `gorm:"type:text" json:"ingredients"`
	Allergens   string         `gorm:"type:text" json:"allergens"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OldPrice    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"old_price"`
	Discount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`
	Quantity    int            `gorm:"default:0" json:"quantity"` // stock on hand
	Rating      float64        `gorm:"default:0" json:"rating"`
	Image       string         `gorm:"default:''" json:"image"` // relative path, resolved at read time
	IsAvailable bool           `gorm:"default:true;index" json:"is_available"`
	SortOrder   int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Chef     *Chef     `gorm:"foreignKey:ChefID" json:"chef,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
