package models

import (
	"time"
)

// Order is a placed checkout. Total is computed server-side from the cart
// at creation and never changes afterwards. CartID may dangle if the cart
// was cleaned up separately; readers treat such orders as not found.
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CartID    uint      `gorm:"uniqueIndex;not null" json:"cartId"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Total     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	CreatedAt time.Time `gorm:"index" json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

func (Order) TableName() string {
	return "orders"
}
