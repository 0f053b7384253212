package models

import (
	"time"
)

// Cart is the line-item container an order points at. A cart whose every
// item is cancelled is eligible for cascade deletion together with its order.
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	CreatedAt time.Time `gorm:"index" json:"created"`
	UpdatedAt time.Time `json:"updated"`

	Items []CartItem `gorm:"foreignKey:CartID" json:"products,omitempty"`
}

func (Cart) TableName() string {
	return "carts"
}
