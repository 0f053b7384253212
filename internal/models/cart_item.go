package models

import (
	"time"
)

// CartItem is one priced line in a cart. The four Money columns are
// snapshots from the tax calculator at the moment the line was added.
type CartItem struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CartID        uint      `gorm:"index;not null" json:"cartId"`
	ProductID     uint      `gorm:"index;not null" json:"product"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	PurchasePrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"purchasePrice"`
	PriceWithTax  Money     `gorm:"type:decimal(20,2);not null;default:0" json:"priceWithTax"`
	TotalPrice    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"totalPrice"`
	TotalTax      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"totalTax"`
	CreatedAt     time.Time `gorm:"index" json:"created"`
	UpdatedAt     time.Time `json:"updated"`

	Product *Product `gorm:"foreignKey:ProductID" json:"productDetail,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
