package models

import (
	"time"
)

// Wishlist marks a product a user has liked. One row per user/product pair.
type Wishlist struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	IsLiked   bool      `gorm:"default:false" json:"isLiked"`
	CreatedAt time.Time `gorm:"index" json:"created"`
	UpdatedAt time.Time `json:"updated"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}
