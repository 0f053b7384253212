package models

import (
	"time"
)

// Review is a member's rating of a product. Public listings only show
// approved reviews.
type Review struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	ProductID  uint      `gorm:"index;not null" json:"productId"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	Title      string    `gorm:"not null" json:"title"`
	Comment    string    `gorm:"type:text" json:"review"`
	Rating     int       `gorm:"not null" json:"rating"`
	IsApproved bool      `gorm:"default:false;index" json:"isApproved"`
	CreatedAt  time.Time `gorm:"index" json:"created"`
	UpdatedAt  time.Time `json:"updated"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
