package models

import (
	"time"
)

// User is a storefront account. Role is either member or admin.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"default:''" json:"firstName"`
	LastName     string    `gorm:"default:''" json:"lastName"`
	Role         string    `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt    time.Time `gorm:"index" json:"created"`
	UpdatedAt    time.Time `json:"updated"`
}

func (User) TableName() string {
	return "users"
}
