package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable catalog item. Quantity is the on-hand stock;
// cart and order flows adjust it but never delete the row.
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	SKU         string         `gorm:"column:sku;uniqueIndex;not null" json:"sku"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Name        string         `gorm:"not null;index" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity    int            `gorm:"not null;default:0" json:"quantity"`
	Taxable     bool           `gorm:"default:false" json:"taxable"`
	IsActive    bool           `gorm:"default:true;index" json:"isActive"`
	BrandID     *uint          `gorm:"index" json:"brandId,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created"`
	UpdatedAt   time.Time      `json:"updated"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Brand *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
