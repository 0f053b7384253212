package repository

import (
	"errors"

	"github.com/northcart/northcart/internal/models"

	"gorm.io/gorm"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	Create(cart *models.Cart) error
	GetByID(id uint) (*models.Cart, error)
	GetByItemID(itemID uint) (*models.Cart, error)
	AppendItem(item *models.CartItem) error
	UpdateItemStatus(itemID uint, status string) error
	Delete(id uint) (int64, error)
	RemoveItemsByProduct(cartID, productID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates the cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Create inserts the cart together with its line items.
func (r *GormCartRepository) Create(cart *models.Cart) error {
	if cart == nil {
		return nil
	}
	return r.db.Create(cart).Error
}

// GetByID fetches a cart with its items and their products.
func (r *GormCartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Preload("Items").Preload("Items.Product").First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByItemID fetches the cart that contains the given line item.
func (r *GormCartRepository) GetByItemID(itemID uint) (*models.Cart, error) {
	var item models.CartItem
	if err := r.db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.GetByID(item.CartID)
}

// AppendItem adds one priced line to an existing cart.
func (r *GormCartRepository) AppendItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Create(item).Error
}

// UpdateItemStatus sets a single line item's status.
func (r *GormCartRepository) UpdateItemStatus(itemID uint, status string) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("status", status).Error
}

// Delete removes the cart and its items, returning how many cart rows went
// away. Zero means the cart was already gone.
func (r *GormCartRepository) Delete(id uint) (int64, error) {
	if err := r.db.Where("cart_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
		return 0, err
	}
	result := r.db.Delete(&models.Cart{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// RemoveItemsByProduct deletes every line for the product from the cart and
// returns the number of removed rows.
func (r *GormCartRepository) RemoveItemsByProduct(cartID, productID uint) (int64, error) {
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&models.CartItem{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
