package repository

import (
	"errors"

	"github.com/northcart/northcart/internal/models"

	"gorm.io/gorm"
)

// WishlistRepository is the wishlist data access interface.
type WishlistRepository interface {
	Upsert(entry *models.Wishlist) error
	ListByUser(userID uint) ([]models.Wishlist, error)
}

// GormWishlistRepository is the GORM implementation.
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates the wishlist repository.
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Upsert creates or toggles the user's wishlist entry for a product.
func (r *GormWishlistRepository) Upsert(entry *models.Wishlist) error {
	if entry == nil {
		return nil
	}
	var existing models.Wishlist
	err := r.db.Where("user_id = ? AND product_id = ?", entry.UserID, entry.ProductID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(entry).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Update("is_liked", entry.IsLiked).Error
}

// ListByUser returns the user's liked products.
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	if err := r.db.Preload("Product").
		Where("user_id = ? AND is_liked = ?", userID, true).
		Order("updated_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
