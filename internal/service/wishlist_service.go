package service

import (
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"
)

// WishlistService tracks which products a member has liked.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// Set records whether the user likes a product, toggling any existing row.
func (s *WishlistService) Set(userID, productID uint, liked bool) error {
	if userID == 0 || productID == 0 {
		return ErrWishlistInvalid
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.wishlistRepo.Upsert(&models.Wishlist{
		UserID:    userID,
		ProductID: productID,
		IsLiked:   liked,
	})
}

// List returns the user's liked products, most recently touched first.
func (s *WishlistService) List(userID uint) ([]models.Wishlist, error) {
	return s.wishlistRepo.ListByUser(userID)
}
