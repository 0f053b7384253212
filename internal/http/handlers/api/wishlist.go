package api

import (
	"github.com/northcart/northcart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// WishlistRequest records whether the member likes a product.
type WishlistRequest struct {
	ProductID uint `json:"product" binding:"required"`
	IsLiked   bool `json:"isLiked"`
}

// SetWishlist creates or toggles a wishlist entry.
func (h *Handler) SetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid wishlist request.")
		return
	}
	if err := h.WishlistService.Set(uid, req.ProductID, req.IsLiked); err != nil {
		respondWithMappedError(c, err, wishlistErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// ListWishlist returns the member's liked products.
func (h *Handler) ListWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	entries, err := h.WishlistService.List(uid)
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules)
		return
	}
	response.OK(c, gin.H{"wishlist": entries})
}
