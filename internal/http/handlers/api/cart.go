package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest is one requested cart line. Prices are never read from
// the request; lines are priced from the catalog.
type CartItemRequest struct {
	ProductID uint `json:"product" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// AddCartRequest creates a cart from the member's selection.
type AddCartRequest struct {
	Products []CartItemRequest `json:"products" binding:"required"`
}

// AddCart creates a cart and reserves its stock.
func (h *Handler) AddCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must add at least one product to the cart.")
		return
	}

	items := make([]service.CartItemInput, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, service.CartItemInput{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	cartID, err := h.CartService.AddCart(uid, items)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true, "cartId": cartID})
}

// DeleteCart removes a cart and its items.
func (h *Handler) DeleteCart(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	cartID, ok := parseIDParam(c, "cartId", "Invalid Cart ID format.")
	if !ok {
		return
	}
	if err := h.CartService.DeleteCart(cartID); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// AppendCartItem adds one line to an existing cart.
func (h *Handler) AppendCartItem(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	cartID, ok := parseIDParam(c, "cartId", "Invalid Cart ID format.")
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid cart item.")
		return
	}
	if err := h.CartService.AppendItem(cartID, service.CartItemInput{ProductID: req.ProductID, Quantity: req.Quantity}); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// RemoveCartItem deletes one product's lines from a cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	cartID, ok := parseIDParam(c, "cartId", "Invalid Cart ID format.")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId", "Invalid ID format provided.")
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(cartID, productID); err != nil {
		respondWithMappedError(c, err, cartErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}
