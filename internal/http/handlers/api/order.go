package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddOrderRequest places an order over an existing cart.
type AddOrderRequest struct {
	CartID uint `json:"cartId" binding:"required"`
}

// AddOrder creates an order; the total is recomputed server-side.
func (h *Handler) AddOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid Cart ID format.")
		return
	}
	order, err := h.OrderService.CreateOrder(req.CartID, uid)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, gin.H{
		"success": true,
		"message": "Your order has been placed successfully!",
		"order":   gin.H{"id": order.ID},
	})
}

// SearchOrders finds orders by their raw id string. Malformed ids yield an
// empty list rather than an error.
func (h *Handler) SearchOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	views, err := h.OrderService.SearchOrders(c.Query("search"), uid, isAdmin(c))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, gin.H{"orders": views})
}

// ListOrders pages through every order (admin).
func (h *Handler) ListOrders(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	page, limit := parsePaging(c)
	result, err := h.OrderService.ListOrders(page, limit)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	respondOrderPage(c, result)
}

// ListMyOrders pages through the requester's own orders.
func (h *Handler) ListMyOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, limit := parsePaging(c)
	result, err := h.OrderService.ListOrdersByUser(uid, page, limit)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	respondOrderPage(c, result)
}

func respondOrderPage(c *gin.Context, result *service.OrderPage) {
	response.OK(c, gin.H{
		"orders":      result.Orders,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
		"count":       result.Count,
	})
}

// GetOrder fetches one order scoped to the requester.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderId", "Invalid Order ID")
	if !ok {
		return
	}
	view, err := h.OrderService.GetOrder(orderID, uid, isAdmin(c))
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, gin.H{"order": view})
}

// CancelOrder removes an order, restoring reserved stock.
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseIDParam(c, "orderId", "Invalid Order ID")
	if !ok {
		return
	}
	if err := h.OrderService.CancelOrder(orderID, uid, isAdmin(c)); err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// UpdateItemStatusRequest drives a line-item status change.
type UpdateItemStatusRequest struct {
	OrderID uint   `json:"orderId"`
	CartID  uint   `json:"cartId"`
	Status  string `json:"status"`
}

// UpdateOrderItemStatus updates one line's status, cascading to a full
// cancellation when every line ends up cancelled.
func (h *Handler) UpdateOrderItemStatus(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId", "Invalid Item ID")
	if !ok {
		return
	}
	var req UpdateItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ID format provided.")
		return
	}
	result, err := h.OrderService.UpdateItemStatus(service.UpdateItemStatusInput{
		ItemID:  itemID,
		OrderID: req.OrderID,
		CartID:  req.CartID,
		Status:  req.Status,
		UserID:  uid,
		IsAdmin: isAdmin(c),
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules)
		return
	}
	response.OK(c, gin.H{
		"success":        true,
		"message":        result.Message,
		"orderCancelled": result.OrderCancelled,
	})
}
