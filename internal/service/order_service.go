package service

import (
	"fmt"
	"strings"

	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/queue"
	"github.com/northcart/northcart/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderService owns order creation, cancellation and item-status cascades.
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	queueClient *queue.Client
	tax         *TaxCalculator
}

// NewOrderService creates the order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	queueClient *queue.Client,
	tax *TaxCalculator,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		queueClient: queueClient,
		tax:         tax,
	}
}

// CreateOrder places an order over an existing cart. The total is recomputed
// from the catalog rows attached to the cart lines; client-sent amounts are
// never consulted. Inventory is untouched here, the cart flow already
// reserved it.
func (s *OrderService) CreateOrder(cartID, userID uint) (*models.Order, error) {
	if cartID == 0 {
		return nil, ErrCartNotFound
	}
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	total := decimal.Zero
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		if item.Product.Price.IsNegative() {
			return nil, fmt.Errorf("Invalid price detected for %s: %w", item.Product.Name, ErrInvalidPrice)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("Invalid quantity detected for %s: %w", item.Product.Name, ErrInvalidQuantity)
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		total = total.Add(item.Product.Price.Decimal.Mul(qty))
	}

	order := &models.Order{
		CartID: cartID,
		UserID: userID,
		Total:  models.NewMoneyFromDecimal(total),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// The order is committed; a broken queue must not unwind it.
	if err := s.enqueueConfirmationEmail(order.ID); err != nil {
		logger.Errorw("order_enqueue_confirmation_email_failed",
			"order_id", order.ID,
			"error", err,
		)
	}

	return order, nil
}

// CancelOrder removes an order, restoring stock and deleting the cart when
// the cart still exists. Orders whose cart is already gone are orphans and
// still cancellable; a second cancel of the same order is a no-op.
func (s *OrderService) CancelOrder(orderID, userID uint, isAdmin bool) error {
	order, err := s.getScopedOrder(orderID, userID, isAdmin)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	cart, err := s.cartRepo.GetByID(order.CartID)
	if err != nil {
		logger.Warnw("order_cancel_cart_lookup_failed",
			"order_id", orderID,
			"cart_id", order.CartID,
			"error", err,
		)
		cart = nil
	}
	if cart != nil {
		s.restoreCartStock(cart.Items)
		if _, err := s.cartRepo.Delete(cart.ID); err != nil {
			return err
		}
	}

	if _, err := s.orderRepo.Delete(order.ID); err != nil {
		return err
	}
	return nil
}

// UpdateItemStatusInput drives a single line-item status change.
type UpdateItemStatusInput struct {
	ItemID  uint
	OrderID uint
	CartID  uint
	Status  string
	UserID  uint
	IsAdmin bool
}

// ItemStatusResult reports what the cascade decided.
type ItemStatusResult struct {
	OrderCancelled bool
	Message        string
}

// UpdateItemStatus sets one line's status. Cancelling a line restores its
// stock; when the caller names the cart and every line ends up cancelled,
// the cart and its order are deleted and the whole order reported cancelled.
func (s *OrderService) UpdateItemStatus(input UpdateItemStatusInput) (*ItemStatusResult, error) {
	if input.ItemID == 0 {
		return nil, ErrItemNotFound
	}
	status := strings.TrimSpace(input.Status)
	if status == "" {
		status = constants.CartItemStatusCancelled
	}
	if status != constants.CartItemStatusActive && status != constants.CartItemStatusCancelled {
		return nil, ErrInvalidCartItem
	}

	cart, err := s.cartRepo.GetByItemID(input.ItemID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == input.ItemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if input.OrderID != 0 {
		order, err := s.getScopedOrder(input.OrderID, input.UserID, input.IsAdmin)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, ErrOrderNotFound
		}
	}

	if err := s.cartRepo.UpdateItemStatus(input.ItemID, status); err != nil {
		return nil, err
	}

	if status != constants.CartItemStatusCancelled {
		return &ItemStatusResult{Message: "Item status has been updated successfully!"}, nil
	}

	s.restoreCartStock([]models.CartItem{*item})

	if input.CartID != 0 {
		fresh, err := s.cartRepo.GetByID(input.CartID)
		if err != nil {
			return nil, err
		}
		if fresh != nil && allItemsCancelled(fresh.Items) {
			if input.OrderID != 0 {
				if _, err := s.orderRepo.Delete(input.OrderID); err != nil {
					return nil, err
				}
			}
			if _, err := s.cartRepo.Delete(fresh.ID); err != nil {
				return nil, err
			}
			message := "Your order has been cancelled successfully"
			if input.IsAdmin {
				message = "Order has been cancelled successfully"
			}
			return &ItemStatusResult{OrderCancelled: true, Message: message}, nil
		}
	}

	return &ItemStatusResult{Message: "Item has been cancelled successfully!"}, nil
}

func allItemsCancelled(items []models.CartItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.Status != constants.CartItemStatusCancelled {
			return false
		}
	}
	return true
}

// restoreCartStock puts line quantities back in one batched update.
func (s *OrderService) restoreCartStock(items []models.CartItem) {
	adjustments := make([]repository.QuantityAdjustment, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			continue
		}
		adjustments = append(adjustments, repository.QuantityAdjustment{
			ProductID: item.ProductID,
			Delta:     item.Quantity,
		})
	}
	if len(adjustments) == 0 {
		return
	}
	if _, err := s.productRepo.AdjustQuantities(adjustments); err != nil {
		logger.Errorw("order_stock_restore_failed", "error", err)
	}
}

func (s *OrderService) getScopedOrder(orderID, userID uint, isAdmin bool) (*models.Order, error) {
	if orderID == 0 {
		return nil, nil
	}
	if isAdmin {
		return s.orderRepo.GetByID(orderID)
	}
	return s.orderRepo.GetByIDAndUser(orderID, userID)
}

// enqueueConfirmationEmail pushes the confirmation task unless the order
// has no resolvable receiver.
func (s *OrderService) enqueueConfirmationEmail(orderID uint) error {
	if s.queueClient == nil || orderID == 0 {
		return nil
	}
	receiverEmail, err := s.orderRepo.ResolveReceiverEmailByOrderID(orderID)
	if err == nil && strings.TrimSpace(receiverEmail) == "" {
		logger.Debugw("order_confirmation_email_skipped_no_receiver", "order_id", orderID)
		return nil
	}
	return s.queueClient.EnqueueOrderConfirmation(queue.OrderConfirmationPayload{OrderID: orderID})
}
