package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"
)

// OrderView is the read-side shape of an order: the stored total plus tax
// amounts recomputed from the cart lines.
type OrderView struct {
	ID       uint              `json:"id"`
	CartID   uint              `json:"cartId"`
	UserID   uint              `json:"userId"`
	Total    models.Money      `json:"total"`
	TotalTax models.Money      `json:"totalTax"`
	Created  time.Time         `json:"created"`
	Products []models.CartItem `json:"products"`
}

// OrderPage is one page of orders plus paging bookkeeping.
type OrderPage struct {
	Orders      []OrderView `json:"orders"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	Count       int64       `json:"count"`
}

// GetOrder fetches one order scoped to the requester. An order whose cart
// no longer resolves is treated as not found.
func (s *OrderService) GetOrder(orderID, userID uint, isAdmin bool) (*OrderView, error) {
	order, err := s.getScopedOrder(orderID, userID, isAdmin)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	cart, err := s.cartRepo.GetByID(order.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrOrderNotFound
	}

	view := s.buildOrderView(*order, cart)
	return &view, nil
}

// SearchOrders looks an order up by its raw id string. A malformed or zero
// id yields an empty result, not an error; orders with missing carts are
// filtered out.
func (s *OrderService) SearchOrders(raw string, userID uint, isAdmin bool) ([]OrderView, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return []OrderView{}, nil
	}

	var orders []models.Order
	if isAdmin {
		orders, err = s.orderRepo.FindByID(uint(id))
	} else {
		orders, err = s.orderRepo.FindByIDAndUser(uint(id), userID)
	}
	if err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		cart, err := s.cartRepo.GetByID(order.CartID)
		if err != nil {
			return nil, err
		}
		if cart == nil {
			continue
		}
		views = append(views, s.buildOrderView(order, cart))
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].Created.After(views[j].Created)
	})
	return views, nil
}

// ListOrders pages through every order (admin view), newest first.
func (s *OrderService) ListOrders(page, limit int) (*OrderPage, error) {
	page, limit = normalizeOrderPaging(page, limit)
	orders, count, err := s.orderRepo.ListAdmin(repository.OrderListFilter{Page: page, PageSize: limit})
	if err != nil {
		return nil, err
	}
	return s.buildOrderPage(orders, count, page, limit), nil
}

// ListOrdersByUser pages through one user's orders, newest first.
func (s *OrderService) ListOrdersByUser(userID uint, page, limit int) (*OrderPage, error) {
	page, limit = normalizeOrderPaging(page, limit)
	orders, count, err := s.orderRepo.ListByUser(repository.OrderListFilter{Page: page, PageSize: limit, UserID: userID})
	if err != nil {
		return nil, err
	}
	return s.buildOrderPage(orders, count, page, limit), nil
}

func (s *OrderService) buildOrderPage(orders []models.Order, count int64, page, limit int) *OrderPage {
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		cart, err := s.cartRepo.GetByID(order.CartID)
		if err != nil {
			logger.Warnw("order_list_cart_lookup_failed",
				"order_id", order.ID,
				"cart_id", order.CartID,
				"error", err,
			)
			cart = nil
		}
		views = append(views, s.buildOrderView(order, cart))
	}

	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &OrderPage{
		Orders:      views,
		TotalPages:  totalPages,
		CurrentPage: page,
		Count:       count,
	}
}

// buildOrderView recomputes tax over the cart lines; an absent cart leaves
// the view without products.
func (s *OrderService) buildOrderView(order models.Order, cart *models.Cart) OrderView {
	view := OrderView{
		ID:       order.ID,
		CartID:   order.CartID,
		UserID:   order.UserID,
		Total:    order.Total,
		Created:  order.CreatedAt,
		Products: []models.CartItem{},
	}
	if cart == nil {
		return view
	}

	inputs := make([]TaxLineInput, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.Product == nil {
			continue
		}
		inputs = append(inputs, TaxLineInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price.Decimal,
			Taxable:   item.Product.Taxable,
		})
	}
	result := s.tax.ApplyOrderTax(inputs)
	view.TotalTax = result.TotalTax
	view.Products = cart.Items
	return view
}

func normalizeOrderPaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}
