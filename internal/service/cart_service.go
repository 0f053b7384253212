package service

import (
	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"
)

// CartItemInput is one requested line. Any client-sent price is ignored;
// lines are always priced from the catalog row.
type CartItemInput struct {
	ProductID uint
	Quantity  int
}

// CartService owns the cart lifecycle.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	tax         *TaxCalculator
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, tax *TaxCalculator) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		tax:         tax,
	}
}

// AddCart prices the requested lines from server-side product rows, persists
// the cart, then decrements stock in one batched update. A failed decrement
// is logged but does not undo the cart; the cancellation flow restores stock
// symmetrically.
func (s *CartService) AddCart(userID uint, items []CartItemInput) (uint, error) {
	if userID == 0 {
		return 0, ErrInvalidCartItem
	}
	if len(items) == 0 {
		return 0, ErrCartEmpty
	}

	priced, err := s.priceItems(items)
	if err != nil {
		return 0, err
	}

	cart := &models.Cart{UserID: userID}
	for _, line := range priced {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Status:        constants.CartItemStatusActive,
			PurchasePrice: line.PurchasePrice,
			PriceWithTax:  line.PriceWithTax,
			TotalPrice:    line.TotalPrice,
			TotalTax:      line.TotalTax,
		})
	}
	if err := s.cartRepo.Create(cart); err != nil {
		return 0, err
	}

	adjustments := make([]repository.QuantityAdjustment, 0, len(priced))
	for _, line := range priced {
		adjustments = append(adjustments, repository.QuantityAdjustment{
			ProductID: line.ProductID,
			Delta:     -line.Quantity,
		})
	}
	if _, err := s.productRepo.AdjustQuantities(adjustments); err != nil {
		logger.Errorw("cart_stock_decrement_failed",
			"cart_id", cart.ID,
			"error", err,
		)
	}

	return cart.ID, nil
}

// AppendItem adds one priced line to an existing cart.
func (s *CartService) AppendItem(cartID uint, item CartItemInput) error {
	if cartID == 0 {
		return ErrInvalidCartItem
	}
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}

	priced, err := s.priceItems([]CartItemInput{item})
	if err != nil {
		return err
	}
	line := priced[0]
	return s.cartRepo.AppendItem(&models.CartItem{
		CartID:        cartID,
		ProductID:     line.ProductID,
		Quantity:      line.Quantity,
		Status:        constants.CartItemStatusActive,
		PurchasePrice: line.PurchasePrice,
		PriceWithTax:  line.PriceWithTax,
		TotalPrice:    line.TotalPrice,
		TotalTax:      line.TotalTax,
	})
}

// DeleteCart removes a cart and its items. Deleting an absent cart succeeds.
func (s *CartService) DeleteCart(cartID uint) error {
	if cartID == 0 {
		return ErrInvalidCartItem
	}
	_, err := s.cartRepo.Delete(cartID)
	return err
}

// RemoveItem deletes the product's lines from the cart. Nothing removed
// means the cart or line did not exist.
func (s *CartService) RemoveItem(cartID, productID uint) error {
	if cartID == 0 || productID == 0 {
		return ErrInvalidCartItem
	}
	removed, err := s.cartRepo.RemoveItemsByProduct(cartID, productID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrCartNotFound
	}
	return nil
}

// priceItems validates the requested lines and prices them from the catalog.
func (s *CartService) priceItems(items []CartItemInput) ([]PricedLine, error) {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrInvalidCartItem
		}
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	inputs := make([]TaxLineInput, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if !product.IsActive {
			return nil, ErrProductInactive
		}
		inputs = append(inputs, TaxLineInput{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price.Decimal,
			Taxable:   product.Taxable,
		})
	}
	return s.tax.PriceLines(inputs), nil
}
