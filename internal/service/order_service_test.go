package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:orders_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}, &models.Order{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		nil,
		NewTaxCalculator("0.05"),
	)
	return svc, db
}

func seedOrderProduct(t *testing.T, db *gorm.DB, sku string, price float64, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		SKU:      sku,
		Slug:     sku,
		Name:     sku,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Quantity: quantity,
		Taxable:  true,
		IsActive: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func seedCartWithItems(t *testing.T, db *gorm.DB, userID uint, items []models.CartItem) *models.Cart {
	t.Helper()
	cart := &models.Cart{UserID: userID, Items: items}
	if err := db.Create(cart).Error; err != nil {
		t.Fatalf("seed cart failed: %v", err)
	}
	return cart
}

func TestCreateOrderTotalsFromCatalogPrices(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-tee", 10.00, 10)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 2, Status: constants.CartItemStatusActive},
	})

	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Total.String() != "20.00" {
		t.Fatalf("total want 20.00 got %s", order.Total.String())
	}
	if order.CartID != cart.ID || order.UserID != 1 {
		t.Fatalf("order should carry cart and user ids, got cart=%d user=%d", order.CartID, order.UserID)
	}
}

func TestCreateOrderMissingCart(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.CreateOrder(0, 1); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("zero cart id want ErrCartNotFound got %v", err)
	}
	if _, err := svc.CreateOrder(9999, 1); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("missing cart want ErrCartNotFound got %v", err)
	}
}

func TestCreateOrderRejectsCorruptLines(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	negative := seedOrderProduct(t, db, "ord-negative", 10.00, 10)
	if err := db.Model(&models.Product{}).Where("id = ?", negative.ID).Update("price", "-1").Error; err != nil {
		t.Fatalf("force negative price failed: %v", err)
	}
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: negative.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})

	_, err := svc.CreateOrder(cart.ID, 1)
	if !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("negative price want ErrInvalidPrice got %v", err)
	}
	if !strings.Contains(err.Error(), "Invalid price detected for ord-negative") {
		t.Fatalf("error should name the product, got %s", err.Error())
	}

	zeroQty := seedOrderProduct(t, db, "ord-zero-qty", 10.00, 10)
	cart2 := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: zeroQty.ID, Quantity: 0, Status: constants.CartItemStatusActive},
	})

	_, err = svc.CreateOrder(cart2.ID, 1)
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
}

func TestCancelOrderRestoresStockAndIsIdempotent(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-cancel", 10.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 2, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := svc.CancelOrder(order.ID, 1, false); err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Quantity != 10 {
		t.Fatalf("stock after cancel want 10 got %d", got.Quantity)
	}

	var cartCount int64
	if err := db.Model(&models.Cart{}).Where("id = ?", cart.ID).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("cart should be deleted with the order")
	}

	if err := svc.CancelOrder(order.ID, 1, false); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("second cancel want ErrOrderNotFound got %v", err)
	}
}

func TestCancelOrderScopedToOwner(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-owner", 10.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if err := svc.CancelOrder(order.ID, 2, false); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("foreign user cancel want ErrOrderNotFound got %v", err)
	}
	if err := svc.CancelOrder(order.ID, 2, true); err != nil {
		t.Fatalf("admin cancel failed: %v", err)
	}
}

func TestCancelOrphanOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-orphan", 10.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	if _, err := cartRepo.Delete(cart.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}

	if err := svc.CancelOrder(order.ID, 1, false); err != nil {
		t.Fatalf("orphan cancel failed: %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("orphan order should be deleted")
	}
}

func TestUpdateItemStatusCascadesToOrder(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	first := seedOrderProduct(t, db, "ord-item-1", 10.00, 8)
	second := seedOrderProduct(t, db, "ord-item-2", 5.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: first.ID, Quantity: 2, Status: constants.CartItemStatusActive},
		{ProductID: second.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Order("id ASC").Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}

	result, err := svc.UpdateItemStatus(UpdateItemStatusInput{
		ItemID:  items[0].ID,
		OrderID: order.ID,
		CartID:  cart.ID,
		Status:  constants.CartItemStatusCancelled,
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("cancel first item failed: %v", err)
	}
	if result.OrderCancelled {
		t.Fatalf("one active line left, order should survive")
	}

	var got models.Product
	if err := db.First(&got, first.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Quantity != 10 {
		t.Fatalf("cancelled line stock want 10 got %d", got.Quantity)
	}

	result, err = svc.UpdateItemStatus(UpdateItemStatusInput{
		ItemID:  items[1].ID,
		OrderID: order.ID,
		CartID:  cart.ID,
		Status:  constants.CartItemStatusCancelled,
		UserID:  1,
	})
	if err != nil {
		t.Fatalf("cancel last item failed: %v", err)
	}
	if !result.OrderCancelled {
		t.Fatalf("all lines cancelled, order should be reported cancelled")
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("order should be deleted after the cascade")
	}
}

func TestUpdateItemStatusValidation(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)

	if _, err := svc.UpdateItemStatus(UpdateItemStatusInput{ItemID: 0}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("zero item id want ErrItemNotFound got %v", err)
	}
	if _, err := svc.UpdateItemStatus(UpdateItemStatusInput{ItemID: 1, Status: "shipped"}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("unknown status want ErrInvalidCartItem got %v", err)
	}
	if _, err := svc.UpdateItemStatus(UpdateItemStatusInput{ItemID: 9999}); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("unknown item want ErrCartNotFound got %v", err)
	}
}

func TestSearchOrdersTolerantOfBadInput(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-search", 10.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	views, err := svc.SearchOrders("not-a-number", 1, false)
	if err != nil {
		t.Fatalf("malformed search should not error: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("malformed search want 0 results got %d", len(views))
	}

	views, err = svc.SearchOrders(fmt.Sprintf("%d", order.ID), 1, false)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 1 || views[0].ID != order.ID {
		t.Fatalf("search should find the order, got %d results", len(views))
	}

	views, err = svc.SearchOrders(fmt.Sprintf("%d", order.ID), 2, false)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("foreign user search want 0 results got %d", len(views))
	}
}

func TestGetOrderHidesOrphans(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	product := seedOrderProduct(t, db, "ord-get", 10.00, 8)
	cart := seedCartWithItems(t, db, 1, []models.CartItem{
		{ProductID: product.ID, Quantity: 1, Status: constants.CartItemStatusActive},
	})
	order, err := svc.CreateOrder(cart.ID, 1)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	view, err := svc.GetOrder(order.ID, 1, false)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if view.TotalTax.String() != "0.50" {
		t.Fatalf("recomputed tax want 0.50 got %s", view.TotalTax.String())
	}

	cartRepo := repository.NewCartRepository(db)
	if _, err := cartRepo.Delete(cart.ID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}

	if _, err := svc.GetOrder(order.ID, 1, false); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("orphan get want ErrOrderNotFound got %v", err)
	}
}
