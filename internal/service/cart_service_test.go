package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:carts_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		NewTaxCalculator("0.05"),
	)
	return svc, db
}

func seedCartProduct(t *testing.T, db *gorm.DB, sku string, price float64, quantity int, taxable bool, isActive bool) *models.Product {
	t.Helper()
	product := &models.Product{
		SKU:      sku,
		Slug:     sku,
		Name:     sku,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Quantity: quantity,
		Taxable:  taxable,
		IsActive: isActive,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestAddCartPricesLinesAndDecrementsStock(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "cart-tee", 10.00, 10, true, true)

	cartID, err := svc.AddCart(1, []CartItemInput{{ProductID: product.ID, Quantity: 2}})
	if err != nil {
		t.Fatalf("add cart failed: %v", err)
	}
	if cartID == 0 {
		t.Fatalf("cart id should be set")
	}

	var item models.CartItem
	if err := db.Where("cart_id = ?", cartID).First(&item).Error; err != nil {
		t.Fatalf("load cart item failed: %v", err)
	}
	if item.PurchasePrice.String() != "10.00" {
		t.Fatalf("purchase price want 10.00 got %s", item.PurchasePrice.String())
	}
	if item.PriceWithTax.String() != "10.50" {
		t.Fatalf("price with tax want 10.50 got %s", item.PriceWithTax.String())
	}
	if item.TotalPrice.String() != "20.00" {
		t.Fatalf("total price want 20.00 got %s", item.TotalPrice.String())
	}
	if item.TotalTax.String() != "1.00" {
		t.Fatalf("total tax want 1.00 got %s", item.TotalTax.String())
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Quantity != 8 {
		t.Fatalf("stock want 8 got %d", got.Quantity)
	}
}

func TestAddCartRejectsBadInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	active := seedCartProduct(t, db, "cart-active", 5.00, 10, true, true)
	inactive := seedCartProduct(t, db, "cart-inactive", 5.00, 10, true, false)

	if _, err := svc.AddCart(0, []CartItemInput{{ProductID: active.ID, Quantity: 1}}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero user want ErrInvalidCartItem got %v", err)
	}
	if _, err := svc.AddCart(1, nil); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty items want ErrCartEmpty got %v", err)
	}
	if _, err := svc.AddCart(1, []CartItemInput{{ProductID: active.ID, Quantity: 0}}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("zero quantity want ErrInvalidCartItem got %v", err)
	}
	if _, err := svc.AddCart(1, []CartItemInput{{ProductID: 9999, Quantity: 1}}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("unknown product want ErrProductNotFound got %v", err)
	}
	if _, err := svc.AddCart(1, []CartItemInput{{ProductID: inactive.ID, Quantity: 1}}); !errors.Is(err, ErrProductInactive) {
		t.Fatalf("inactive product want ErrProductInactive got %v", err)
	}
}

func TestAppendItemDoesNotTouchStock(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	first := seedCartProduct(t, db, "cart-first", 10.00, 10, true, true)
	second := seedCartProduct(t, db, "cart-second", 7.50, 6, false, true)

	cartID, err := svc.AddCart(1, []CartItemInput{{ProductID: first.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("add cart failed: %v", err)
	}

	if err := svc.AppendItem(cartID, CartItemInput{ProductID: second.ID, Quantity: 2}); err != nil {
		t.Fatalf("append item failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("item count want 2 got %d", count)
	}

	var got models.Product
	if err := db.First(&got, second.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Quantity != 6 {
		t.Fatalf("append should not change stock, want 6 got %d", got.Quantity)
	}
}

func TestAppendItemMissingCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "cart-missing", 10.00, 10, true, true)

	if err := svc.AppendItem(9999, CartItemInput{ProductID: product.ID, Quantity: 1}); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("missing cart want ErrCartNotFound got %v", err)
	}
}

func TestRemoveItemReportsMissingLine(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "cart-remove", 10.00, 10, true, true)

	cartID, err := svc.AddCart(1, []CartItemInput{{ProductID: product.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("add cart failed: %v", err)
	}

	if err := svc.RemoveItem(cartID, product.ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	if err := svc.RemoveItem(cartID, product.ID); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("second remove want ErrCartNotFound got %v", err)
	}
}

func TestDeleteCartIsIdempotent(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartProduct(t, db, "cart-delete", 10.00, 10, true, true)

	cartID, err := svc.AddCart(1, []CartItemInput{{ProductID: product.ID, Quantity: 1}})
	if err != nil {
		t.Fatalf("add cart failed: %v", err)
	}

	if err := svc.DeleteCart(cartID); err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}
	if err := svc.DeleteCart(cartID); err != nil {
		t.Fatalf("deleting an absent cart should succeed, got %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cartID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("cart items should be gone, got %d", count)
	}
}
