package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/northcart/northcart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:products_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Brand{}, &models.Product{}); err != nil {
		t.Fatalf("migrate brand/product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, sku string, name string, price float64, quantity int, isActive bool) *models.Product {
	t.Helper()
	product := &models.Product{
		SKU:      sku,
		Slug:     sku,
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromFloat(price)),
		Quantity: quantity,
		Taxable:  true,
		IsActive: isActive,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestSearchByNameMatchesWildcardsLiterally(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "sku-percent", "50% cotton tee", 10, 5, true)
	createTestProduct(t, repo, "sku-underscore", "usb_c cable", 8, 5, true)
	createTestProduct(t, repo, "sku-plain", "plain tee", 12, 5, true)
	createTestProduct(t, repo, "sku-inactive", "50% wool tee", 20, 5, false)

	products, err := repo.SearchByName("50%")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("search 50%% want 1 product got %d", len(products))
	}
	if products[0].Name != "50% cotton tee" {
		t.Fatalf("search 50%% matched wrong product: %s", products[0].Name)
	}

	products, err = repo.SearchByName("usb_c")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "sku-underscore" {
		t.Fatalf("underscore term should match literally, got %d products", len(products))
	}

	products, err = repo.SearchByName("   ")
	if err != nil {
		t.Fatalf("blank search failed: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("blank search want 0 products got %d", len(products))
	}
}

func TestSearchByNameMatchesSKU(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "NW-EAR-001", "Wireless Earphones", 99.99, 10, true)

	products, err := repo.SearchByName("NW-EAR")
	if err != nil {
		t.Fatalf("search by sku failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("search by sku want 1 product got %d", len(products))
	}
}

func TestListFiltersByBrandPriceAndActive(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)

	brand := &models.Brand{Name: "Acme", Slug: "acme", IsActive: true}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}

	branded := createTestProduct(t, repo, "acme-1", "Acme Widget", 15, 5, true)
	if err := db.Model(branded).Update("brand_id", brand.ID).Error; err != nil {
		t.Fatalf("assign brand failed: %v", err)
	}
	createTestProduct(t, repo, "other-1", "Cheap Thing", 5, 5, true)
	createTestProduct(t, repo, "other-2", "Pricey Thing", 100, 5, true)
	createTestProduct(t, repo, "hidden-1", "Hidden Thing", 15, 5, false)

	products, total, err := repo.List(ProductListFilter{
		Page:       1,
		PageSize:   10,
		BrandID:    brand.ID,
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list by brand failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].SKU != "acme-1" {
		t.Fatalf("list by brand want only acme-1, got total=%d len=%d", total, len(products))
	}

	products, total, err = repo.List(ProductListFilter{
		Page:       1,
		PageSize:   10,
		MinPrice:   "10",
		MaxPrice:   "50",
		OnlyActive: true,
	})
	if err != nil {
		t.Fatalf("list by price range failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].SKU != "acme-1" {
		t.Fatalf("price range 10..50 want only acme-1, got total=%d len=%d", total, len(products))
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("active total want 3 got %d", total)
	}
}

func TestAdjustQuantitiesMergesDeltas(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	first := createTestProduct(t, repo, "adj-1", "First", 10, 10, true)
	second := createTestProduct(t, repo, "adj-2", "Second", 10, 7, true)

	affected, err := repo.AdjustQuantities([]QuantityAdjustment{
		{ProductID: first.ID, Delta: -2},
		{ProductID: second.ID, Delta: 3},
		{ProductID: first.ID, Delta: -1},
	})
	if err != nil {
		t.Fatalf("adjust quantities failed: %v", err)
	}
	if affected != 2 {
		t.Fatalf("affected want 2 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, first.ID).Error; err != nil {
		t.Fatalf("reload first failed: %v", err)
	}
	if got.Quantity != 7 {
		t.Fatalf("first quantity want 7 got %d", got.Quantity)
	}
	got = models.Product{}
	if err := db.First(&got, second.ID).Error; err != nil {
		t.Fatalf("reload second failed: %v", err)
	}
	if got.Quantity != 10 {
		t.Fatalf("second quantity want 10 got %d", got.Quantity)
	}
}

func TestAdjustQuantitiesDropsZeroSumEntries(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "adj-zero", "Zero Sum", 10, 4, true)

	affected, err := repo.AdjustQuantities([]QuantityAdjustment{
		{ProductID: product.ID, Delta: 2},
		{ProductID: product.ID, Delta: -2},
	})
	if err != nil {
		t.Fatalf("adjust quantities failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("zero-sum affected want 0 got %d", affected)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.Quantity != 4 {
		t.Fatalf("quantity should be untouched, want 4 got %d", got.Quantity)
	}
}

func TestAdjustQuantitiesRejectsZeroProductID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	if _, err := repo.AdjustQuantities([]QuantityAdjustment{{ProductID: 0, Delta: 1}}); err == nil {
		t.Fatalf("zero product id should fail")
	}
}

func TestCountBySlugExcludesID(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "slug-count", "Slug Count", 10, 1, true)

	count, err := repo.CountBySlug("slug-count", nil)
	if err != nil {
		t.Fatalf("count by slug failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("count want 1 got %d", count)
	}

	count, err = repo.CountBySlug("slug-count", &product.ID)
	if err != nil {
		t.Fatalf("count excluding own id failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("count excluding own id want 0 got %d", count)
	}
}

func TestGetBySlugOnlyActive(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "inactive-slug", "Inactive Item", 10, 1, false)

	product, err := repo.GetBySlug("inactive-slug", true)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product != nil {
		t.Fatalf("inactive product should be hidden from active lookup")
	}

	product, err = repo.GetBySlug("inactive-slug", false)
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product == nil {
		t.Fatalf("inactive product should be visible without the active filter")
	}
}
