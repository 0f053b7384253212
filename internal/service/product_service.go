package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/northcart/northcart/internal/cache"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"

	"github.com/shopspring/decimal"
)

var slugSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products    []models.Product `json:"products"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Count       int64            `json:"count"`
}

// ProductListInput narrows the public catalog listing.
type ProductListInput struct {
	Page      int
	Limit     int
	BrandSlug string
	MinPrice  string
	MaxPrice  string
	SortOrder string
}

// ProductService owns the catalog read and admin write paths.
type ProductService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	cacheTTL    time.Duration
}

// NewProductService creates the catalog service.
func NewProductService(productRepo repository.ProductRepository, brandRepo repository.BrandRepository, cacheTTLSeconds int) *ProductService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ProductService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		cacheTTL:    ttl,
	}
}

// List returns one page of active products. An unknown or inactive brand
// slug yields an empty page rather than an error.
func (s *ProductService) List(input ProductListInput) (*ProductPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	filter := repository.ProductListFilter{
		Page:       page,
		PageSize:   limit,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		SortOrder:  input.SortOrder,
		OnlyActive: true,
		WithBrand:  true,
	}
	if slug := strings.TrimSpace(input.BrandSlug); slug != "" {
		brand, err := s.brandRepo.GetBySlug(slug)
		if err != nil {
			return nil, err
		}
		if brand == nil || !brand.IsActive {
			return &ProductPage{Products: []models.Product{}, CurrentPage: page}, nil
		}
		filter.BrandID = brand.ID
	}

	products, count, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &ProductPage{
		Products:    products,
		TotalPages:  totalPages,
		CurrentPage: page,
		Count:       count,
	}, nil
}

// Search returns active products whose name contains the term. The term is
// matched literally; LIKE wildcards in it have no special meaning.
func (s *ProductService) Search(name string) ([]models.Product, error) {
	return s.productRepo.SearchByName(name)
}

// GetBySlug fetches one storefront product, serving a short-TTL cache. A
// product whose brand is inactive is hidden from the storefront.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrProductNotFound
	}

	cacheKey := productCacheKey(slug)
	var cached models.Product
	if hit, err := cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	product, err := s.productRepo.GetBySlug(slug, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.Brand != nil && !product.Brand.IsActive {
		return nil, ErrProductNotFound
	}

	if err := cache.SetJSON(ctx, cacheKey, product, s.cacheTTL); err != nil {
		logger.Warnw("product_cache_set_failed", "slug", slug, "error", err)
	}
	return product, nil
}

// ProductCreateInput is the admin create request.
type ProductCreateInput struct {
	SKU         string
	Name        string
	Slug        string
	Description string
	Price       string
	Quantity    int
	Taxable     bool
	IsActive    bool
	BrandID     *uint
}

// Create inserts a catalog product. A blank slug is derived from the name.
func (s *ProductService) Create(input ProductCreateInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	sku := strings.TrimSpace(input.SKU)
	if name == "" || sku == "" {
		return nil, ErrInvalidProductInput
	}
	price, err := parsePrice(name, input.Price)
	if err != nil {
		return nil, err
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("Invalid quantity detected for %s: %w", name, ErrInvalidQuantity)
	}

	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if slug == "" {
		return nil, ErrInvalidProductInput
	}
	count, err := s.productRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	product := &models.Product{
		SKU:         sku,
		Slug:        slug,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(price),
		Quantity:    input.Quantity,
		Taxable:     input.Taxable,
		IsActive:    input.IsActive,
		BrandID:     input.BrandID,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ProductUpdateInput carries the admin-editable fields; nil means unchanged.
type ProductUpdateInput struct {
	Name        *string
	Description *string
	Price       *string
	Quantity    *int
	Taxable     *bool
	IsActive    *bool
	BrandID     *uint
}

// Update applies the changed fields to one product and drops its detail
// cache. Fields are copied into an explicit column map so raw client JSON
// never reaches the database layer.
func (s *ProductService) Update(ctx context.Context, id uint, input ProductUpdateInput) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return ErrInvalidProductInput
		}
		updates["name"] = name
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		price, err := parsePrice(product.Name, *input.Price)
		if err != nil {
			return err
		}
		updates["price"] = models.NewMoneyFromDecimal(price)
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return fmt.Errorf("Invalid quantity detected for %s: %w", product.Name, ErrInvalidQuantity)
		}
		updates["quantity"] = *input.Quantity
	}
	if input.Taxable != nil {
		updates["taxable"] = *input.Taxable
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.BrandID != nil {
		updates["brand_id"] = *input.BrandID
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.productRepo.Update(id, updates); err != nil {
		return err
	}
	if err := cache.Del(ctx, productCacheKey(product.Slug)); err != nil {
		logger.Warnw("product_cache_del_failed", "slug", product.Slug, "error", err)
	}
	return nil
}

// Delete removes a product from the catalog and drops its detail cache.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	if err := cache.Del(ctx, productCacheKey(product.Slug)); err != nil {
		logger.Warnw("product_cache_del_failed", "slug", product.Slug, "error", err)
	}
	return nil
}

// Slugify lowercases a name and collapses runs of non-alphanumerics into
// single hyphens.
func Slugify(name string) string {
	slug := slugSanitizer.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return strings.Trim(slug, "-")
}

func productCacheKey(slug string) string {
	return "product:slug:" + slug
}

func parsePrice(name, raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("Invalid price detected for %s: %w", name, ErrInvalidPrice)
	}
	return price, nil
}
