package repository

import (
	"errors"
	"strings"

	"github.com/northcart/northcart/internal/constants"
	"github.com/northcart/northcart/internal/models"

	"gorm.io/gorm"
)

// QuantityAdjustment is one product's stock delta in a batched update.
type QuantityAdjustment struct {
	ProductID uint
	Delta     int
}

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	SearchByName(name string) ([]models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	GetByID(id uint) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	AdjustQuantities(adjustments []QuantityAdjustment) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the catalog repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction runs fn inside a transaction.
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List returns a filtered catalog page plus the total row count.
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithBrand {
		query = query.Preload("Brand")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if minPrice := strings.TrimSpace(filter.MinPrice); minPrice != "" {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := strings.TrimSpace(filter.MaxPrice); maxPrice != "" {
		query = query.Where("price <= ?", maxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, args := buildNameLikeCondition(r.db, []string{"name", "sku"}, search)
		query = query.Where(condition, args...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	switch filter.SortOrder {
	case constants.ProductSortPriceAsc:
		query = query.Order("price ASC, id ASC")
	case constants.ProductSortPriceDesc:
		query = query.Order("price DESC, id ASC")
	default:
		query = query.Order("created_at DESC, id DESC")
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// SearchByName returns active products whose name or SKU contains the term.
// The term is LIKE-escaped so wildcard characters match literally.
func (r *GormProductRepository) SearchByName(name string) ([]models.Product, error) {
	term := strings.TrimSpace(name)
	if term == "" {
		return []models.Product{}, nil
	}
	condition, args := buildNameLikeCondition(r.db, []string{"name", "sku"}, term)
	var products []models.Product
	if err := r.db.Where("is_active = ?", true).
		Where(condition, args...).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetBySlug fetches one product by slug, optionally restricted to active rows.
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Brand").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetByID fetches one product by primary key.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Brand").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs batch-fetches products.
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update applies an allow-listed column map to one product.
func (r *GormProductRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a product.
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

// CountBySlug counts products with the slug, optionally excluding one id.
func (r *GormProductRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AdjustQuantities applies all stock deltas in one UPDATE. Deltas for the
// same product are summed; zero-sum entries are dropped. Returns the number
// of rows touched.
func (r *GormProductRepository) AdjustQuantities(adjustments []QuantityAdjustment) (int64, error) {
	merged := make(map[uint]int, len(adjustments))
	for _, adj := range adjustments {
		if adj.ProductID == 0 {
			return 0, errors.New("invalid quantity adjustment params")
		}
		merged[adj.ProductID] += adj.Delta
	}

	ids := make([]uint, 0, len(merged))
	var caseExpr strings.Builder
	args := make([]interface{}, 0, len(merged)*2)
	caseExpr.WriteString("quantity + CASE id")
	for id, delta := range merged {
		if delta == 0 {
			continue
		}
		ids = append(ids, id)
		caseExpr.WriteString(" WHEN ? THEN ?")
		args = append(args, id, delta)
	}
	caseExpr.WriteString(" ELSE 0 END")
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.Model(&models.Product{}).
		Where("id IN ?", ids).
		Update("quantity", gorm.Expr(caseExpr.String(), args...))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
