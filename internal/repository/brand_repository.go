package repository

import (
	"errors"

	"github.com/northcart/northcart/internal/models"

	"gorm.io/gorm"
)

// BrandRepository is the brand data access interface.
type BrandRepository interface {
	List(onlyActive bool) ([]models.Brand, error)
	GetByID(id uint) (*models.Brand, error)
	GetBySlug(slug string) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	DetachProducts(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormBrandRepository
}

// GormBrandRepository is the GORM implementation.
type GormBrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository creates the brand repository.
func NewBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBrandRepository) WithTx(tx *gorm.DB) *GormBrandRepository {
	if tx == nil {
		return r
	}
	return &GormBrandRepository{db: tx}
}

// List returns brands, optionally only active ones.
func (r *GormBrandRepository) List(onlyActive bool) ([]models.Brand, error) {
	query := r.db.Model(&models.Brand{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var brands []models.Brand
	if err := query.Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// GetByID fetches one brand by primary key.
func (r *GormBrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// GetBySlug fetches one brand by slug.
func (r *GormBrandRepository) GetBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.Where("slug = ?", slug).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// Create inserts a brand.
func (r *GormBrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// Update applies an allow-listed column map to one brand.
func (r *GormBrandRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft-deletes a brand.
func (r *GormBrandRepository) Delete(id uint) error {
	return r.db.Delete(&models.Brand{}, id).Error
}

// DetachProducts clears the brand reference on the brand's products.
func (r *GormBrandRepository) DetachProducts(id uint) error {
	return r.db.Model(&models.Product{}).Where("brand_id = ?", id).Update("brand_id", nil).Error
}

// Transaction runs fn inside a database transaction.
func (r *GormBrandRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// CountBySlug counts brands with the slug, optionally excluding one id.
func (r *GormBrandRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Brand{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
