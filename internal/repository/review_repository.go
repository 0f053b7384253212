package repository

import (
	"errors"

	"github.com/northcart/northcart/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository is the review data access interface.
type ReviewRepository interface {
	ListByProduct(filter ReviewListFilter) ([]models.Review, int64, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) (int64, error)
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates the review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// ListByProduct pages through a product's reviews, newest first.
func (r *GormReviewRepository) ListByProduct(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{}).Where("product_id = ?", filter.ProductID)
	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Preload("User").Order("created_at DESC, id DESC").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// GetByID fetches one review by primary key.
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Create inserts a review.
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update applies an allow-listed column map to one review.
func (r *GormReviewRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Review{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes a review, reporting affected rows.
func (r *GormReviewRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
