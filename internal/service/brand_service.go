package service

import (
	"strings"

	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/repository"

	"gorm.io/gorm"
)

// BrandService owns the brand read and admin write paths.
type BrandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService creates the brand service.
func NewBrandService(brandRepo repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// ListPublic returns the active brands for the storefront.
func (s *BrandService) ListPublic() ([]models.Brand, error) {
	return s.brandRepo.List(true)
}

// ListAll returns every brand for the admin console.
func (s *BrandService) ListAll() ([]models.Brand, error) {
	return s.brandRepo.List(false)
}

// Get fetches one brand by id.
func (s *BrandService) Get(id uint) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrBrandNotFound
	}
	return brand, nil
}

// BrandCreateInput is the admin create request.
type BrandCreateInput struct {
	Name        string
	Slug        string
	Description string
	IsActive    bool
}

// Create inserts a brand. A blank slug is derived from the name.
func (s *BrandService) Create(input BrandCreateInput) (*models.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrBrandNotFound
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	count, err := s.brandRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	brand := &models.Brand{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		IsActive:    input.IsActive,
	}
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// BrandUpdateInput carries the admin-editable fields; nil means unchanged.
type BrandUpdateInput struct {
	Name        *string
	Slug        *string
	Description *string
	IsActive    *bool
}

// Update applies the changed fields to one brand. Deactivating a brand
// hides its products from the storefront without touching them.
func (s *BrandService) Update(id uint, input BrandUpdateInput) error {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrBrandNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return ErrBrandNotFound
		}
		updates["name"] = name
	}
	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug != "" && slug != brand.Slug {
			count, err := s.brandRepo.CountBySlug(slug, &id)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrSlugTaken
			}
			updates["slug"] = slug
		}
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		return nil
	}
	return s.brandRepo.Update(id, updates)
}

// Delete removes a brand and detaches its products so they keep selling
// without a brand page.
func (s *BrandService) Delete(id uint) error {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrBrandNotFound
	}
	return s.brandRepo.Transaction(func(tx *gorm.DB) error {
		txBrand := s.brandRepo.WithTx(tx)
		if err := txBrand.Delete(id); err != nil {
			return err
		}
		return txBrand.DetachProducts(id)
	})
}
