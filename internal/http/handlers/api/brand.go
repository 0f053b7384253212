package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListBrands returns the active brands for the storefront.
func (h *Handler) ListBrands(c *gin.Context) {
	brands, err := h.BrandService.ListPublic()
	if err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"brands": brands})
}

// ListAllBrands returns every brand (admin).
func (h *Handler) ListAllBrands(c *gin.Context) {
	brands, err := h.BrandService.ListAll()
	if err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"brands": brands})
}

// GetBrand fetches one brand by id.
func (h *Handler) GetBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	brand, err := h.BrandService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"brand": brand})
}

// BrandCreateRequest is the admin create payload.
type BrandCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// CreateBrand inserts a brand (admin).
func (h *Handler) CreateBrand(c *gin.Context) {
	var req BrandCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must enter a name.")
		return
	}
	brand, err := h.BrandService.Create(service.BrandCreateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true, "brand": brand})
}

// BrandUpdateRequest is the admin update payload; absent fields stay
// untouched.
type BrandUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateBrand applies admin edits to one brand.
func (h *Handler) UpdateBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	var req BrandUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ID format provided.")
		return
	}
	if err := h.BrandService.Update(id, service.BrandUpdateInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    req.IsActive,
	}); err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// DeleteBrand removes a brand, detaching its products (admin).
func (h *Handler) DeleteBrand(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	if err := h.BrandService.Delete(id); err != nil {
		respondWithMappedError(c, err, brandErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}
