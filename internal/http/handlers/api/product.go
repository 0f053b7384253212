package api

import (
	"github.com/northcart/northcart/internal/http/response"
	"github.com/northcart/northcart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts pages through the active catalog.
func (h *Handler) ListProducts(c *gin.Context) {
	page, limit := parsePaging(c)
	result, err := h.ProductService.List(service.ProductListInput{
		Page:      page,
		Limit:     limit,
		BrandSlug: c.Query("brand"),
		MinPrice:  c.Query("min"),
		MaxPrice:  c.Query("max"),
		SortOrder: c.Query("sort"),
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{
		"products":    result.Products,
		"totalPages":  result.TotalPages,
		"currentPage": result.CurrentPage,
		"count":       result.Count,
	})
}

// SearchProducts finds active products by name.
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.ProductService.Search(c.Param("name"))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{"products": products})
}

// GetProduct fetches one storefront product by slug.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.ProductService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{"product": product})
}

// ProductCreateRequest is the admin create payload.
type ProductCreateRequest struct {
	SKU         string `json:"sku" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	Quantity    int    `json:"quantity"`
	Taxable     bool   `json:"taxable"`
	IsActive    bool   `json:"isActive"`
	BrandID     *uint  `json:"brand"`
}

// CreateProduct inserts a catalog product (admin).
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "You must enter a name, sku and price.")
		return
	}
	product, err := h.ProductService.Create(service.ProductCreateInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Taxable:     req.Taxable,
		IsActive:    req.IsActive,
		BrandID:     req.BrandID,
	})
	if err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true, "product": product})
}

// ProductUpdateRequest is the admin update payload; absent fields stay
// untouched.
type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Quantity    *int    `json:"quantity"`
	Taxable     *bool   `json:"taxable"`
	IsActive    *bool   `json:"isActive"`
	BrandID     *uint   `json:"brand"`
}

// UpdateProduct applies admin edits to one product.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid ID format provided.")
		return
	}
	if err := h.ProductService.Update(c.Request.Context(), id, service.ProductUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Taxable:     req.Taxable,
		IsActive:    req.IsActive,
		BrandID:     req.BrandID,
	}); err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}

// DeleteProduct removes one product (admin).
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid ID format provided.")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(c.Request.Context(), id); err != nil {
		respondWithMappedError(c, err, productErrorRules)
		return
	}
	response.OK(c, gin.H{"success": true})
}
